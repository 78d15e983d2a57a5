package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mrAbdou/ZenithShop-sub002/internal/api"
	gql "github.com/mrAbdou/ZenithShop-sub002/internal/api/graphql"
	"github.com/mrAbdou/ZenithShop-sub002/internal/cart"
	"github.com/mrAbdou/ZenithShop-sub002/internal/config"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/producer"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/repository/db"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/repository/redis_repo"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/storage"
	"github.com/mrAbdou/ZenithShop-sub002/internal/service"
	"github.com/mrAbdou/ZenithShop-sub002/internal/token"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cf := config.GetConfig()

	// postgres
	conn, err := db.GetDbConn(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas)
	if err != nil {
		logger.Error("connect postgres failed", "err", err)
		os.Exit(1)
	}
	store := db.NewUnifiedDB(conn)
	if err := store.InitMigrate(); err != nil {
		logger.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	// redis 同一個instance給session和cart snapshot用
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cf.RedisAddr,
		Password: cf.RedisPas,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Error("connect redis failed", "err", err)
		os.Exit(1)
	}
	sessionRepo := redis_repo.NewSessionRepo(redisClient)
	cartStore := cart.NewStore(redis_repo.NewCartSnapshotRepo(redisClient))

	// kafka order事件
	orderProducer := producer.NewOrderEventProducer(strings.Split(cf.KafkaBrokers, ","), cf.KafkaOrderTopic)
	defer orderProducer.Close()

	// minio 商品圖片
	uploader, err := storage.NewMinioStore(cf.MinioEndpoint, cf.MinioAccessKey, cf.MinioSecretKey, cf.MinioBucket, cf.MinioPublicURL)
	if err != nil {
		logger.Error("connect minio failed", "err", err)
		os.Exit(1)
	}

	tokenMaker, err := token.NewJWTMaker(cf.TokenKey)
	if err != nil {
		logger.Error("init token maker failed", "err", err)
		os.Exit(1)
	}

	catalogService := service.NewCatalogService(store, store)
	orderService := service.NewOrderService(store, store, orderProducer, logger)
	userService := service.NewUserService(store, sessionRepo, tokenMaker, time.Duration(cf.TokenTTLMinutes)*time.Minute, logger)

	resolver := gql.NewResolver(catalogService, orderService, userService, cartStore, logger)

	server, err := api.NewServer(resolver, tokenMaker, userService, uploader, strings.Split(cf.AllowedOrigins, ","), logger)
	if err != nil {
		logger.Error("build server failed", "err", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:    ":" + cf.ServerPort,
		Handler: server.Handler(),
	}

	go func() {
		logger.Info("server listening", "port", cf.ServerPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
