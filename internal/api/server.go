package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	gqlhandler "github.com/graphql-go/handler"

	gql "github.com/mrAbdou/ZenithShop-sub002/internal/api/graphql"
	"github.com/mrAbdou/ZenithShop-sub002/internal/api/middleware"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/apperr"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/storage"
	"github.com/mrAbdou/ZenithShop-sub002/internal/service/authz"
	"github.com/mrAbdou/ZenithShop-sub002/internal/token"
)

// Server http層的組裝，route很少所以不另拆router package
type Server struct {
	engine *gin.Engine
	logger *slog.Logger
}

func NewServer(resolver *gql.Resolver, tokenMaker token.Maker, sessions middleware.SessionLoader, uploader storage.Uploader, allowedOrigins []string, logger *slog.Logger) (*Server, error) {
	schema, err := resolver.NewSchema()
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(logger))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BearerSession(tokenMaker, sessions, logger))

	engine.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   false,
		GraphiQL: false,
	})
	engine.POST("/graphql", gin.WrapH(h))

	// 商品圖片用multipart走REST，graphql變數不適合帶binary
	engine.POST("/upload", uploadHandler(uploader, logger))

	return &Server{engine: engine, logger: logger}, nil
}

// uploadHandler admin限定，回傳可直接塞進product imageUrl的公開網址
func uploadHandler(uploader storage.Uploader, logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := authz.FromContext(ctx.Request.Context())
		if session == nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"code": string(apperr.Unauthorized), "message": "authentication required"})
			return
		}
		if session.Role != model.RoleAdmin {
			ctx.JSON(http.StatusForbidden, gin.H{"code": string(apperr.AccessDenied), "message": "admin role required"})
			return
		}

		file, header, err := ctx.Request.FormFile("file")
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"code": string(apperr.ValidationFailed), "message": "missing file field"})
			return
		}
		defer file.Close()

		url, err := uploader.Upload(ctx.Request.Context(), session.UserID, header.Header.Get("Content-Type"), file, header.Size)
		if err != nil {
			if apperr.IsKind(err, apperr.ValidationFailed) {
				ctx.JSON(http.StatusBadRequest, gin.H{"code": string(apperr.ValidationFailed), "message": err.Error()})
				return
			}
			logger.Error("upload failed", "user_id", session.UserID, "err", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"code": string(apperr.DatabaseOperationFail), "message": "internal error"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"url": url})
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		logger.Info("request",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", ctx.ClientIP(),
		)
	}
}
