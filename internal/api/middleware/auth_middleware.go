package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/repository/redis_repo"
	"github.com/mrAbdou/ZenithShop-sub002/internal/service/authz"
	"github.com/mrAbdou/ZenithShop-sub002/internal/token"
)

const (
	authorizationHeaderKey  = "authorization"
	authorizationTypeBearer = "bearer"
)

// SessionLoader 用token payload裡的session id換回完整session
type SessionLoader interface {
	LoadSession(ctx context.Context, sessionID string) (*redis_repo.UserSession, error)
}

// BearerSession 解析bearer JWT並把session放進request context
// header缺失/token過期/session不存在都視為匿名請求，授權交給resolver層的閘門
func BearerSession(tokenMaker token.Maker, sessions SessionLoader, logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)
		if authorizationHeader == "" {
			ctx.Next()
			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) < 2 || !strings.EqualFold(fields[0], authorizationTypeBearer) {
			ctx.Next()
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			ctx.Next()
			return
		}

		userSession, err := sessions.LoadSession(ctx.Request.Context(), payload.SessionID)
		if err != nil {
			// session已失效是正常流程(過期/登出)，其他錯誤記一下
			logger.Debug("session lookup failed", "session_id", payload.SessionID, "err", err)
			ctx.Next()
			return
		}

		session := &authz.Session{
			SessionID: userSession.SessionID,
			UserID:    userSession.UserID,
			Role:      userSession.Role,
			UserName:  userSession.UserName,
			UserEmail: userSession.UserEmail,
		}
		ctx.Request = ctx.Request.WithContext(authz.WithSession(ctx.Request.Context(), session))
		ctx.Next()
	}
}
