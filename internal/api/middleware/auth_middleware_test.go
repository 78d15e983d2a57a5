package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/repository/redis_repo"
	"github.com/mrAbdou/ZenithShop-sub002/internal/service/authz"
	"github.com/mrAbdou/ZenithShop-sub002/internal/token"
)

type fakeSessionLoader struct {
	sessions map[string]*redis_repo.UserSession
}

func (f *fakeSessionLoader) LoadSession(ctx context.Context, sessionID string) (*redis_repo.UserSession, error) {
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, redis_repo.ErrSessionNotFound
	}
	return s, nil
}

func TestBearerSession(t *testing.T) {
	maker, err := token.NewJWTMaker("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	loader := &fakeSessionLoader{sessions: map[string]*redis_repo.UserSession{
		"sess-1": {
			SessionID: "sess-1",
			UserID:    "user-1",
			Role:      model.RoleCustomer,
			UserEmail: "user@example.com",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}

	gin.SetMode(gin.TestMode)
	var captured *authz.Session
	engine := gin.New()
	engine.Use(BearerSession(maker, loader, slog.Default()))
	engine.GET("/probe", func(ctx *gin.Context) {
		captured = authz.FromContext(ctx.Request.Context())
		ctx.Status(http.StatusOK)
	})

	probe := func(authHeader string) *authz.Session {
		captured = nil
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		return captured
	}

	t.Run("valid token loads session", func(t *testing.T) {
		tok, _, err := maker.CreateToken("sess-1", "user-1", time.Hour)
		require.NoError(t, err)

		session := probe("Bearer " + tok)
		require.NotNil(t, session)
		require.Equal(t, "user-1", session.UserID)
		require.Equal(t, model.RoleCustomer, session.Role)
	})

	t.Run("missing header is anonymous", func(t *testing.T) {
		require.Nil(t, probe(""))
	})

	t.Run("garbage token is anonymous", func(t *testing.T) {
		require.Nil(t, probe("Bearer not-a-jwt"))
	})

	t.Run("expired token is anonymous", func(t *testing.T) {
		tok, _, err := maker.CreateToken("sess-1", "user-1", -time.Minute)
		require.NoError(t, err)
		require.Nil(t, probe("Bearer "+tok))
	})

	t.Run("revoked session is anonymous", func(t *testing.T) {
		tok, _, err := maker.CreateToken("sess-gone", "user-1", time.Hour)
		require.NoError(t, err)
		require.Nil(t, probe("Bearer "+tok))
	})
}
