package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "storefront:session"

var ErrSessionNotFound = errors.New("session not found")

// UserSession 服務端session，TTL到期redis自動清除
type UserSession struct {
	SessionID string         `json:"session_id"`
	UserID    string         `json:"user_id"`
	Role      model.UserRole `json:"role"`
	UserName  string         `json:"user_name"`
	UserEmail string         `json:"user_email"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

type SessionRepo struct {
	sessionCache *redis.Client
}

func NewSessionRepo(sessionCache *redis.Client) *SessionRepo {
	return &SessionRepo{sessionCache: sessionCache}
}

func generateSessionKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", sessionKeyPrefix, sessionID)
}

func (r *SessionRepo) CreateSession(ctx context.Context, session *UserSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}
	if err := r.sessionCache.Set(ctx, generateSessionKey(session.SessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepo) GetSession(ctx context.Context, sessionID string) (*UserSession, error) {
	data, err := r.sessionCache.Get(ctx, generateSessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session UserSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("invalid session payload: %w", err)
	}
	return &session, nil
}

func (r *SessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	if err := r.sessionCache.Del(ctx, generateSessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
