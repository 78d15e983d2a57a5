package token

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const minSecretKeySize = 32

var (
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("token is invalid")
)

// Payload token內容物，SessionID對應redis內的session記錄
type Payload struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
}

func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiredAt) {
		return ErrExpiredToken
	}
	return nil
}

// Maker token的建立與驗證
type Maker interface {
	CreateToken(sessionID, userID string, duration time.Duration) (string, *Payload, error)
	VerifyToken(token string) (*Payload, error)
}

type JWTMaker struct {
	secretKey string
}

func NewJWTMaker(secretKey string) (*JWTMaker, error) {
	if len(secretKey) < minSecretKeySize {
		return nil, errors.New("invalid key size: must be at least 32 characters")
	}
	return &JWTMaker{secretKey: secretKey}, nil
}

type jwtClaims struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	jwt.StandardClaims
}

func (maker *JWTMaker) CreateToken(sessionID, userID string, duration time.Duration) (string, *Payload, error) {
	now := time.Now().UTC()
	payload := &Payload{
		SessionID: sessionID,
		UserID:    userID,
		IssuedAt:  now,
		ExpiredAt: now.Add(duration),
	}

	claims := jwtClaims{
		SessionID: sessionID,
		UserID:    userID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  payload.IssuedAt.Unix(),
			ExpiresAt: payload.ExpiredAt.Unix(),
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := jwtToken.SignedString([]byte(maker.secretKey))
	if err != nil {
		return "", nil, err
	}
	return token, payload, nil
}

func (maker *JWTMaker) VerifyToken(token string) (*Payload, error) {
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(maker.secretKey), nil
	}

	jwtToken, err := jwt.ParseWithClaims(token, &jwtClaims{}, keyFunc)
	if err != nil {
		var verr *jwt.ValidationError
		if errors.As(err, &verr) && verr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := jwtToken.Claims.(*jwtClaims)
	if !ok || !jwtToken.Valid {
		return nil, ErrInvalidToken
	}

	return &Payload{
		SessionID: claims.SessionID,
		UserID:    claims.UserID,
		IssuedAt:  time.Unix(claims.IssuedAt, 0),
		ExpiredAt: time.Unix(claims.ExpiresAt, 0),
	}, nil
}

var _ Maker = (*JWTMaker)(nil)
