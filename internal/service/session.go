package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kmdeck/userdir/internal/domain"
)

const sessionTTL = 24 * time.Hour

// SessionService issues and validates anonymous browser sessions.
// A session is a signed JWT carrying a random session ID; anti-forgery
// tokens are bound to that ID. No user identity is involved.
type SessionService struct {
	secret []byte
}

// NewSessionService creates a new SessionService signing with the given secret.
func NewSessionService(secret string) *SessionService {
	return &SessionService{secret: []byte(secret)}
}

// Issue creates a fresh session and returns its signed cookie value.
func (s *SessionService) Issue() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses a session cookie value and returns the session ID,
// or domain.ErrInvalidToken for anything tampered, expired, or malformed.
func (s *SessionService) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrInvalidToken
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", domain.ErrInvalidToken
	}
	return sid, nil
}
