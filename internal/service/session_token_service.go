package service

import (
	"fmt"
	"time"

	"crypto-dashboard/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTSessionService implements ports.SessionTokenService using HS256 JWT.
// These tokens live only in the dashboard session cookie.
type JWTSessionService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewJWTSessionService creates a new session token service.
func NewJWTSessionService(secret string, expiry time.Duration, issuer string) *JWTSessionService {
	return &JWTSessionService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Generate creates a signed session token for the given user.
func (s *JWTSessionService) Generate(userID uuid.UUID, username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := jwt.MapClaims{
		"sub":      userID.String(),
		"username": username,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
		"iss":      s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing session token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses and validates a session token, returning the claims.
func (s *JWTSessionService) Validate(tokenString string) (*ports.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("missing subject claim")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in session token: %w", err)
	}

	username, _ := claims["username"].(string)

	return &ports.SessionClaims{
		UserID:   userID,
		Username: username,
	}, nil
}
