package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/signifi/platform/internal/app/models"
)

// Token errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// TokenConfig defines session token settings. A zero Expiration means
// sessions never expire, which is the platform's default: a session is
// trusted purely because the client still holds it.
type TokenConfig struct {
	SecretKey  string
	Expiration time.Duration
	Issuer     string
}

// TokenService signs and validates session tokens. The token claims are the
// denormalized session snapshot itself; there is no server-side session
// state to look up.
type TokenService struct {
	config TokenConfig
}

// NewTokenService creates a new TokenService.
func NewTokenService(config TokenConfig) *TokenService {
	return &TokenService{config: config}
}

// Claims carries the session snapshot inside the token.
type Claims struct {
	Session models.Session `json:"session"`
	jwt.RegisteredClaims
}

// Generate signs a token for the given session snapshot.
func (s *TokenService) Generate(session models.Session) (string, error) {
	claims := &Claims{
		Session: session,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(session.LoginTime),
			NotBefore: jwt.NewNumericDate(session.LoginTime),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", session.ID),
			ID:        uuid.New().String(),
		},
	}
	if s.config.Expiration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(session.LoginTime.Add(s.config.Expiration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns the embedded session snapshot.
func (s *TokenService) Validate(tokenString string) (models.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Session{}, ErrExpiredToken
		}
		return models.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.Session{}, ErrInvalidToken
	}
	return claims.Session, nil
}

// ExtractBearerToken pulls the token out of an Authorization header value.
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidFormat
	}
	return strings.TrimSpace(parts[1]), nil
}
