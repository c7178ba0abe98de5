package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interview-ai/internal/config"
	"interview-ai/internal/dto"
	"interview-ai/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	tokenTypeAccess = "access"
	accessTokenTTL  = 24 * time.Hour
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrMissingSecret   = errors.New("jwt secret is not configured")
)

// AuthService verifies the bearer tokens issued by the identity provider.
// CreateAccessToken exists for local tooling and tests.
type AuthService interface {
	CreateAccessToken(userID, name string, ttl time.Duration) (string, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	secret []byte
	issuer string
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	return &authServiceImpl{secret: []byte(cfg.JWTSecret), issuer: cfg.Issuer}, nil
}

func (s *authServiceImpl) CreateAccessToken(userID, name string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: subject is required", ErrInvalidJWTToken)
	}
	if ttl <= 0 {
		ttl = accessTokenTTL
	}
	now := time.Now()
	claims := dto.AuthClaims{
		Name:      name,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		snippet := tokenString[:min(len(tokenString), 20)] + "..."
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Warn("JWT token expired", zap.Error(err), zap.String("token_snippet", snippet))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err), zap.String("token_snippet", snippet))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidJWTToken)
	}
	return claims, nil
}
