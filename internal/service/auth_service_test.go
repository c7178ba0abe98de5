package service

import (
	"context"
	"testing"
	"time"

	"interview-ai/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "testsecretkeydontuseinproduction32bytes!"

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	svc, err := NewAuthService(config.AuthConfig{JWTSecret: testSecret, Issuer: "interview-ai"})
	require.NoError(t, err)
	return svc
}

func TestNewAuthService_MissingSecret(t *testing.T) {
	_, err := NewAuthService(config.AuthConfig{})
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestAuthService_RoundTrip(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.CreateAccessToken("user-1", "Ada", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, tokenTypeAccess, claims.TokenType)
}

func TestAuthService_ValidateJWT_Rejects(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "interview-ai",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"wrong secret", sign(jwt.SigningMethodHS256, []byte("other-secret"), valid)},
		{"wrong algorithm", sign(jwt.SigningMethodHS512, []byte(testSecret), valid)},
		{"expired", sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "interview-ai",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		})},
		{"wrong issuer", sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject: "user-1",
			Issuer:  "someone-else",
		})},
		{"no subject", sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Issuer: "interview-ai",
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateJWT(ctx, tt.token)
			assert.ErrorIs(t, err, ErrInvalidJWTToken)
			assert.Nil(t, claims)
		})
	}
}

func TestAuthService_CreateAccessToken_RequiresSubject(t *testing.T) {
	_, err := newTestAuthService(t).CreateAccessToken("", "Ada", time.Hour)
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}
