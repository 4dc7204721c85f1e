package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parametriclabs/policyd/internal/api/middleware"
	"github.com/parametriclabs/policyd/internal/logger"
)

func setupAuthTest(t *testing.T) (*rsa.PrivateKey, middleware.AuthConfig) {
	t.Helper()

	err := logger.Initialize(logger.Config{Debug: true})
	require.NoError(t, err)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubDER,
	})

	cfg := middleware.AuthConfig{
		JWTPublicKey: string(pubPEM),
		APIKeys:      []string{"ops-key"},
	}

	return key, cfg
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestAuthenticateBearer(t *testing.T) {
	key, cfg := setupAuthTest(t)

	subject := strings.Repeat("aa", 32)
	tokenString := signToken(t, key, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+tokenString, cfg)

	assert.True(t, result.Success)
	assert.Equal(t, "jwt", result.AuthType)
	assert.Equal(t, subject, result.AuthSubject)
	require.NotNil(t, result.Claims)
	assert.Equal(t, subject, result.Claims.Subject)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	key, cfg := setupAuthTest(t)

	tokenString := signToken(t, key, jwt.RegisteredClaims{
		Subject:   strings.Repeat("aa", 32),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+tokenString, cfg)

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticateWrongKey(t *testing.T) {
	_, cfg := setupAuthTest(t)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	tokenString := signToken(t, otherKey, jwt.RegisteredClaims{
		Subject:   strings.Repeat("aa", 32),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+tokenString, cfg)

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticateAPIKey(t *testing.T) {
	_, cfg := setupAuthTest(t)

	result := middleware.Authenticate("ApiKey ops-key", cfg)

	assert.True(t, result.Success)
	assert.Equal(t, "apikey", result.AuthType)
	assert.Empty(t, result.AuthSubject)
}

func TestAuthenticateInvalidAPIKey(t *testing.T) {
	_, cfg := setupAuthTest(t)

	result := middleware.Authenticate("ApiKey wrong-key", cfg)

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	_, cfg := setupAuthTest(t)

	result := middleware.Authenticate("", cfg)

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticateUnsupportedScheme(t *testing.T) {
	_, cfg := setupAuthTest(t)

	result := middleware.Authenticate("Basic dXNlcjpwYXNz", cfg)

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}
