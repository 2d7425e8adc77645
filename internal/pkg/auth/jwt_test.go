package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "unit-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})

	token, expiresIn, err := svc.GenerateToken(42, "Alice", "STUDENT")
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "STUDENT", claims.Role)
	assert.Equal(t, "test", claims.Issuer)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "unit-test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "test",
	})

	token, _, err := svc.GenerateToken(1, "Alice", "STUDENT")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", AccessTokenExp: time.Hour})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", AccessTokenExp: time.Hour})

	token, _, err := issuer.GenerateToken(1, "Alice", "STUDENT")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractTokenFromHeader("abc.def.ghi")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
