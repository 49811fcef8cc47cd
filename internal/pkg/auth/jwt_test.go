package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "owlconnect.test",
	})
}

func TestGenerateAdminToken(t *testing.T) {
	svc := newTestService(2 * time.Hour)

	token, expiresIn, err := svc.GenerateAdminToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 7200, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "owlconnect.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService(-1 * time.Minute)

	token, _, err := svc.GenerateAdminToken()
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenMalformed(t *testing.T) {
	svc := newTestService(time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9.e30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, _, err := newTestService(time.Hour).GenerateAdminToken()
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-key", TokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsUnsignedAlg(t *testing.T) {
	svc := newTestService(time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Role: RoleAdmin})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// Anything that is not the Bearer scheme is malformed.
	tests := []struct {
		name   string
		header string
	}{
		{"empty", ""},
		{"bare token", "abc.def.ghi"},
		{"wrong scheme", "Basic abc.def.ghi"},
		{"lowercase scheme", "bearer abc.def.ghi"},
		{"prefix without token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractBearerToken(tt.header)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.True(t, CheckPassword("hunter22", hash))
	assert.False(t, CheckPassword("hunter23", hash))

	// Plaintext fallback
	assert.True(t, CheckPassword("dev-secret", "dev-secret"))
	assert.False(t, CheckPassword("dev-secret", "other"))
}
