//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compras-service/internal/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndValidateToken(t *testing.T) {
	service := jwt.NewService(testSecret, time.Hour)

	token, err := service.GenerateToken("tenant-a", "maria")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "tenant-a", claims.TenantID)
	assert.Equal(t, "maria", claims.Username)
}

func TestValidateToken_Expired(t *testing.T) {
	service := jwt.NewService(testSecret, -time.Minute)

	token, err := service.GenerateToken("tenant-a", "maria")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := jwt.NewService(testSecret, time.Hour)
	verifier := jwt.NewService("a-different-secret", time.Hour)

	token, err := issuer.GenerateToken("tenant-a", "maria")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_MissingClaims(t *testing.T) {
	service := jwt.NewService(testSecret, time.Hour)

	testCases := []struct {
		name     string
		tenantID string
		username string
	}{
		{name: "empty tenant", tenantID: "", username: "maria"},
		{name: "empty username", tenantID: "tenant-a", username: ""},
		{name: "both empty", tenantID: "", username: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := service.GenerateToken(tc.tenantID, tc.username)
			require.NoError(t, err)

			_, err = service.ValidateToken(token)
			assert.ErrorIs(t, err, jwt.ErrMissingClaims)
		})
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	service := jwt.NewService(testSecret, time.Hour)

	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		_, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	}
}
