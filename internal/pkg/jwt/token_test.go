package jwt

import (
	"testing"
	"time"

	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "rutevis-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateToken("ops@example.com", "operator", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())
}

func TestValidateToken(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken("ops@example.com", "operator", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", (*claims)["sub"])
	assert.Equal(t, "operator", (*claims)["role"])
	assert.Equal(t, "rutevis-test", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken("ops@example.com", "operator", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}
