package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "shuttletrack",
	}

	token, err := GenerateToken("driver-123", "driver", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "driver-123", (*claims)["user_id"])
	assert.Equal(t, "driver", (*claims)["role"])
	assert.Equal(t, "shuttletrack", (*claims)["iss"])
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60}

	token, err := GenerateToken("driver-123", "driver", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}
