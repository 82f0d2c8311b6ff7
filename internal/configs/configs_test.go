package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets the minimum environment for LoadConfig to succeed and
// blanks everything optional so host values cannot leak into the test.
func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("OPEN_API_KEY", "sk-or-test")

	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("SUPABASE_JWT_SECRET", "")
	t.Setenv("OPENROUTER_MODEL", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "")
	t.Setenv("RATE_LIMIT_WINDOW", "")
	t.Setenv("DATABASE_URL", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, "z-ai/glm-4.5-air:free", cfg.OpenRouterModel)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.NotEmpty(t, cfg.DatabaseDSN)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("OPENROUTER_MODEL", "some/other-model")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "60")
	t.Setenv("DATABASE_URL", "postgres://crew:pw@db:5432/hpzcrew")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "some/other-model", cfg.OpenRouterModel)
	assert.Equal(t, 10, cfg.RateLimitMaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, "postgres://crew:pw@db:5432/hpzcrew", cfg.DatabaseDSN)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	cases := []string{"SUPABASE_URL", "SUPABASE_ANON_KEY", "OPEN_API_KEY"}

	for _, missing := range cases {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(missing, "")

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestLoadConfigInvalidPort(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("PORT", "not-a-number")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("PORT", "80")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigDatabaseRequiredInProduction(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadConfigInvalidRateLimit(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "0")
	_, err := LoadConfig()
	assert.Error(t, err)

	setRequiredEnv(t)
	t.Setenv("RATE_LIMIT_WINDOW", "abc")
	_, err = LoadConfig()
	assert.Error(t, err)
}
