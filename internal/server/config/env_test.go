package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := applyEnv(cfg, mapLookup(map[string]string{
		EnvHTTPAddress:        ":9999",
		EnvDatabaseDSN:        "postgres://env",
		EnvJWTSecret:          "env-secret",
		EnvJWTTokenExpiry:     "2h",
		EnvBcryptCost:         "11",
		EnvRateLimitRPS:       "0.5",
		EnvRateLimitBurst:     "2",
		EnvCORSAllowedOrigins: "https://a.example,https://b.example",
		EnvLogLevel:           "warn",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://env", cfg.DatabaseDSN)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 11, cfg.BcryptCost)
	assert.Equal(t, 0.5, cfg.RateLimitRPS)
	assert.Equal(t, 2, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestApplyEnv_EmptyValuesAreIgnored(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.NoError(t, applyEnv(cfg, mapLookup(map[string]string{EnvJWTSecret: "  "})))
	assert.Equal(t, "secretKey", cfg.SecretKey)
}

func TestApplyEnv_ExpiryInSeconds(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, applyEnv(cfg, mapLookup(map[string]string{EnvJWTTokenExpiry: "3600"})))
	assert.Equal(t, time.Hour, cfg.AccessTokenValidityDuration)
}

func TestApplyEnv_Errors(t *testing.T) {
	for _, key := range []string{EnvJWTTokenExpiry, EnvBcryptCost, EnvRateLimitRPS, EnvRateLimitBurst} {
		t.Run(key, func(t *testing.T) {
			err := applyEnv(&Config{}, mapLookup(map[string]string{key: "not-a-number"}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestParseEnv_LoadsEnvFile(t *testing.T) {
	clearEnv(t)
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=dotenv-secret\nBCRYPT_COST=4\n"), 0o600))
	// godotenv.Load does not overwrite variables that are already set, and
	// clearEnv set them to "", so unset the two under test.
	require.NoError(t, os.Unsetenv(EnvJWTSecret))
	require.NoError(t, os.Unsetenv(EnvBcryptCost))
	t.Cleanup(func() {
		_ = os.Unsetenv(EnvJWTSecret)
		_ = os.Unsetenv(EnvBcryptCost)
	})

	os.Args = []string{"testbin", "-env", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "dotenv-secret", cfg.SecretKey)
	assert.Equal(t, 4, cfg.BcryptCost)
}

func TestParseEnv_MissingEnvFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "absent.env")}
	require.Panics(t, func() { parseEnv(&Config{}) })
}
