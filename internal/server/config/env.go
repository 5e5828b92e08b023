package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/usersvc/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvHTTPAddress        = "HTTP_ADDRESS"
	EnvDatabaseDSN        = "DATABASE_DSN"
	EnvJWTSecret          = "JWT_SECRET"
	EnvJWTTokenExpiry     = "JWT_TOKEN_EXPIRY_TIME"
	EnvBcryptCost         = "BCRYPT_COST"
	EnvRateLimitRPS       = "RATE_LIMIT_RPS"
	EnvRateLimitBurst     = "RATE_LIMIT_BURST"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvLogLevel           = "LOG_LEVEL"
)

// parseEnv loads a .env file into the process environment and then overlays
// Config from it. The file is the one named by -env; without the flag a
// ".env" in the working directory is used if present. Variables already set
// in the environment are not overwritten by the file.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	if err := applyEnv(config, os.LookupEnv); err != nil {
		panic(err)
	}
}

// applyEnv overlays config with values returned by lookup.
func applyEnv(config *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvHTTPAddress); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := get(EnvDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := get(EnvJWTSecret); ok {
		config.SecretKey = v
	}
	if v, ok := get(EnvJWTTokenExpiry); ok {
		d, err := parseExpiry(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvJWTTokenExpiry, err)
		}
		config.AccessTokenValidityDuration = d
	}
	if v, ok := get(EnvBcryptCost); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBcryptCost, err)
		}
		config.BcryptCost = n
	}
	if v, ok := get(EnvRateLimitRPS); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRateLimitRPS, err)
		}
		config.RateLimitRPS = f
	}
	if v, ok := get(EnvRateLimitBurst); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRateLimitBurst, err)
		}
		config.RateLimitBurst = n
	}
	if v, ok := get(EnvCORSAllowedOrigins); ok {
		config.CORSAllowedOrigins = splitList(v)
	}
	if v, ok := get(EnvLogLevel); ok {
		config.LogLevel = v
	}

	return nil
}

// parseExpiry accepts Go durations ("1h", "90m") and, for compatibility
// with older deployments, a bare number of seconds.
func parseExpiry(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
