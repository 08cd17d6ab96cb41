package config

import (
	"fmt"
	"strconv"
)

// Переменные окружения
const (
	EnvConfigFile     = "PACLEAD_CONFIG"
	EnvAddr           = "PACLEAD_ADDR"
	EnvBackendURL     = "BACKEND_URL"
	EnvBackendTimeout = "PACLEAD_BACKEND_TIMEOUT"
	EnvLogLevel       = "PACLEAD_LOG_LEVEL"
	EnvLogFormat      = "PACLEAD_LOG_FORMAT"
	EnvAuthRateLimit  = "PACLEAD_AUTH_RATE_LIMIT"
	EnvTrustProxy     = "PACLEAD_TRUST_PROXY_HEADERS"

	// EnvLegacyBackendURL имя переменной из старого Next.js фронтенда
	EnvLegacyBackendURL = "NEXT_PUBLIC_BACKEND_URL"
)

// loadEnv накладывает значения из окружения.
// BACKEND_URL важнее NEXT_PUBLIC_BACKEND_URL.
func (c *Config) loadEnv(getenv func(string) string) error {
	setString(&c.BackendURL, getenv(EnvLegacyBackendURL))
	setString(&c.BackendURL, getenv(EnvBackendURL))
	setString(&c.Addr, getenv(EnvAddr))
	setString(&c.LogLevel, getenv(EnvLogLevel))
	setString(&c.LogFormat, getenv(EnvLogFormat))

	if err := setDuration(&c.BackendTimeout, getenv(EnvBackendTimeout), EnvBackendTimeout); err != nil {
		return err
	}

	if v := getenv(EnvAuthRateLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvAuthRateLimit, err)
		}
		c.AuthRateLimit = n
	}

	if v := getenv(EnvTrustProxy); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvTrustProxy, err)
		}
		c.TrustProxyHeaders = b
	}

	return nil
}
