// Package config собирает конфигурацию BFF сервера: значения по умолчанию,
// затем YAML файл, затем переменные окружения и в конце флаги командной строки.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/iudanet/paclead/internal/remap"
)

// Config настройки BFF сервера
type Config struct {
	// Addr адрес, на котором слушает HTTP сервер
	Addr string
	// BackendURL базовый адрес удаленного backend
	BackendURL string
	// DefaultAITone тон ИИ, который отправляется при регистрации
	DefaultAITone string
	// LogLevel debug, info, warn, error
	LogLevel string
	// LogFormat text или json
	LogFormat string

	BackendTimeout  time.Duration
	ShutdownTimeout time.Duration

	// AuthRateLimit ограничение на /api/auth/login и /api/auth/register, 0 отключает
	AuthRateLimit  int
	AuthRateWindow time.Duration

	// TrustProxyHeaders ключ rate limit берется из X-Forwarded-For/X-Real-IP.
	// Включать только за доверенным reverse proxy.
	TrustProxyHeaders bool

	// ShowVersion задан флаг -version, остальные поля не заполняются
	ShowVersion bool
}

// ErrInvalidConfig конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("invalid config")

// LoadDefaults заполняет значения по умолчанию
func (c *Config) LoadDefaults() {
	c.Addr = ":3000"
	c.BackendURL = "http://localhost:8000"
	c.DefaultAITone = remap.DefaultAITone
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.BackendTimeout = 30 * time.Second
	c.ShutdownTimeout = 10 * time.Second
	c.AuthRateLimit = 20
	c.AuthRateWindow = time.Minute
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalidConfig)
	}

	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("%w: backend url: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: backend url must be http or https, got %q", ErrInvalidConfig, c.BackendURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: backend url has no host", ErrInvalidConfig)
	}

	if c.AuthRateLimit < 0 {
		return fmt.Errorf("%w: auth rate limit must not be negative", ErrInvalidConfig)
	}
	if c.AuthRateLimit > 0 && c.AuthRateWindow <= 0 {
		return fmt.Errorf("%w: auth rate window must be positive", ErrInvalidConfig)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// Load собирает конфигурацию.
// args аргументы командной строки без имени программы, getenv источник окружения.
func Load(args []string, getenv func(string) string) (*Config, error) {
	fl, err := parseFlags(args)
	if err != nil {
		return nil, err
	}
	if fl.showVersion {
		return &Config{ShowVersion: true}, nil
	}

	cfg := &Config{}
	cfg.LoadDefaults()

	configPath := fl.configPath
	if configPath == "" {
		configPath = getenv(EnvConfigFile)
	}
	if configPath != "" {
		if err := cfg.loadYAML(configPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(getenv); err != nil {
		return nil, err
	}

	fl.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
