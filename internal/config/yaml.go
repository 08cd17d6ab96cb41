package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig структура YAML файла конфигурации.
// Длительности задаются строками ("30s", "1m").
type fileConfig struct {
	Addr    string `yaml:"addr"`
	Backend struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"backend"`
	DefaultAITone string `yaml:"default_ai_tone"`
	Logging       struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	RateLimit       struct {
		Auth   *int   `yaml:"auth"`
		Window string `yaml:"window"`
	} `yaml:"rate_limit"`
	TrustProxyHeaders *bool `yaml:"trust_proxy_headers"`
}

// loadYAML накладывает значения из YAML файла, пустые поля не меняют текущие значения
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, path, err)
	}

	setString(&c.Addr, fc.Addr)
	setString(&c.BackendURL, fc.Backend.URL)
	setString(&c.DefaultAITone, fc.DefaultAITone)
	setString(&c.LogLevel, fc.Logging.Level)
	setString(&c.LogFormat, fc.Logging.Format)

	if err := setDuration(&c.BackendTimeout, fc.Backend.Timeout, "backend.timeout"); err != nil {
		return err
	}
	if err := setDuration(&c.ShutdownTimeout, fc.ShutdownTimeout, "shutdown_timeout"); err != nil {
		return err
	}
	if err := setDuration(&c.AuthRateWindow, fc.RateLimit.Window, "rate_limit.window"); err != nil {
		return err
	}
	if fc.RateLimit.Auth != nil {
		c.AuthRateLimit = *fc.RateLimit.Auth
	}
	if fc.TrustProxyHeaders != nil {
		c.TrustProxyHeaders = *fc.TrustProxyHeaders
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v, field string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, field, err)
	}
	*dst = d
	return nil
}
