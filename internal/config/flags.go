package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// flagValues значения флагов и признак того, что флаг задан явно
type flagValues struct {
	set            map[string]bool
	configPath     string
	addr           string
	backendURL     string
	logLevel       string
	logFormat      string
	backendTimeout time.Duration
	authRateLimit  int
	trustProxy     bool
	showVersion    bool
}

// parseFlags разбирает флаги сервера.
//
//	-config string   путь к YAML файлу
//	-a string        адрес HTTP сервера (":3000")
//	-b string        базовый адрес backend
//	-timeout dur     таймаут запросов к backend
//	-log-level str   уровень логирования
//	-log-format str  text или json
//	-auth-rate int   лимит запросов login/register в окно
//	-trust-proxy     ключ rate limit из X-Forwarded-For/X-Real-IP
//	-version         показать версию и выйти
func parseFlags(args []string) (*flagValues, error) {
	fv := &flagValues{set: make(map[string]bool)}

	fs := flag.NewFlagSet("paclead-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&fv.configPath, "config", "", "path to YAML config file")
	fs.StringVar(&fv.addr, "a", "", "address and port to run server")
	fs.StringVar(&fv.backendURL, "b", "", "backend base URL")
	fs.DurationVar(&fv.backendTimeout, "timeout", 0, "backend request timeout")
	fs.StringVar(&fv.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&fv.logFormat, "log-format", "", "log format (text, json)")
	fs.IntVar(&fv.authRateLimit, "auth-rate", 0, "max login/register requests per client per window")
	fs.BoolVar(&fv.trustProxy, "trust-proxy", false, "key rate limiting on X-Forwarded-For/X-Real-IP (behind a trusted proxy only)")
	fs.BoolVar(&fv.showVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		fv.set[f.Name] = true
	})

	return fv, nil
}

// apply накладывает только явно заданные флаги
func (fv *flagValues) apply(c *Config) {
	if fv.set["a"] {
		c.Addr = fv.addr
	}
	if fv.set["b"] {
		c.BackendURL = fv.backendURL
	}
	if fv.set["timeout"] {
		c.BackendTimeout = fv.backendTimeout
	}
	if fv.set["log-level"] {
		c.LogLevel = fv.logLevel
	}
	if fv.set["log-format"] {
		c.LogFormat = fv.logFormat
	}
	if fv.set["auth-rate"] {
		c.AuthRateLimit = fv.authRateLimit
	}
	if fv.set["trust-proxy"] {
		c.TrustProxyHeaders = fv.trustProxy
	}
}
