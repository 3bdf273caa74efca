// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"net/url"
	"strconv"
	"time"

	// Order timestamps use a named zone; hosts without zoneinfo still resolve it.
	_ "time/tzdata"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Sheets   SheetsConfig
	Contacts ContactsConfig
	Session  SessionConfig
	Database DatabaseConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	UI       UIConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" envAlt:"PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading the request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing the response (default: 60s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 15s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`

	// RequestTimeout is the middleware timeout for requests (default: 45s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"45s"`
}

// SheetsConfig holds spreadsheet source settings.
type SheetsConfig struct {
	// BaseURL is the spreadsheet document root
	BaseURL string `env:"SHEET_BASE_URL" default:"https://docs.google.com/spreadsheets/d"`

	// MedicamentosID overrides the Medicamentos catalog spreadsheet
	MedicamentosID string `env:"SHEET_ID_MEDICAMENTOS"`

	// DiversosID overrides the Produtos Diversos catalog spreadsheet
	DiversosID string `env:"SHEET_ID_DIVERSOS"`

	// DiversosSheetName overrides the tab read for Produtos Diversos
	DiversosSheetName string `env:"SHEET_NAME_DIVERSOS"`

	// FetchTimeout bounds a single download; 0 disables it (default: 30s)
	FetchTimeout time.Duration `env:"SHEET_FETCH_TIMEOUT" default:"30s"`

	// MaxBytes is the largest accepted payload (default: 10MB)
	MaxBytes int64 `env:"SHEET_MAX_BYTES" default:"10485760"`

	// MaxConcurrent is the maximum number of parallel downloads (default: 8)
	MaxConcurrent int `env:"SHEET_MAX_CONCURRENT" default:"8"`

	// MaxWaitTime is how long to wait for a download slot (default: 10s)
	MaxWaitTime time.Duration `env:"SHEET_MAX_WAIT_TIME" default:"10s"`
}

// ContactsConfig holds the order hand-off destinations.
type ContactsConfig struct {
	// StoreName heads every order message
	StoreName string `env:"STORE_NAME" default:"Estrela da Leste / Dr. VB"`

	// Number1 and Label1 are the primary destination (also used by contact cards)
	Number1 string `env:"WHATSAPP_NUMBER_1" default:"5511988517364"`
	Label1  string `env:"WHATSAPP_LABEL_1" default:"Estrela da Leste"`

	// Number2 and Label2 are the secondary destination; empty disables it
	Number2 string `env:"WHATSAPP_NUMBER_2" default:"5511989854661"`
	Label2  string `env:"WHATSAPP_LABEL_2" default:"Dr Vb"`

	// GroupURL is the invite link to the customers' group
	GroupURL string `env:"WHATSAPP_GROUP_URL" default:"https://chat.whatsapp.com/LUzXlCIuRM4HAbfOJyQPXw"`

	// TimeZone is used for order timestamps (default: America/Sao_Paulo)
	TimeZone string `env:"ORDER_TIMEZONE" default:"America/Sao_Paulo"`
}

// SessionConfig holds browser session settings.
type SessionConfig struct {
	// CookieName is the session cookie name (default: catalogo_session)
	CookieName string `env:"SESSION_COOKIE_NAME" default:"catalogo_session"`

	// CookieSecure sets the Secure flag on the cookie (default: false)
	CookieSecure bool `env:"SESSION_COOKIE_SECURE" default:"false"`

	// TTL is how long an idle session is kept (default: 12h)
	TTL time.Duration `env:"SESSION_TTL" default:"12h"`

	// SweepInterval is how often idle sessions are evicted (default: 10m)
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" default:"10m"`
}

// DatabaseConfig holds the optional order log database settings.
// When URL is empty, orders are logged in memory only.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 4)
	MaxConns int `env:"DB_MAX_CONNS" default:"4"`

	// MinConns is the minimum number of connections to keep open (default: 0)
	MinConns int `env:"DB_MIN_CONNS" default:"0"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 120)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"120"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`

	// AdminAPIKeys guard the order log API; empty disables that endpoint
	AdminAPIKeys []string `env:"ADMIN_API_KEYS"`
}

// UIConfig holds browser-side asset settings.
type UIConfig struct {
	// HTMXScriptURL is where pages load htmx from; empty serves plain forms only
	HTMXScriptURL string `env:"HTMX_SCRIPT_URL" default:"https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"`
}

// ScriptOrigin returns the scheme://host of an absolute HTMXScriptURL, or ""
// when the script is served from this host.
func (c *UIConfig) ScriptOrigin() string {
	u, err := url.Parse(c.HTMXScriptURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// OrderLocation resolves TimeZone, falling back to UTC when it is unknown.
func (c *ContactsConfig) OrderLocation() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
