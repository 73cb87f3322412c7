package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIURL   = "https://api.edenhub.net"
	defaultServerID = "980165146762674186"
	defaultAddr     = ":3000"
)

// Config struct to hold the configuration settings
type Config struct {
	HTTP          HTTPConfig          `yaml:"http"`
	Eden          EdenConfig          `yaml:"eden"`
	Security      SecurityConfig      `yaml:"security"`
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// HTTPConfig holds the web server settings.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// RateLimit is requests per second per IP on auth and mutation routes.
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

// EdenConfig holds the backend API settings.
type EdenConfig struct {
	APIURL   string        `yaml:"api_url"`
	ServerID string        `yaml:"server_id"`
	Timeout  time.Duration `yaml:"timeout"`
	// BoardTTL is how long an idle roster board is kept in memory.
	BoardTTL time.Duration `yaml:"board_ttl"`
}

// SecurityConfig holds CSRF settings.
type SecurityConfig struct {
	CSRFSecret string        `yaml:"csrf_secret"`
	CSRFTTL    time.Duration `yaml:"csrf_ttl"`
}

// PostgresConfig holds Postgres configuration. An empty DSN keeps the activity feed in memory.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration. An empty URL uses the in-process bus.
type NATSConfig struct {
	URL string `yaml:"url"`
	// NKeySeed authenticates the connection with a user nkey when set.
	NKeySeed string `yaml:"nkey_seed"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	Environment    string  `yaml:"environment"`
	LogLevel       string  `yaml:"log_level"`
	OTLPEndpoint   string  `yaml:"otlp_endpoint"`
	OTLPInsecure   bool    `yaml:"otlp_insecure"`
	SampleRate     float64 `yaml:"sample_rate"`
	MetricsEnabled bool    `yaml:"metrics_enabled"`
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Observability.Environment == "" || c.Observability.Environment == "development"
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	cfg := Config{
		Observability: ObservabilityConfig{MetricsEnabled: true},
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT value: %v", err)
		}
		cfg.HTTP.RateLimit = f
	}
	if v := os.Getenv("EDEN_API_URL"); v != "" {
		cfg.Eden.APIURL = v
	}
	if v := os.Getenv("EDEN_SERVER_ID"); v != "" {
		cfg.Eden.ServerID = v
	}
	if v := os.Getenv("EDEN_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid EDEN_API_TIMEOUT value: %v", err)
		}
		cfg.Eden.Timeout = d
	}
	if v := os.Getenv("CSRF_SECRET"); v != "" {
		cfg.Security.CSRFSecret = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("NATS_NKEY_SEED"); v != "" {
		cfg.NATS.NKeySeed = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("OTLP_ENDPOINT"); v != "" {
		cfg.Observability.OTLPEndpoint = v
	}
	if v := os.Getenv("OTLP_INSECURE"); v != "" {
		cfg.Observability.OTLPInsecure = v == "true"
	}
	if v := os.Getenv("TRACE_SAMPLE_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid TRACE_SAMPLE_RATE value: %v", err)
		}
		cfg.Observability.SampleRate = f
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Observability.MetricsEnabled = v == "true"
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = defaultAddr
	}
	if cfg.HTTP.ShutdownTimeout <= 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.HTTP.RateLimit <= 0 {
		cfg.HTTP.RateLimit = 5
	}
	if cfg.HTTP.RateBurst <= 0 {
		cfg.HTTP.RateBurst = 20
	}
	if cfg.Eden.APIURL == "" {
		cfg.Eden.APIURL = defaultAPIURL
	}
	if cfg.Eden.ServerID == "" {
		cfg.Eden.ServerID = defaultServerID
	}
	if cfg.Eden.Timeout <= 0 {
		cfg.Eden.Timeout = 15 * time.Second
	}
	if cfg.Eden.BoardTTL <= 0 {
		cfg.Eden.BoardTTL = 30 * time.Minute
	}
	if cfg.Security.CSRFTTL <= 0 {
		cfg.Security.CSRFTTL = 2 * time.Hour
	}
	if cfg.Observability.SampleRate <= 0 {
		cfg.Observability.SampleRate = 0.1
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
