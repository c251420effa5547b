package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Authentication AuthenticationConfig `mapstructure:"authentication"`
	Nats           NatsConfig           `mapstructure:"nats"`
	Observability  ObservabilityConfig  `mapstructure:"observability"`
	Logging        LoggingConfig        `mapstructure:"logging"`
}

type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Environment    string     `mapstructure:"environment"`
	CORS           CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAgeSeconds    int      `mapstructure:"max_age_seconds"`
}

// DatabaseConfig describes the MongoDB deployment. URI wins over the
// individual parts when both are set.
type DatabaseConfig struct {
	URI      string              `mapstructure:"uri"`
	Scheme   string              `mapstructure:"scheme"` // mongodb+srv or mongodb
	Host     string              `mapstructure:"host"`
	User     string              `mapstructure:"user"`
	Password string              `mapstructure:"password"`
	Name     string              `mapstructure:"name"`
	AppName  string              `mapstructure:"app_name"`
	Pool     DatabasePoolConfig  `mapstructure:"pool"`
	Timeouts DatabaseTimeoutsCfg `mapstructure:"timeouts"`
	// AutoIndex creates the collection indexes on startup.
	AutoIndex bool `mapstructure:"auto_index"`
}

type DatabasePoolConfig struct {
	MaxPoolSize uint64 `mapstructure:"max_pool_size"`
	MinPoolSize uint64 `mapstructure:"min_pool_size"`
}

type DatabaseTimeoutsCfg struct {
	ConnectSeconds         int `mapstructure:"connect_seconds"`
	ServerSelectionSeconds int `mapstructure:"server_selection_seconds"`
}

type AuthenticationConfig struct {
	TokenSecret     string `mapstructure:"token_secret"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`
	Issuer          string `mapstructure:"issuer"`
	// RequireRegisteredUser makes POST /jwt refuse emails with no user record.
	RequireRegisteredUser bool `mapstructure:"require_registered_user"`
}

func (a AuthenticationConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

type NatsConfig struct {
	URL           string `mapstructure:"url"`
	SubjectPrefix string `mapstructure:"subject_prefix"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/app.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"` // e.g. "http://localhost:3100"
	Username string `mapstructure:"username"` // for Grafana Cloud basic auth
	Password string `mapstructure:"password"`
}

// ConnectionURI returns the configured URI, or one assembled from the
// scheme, credentials and host.
func (d DatabaseConfig) ConnectionURI() string {
	if d.URI != "" {
		return d.URI
	}

	u := url.URL{
		Scheme:   d.Scheme,
		Host:     d.Host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	if u.Scheme == "" {
		u.Scheme = "mongodb+srv"
	}
	if d.User != "" {
		u.User = url.UserPassword(d.User, d.Password)
	}
	return u.String()
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Authentication.TokenSecret == "" {
		errs = append(errs, errors.New("authentication.token_secret is required"))
	}
	if c.Authentication.TokenTTLMinutes <= 0 {
		errs = append(errs, errors.New("authentication.token_ttl_minutes must be positive"))
	}
	if c.Database.URI == "" && c.Database.Host == "" {
		errs = append(errs, errors.New("database.uri or database.host is required"))
	}
	if c.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}

	return errors.Join(errs...)
}
