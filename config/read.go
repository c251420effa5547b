package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "DOCHOUSE"
)

// legacyEnv maps config keys to the variable names used by earlier
// deployments. Prefixed variables still take precedence.
var legacyEnv = map[string]string{
	"server.port":                 "PORT",
	"database.user":               "DB_USER",
	"database.password":           "DB_PASS",
	"authentication.token_secret": "TOKEN_SECRET",
}

func ReadConfig(configPath string) (*Config, error) {
	// .env is optional; real environment variables are never overwritten.
	_ = godotenv.Load(filepath.Join(configPath, ".env"))
	if configPath != "." {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType(ConfigFormat)
	v.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. DOCHOUSE_DATABASE_HOST overrides database.host
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	// The config file is optional; env vars and defaults are enough.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.timeout_seconds", 30)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.cors.enabled", true)
	v.SetDefault("server.cors.allow_origins", []string{"*"})
	v.SetDefault("server.cors.allow_methods", []string{"GET", "POST", "DELETE", "OPTIONS"})
	v.SetDefault("server.cors.allow_headers", []string{"Origin", "Content-Type", "Accept", "Authorization"})
	v.SetDefault("server.cors.allow_credentials", false)
	v.SetDefault("server.cors.max_age_seconds", 0)

	v.SetDefault("database.uri", "")
	v.SetDefault("database.scheme", "mongodb+srv")
	v.SetDefault("database.host", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "doc-houseDb")
	v.SetDefault("database.app_name", "dochouse")
	v.SetDefault("database.pool.max_pool_size", 100)
	v.SetDefault("database.pool.min_pool_size", 0)
	v.SetDefault("database.timeouts.connect_seconds", 10)
	v.SetDefault("database.timeouts.server_selection_seconds", 10)
	v.SetDefault("database.auto_index", false)

	v.SetDefault("authentication.token_secret", "")
	v.SetDefault("authentication.token_ttl_minutes", 60)
	v.SetDefault("authentication.issuer", "")
	v.SetDefault("authentication.require_registered_user", false)

	v.SetDefault("nats.url", "")
	v.SetDefault("nats.subject_prefix", "dochouse")

	v.SetDefault("observability.enabled", false)
	v.SetDefault("observability.service_name", "dochouse_backend")
	v.SetDefault("observability.service_version", "dev")
	v.SetDefault("observability.tracing.enabled", false)
	v.SetDefault("observability.tracing.otlp_endpoint", "")
	v.SetDefault("observability.tracing.otlp_insecure", false)
	v.SetDefault("observability.tracing.sampling_rate", 1.0)
	v.SetDefault("observability.metrics.enabled", false)
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output.stdout", true)
	v.SetDefault("logging.output.file.enabled", false)
	v.SetDefault("logging.output.file.path", "logs/app.log")
	v.SetDefault("logging.output.file.max_size_mb", 100)
	v.SetDefault("logging.output.file.max_backups", 5)
	v.SetDefault("logging.output.file.max_age_days", 30)
	v.SetDefault("logging.output.file.compress", true)
	v.SetDefault("logging.output.loki.enabled", false)
	v.SetDefault("logging.output.loki.endpoint", "")
	v.SetDefault("logging.output.loki.username", "")
	v.SetDefault("logging.output.loki.password", "")
}
