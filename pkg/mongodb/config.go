package mongodb

import (
	"time"

	"github.com/Alijeyrad/dochouse_backend/config"
)

// Config holds connection settings for the document store.
type Config struct {
	URI      string
	Database string
	AppName  string

	MaxPoolSize uint64
	MinPoolSize uint64

	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

// DefaultConfig returns sensible defaults for a local deployment.
func DefaultConfig() Config {
	return Config{
		URI:                    "mongodb://localhost:27017",
		Database:               "doc-houseDb",
		AppName:                "dochouse",
		MaxPoolSize:            100,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 10 * time.Second,
	}
}

// FromCentralConfig converts config.DatabaseConfig to package Config.
func FromCentralConfig(c config.DatabaseConfig) Config {
	out := DefaultConfig()
	out.URI = c.ConnectionURI()
	if c.Name != "" {
		out.Database = c.Name
	}
	if c.AppName != "" {
		out.AppName = c.AppName
	}
	if c.Pool.MaxPoolSize > 0 {
		out.MaxPoolSize = c.Pool.MaxPoolSize
	}
	out.MinPoolSize = c.Pool.MinPoolSize
	if c.Timeouts.ConnectSeconds > 0 {
		out.ConnectTimeout = time.Duration(c.Timeouts.ConnectSeconds) * time.Second
	}
	if c.Timeouts.ServerSelectionSeconds > 0 {
		out.ServerSelectionTimeout = time.Duration(c.Timeouts.ServerSelectionSeconds) * time.Second
	}
	return out
}
