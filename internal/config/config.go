// Package config loads and validates application configuration.
package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the connection-pool settings. The pool is
// opened once at startup and handed to each repository at
// construction; repositories never open or close connections
// themselves.
type DatabaseConfig struct {
	URL             string `mapstructure:"url"                validate:"required"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"     validate:"gte=1"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"     validate:"gte=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"  validate:"gte=0"` // seconds
}
