// Package config provides configuration management for the matchpulse service.
package config

import "fmt"

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Stream   StreamConfig   `mapstructure:"stream" validate:"required"`
	Fixtures FixturesConfig `mapstructure:"fixtures" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics" validate:"required"`
	Health   HealthConfig   `mapstructure:"health" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents the API server configuration
type ServerConfig struct {
	Host                   string `mapstructure:"host"`
	Port                   int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeoutSeconds     int    `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSeconds    int    `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	IdleTimeoutSeconds     int    `mapstructure:"idle_timeout_seconds" validate:"required,gt=0"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// StreamConfig represents the WebSocket tick stream configuration
type StreamConfig struct {
	TickIntervalSeconds int `mapstructure:"tick_interval_seconds" validate:"required,gt=0"`
	StartMinute         int `mapstructure:"start_minute" validate:"gte=0"`
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
}

// FixturesConfig represents the mock fixture store configuration
type FixturesConfig struct {
	SnapshotTTLSeconds     int `mapstructure:"snapshot_ttl_seconds" validate:"required,gt=0"`
	RefreshIntervalSeconds int `mapstructure:"refresh_interval_seconds" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// HealthConfig represents the health check server configuration
type HealthConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// ListenAddr returns the host:port address for the API server
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
