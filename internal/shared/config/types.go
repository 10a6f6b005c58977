// Package config defines the typed configuration shared across the application.
package config

import "fmt"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds database connection settings.
// Driver selects between "mysql" and "sqlite"; Path is only used by sqlite.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	QueryTimeoutSec int    `mapstructure:"query_timeout_sec"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string `mapstructure:"jwt_secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	BcryptCost       int    `mapstructure:"bcrypt_cost"`
	MinPasswordLen   int    `mapstructure:"min_password_len"`
}

// RedisConfig holds Redis connection settings for the login rate limiter.
// When Addr is empty the in-memory limiter is used instead.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig bounds login attempts per username/address key.
type RateLimitConfig struct {
	LoginPerMinute int `mapstructure:"login_per_minute"`
	LoginPerHour   int `mapstructure:"login_per_hour"`
}
