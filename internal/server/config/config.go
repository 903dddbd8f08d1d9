// Package config handles configuration for the identity service: defaults
// come from the env tags, values are overridden by environment variables and
// finally by command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the identity server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DBHost/DBUser/DBPassword/DBName/DBPort: PostgreSQL connection
//     parameters, folded into a pgx DSN by DatabaseDSN.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use
//     the default outside development.
//   - TokenValidityDuration: session token lifetime.
//   - BcryptCost: work factor for password hashing; 0 means the bcrypt default.
//   - QueryTimeout: upper bound for a single store operation.
type Config struct {
	EndpointAddr          string        `env:"ADDRESS" envDefault:":8000"`
	DBHost                string        `env:"DB_HOST" envDefault:"localhost"`
	DBUser                string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword            string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName                string        `env:"DB_NAME" envDefault:"nutritrip"`
	DBPort                int           `env:"DB_PORT" envDefault:"5432"`
	SecretKey             string        `env:"SECRET_KEY" envDefault:"secretKey"`
	TokenValidityDuration time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	BcryptCost            int           `env:"BCRYPT_COST" envDefault:"0"`
	QueryTimeout          time.Duration `env:"QUERY_TIMEOUT" envDefault:"5s"`
}

// DatabaseDSN builds the pgx DSN from the discrete connection parameters.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// LoadConfig builds a Config by parsing environment variables over the tag
// defaults and then overlaying command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	parseFlags(cfg)
	return cfg, nil
}
