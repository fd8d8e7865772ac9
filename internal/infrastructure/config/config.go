package config

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	ServiceName    = "IMAGE EHR"
	ServiceVersion = "1.0.0"
)

// ErrMissingJWTSecret is returned when JWT_SECRET is set but blank.
var ErrMissingJWTSecret = errors.New("JWT_SECRET: missing signing secret")

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	SessionTTL   time.Duration `env:"SESSION_TTL,   default=12h"`
	TokenTTL     time.Duration `env:"TOKEN_TTL,     default=24h"`
	CookieSecure bool          `env:"COOKIE_SECURE, default=false"`
	AuditWorkers int           `env:"AUDIT_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=clinic_dashboard"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Development reports whether the service runs with ENV=development.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// LoadContext reads configuration from lookuper. JWT_SECRET has no default
// and a missing value is an error. Tests pass an envconfig.MapLookuper.
func LoadContext(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, ErrMissingJWTSecret
	}
	return &cfg, nil
}
