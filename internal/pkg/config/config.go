// Package config holds the settings of the clinicctl terminal client.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type ClientConfig struct {
	BaseURL     string        `env:"CLINIC_BASE_URL, default=http://localhost:8080"`
	StoragePath string        `env:"CLINIC_STORAGE"`
	Timeout     time.Duration `env:"CLINIC_TIMEOUT,  default=10s"`
	LogLevel    string        `env:"LOG_LEVEL,       default=warn"`
}

// Load reads client configuration from the environment. StoragePath falls
// back to <user config dir>/clinic-dashboard/storage.json.
func Load(ctx context.Context) (*ClientConfig, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*ClientConfig, error) {
	var cfg ClientConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load client configuration: %w", err)
	}
	if cfg.StoragePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve storage dir: %w", err)
		}
		cfg.StoragePath = filepath.Join(dir, "clinic-dashboard", "storage.json")
	}
	return &cfg, nil
}
