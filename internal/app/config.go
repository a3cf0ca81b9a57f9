package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime wiring options, loaded from the environment.
type Config struct {
	// APIBase is the base URL of the remote profile service.
	APIBase string `env:"LEAFAL_API_BASE" envDefault:"https://www.leafal.io/api/"`
	// ClientID is the client-identity key sent with every request.
	ClientID string `env:"LEAFAL_CLIENT_ID"`
	// DataDir is where the store document and cached assets live.
	// Defaults to <user config dir>/leafdesk.
	DataDir string `env:"LEAFDESK_DATA_DIR"`
	// HTTPTimeout bounds every remote call.
	HTTPTimeout time.Duration `env:"LEAFDESK_HTTP_TIMEOUT" envDefault:"15s"`
}

// LoadConfig reads configuration from a .env file (if present) and the
// process environment, and fills in the default data directory.
func LoadConfig() (Config, error) {
	// Best effort: a missing .env simply means the environment rules.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = filepath.Join(dir, "leafdesk")
	}
	return cfg, nil
}
