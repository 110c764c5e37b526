// Package config loads server configuration from a yaml file and the
// environment.
package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full server configuration.
type Config struct {
	Address      string        `yaml:"address" env:"ADDRESS" env-default:":8080"`
	LogLevel     string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
	DataDir      string        `yaml:"data_dir" env:"DATA_DIR" env-default:"./data"`
	Storage      string        `yaml:"storage" env:"STORAGE" env-default:"sqlite"` // sqlite or file
	JWTSecret    string        `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"change-this-in-production"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
	SyncDebounce time.Duration `yaml:"sync_debounce" env:"SYNC_DEBOUNCE" env-default:"1s"`
	CORSOrigins  []string      `yaml:"cors_origins" env:"CORS_ORIGINS" env-default:"*"`
}

// MustLoad reads the configuration from configPath, falling back to the
// environment when the path is empty or the file does not exist.
func MustLoad(configPath string) Config {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read env: %s", err)
		}
		return cfg
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				log.Fatalf("cannot read env: %s", err)
			}
			return cfg
		}
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}

	return cfg
}
