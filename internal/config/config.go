package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Wallet"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"wallet"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	// Rates apply until the user saves their own.
	Rates struct {
		USDToYER       float64 `envconfig:"USD_TO_YER" default:"1630"`
		SARToYER       float64 `envconfig:"SAR_TO_YER" default:"428"`
		GoldPerGramYER float64 `envconfig:"GOLD_PER_GRAM_YER" default:"217000"`
	}

	Session struct {
		TTL time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	}

	Auth struct {
		// Secret signs API tokens. Leaving it empty disables authentication.
		Secret string `envconfig:"AUTH_SECRET"`
	}

	CORS struct {
		Origins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	}

	Preferences struct {
		Path string `envconfig:"PREFERENCES_PATH" default:"wallet.prefs"`
	}

	Backup struct {
		Interval time.Duration `envconfig:"BACKUP_INTERVAL" default:"24h"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate rejects rates that would divide by zero or flip signs when
// converting.
func (c *Config) validate() error {
	rates := []struct {
		env   string
		value float64
	}{
		{"USD_TO_YER", c.Rates.USDToYER},
		{"SAR_TO_YER", c.Rates.SARToYER},
		{"GOLD_PER_GRAM_YER", c.Rates.GoldPerGramYER},
	}

	for _, r := range rates {
		if r.value <= 0 {
			return fmt.Errorf("invalid config: %s must be positive, got %v", r.env, r.value)
		}
	}

	return nil
}
