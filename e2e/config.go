package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// RelayURL points at a running relay; the suites are skipped when empty
	RelayURL string `envconfig:"RELAY_URL"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
