package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// DCBOT_ADDR is the base URL of a running bot, e.g. http://localhost:5000
	BotAddr       string `envconfig:"DCBOT_ADDR"`
	SigningSecret string `envconfig:"SLACK_SIGNING_SECRET"`
	// E2E_USER_ID must be a member of the main channel of the bot under test
	UserID string `envconfig:"E2E_USER_ID"`
	// E2E_DEBUG_JSON dumps every reply body
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
