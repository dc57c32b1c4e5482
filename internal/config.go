package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	StoreBadger = "badger"
	StoreSQLite = "sqlite"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL,default=INFO"`
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=5000"`

	StoreDriver    string `env:"STORE_DRIVER,default=badger"`
	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/badger"`
	SQLiteFilepath string `env:"SQLITE_FILEPATH,default=./data/dcbot.db"`
	// DebugPort serves the badger inspector when LOG_LEVEL is DEBUG.
	DebugPort int `env:"DEBUG_PORT,default=8081"`

	SlackAppToken      string `env:"SLACK_APP_TOKEN,required=true"`
	SlackBotToken      string `env:"SLACK_BOT_TOKEN,required=true"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET"`
	SlackAPIURL        string `env:"SLACK_API_URL"`

	MainChannel   string `env:"MAIN_CHANNEL,default=defcon2019"`
	MainChannelID string `env:"MAIN_CHANNEL_ID"`
	ChannelPrefix string `env:"CHANNEL_PREFIX,default=defcon2019-"`
	BotHandle     string `env:"BOT_HANDLE,default=dcbot"`
	AdminIDs      string `env:"ADMIN_IDS"`

	SyncInterval    time.Duration `env:"SYNC_INTERVAL,default=5m"`
	RemoteTimeout   time.Duration `env:"REMOTE_TIMEOUT,default=30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	HealthInterval  time.Duration `env:"HEALTH_INTERVAL,default=15s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=1s"`
}

// Validate checks what the struct tags cannot express.
func (c Config) Validate() error {
	if c.StoreDriver != StoreBadger && c.StoreDriver != StoreSQLite {
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreBadger, StoreSQLite, c.StoreDriver)
	}
	if c.ChannelPrefix == "" {
		return fmt.Errorf("CHANNEL_PREFIX must not be empty")
	}
	if c.SyncInterval <= 0 || c.RemoteTimeout <= 0 || c.HealthInterval <= 0 {
		return fmt.Errorf("SYNC_INTERVAL, REMOTE_TIMEOUT and HEALTH_INTERVAL must be positive")
	}
	return nil
}

// AdminSet parses a comma separated list of user IDs, e.g. "U03REJMH6, ULQ3YEH5G".
func AdminSet(str string) map[string]struct{} {
	ids := lo.Compact(lo.Map(strings.Split(str, ","), func(id string, _ int) string {
		return strings.TrimSpace(id)
	}))
	return lo.SliceToMap(ids, func(id string) (string, struct{}) {
		return id, struct{}{}
	})
}
