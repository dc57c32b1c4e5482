package internal

import (
	"os"
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("SLACK_APP_TOKEN", "xoxp-app")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-bot")
	t.Setenv("ADMIN_IDS", "U03REJMH6,ULQ3YEH5G")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.NoError(config.Validate())
	req.Equal("defcon2019-", config.ChannelPrefix)
	req.Equal(StoreBadger, config.StoreDriver)
	req.Equal("dcbot", config.BotHandle)
	req.Equal(5*time.Minute, config.SyncInterval)
	req.Len(AdminSet(config.AdminIDs), 2)
}

func TestConfig_Requires_Tokens(t *testing.T) {
	req := require.New(t)
	// t.Setenv restores the variables once unset
	t.Setenv("SLACK_APP_TOKEN", "")
	t.Setenv("SLACK_BOT_TOKEN", "")
	req.NoError(os.Unsetenv("SLACK_APP_TOKEN"))
	req.NoError(os.Unsetenv("SLACK_BOT_TOKEN"))

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.Error(err)
}

func TestConfig_Validate(t *testing.T) {
	req := require.New(t)
	valid := Config{StoreDriver: StoreSQLite, ChannelPrefix: "dc-", SyncInterval: time.Second, RemoteTimeout: time.Second, HealthInterval: time.Second}
	req.NoError(valid.Validate())

	unknownDriver := valid
	unknownDriver.StoreDriver = "postgres"
	req.Error(unknownDriver.Validate())

	noPrefix := valid
	noPrefix.ChannelPrefix = ""
	req.Error(noPrefix.Validate())

	noInterval := valid
	noInterval.SyncInterval = 0
	req.Error(noInterval.Validate())
}

func TestAdminSet(t *testing.T) {
	req := require.New(t)

	admins := AdminSet(" U03REJMH6 , ,ULQ3YEH5G,")

	req.Equal(map[string]struct{}{"U03REJMH6": {}, "ULQ3YEH5G": {}}, admins)
	req.Empty(AdminSet(""))
}
