package repositories_test

import (
	"dcbot/domain"
	"dcbot/repositories"
	"dcbot/repositories/storetest"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func openBadgerStore(t *testing.T) repositories.Store {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	store := repositories.NewBadgerStore(db, logs.GetLoggerFromLevel(slog.LevelDebug))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBadgerStore(t *testing.T) {
	storetest.Run(t, openBadgerStore)
}

func TestBadgerStore_Reopen_Keeps_State(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	// Given a store written then closed
	store, err := repositories.OpenBadgerStore(dir, slog.Default())
	req.NoError(err)
	_, err = store.UpsertServiceChannel(domain.ServiceChannel{ID: "C1", Name: "babyheap"})
	req.NoError(err)
	req.NoError(store.Close())

	// When it is reopened
	store, err = repositories.OpenBadgerStore(dir, slog.Default())
	req.NoError(err)
	defer store.Close()

	// Then the channel is still there
	channel, err := store.GetServiceChannelByName("babyheap")
	req.NoError(err)
	req.NotNil(channel)
	req.Equal("C1", channel.ID)
}
