package services

import (
	"dcbot/repositories"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *repositories.BadgerStore {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	store := repositories.NewBadgerStore(db, slog.Default())
	t.Cleanup(func() { _ = store.Close() })
	return store
}
