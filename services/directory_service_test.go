package services

import (
	"context"
	"dcbot/domain"
	"dcbot/errors"
	"dcbot/gateway"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newDirectory(t *testing.T, config DirectoryConfig) (*DirectoryService, *gateway.MemoryGateway) {
	store := openStore(t)
	chat := gateway.NewMemoryGateway()
	return NewDirectoryService(chat, store, store, store, config, logs.GetLoggerFromLevel(slog.LevelDebug)), chat
}

func defaultDirectoryConfig() DirectoryConfig {
	return DirectoryConfig{Prefix: domain.DefaultChannelPrefix, MainChannelName: "defcon2019"}
}

func TestDirectoryService_Sync(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	directory, chat := newDirectory(t, defaultDirectoryConfig())

	// Given a main channel with two players and three channels with the prefix
	chat.AddChannel(domain.ChannelInfo{ID: "C0", Name: "defcon2019"})
	chat.AddChannel(domain.ChannelInfo{ID: "G1", Name: "defcon2019-babyheap"})
	chat.AddChannel(domain.ChannelInfo{ID: "G2", Name: "defcon2019-shellql", Archived: true})
	chat.AddChannel(domain.ChannelInfo{ID: "G3", Name: "random"})
	chat.AddUser(domain.Participant{ID: "U00000001", Handle: "alice"})
	chat.AddUser(domain.Participant{ID: "U00000002", Handle: "bob"})
	chat.AddMembers("C0", "U00000001", "U00000002")

	// When synchronizing
	req.NoError(directory.Sync(ctx))

	// Then players and services are mirrored
	alice, err := directory.GetParticipant("U00000001")
	req.NoError(err)
	req.NotNil(alice)
	bob, err := directory.GetParticipantByHandle("bob")
	req.NoError(err)
	req.Equal("U00000002", bob.ID)

	babyheap, err := directory.GetService("babyheap")
	req.NoError(err)
	req.Equal("G1", babyheap.ID)
	shellql, err := directory.GetService("shellql")
	req.NoError(err)
	req.True(shellql.Archived)

	active, err := directory.ListActiveServices()
	req.NoError(err)
	req.Len(active, 1)
	req.Equal("babyheap", active[0].Name)
	req.Equal("C0", directory.MainChannel())
}

func TestDirectoryService_Sync_Skips_Unknown_Member(t *testing.T) {
	req := require.New(t)
	directory, chat := newDirectory(t, DirectoryConfig{Prefix: domain.DefaultChannelPrefix, MainChannelID: "C0"})
	chat.AddChannel(domain.ChannelInfo{ID: "C0", Name: "defcon2019"})
	chat.AddUser(domain.Participant{ID: "U00000001", Handle: "alice"})
	chat.AddMembers("C0", "U00000001", "UGHOST001")

	synced, err := directory.SyncParticipants(context.Background(), "C0")

	req.NoError(err)
	req.Equal(1, synced)
}

func TestDirectoryService_ResolveMainChannel(t *testing.T) {
	t.Run("configured ID wins without remote call", func(t *testing.T) {
		req := require.New(t)
		directory, chat := newDirectory(t, DirectoryConfig{MainChannelName: "defcon2019", MainChannelID: "C9"})
		chat.FailOn(gateway.OpListChannels, &errors.RemoteError{Code: "boom"})

		id, err := directory.ResolveMainChannel(context.Background())

		req.NoError(err)
		req.Equal("C9", id)
	})

	t.Run("missing main channel fails", func(t *testing.T) {
		req := require.New(t)
		directory, _ := newDirectory(t, defaultDirectoryConfig())

		_, err := directory.ResolveMainChannel(context.Background())

		req.Error(err)
		req.Equal("defcon2019", directory.MainChannel())
	})

	t.Run("remote failure is propagated", func(t *testing.T) {
		req := require.New(t)
		directory, chat := newDirectory(t, defaultDirectoryConfig())
		chat.FailOn(gateway.OpListChannels, &errors.RemoteError{Kind: errors.ErrRemoteUnavailable, Code: "service_unavailable"})

		err := directory.Sync(context.Background())

		req.ErrorIs(err, errors.ErrRemoteUnavailable)
	})
}

func TestDirectoryService_Sync_Keeps_Host(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := openStore(t)
	chat := gateway.NewMemoryGateway()
	directory := NewDirectoryService(chat, store, store, store, defaultDirectoryConfig(), slog.Default())
	hosting := NewHostingService(store, slog.Default())
	chat.AddChannel(domain.ChannelInfo{ID: "G1", Name: "defcon2019-babyheap"})

	// Given a hosted service
	_, err := directory.SyncServiceChannels(ctx)
	req.NoError(err)
	_, err = hosting.AssignHost("U00000001", "G1")
	req.NoError(err)

	// When it gets archived and resynchronized
	chat.ArchiveChannel("G1")
	_, err = directory.SyncServiceChannels(ctx)
	req.NoError(err)

	// Then the host is still recorded
	channel, err := directory.GetServiceByChannelID("G1")
	req.NoError(err)
	req.True(channel.Archived)
	req.True(channel.HasHost())
}

func TestDirectoryService_RecordActivity(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	directory, chat := newDirectory(t, defaultDirectoryConfig())
	chat.AddChannel(domain.ChannelInfo{ID: "G1", Name: "defcon2019-babyheap"})
	_, err := directory.SyncServiceChannels(ctx)
	req.NoError(err)

	recorded, err := directory.RecordActivity("U00000001", "G1")
	req.NoError(err)
	req.True(recorded)

	// Commands from any other channel are not activity
	recorded, err = directory.RecordActivity("U00000001", "C0")
	req.NoError(err)
	req.False(recorded)

	posts, err := directory.ListRecentActivity("G1")
	req.NoError(err)
	req.Len(posts, 1)
	req.Equal("U00000001", posts[0].ParticipantID)
}
