// Package storetest holds the behaviour every storage engine must share.
// Engines call Run from their own tests with a constructor for an empty store.
package storetest

import (
	"dcbot/domain"
	"dcbot/errors"
	"dcbot/repositories"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

type OpenStore func(t *testing.T) repositories.Store

func Run(t *testing.T, open OpenStore) {
	t.Run("participant upsert is idempotent", func(t *testing.T) { participantUpsert(t, open(t)) })
	t.Run("participant handle index follows renames", func(t *testing.T) { participantRename(t, open(t)) })
	t.Run("unknown lookups return nil", func(t *testing.T) { unknownLookups(t, open(t)) })
	t.Run("service channel upsert keeps host", func(t *testing.T) { serviceChannelKeepsHost(t, open(t)) })
	t.Run("service channel rename moves name index", func(t *testing.T) { serviceChannelRename(t, open(t)) })
	t.Run("set host on unknown channel", func(t *testing.T) { setHostUnknown(t, open(t)) })
	t.Run("assign host outcomes", func(t *testing.T) { assignHostOutcomes(t, open(t)) })
	t.Run("assign host is exclusive under concurrency", func(t *testing.T) { assignHostConcurrent(t, open(t)) })
	t.Run("clear host only removes the given host", func(t *testing.T) { clearHostGuarded(t, open(t)) })
	t.Run("name lookup prefers live channels", func(t *testing.T) { nameLookupPrefersLive(t, open(t)) })
	t.Run("floor status transitions", func(t *testing.T) { floorTransitions(t, open(t)) })
	t.Run("recent activity per channel", func(t *testing.T) { recentActivity(t, open(t)) })
}

func participantUpsert(t *testing.T, store repositories.Store) {
	req := require.New(t)

	// Given a participant stored twice
	alice := domain.Participant{ID: "U00000001", Handle: "alice", DisplayName: "Alice", RealName: "Alice Liddell"}
	req.NoError(store.UpsertParticipant(alice))
	req.NoError(store.UpsertParticipant(alice))

	// When listing and looking up
	participants, err := store.ListParticipants()
	req.NoError(err)
	byID, err := store.GetParticipantByID(alice.ID)
	req.NoError(err)
	byHandle, err := store.GetParticipantByHandle("alice")
	req.NoError(err)

	// Then there is exactly one record
	req.Len(participants, 1)
	req.Equal(alice, *byID)
	req.Equal(alice, *byHandle)
}

func participantRename(t *testing.T, store repositories.Store) {
	req := require.New(t)

	// Given a participant who changed handle
	req.NoError(store.UpsertParticipant(domain.Participant{ID: "U00000001", Handle: "alice"}))
	req.NoError(store.UpsertParticipant(domain.Participant{ID: "U00000001", Handle: "alicia"}))

	// When looking up both handles
	old, err := store.GetParticipantByHandle("alice")
	req.NoError(err)
	current, err := store.GetParticipantByHandle("alicia")
	req.NoError(err)

	// Then only the new one resolves
	req.Nil(old)
	req.NotNil(current)
	req.Equal("U00000001", current.ID)
}

func unknownLookups(t *testing.T, store repositories.Store) {
	req := require.New(t)

	participant, err := store.GetParticipantByID("U404")
	req.NoError(err)
	req.Nil(participant)

	participant, err = store.GetParticipantByHandle("nobody")
	req.NoError(err)
	req.Nil(participant)

	channel, err := store.GetServiceChannelByID("C404")
	req.NoError(err)
	req.Nil(channel)

	channel, err = store.GetServiceChannelByName("nothing")
	req.NoError(err)
	req.Nil(channel)

	channel, err = store.GetHostedChannel("U404")
	req.NoError(err)
	req.Nil(channel)

	record, err := store.GetFloorRecord("U404")
	req.NoError(err)
	req.Nil(record)

	records, err := store.ListFloorRecords()
	req.NoError(err)
	req.Empty(records)
}

func serviceChannelKeepsHost(t *testing.T, store repositories.Store) {
	req := require.New(t)
	at := time.Date(2019, 8, 9, 10, 0, 0, 0, time.UTC)

	// Given a hosted service
	_, err := store.UpsertServiceChannel(domain.ServiceChannel{ID: "C1", Name: "babyheap"})
	req.NoError(err)
	req.NoError(store.SetHost("C1", lo.ToPtr("U00000001"), at))

	// When the sync refreshes it as archived
	stored, err := store.UpsertServiceChannel(domain.ServiceChannel{ID: "C1", Name: "babyheap", Archived: true})
	req.NoError(err)

	// Then the host survives
	req.True(stored.Archived)
	req.NotNil(stored.HostID)
	req.Equal("U00000001", *stored.HostID)
	req.NotNil(stored.HostConfirmedAt)
	req.True(at.Equal(*stored.HostConfirmedAt))

	fetched, err := store.GetServiceChannelByName("babyheap")
	req.NoError(err)
	req.Equal(stored.ID, fetched.ID)
	req.True(fetched.HasHost())

	// And clearing the host removes both fields
	req.NoError(store.SetHost("C1", nil, at))
	fetched, err = store.GetServiceChannelByID("C1")
	req.NoError(err)
	req.Nil(fetched.HostID)
	req.Nil(fetched.HostConfirmedAt)
}

func serviceChannelRename(t *testing.T, store repositories.Store) {
	req := require.New(t)

	_, err := store.UpsertServiceChannel(domain.ServiceChannel{ID: "C1", Name: "old"})
	req.NoError(err)
	_, err = store.UpsertServiceChannel(domain.ServiceChannel{ID: "C1", Name: "new"})
	req.NoError(err)

	old, err := store.GetServiceChannelByName("old")
	req.NoError(err)
	req.Nil(old)

	renamed, err := store.GetServiceChannelByName("new")
	req.NoError(err)
	req.Equal("C1", renamed.ID)

	channels, err := store.ListServiceChannels()
	req.NoError(err)
	req.Len(channels, 1)
}

func setHostUnknown(t *testing.T, store repositories.Store) {
	req := require.New(t)

	err := store.SetHost("C404", lo.ToPtr("U00000001"), time.Now())
	req.ErrorIs(err, errors.ErrNotFound)

	_, err = store.AssignHost("C404", "U00000001", time.Now())
	req.ErrorIs(err, errors.ErrNotFound)
}

func assignHostOutcomes(t *testing.T, store repositories.Store) {
	req := require.New(t)
	first := time.Date(2019, 8, 9, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	_, err := store.UpsertServiceChannel(domain.ServiceChannel{ID: "C1", Name: "babyheap"})
	req.NoError(err)
	_, err = store.UpsertServiceChannel(domain.ServiceChannel{ID: "C2", Name: "shellql"})
	req.NoError(err)

	// Given nobody hosts C1, alice becomes host
	previous, err := store.AssignHost("C1", "U00000001", first)
	req.NoError(err)
	req.Nil(previous)

	// When alice confirms again, the previous host is herself and the timestamp moves
	previous, err = store.AssignHost("C1", "U00000001", second)
	req.NoError(err)
	req.Equal(lo.ToPtr("U00000001"), previous)
	channel, err := store.GetServiceChannelByID("C1")
	req.NoError(err)
	req.True(second.Equal(*channel.HostConfirmedAt))

	// When alice tries to host C2, she is refused with the service she hosts
	_, err = store.AssignHost("C2", "U00000001", second)
	req.ErrorIs(err, errors.ErrAlreadyHosting)
	var hostingErr *errors.AlreadyHostingError
	req.ErrorAs(err, &hostingErr)
	req.Equal("babyheap", hostingErr.Service)

	// When bob takes over C1, alice is reported as previous host
	previous, err = store.AssignHost("C1", "U00000002", second)
	req.NoError(err)
	req.Equal(lo.ToPtr("U00000001"), previous)

	hosted, err := store.GetHostedChannel("U00000002")
	req.NoError(err)
	req.Equal("C1", hosted.ID)
	hosted, err = store.GetHostedChannel("U00000001")
	req.NoError(err)
	req.Nil(hosted)
}

func assignHostConcurrent(t *testing.T, store repositories.Store) {
	req := require.New(t)
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, name := range names {
		_, err := store.UpsertServiceChannel(domain.ServiceChannel{ID: "C-" + name, Name: name})
		req.NoError(err)
	}

	// When one participant races to host every service at once
	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded int
	for _, name := range names {
		wg.Add(1)
		go func(channelID string) {
			defer wg.Done()
			if _, err := store.AssignHost(channelID, "U00000001", time.Now()); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}("C-" + name)
	}
	wg.Wait()

	// Then exactly one assignment won
	req.Equal(1, succeeded)
	channels, err := store.ListServiceChannels()
	req.NoError(err)
	hosted := lo.Filter(channels, func(c domain.ServiceChannel, _ int) bool { return c.HasHost() })
	req.Len(hosted, 1)
}

func clearHostGuarded(t *testing.T, store repositories.Store) {
	req := require.New(t)
	_, err := store.UpsertServiceChannel(domain.ServiceChannel{ID: "C1", Name: "babyheap"})
	req.NoError(err)

	// Given bob took babyheap over from alice
	_, err = store.AssignHost("C1", "U00000001", time.Now())
	req.NoError(err)
	_, err = store.AssignHost("C1", "U00000002", time.Now())
	req.NoError(err)

	// When alice's stale clear arrives, nothing changes
	cleared, err := store.ClearHost("C1", "U00000001")
	req.NoError(err)
	req.False(cleared)
	channel, err := store.GetServiceChannelByID("C1")
	req.NoError(err)
	req.Equal(lo.ToPtr("U00000002"), channel.HostID)

	// When bob clears his own hosting, both host fields go
	cleared, err = store.ClearHost("C1", "U00000002")
	req.NoError(err)
	req.True(cleared)
	channel, err = store.GetServiceChannelByID("C1")
	req.NoError(err)
	req.Nil(channel.HostID)
	req.Nil(channel.HostConfirmedAt)

	// An unknown channel is simply not cleared
	cleared, err = store.ClearHost("C404", "U00000002")
	req.NoError(err)
	req.False(cleared)
}

// nameLookupPrefersLive pins the rule shared by every engine: a live channel
// wins over an archived one of the same name, ties go to the greatest ID.
func nameLookupPrefersLive(t *testing.T, store repositories.Store) {
	req := require.New(t)

	// Given a live channel synced before an archived namesake
	_, err := store.UpsertServiceChannel(domain.ServiceChannel{ID: "C1", Name: "babyheap"})
	req.NoError(err)
	_, err = store.UpsertServiceChannel(domain.ServiceChannel{ID: "C9", Name: "babyheap", Archived: true})
	req.NoError(err)

	channel, err := store.GetServiceChannelByName("babyheap")
	req.NoError(err)
	req.Equal("C1", channel.ID)

	// Given the live one is archived in turn, the greatest ID wins
	_, err = store.UpsertServiceChannel(domain.ServiceChannel{ID: "C1", Name: "babyheap", Archived: true})
	req.NoError(err)

	channel, err = store.GetServiceChannelByName("babyheap")
	req.NoError(err)
	req.Equal("C9", channel.ID)

	// Given a new live channel with a smaller ID, it wins over both archived ones
	_, err = store.UpsertServiceChannel(domain.ServiceChannel{ID: "C0", Name: "babyheap"})
	req.NoError(err)
	_, err = store.UpsertServiceChannel(domain.ServiceChannel{ID: "C9", Name: "babyheap", Archived: true})
	req.NoError(err)

	channel, err = store.GetServiceChannelByName("babyheap")
	req.NoError(err)
	req.Equal("C0", channel.ID)

	// Given the live one is renamed away, the archived ones answer again
	_, err = store.UpsertServiceChannel(domain.ServiceChannel{ID: "C0", Name: "heapbaby"})
	req.NoError(err)

	channel, err = store.GetServiceChannelByName("babyheap")
	req.NoError(err)
	req.Equal("C9", channel.ID)
}

func floorTransitions(t *testing.T, store repositories.Store) {
	req := require.New(t)
	admitted := time.Date(2019, 8, 9, 12, 0, 0, 0, time.UTC)

	// Given alice wants to go and bob was admitted
	req.NoError(store.SetFloorStatus("U00000001", domain.WantsToGo, admitted))
	req.NoError(store.SetFloorStatus("U00000002", domain.OnTheFloor, admitted))

	alice, err := store.GetFloorRecord("U00000001")
	req.NoError(err)
	req.Equal(domain.WantsToGo, alice.Status)
	req.Nil(alice.OnFloorAt)

	bob, err := store.GetFloorRecord("U00000002")
	req.NoError(err)
	req.Equal(domain.OnTheFloor, bob.Status)
	req.True(admitted.Equal(*bob.OnFloorAt))

	// When bob leaves
	req.NoError(store.SetFloorStatus("U00000002", domain.Neutral, admitted.Add(time.Hour)))

	// Then he is neutral and the list holds both records
	bob, err = store.GetFloorRecord("U00000002")
	req.NoError(err)
	req.Equal(domain.Neutral, bob.Status)

	records, err := store.ListFloorRecords()
	req.NoError(err)
	req.Len(records, 2)

	// And unknown statuses are refused
	req.Error(store.SetFloorStatus("U00000003", domain.FloorStatus(7), admitted))
}

func recentActivity(t *testing.T, store repositories.Store) {
	req := require.New(t)
	at := time.Date(2019, 8, 9, 12, 0, 0, 0, time.UTC)

	req.NoError(store.RecordPost("U00000001", "C1", at))
	req.NoError(store.RecordPost("U00000001", "C1", at.Add(time.Minute)))
	req.NoError(store.RecordPost("U00000002", "C2", at))

	posts, err := store.ListRecentPosts("C1")
	req.NoError(err)
	req.Len(posts, 1)
	req.Equal("U00000001", posts[0].ParticipantID)
	req.True(at.Add(time.Minute).Equal(posts[0].LastPostAt))

	posts, err = store.ListRecentPosts("C3")
	req.NoError(err)
	req.Empty(posts)
}
