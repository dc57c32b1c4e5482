package gateway

import (
	"context"
	"dcbot/domain"
	"dcbot/errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryGateway_Records_Effects_In_Order(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	gateway := NewMemoryGateway()
	gateway.AddUser(domain.Participant{ID: "UBOT00001", Handle: "dcbot"})

	// Given a channel created, the bot invited, a post and a reply
	id, err := gateway.CreateChannel(ctx, "defcon2019-babyheap")
	req.NoError(err)
	req.NoError(gateway.InviteMember(ctx, id, "UBOT00001"))
	req.NoError(gateway.PostMessage(ctx, "defcon2019", "hi"))
	req.NoError(gateway.Respond(ctx, "https://hooks.example/1", domain.EphemeralText("done")))

	// Then the effects follow the calls
	req.Equal([]string{
		"Created channel 'defcon2019-babyheap'",
		"Added member 'dcbot' to 'defcon2019-babyheap'",
		"Posted 'hi' to 'defcon2019'",
		"Sent 'done' to 'https://hooks.example/1'",
	}, gateway.Effects())
	req.Len(gateway.Replies(), 1)
	req.Equal([]string{"UBOT00001"}, gateway.Members(id))
}

func TestMemoryGateway_Create_Existing_Name_Conflicts(t *testing.T) {
	req := require.New(t)
	gateway := NewMemoryGateway()
	gateway.AddChannel(domain.ChannelInfo{ID: "G1", Name: "defcon2019-babyheap"})

	_, err := gateway.CreateChannel(context.Background(), "defcon2019-babyheap")

	req.ErrorIs(err, errors.ErrRemoteConflict)
	req.Empty(gateway.Effects())
}

func TestMemoryGateway_Invite_Twice_Adds_Once(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	gateway := NewMemoryGateway()
	gateway.AddChannel(domain.ChannelInfo{ID: "G1", Name: "defcon2019-babyheap"})
	gateway.AddUser(domain.Participant{ID: "U00000001", Handle: "alice"})

	req.NoError(gateway.InviteMember(ctx, "G1", "U00000001"))
	req.NoError(gateway.InviteMember(ctx, "G1", "U00000001"))

	req.Len(gateway.Effects(), 1)
	req.Equal([]string{"U00000001"}, gateway.Members("G1"))
}

func TestMemoryGateway_Invite_Archived_Fails(t *testing.T) {
	req := require.New(t)
	gateway := NewMemoryGateway()
	gateway.AddChannel(domain.ChannelInfo{ID: "G1", Name: "defcon2019-babyheap", Archived: true})
	gateway.AddUser(domain.Participant{ID: "U00000001", Handle: "alice"})

	err := gateway.InviteMember(context.Background(), "G1", "U00000001")

	req.ErrorIs(err, errors.ErrRemote)
	req.Equal("is_archived", errors.RemoteCode(err))
}

func TestMemoryGateway_ListChannels_Bounded_Page(t *testing.T) {
	req := require.New(t)
	gateway := NewMemoryGateway()
	for i := 0; i < MaxChannelPage+10; i++ {
		gateway.AddChannel(domain.ChannelInfo{ID: fmt.Sprintf("G%d", i), Name: fmt.Sprintf("defcon2019-s%d", i)})
	}
	gateway.AddChannel(domain.ChannelInfo{ID: "C1", Name: "general"})

	channels, err := gateway.ListChannels(context.Background(), "defcon2019-", false)

	req.NoError(err)
	req.Len(channels, MaxChannelPage)
}

func TestMemoryGateway_FailOn_Injects_Remote_Error(t *testing.T) {
	req := require.New(t)
	gateway := NewMemoryGateway()
	gateway.FailOn(OpPostMessage, &errors.RemoteError{Kind: errors.ErrRemoteUnavailable, Code: "service_unavailable"})

	err := gateway.PostMessage(context.Background(), "defcon2019", "hi")
	req.ErrorIs(err, errors.ErrRemoteUnavailable)

	// Clearing the failure restores the call
	gateway.FailOn(OpPostMessage, nil)
	req.NoError(gateway.PostMessage(context.Background(), "defcon2019", "hi"))
}
