package domain

import (
	"dcbot/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannelPrefix_RoundTrip(t *testing.T) {
	req := require.New(t)
	prefix := ChannelPrefix(DefaultChannelPrefix)

	for _, service := range []string{"babyheap", "shell-ql", "a_b", ""} {
		channel := prefix.ChannelName(service)
		req.True(prefix.IsServiceChannel(channel))

		name, err := prefix.ServiceName(channel)
		req.NoError(err)
		req.Equal(service, name)
	}
}

func TestChannelPrefix_ServiceName_Without_Prefix(t *testing.T) {
	req := require.New(t)
	prefix := ChannelPrefix(DefaultChannelPrefix)

	_, err := prefix.ServiceName("general")

	req.ErrorIs(err, errors.ErrInvalidFormat)
	req.False(prefix.IsServiceChannel("general"))
}

func TestIsValidServiceName(t *testing.T) {
	tests := []struct {
		name    string
		service string
		valid   bool
	}{
		{"letters and digits", "babyheap2", true},
		{"dash and underscore", "shell-ql_v2", true},
		{"empty", "", false},
		{"space", "baby heap", false},
		{"slash", "a/b", false},
		{"unicode", "café", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.valid, IsValidServiceName(tt.service))
		})
	}
}

func TestParseParticipantReference(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ParticipantReference
	}{
		{"mention", "<@ULQ3YEH5G>", ParticipantReference{Kind: ReferenceMention, Value: "ULQ3YEH5G"}},
		{"mention with spaces", "  <@ULQ3YEH5G> ", ParticipantReference{Kind: ReferenceMention, Value: "ULQ3YEH5G"}},
		{"raw id", "ULQ3YEH5G", ParticipantReference{Kind: ReferenceID, Value: "ULQ3YEH5G"}},
		{"handle", "@fish", ParticipantReference{Kind: ReferenceHandle, Value: "fish"}},
		{"bare handle", "fish", ParticipantReference{Kind: ReferenceName, Value: "fish"}},
		// Only a mention of the exact ID length is taken as a mention
		{"long mention", "<@ULQ3YEH5GXX>", ParticipantReference{Kind: ReferenceName, Value: "<@ULQ3YEH5GXX>"}},
		{"lowercase id", "ulq3yeh5g", ParticipantReference{Kind: ReferenceName, Value: "ulq3yeh5g"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseParticipantReference(tt.text))
		})
	}
}

func TestFloorStatus_String(t *testing.T) {
	req := require.New(t)

	req.Equal("Wants to go", WantsToGo.String())
	req.Equal("On the floor", OnTheFloor.String())
	req.Equal("Neutral", Neutral.String())
	req.Equal("<@U0000000A>", Mention("U0000000A"))
}
