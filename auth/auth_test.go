package auth

import (
	"dcbot/domain"
	"dcbot/errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeDirectory map[string]domain.Participant

func (d fakeDirectory) GetParticipant(id string) (*domain.Participant, error) {
	if id == "boom" {
		return nil, fmt.Errorf("store is closed")
	}
	p, ok := d[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func TestCommandValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		req     domain.CommandRequest
		wantErr bool
	}{
		{"Valid request", domain.CommandRequest{Command: "/floor", UserID: "U0000001A", ResponseURL: "https://hooks.slack.com/commands/1/2"}, false},
		{"Without response URL", domain.CommandRequest{Command: "/floor", UserID: "U0000001A"}, false},
		{"Missing command", domain.CommandRequest{UserID: "U0000001A"}, true},
		{"Command without slash", domain.CommandRequest{Command: "floor", UserID: "U0000001A"}, true},
		{"Missing user", domain.CommandRequest{Command: "/floor"}, true},
		{"Broken response URL", domain.CommandRequest{Command: "/floor", UserID: "U0000001A", ResponseURL: "not a url"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommand(tt.req)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidRequest)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestServiceNameValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		service string
		wantErr bool
	}{
		{"Letters and underscore", "some_service", false},
		{"Dashes and digits", "baby-heap-2", false},
		{"Empty", "", true},
		{"Space", "some service", true},
		{"Dot", "pwn.me", true},
		{"Unicode", "sérvice", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateServiceName(tt.service)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidServiceName)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestAuthorizer(t *testing.T) {
	req := require.New(t)
	directory := fakeDirectory{"U0000001A": {ID: "U0000001A", Handle: "fish"}}
	authorizer := NewAuthorizer(directory, map[string]struct{}{"ULQ3YEH5G": {}})

	req.NoError(authorizer.RequirePlayer("U0000001A"))
	req.ErrorIs(authorizer.RequirePlayer("U0000002B"), errors.ErrNotAPlayer)
	req.Error(authorizer.RequirePlayer("boom"))
	req.NotErrorIs(authorizer.RequirePlayer("boom"), errors.ErrNotAPlayer)

	req.NoError(authorizer.RequireAdmin("ULQ3YEH5G"))
	req.ErrorIs(authorizer.RequireAdmin("U0000001A"), errors.ErrPermissionDenied)
	req.False(NewAuthorizer(directory, nil).IsAdmin("ULQ3YEH5G"))
}
