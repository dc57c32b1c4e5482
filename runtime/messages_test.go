package runtime

import (
	"dcbot/domain"
	"dcbot/errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRejection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		args []any
		want string
	}{
		{"not a player", errors.ErrNotAPlayer, nil, msgNotAPlayer},
		{"missing service", errors.ErrMissingServiceName, nil, msgMissingServiceName},
		{"unknown service", errors.ErrChannelDoesNotExist, []any{"babyheap"}, fmt.Sprintf(msgChannelDoesntExist, "babyheap")},
		{"cannot join", errors.ErrCannotJoinChannel, []any{"babyheap"}, fmt.Sprintf(msgCannotJoinChannel, "babyheap")},
		{"already hosting", errors.ErrAlreadyHosting, []any{"shellql"}, fmt.Sprintf(msgAlreadyHosting, "shellql")},
		{"not hosting", errors.ErrNotHosting, nil, msgNotHosting},
		{"invalid name", errors.ErrInvalidServiceName, []any{"a b"}, fmt.Sprintf(msgInvalidServiceName, "a b")},
		{"anything else", errors.ErrRemote, nil, msgCommandFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, domain.EphemeralText(tt.want), rejection(tt.err, tt.args...))
		})
	}
}
