package gateway

import (
	"context"
	"dcbot/errors"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind error
		code string
	}{
		{"name taken", slack.SlackErrorResponse{Err: "name_taken"}, errors.ErrRemoteConflict, "name_taken"},
		{"wrapped name taken", fmt.Errorf("create: %w", slack.SlackErrorResponse{Err: "name_taken"}), errors.ErrRemoteConflict, "name_taken"},
		{"other platform error", slack.SlackErrorResponse{Err: "channel_not_found"}, errors.ErrRemote, "channel_not_found"},
		{"rate limited", &slack.RateLimitedError{}, errors.ErrRemoteUnavailable, "ratelimited"},
		{"server error", slack.StatusCodeError{Code: 503, Status: "503 Service Unavailable"}, errors.ErrRemoteUnavailable, "503 Service Unavailable"},
		{"client error", slack.StatusCodeError{Code: 404, Status: "404 Not Found"}, errors.ErrRemote, "404 Not Found"},
		{"deadline", context.DeadlineExceeded, errors.ErrRemoteUnavailable, "timeout"},
		{"bare code", stderrors.New("fatal_error"), errors.ErrRemoteUnavailable, "fatal_error"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)

			err := normalize(tc.err)

			req.ErrorIs(err, tc.kind)
			req.Equal(tc.code, errors.RemoteCode(err))
		})
	}
}

func TestNormalize_Nil(t *testing.T) {
	require.NoError(t, normalize(nil))
}

func TestNormalize_Keeps_Remote_Error(t *testing.T) {
	original := &errors.RemoteError{Kind: errors.ErrRemoteConflict, Code: "name_taken"}
	require.Same(t, original, normalize(original))
}
