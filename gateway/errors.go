package gateway

import (
	"context"
	"dcbot/errors"
	stderrors "errors"
	"net"
	"net/url"

	"github.com/slack-go/slack"
)

// Platform error codes with a meaning of their own.
const (
	codeNameTaken        = "name_taken"
	codeAlreadyInChannel = "already_in_channel"
	codeRateLimited      = "ratelimited"
	codeTimeout          = "timeout"
	codeTransport        = "transport_error"
)

var unavailableCodes = map[string]bool{
	codeRateLimited:       true,
	"service_unavailable": true,
	"request_timeout":     true,
	"fatal_error":         true,
	"internal_error":      true,
}

// normalize converts any error coming out of the slack client into an
// *errors.RemoteError. It returns nil for a nil error.
func normalize(err error) error {
	if err == nil {
		return nil
	}
	var remoteErr *errors.RemoteError
	if stderrors.As(err, &remoteErr) {
		return remoteErr
	}

	var rateLimited *slack.RateLimitedError
	if stderrors.As(err, &rateLimited) {
		return &errors.RemoteError{Kind: errors.ErrRemoteUnavailable, Code: codeRateLimited, Message: rateLimited.Error()}
	}

	var statusErr slack.StatusCodeError
	if stderrors.As(err, &statusErr) {
		kind := errors.ErrRemote
		if statusErr.Code >= 500 || statusErr.Code == 429 {
			kind = errors.ErrRemoteUnavailable
		}
		return &errors.RemoteError{Kind: kind, Code: statusErr.Status, Message: statusErr.Error()}
	}

	var slackErr slack.SlackErrorResponse
	if stderrors.As(err, &slackErr) {
		return fromCode(slackErr.Err)
	}

	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return &errors.RemoteError{Kind: errors.ErrRemoteUnavailable, Code: codeTimeout, Message: err.Error()}
	}
	var netErr net.Error
	var urlErr *url.Error
	if stderrors.As(err, &netErr) || stderrors.As(err, &urlErr) {
		return &errors.RemoteError{Kind: errors.ErrRemoteUnavailable, Code: codeTransport, Message: err.Error()}
	}

	// Older endpoints still surface the bare platform code as the error text
	return fromCode(err.Error())
}

func fromCode(code string) *errors.RemoteError {
	switch {
	case code == codeNameTaken:
		return &errors.RemoteError{Kind: errors.ErrRemoteConflict, Code: code, Message: "a channel with this name already exists"}
	case unavailableCodes[code]:
		return &errors.RemoteError{Kind: errors.ErrRemoteUnavailable, Code: code}
	default:
		return &errors.RemoteError{Kind: errors.ErrRemote, Code: code}
	}
}
