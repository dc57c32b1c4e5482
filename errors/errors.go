package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrNotAPlayer          = fmt.Errorf("caller is not a registered player")
	ErrPermissionDenied    = fmt.Errorf("caller is not an administrator")
	ErrInvalidServiceName  = fmt.Errorf("invalid service name")
	ErrInvalidFormat       = fmt.Errorf("channel name does not carry the service prefix")
	ErrChannelDoesNotExist = fmt.Errorf("service channel does not exist")
	ErrNotFound            = fmt.Errorf("not found")
	ErrMissingServiceName  = fmt.Errorf("missing service name")
	ErrAlreadyHosting      = fmt.Errorf("already hosting another service")
	ErrNotHosting          = fmt.Errorf("not hosting any service")
	ErrCannotJoinChannel   = fmt.Errorf("cannot join channel")
	ErrUnknownParticipant  = fmt.Errorf("unknown participant")
	ErrCommandMismatch     = fmt.Errorf("command does not match route")
	ErrInvalidRequest      = fmt.Errorf("invalid command request")

	ErrRemote            = fmt.Errorf("remote error")
	ErrRemoteUnavailable = fmt.Errorf("remote unavailable")
	ErrRemoteConflict    = fmt.Errorf("remote conflict")
)

// RemoteError is the single error shape the chat gateway hands to callers.
// Code is the machine string reported by the platform (e.g. "name_taken"),
// Message is meant for humans. Kind is one of ErrRemote, ErrRemoteConflict or
// ErrRemoteUnavailable and is what errors.Is matches against:
//
//	if errors.Is(err, errors.ErrRemoteConflict) { ... }
type RemoteError struct {
	Kind    error
	Code    string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" || e.Message == e.Code {
		return fmt.Sprintf("%v: %s", e.kind(), e.Code)
	}
	return fmt.Sprintf("%v: %s: %s", e.kind(), e.Code, e.Message)
}

func (e *RemoteError) Unwrap() error { return e.kind() }

func (e *RemoteError) kind() error {
	if e.Kind == nil {
		return ErrRemote
	}
	return e.Kind
}

// RemoteCode returns the machine code of a RemoteError found in err's chain,
// or an empty string.
func RemoteCode(err error) string {
	var remoteErr *RemoteError
	if stderrors.As(err, &remoteErr) {
		return remoteErr.Code
	}
	return ""
}

// AlreadyHostingError carries the service the participant is already hosting.
type AlreadyHostingError struct {
	Service string
}

func (e *AlreadyHostingError) Error() string {
	return fmt.Sprintf("already hosting service %s", e.Service)
}

func (e *AlreadyHostingError) Unwrap() error { return ErrAlreadyHosting }
