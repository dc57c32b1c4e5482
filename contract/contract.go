//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"dcbot/domain"
	"dcbot/domain/event"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IChatGateway wraps the remote chat platform.
// Every failure is returned as an *errors.RemoteError, never as a platform type.
type IChatGateway interface {
	// CreateChannel creates a private channel and returns its ID.
	CreateChannel(ctx context.Context, name string) (string, error)
	// ListChannels returns a single page (at most 1000) of the channels
	// whose name starts with prefix.
	ListChannels(ctx context.Context, prefix string, includeArchived bool) ([]domain.ChannelInfo, error)
	// ListMembers returns a single page (at most 100) of member IDs.
	ListMembers(ctx context.Context, channelID string) ([]string, error)
	// InviteMember adds a participant to a channel. Already being a member is not an error.
	InviteMember(ctx context.Context, channelID, participantID string) error
	LookupParticipantInfo(ctx context.Context, participantID string) (domain.Participant, error)
	// PostMessage posts text to a channel ID, a channel name or a user ID (direct message).
	PostMessage(ctx context.Context, channel, text string) error
}

// IResponder delivers deferred replies to the response URL of a command.
type IResponder interface {
	Respond(ctx context.Context, responseURL string, response domain.Response) error
}

// IBroadcaster posts announcements without ever failing the caller.
type IBroadcaster interface {
	Broadcast(ctx context.Context, channel, text string)
	Announce(ctx context.Context, evt event.DomainEvent)
}

// IJobRunner runs fire-and-forget command jobs.
type IJobRunner interface {
	Go(name string, job func(ctx context.Context)) string
	Wait()
}

// ICommandDispatcher runs the slash commands received by the transport.
type ICommandDispatcher interface {
	Dispatch(ctx context.Context, route string, req domain.CommandRequest) (domain.Response, error)
	Hello() string
}
