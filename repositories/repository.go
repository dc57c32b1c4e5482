//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../mocks/mock_repository.go -package=mocks
package repositories

import (
	"dcbot/domain"
	"time"
)

// Lookups return a nil pointer and a nil error when nothing matches:
// "not found" is the caller's decision, not a storage failure.

type IParticipantRepository interface {
	UpsertParticipant(participant domain.Participant) error
	GetParticipantByID(id string) (*domain.Participant, error)
	GetParticipantByHandle(handle string) (*domain.Participant, error)
	ListParticipants() ([]domain.Participant, error)
}

type IServiceChannelRepository interface {
	// UpsertServiceChannel stores name and archived flag, keeping the current host.
	UpsertServiceChannel(channel domain.ServiceChannel) (domain.ServiceChannel, error)
	GetServiceChannelByID(id string) (*domain.ServiceChannel, error)
	GetServiceChannelByName(name string) (*domain.ServiceChannel, error)
	ListServiceChannels() ([]domain.ServiceChannel, error)
	// SetHost sets or clears (hostID == nil) the host. errors.ErrNotFound for an unknown channel.
	SetHost(channelID string, hostID *string, at time.Time) error
	// AssignHost atomically refuses a participant already hosting another
	// channel and returns the previous host of channelID.
	AssignHost(channelID, hostID string, at time.Time) (*string, error)
	// ClearHost removes hostID from channelID in one step and reports false
	// when someone else hosts it by then.
	ClearHost(channelID, hostID string) (bool, error)
	// GetHostedChannel returns the channel hosted by a participant.
	GetHostedChannel(hostID string) (*domain.ServiceChannel, error)
}

type IFloorRepository interface {
	SetFloorStatus(participantID string, status domain.FloorStatus, at time.Time) error
	GetFloorRecord(participantID string) (*domain.FloorRecord, error)
	ListFloorRecords() ([]domain.FloorRecord, error)
}

type IActivityRepository interface {
	RecordPost(participantID, channelID string, at time.Time) error
	ListRecentPosts(channelID string) ([]domain.RecentActivity, error)
}

// Store is everything a storage engine has to provide.
type Store interface {
	IParticipantRepository
	IServiceChannelRepository
	IFloorRepository
	IActivityRepository
	Close() error
}
