package services

import (
	"dcbot/domain"
	"dcbot/errors"
	"dcbot/repositories"
	"log/slog"
	"time"
)

type IHostingService interface {
	SetHost(participantID *string, channelID string) error
	GetHost(channelID string) (*string, error)
	GetCurrentHostingFor(participantID string) (*string, error)
	AssignHost(participantID, channelID string) (*string, error)
	Unhost(participantID string) (domain.ServiceChannel, error)
}

// HostingService keeps at most one service per host.
type HostingService struct {
	repository repositories.IServiceChannelRepository
	log        *slog.Logger
	now        func() time.Time
}

func NewHostingService(repository repositories.IServiceChannelRepository, log *slog.Logger) IHostingService {
	return &HostingService{repository: repository, log: log, now: time.Now}
}

// SetHost writes the host without any exclusivity check. A nil participantID
// clears the host.
func (s *HostingService) SetHost(participantID *string, channelID string) error {
	return s.repository.SetHost(channelID, participantID, s.now().UTC())
}

// GetHost returns nil when nobody hosts the channel or the channel is unknown.
func (s *HostingService) GetHost(channelID string) (*string, error) {
	channel, err := s.repository.GetServiceChannelByID(channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, nil
	}
	return channel.HostID, nil
}

// GetCurrentHostingFor returns the service name hosted by participantID, if any.
func (s *HostingService) GetCurrentHostingFor(participantID string) (*string, error) {
	channel, err := s.repository.GetHostedChannel(participantID)
	if err != nil || channel == nil {
		return nil, err
	}
	return &channel.Name, nil
}

// AssignHost makes participantID the host of channelID and returns the
// previous host. It fails with *errors.AlreadyHostingError when the
// participant hosts another service. Re-assigning the current host is a
// confirmation and refreshes HostConfirmedAt.
func (s *HostingService) AssignHost(participantID, channelID string) (*string, error) {
	previous, err := s.repository.AssignHost(channelID, participantID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	s.log.Info("Host assigned", "user_id", participantID, "channel_id", channelID)
	return previous, nil
}

// Unhost clears the host of the service hosted by participantID and returns
// it. The clear only applies while participantID is still the host, so a
// takeover racing with it is kept.
func (s *HostingService) Unhost(participantID string) (domain.ServiceChannel, error) {
	channel, err := s.repository.GetHostedChannel(participantID)
	if err != nil {
		return domain.ServiceChannel{}, err
	}
	if channel == nil {
		return domain.ServiceChannel{}, errors.ErrNotHosting
	}
	cleared, err := s.repository.ClearHost(channel.ID, participantID)
	if err != nil {
		return domain.ServiceChannel{}, err
	}
	if !cleared {
		s.log.Info("Host replaced before unhost", "user_id", participantID, "channel_id", channel.ID)
		return domain.ServiceChannel{}, errors.ErrNotHosting
	}
	s.log.Info("Host cleared", "user_id", participantID, "channel_id", channel.ID)
	return *channel, nil
}
