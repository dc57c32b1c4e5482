package services

import (
	"context"
	"dcbot/contract"
	"dcbot/domain"
	"dcbot/repositories"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
)

type IDirectoryService interface {
	ResolveMainChannel(ctx context.Context) (string, error)
	// MainChannel is the resolved main channel ID, or its configured name
	// until it has been resolved.
	MainChannel() string
	SyncParticipants(ctx context.Context, mainChannelID string) (int, error)
	SyncServiceChannels(ctx context.Context) (int, error)
	Sync(ctx context.Context) error

	GetParticipant(id string) (*domain.Participant, error)
	GetParticipantByHandle(handle string) (*domain.Participant, error)
	GetService(name string) (*domain.ServiceChannel, error)
	GetServiceByChannelID(channelID string) (*domain.ServiceChannel, error)
	ListActiveServices() ([]domain.ServiceChannel, error)
	RecordActivity(participantID, channelID string) (bool, error)
	ListRecentActivity(channelID string) ([]domain.RecentActivity, error)
	Prefix() domain.ChannelPrefix
}

type DirectoryConfig struct {
	Prefix          domain.ChannelPrefix
	MainChannelName string
	// MainChannelID skips the lookup by name when set.
	MainChannelID string
}

// DirectoryService mirrors the chat platform into the store: the members of
// the main channel are the players, the channels carrying the prefix are the
// services.
type DirectoryService struct {
	gateway      contract.IChatGateway
	participants repositories.IParticipantRepository
	channels     repositories.IServiceChannelRepository
	activity     repositories.IActivityRepository
	config       DirectoryConfig
	log          *slog.Logger
	now          func() time.Time

	mu            sync.RWMutex
	mainChannelID string
}

func NewDirectoryService(
	gateway contract.IChatGateway,
	participants repositories.IParticipantRepository,
	channels repositories.IServiceChannelRepository,
	activity repositories.IActivityRepository,
	config DirectoryConfig,
	log *slog.Logger,
) *DirectoryService {
	return &DirectoryService{
		gateway:       gateway,
		participants:  participants,
		channels:      channels,
		activity:      activity,
		config:        config,
		log:           log,
		now:           time.Now,
		mainChannelID: config.MainChannelID,
	}
}

func (s *DirectoryService) Prefix() domain.ChannelPrefix {
	return s.config.Prefix
}

func (s *DirectoryService) MainChannel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mainChannelID != "" {
		return s.mainChannelID
	}
	return s.config.MainChannelName
}

func (s *DirectoryService) ResolveMainChannel(ctx context.Context) (string, error) {
	s.mu.RLock()
	resolved := s.mainChannelID
	s.mu.RUnlock()
	if resolved != "" {
		return resolved, nil
	}

	channels, err := s.gateway.ListChannels(ctx, s.config.MainChannelName, false)
	if err != nil {
		return "", fmt.Errorf("list channels: %w", err)
	}
	main, ok := lo.Find(channels, func(c domain.ChannelInfo) bool {
		return c.Name == s.config.MainChannelName
	})
	if !ok {
		return "", fmt.Errorf("main channel %q is not visible", s.config.MainChannelName)
	}

	s.mu.Lock()
	s.mainChannelID = main.ID
	s.mu.Unlock()
	s.log.Info("Main channel resolved", "channel", main.Name, "channel_id", main.ID)
	return main.ID, nil
}

// SyncParticipants upserts every member of the main channel. A member whose
// profile cannot be fetched is skipped and retried on the next sync.
func (s *DirectoryService) SyncParticipants(ctx context.Context, mainChannelID string) (int, error) {
	members, err := s.gateway.ListMembers(ctx, mainChannelID)
	if err != nil {
		return 0, fmt.Errorf("list members of %s: %w", mainChannelID, err)
	}

	synced := 0
	for _, memberID := range members {
		participant, err := s.gateway.LookupParticipantInfo(ctx, memberID)
		if err != nil {
			s.log.Warn("Cannot look up member", "user_id", memberID, "error", err)
			continue
		}
		if err = s.participants.UpsertParticipant(participant); err != nil {
			return synced, fmt.Errorf("upsert participant %s: %w", memberID, err)
		}
		synced++
	}
	return synced, nil
}

// SyncServiceChannels upserts every channel carrying the prefix, archived
// ones included so that archiving is mirrored.
func (s *DirectoryService) SyncServiceChannels(ctx context.Context) (int, error) {
	infos, err := s.gateway.ListChannels(ctx, string(s.config.Prefix), true)
	if err != nil {
		return 0, fmt.Errorf("list service channels: %w", err)
	}

	synced := 0
	for _, info := range infos {
		name, err := s.config.Prefix.ServiceName(info.Name)
		if err != nil || !domain.IsValidServiceName(name) {
			s.log.Debug("Ignoring channel", "channel", info.Name)
			continue
		}
		_, err = s.channels.UpsertServiceChannel(domain.ServiceChannel{
			ID:       info.ID,
			Name:     name,
			Archived: info.Archived,
		})
		if err != nil {
			return synced, fmt.Errorf("upsert service channel %s: %w", info.ID, err)
		}
		synced++
	}
	return synced, nil
}

func (s *DirectoryService) Sync(ctx context.Context) error {
	mainChannelID, err := s.ResolveMainChannel(ctx)
	if err != nil {
		return err
	}
	participants, err := s.SyncParticipants(ctx, mainChannelID)
	if err != nil {
		return err
	}
	channels, err := s.SyncServiceChannels(ctx)
	if err != nil {
		return err
	}
	s.log.Info("Directory synchronized", "participants", participants, "services", channels)
	return nil
}

func (s *DirectoryService) GetParticipant(id string) (*domain.Participant, error) {
	return s.participants.GetParticipantByID(id)
}

func (s *DirectoryService) GetParticipantByHandle(handle string) (*domain.Participant, error) {
	return s.participants.GetParticipantByHandle(handle)
}

func (s *DirectoryService) GetService(name string) (*domain.ServiceChannel, error) {
	return s.channels.GetServiceChannelByName(name)
}

func (s *DirectoryService) GetServiceByChannelID(channelID string) (*domain.ServiceChannel, error) {
	return s.channels.GetServiceChannelByID(channelID)
}

// ListActiveServices returns the non archived services sorted by name.
func (s *DirectoryService) ListActiveServices() ([]domain.ServiceChannel, error) {
	channels, err := s.channels.ListServiceChannels()
	if err != nil {
		return nil, err
	}
	active := lo.Filter(channels, func(c domain.ServiceChannel, _ int) bool { return !c.Archived })
	sort.Slice(active, func(i, j int) bool { return active[i].Name < active[j].Name })
	return active, nil
}

// RecordActivity stores the time of a participant's command when it comes
// from a known service channel. It reports whether something was recorded.
func (s *DirectoryService) RecordActivity(participantID, channelID string) (bool, error) {
	if channelID == "" {
		return false, nil
	}
	channel, err := s.channels.GetServiceChannelByID(channelID)
	if err != nil || channel == nil {
		return false, err
	}
	if err = s.activity.RecordPost(participantID, channelID, s.now().UTC()); err != nil {
		return false, err
	}
	return true, nil
}

func (s *DirectoryService) ListRecentActivity(channelID string) ([]domain.RecentActivity, error) {
	return s.activity.ListRecentPosts(channelID)
}
