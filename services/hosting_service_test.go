package services

import (
	"dcbot/domain"
	"dcbot/errors"
	"dcbot/mocks"
	"dcbot/repositories"
	"log/slog"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHostingService_Assignment_Outcomes(t *testing.T) {
	req := require.New(t)
	store := openStore(t)
	svc := NewHostingService(store, slog.Default())
	_, err := store.UpsertServiceChannel(domain.ServiceChannel{ID: "G1", Name: "babyheap"})
	req.NoError(err)
	_, err = store.UpsertServiceChannel(domain.ServiceChannel{ID: "G2", Name: "shellql"})
	req.NoError(err)

	// Given nobody hosts babyheap, alice becomes host
	previous, err := svc.AssignHost("U00000001", "G1")
	req.NoError(err)
	req.Nil(previous)

	// When alice confirms, the previous host is alice and the host is unchanged
	previous, err = svc.AssignHost("U00000001", "G1")
	req.NoError(err)
	req.Equal(lo.ToPtr("U00000001"), previous)
	host, err := svc.GetHost("G1")
	req.NoError(err)
	req.Equal(lo.ToPtr("U00000001"), host)

	// When alice tries another service, she is refused
	_, err = svc.AssignHost("U00000001", "G2")
	req.ErrorIs(err, errors.ErrAlreadyHosting)
	host, err = svc.GetHost("G2")
	req.NoError(err)
	req.Nil(host)

	// When bob takes over babyheap, alice is replaced
	previous, err = svc.AssignHost("U00000002", "G1")
	req.NoError(err)
	req.Equal(lo.ToPtr("U00000001"), previous)

	hosting, err := svc.GetCurrentHostingFor("U00000002")
	req.NoError(err)
	req.Equal(lo.ToPtr("babyheap"), hosting)
	hosting, err = svc.GetCurrentHostingFor("U00000001")
	req.NoError(err)
	req.Nil(hosting)
}

func TestHostingService_SetHost_Unknown_Channel(t *testing.T) {
	req := require.New(t)
	svc := NewHostingService(openStore(t), slog.Default())

	err := svc.SetHost(lo.ToPtr("U00000001"), "G404")
	req.ErrorIs(err, errors.ErrNotFound)

	// An unknown channel has no host
	host, err := svc.GetHost("G404")
	req.NoError(err)
	req.Nil(host)
}

func TestHostingService_SetHost_Nil_Clears(t *testing.T) {
	req := require.New(t)
	store := openStore(t)
	svc := NewHostingService(store, slog.Default())
	_, err := store.UpsertServiceChannel(domain.ServiceChannel{ID: "G1", Name: "babyheap"})
	req.NoError(err)

	req.NoError(svc.SetHost(lo.ToPtr("U00000001"), "G1"))
	req.NoError(svc.SetHost(nil, "G1"))

	host, err := svc.GetHost("G1")
	req.NoError(err)
	req.Nil(host)
}

func TestHostingService_Unhost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIServiceChannelRepository(ctrl)
	svc := NewHostingService(mockRepo, slog.Default())

	t.Run("should fail when hosting nothing", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetHostedChannel("U00000001").Return(nil, nil).Times(1)
		mockRepo.EXPECT().ClearHost(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Unhost("U00000001")

		req.ErrorIs(err, errors.ErrNotHosting)
	})

	t.Run("should clear the hosted channel", func(t *testing.T) {
		req := require.New(t)
		hosted := &domain.ServiceChannel{ID: "G1", Name: "babyheap", HostID: lo.ToPtr("U00000001")}
		mockRepo.EXPECT().GetHostedChannel("U00000001").Return(hosted, nil).Times(1)
		mockRepo.EXPECT().ClearHost("G1", "U00000001").Return(true, nil).Times(1)
		mockRepo.EXPECT().SetHost(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		channel, err := svc.Unhost("U00000001")

		req.NoError(err)
		req.Equal("babyheap", channel.Name)
	})

	t.Run("should keep a host who took over in between", func(t *testing.T) {
		req := require.New(t)
		hosted := &domain.ServiceChannel{ID: "G1", Name: "babyheap", HostID: lo.ToPtr("U00000001")}
		mockRepo.EXPECT().GetHostedChannel("U00000001").Return(hosted, nil).Times(1)
		mockRepo.EXPECT().ClearHost("G1", "U00000001").Return(false, nil).Times(1)

		_, err := svc.Unhost("U00000001")

		req.ErrorIs(err, errors.ErrNotHosting)
	})
}

// takeoverRepository lets another player take the channel right after the
// unhost read, the way a concurrent /host job would.
type takeoverRepository struct {
	repositories.IServiceChannelRepository
	takeover func()
}

func (r *takeoverRepository) GetHostedChannel(hostID string) (*domain.ServiceChannel, error) {
	channel, err := r.IServiceChannelRepository.GetHostedChannel(hostID)
	if r.takeover != nil {
		r.takeover()
		r.takeover = nil
	}
	return channel, err
}

func TestHostingService_Unhost_Keeps_Concurrent_Takeover(t *testing.T) {
	req := require.New(t)
	store := openStore(t)
	_, err := store.UpsertServiceChannel(domain.ServiceChannel{ID: "G1", Name: "babyheap"})
	req.NoError(err)
	_, err = store.AssignHost("G1", "U00000001", time.Now())
	req.NoError(err)

	// Given bob takes babyheap over while alice unhosts
	repo := &takeoverRepository{IServiceChannelRepository: store}
	repo.takeover = func() {
		_, err := store.AssignHost("G1", "U00000002", time.Now())
		req.NoError(err)
	}
	svc := NewHostingService(repo, slog.Default())

	// When alice's unhost completes
	_, err = svc.Unhost("U00000001")

	// Then alice is told she hosts nothing and bob stays host
	req.ErrorIs(err, errors.ErrNotHosting)
	host, err := svc.GetHost("G1")
	req.NoError(err)
	req.Equal(lo.ToPtr("U00000002"), host)
}
