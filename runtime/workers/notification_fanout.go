package workers

import (
	"context"
	"dcbot/contract"
	"dcbot/domain/event"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
)

// NotificationFanout posts announcements to the chat.
//
// It is best effort: no delivery guarantee, no ordering, no retries. A failed
// post is logged and forgotten, the caller never sees it. Command replies
// never go through here.
//
// NotificationFanout is safe for concurrent use by multiple goroutines.
type NotificationFanout struct {
	log         *slog.Logger
	gateway     contract.IChatGateway
	mainChannel func() string
	postTimeout time.Duration
}

var _ contract.IBroadcaster = (*NotificationFanout)(nil)

// NewNotificationFanout announces to mainChannel (resolved on every call,
// as the main channel ID may only be known after the first sync) and to the
// channels of each event.
func NewNotificationFanout(
	log *slog.Logger,
	gateway contract.IChatGateway,
	mainChannel func() string,
	postTimeout time.Duration,
) *NotificationFanout {
	return &NotificationFanout{log: log, gateway: gateway, mainChannel: mainChannel, postTimeout: postTimeout}
}

func (f *NotificationFanout) Broadcast(ctx context.Context, channel, text string) {
	f.post(ctx, channel, text)
}

// Announce posts the event text to the main channel and to every channel of
// the event, concurrently, and returns when all posts are done.
func (f *NotificationFanout) Announce(ctx context.Context, evt event.DomainEvent) {
	targets := lo.Uniq(append([]string{f.mainChannel()}, evt.ChannelIDs()...))
	targets = lo.Compact(targets)
	text := evt.Text()

	var wg sync.WaitGroup
	for _, target := range targets {
		wg.Add(1)
		go func(channel string) {
			defer wg.Done()
			f.post(ctx, channel, text)
		}(target)
	}
	wg.Wait()
}

func (f *NotificationFanout) post(ctx context.Context, channel, text string) {
	postCtx, cancel := context.WithTimeout(ctx, f.postTimeout)
	defer cancel()
	if err := f.gateway.PostMessage(postCtx, channel, text); err != nil {
		f.log.Warn("Announcement lost", "channel_id", channel, "error", err)
		return
	}
	f.log.Debug("Announcement posted", "channel_id", channel)
}
