package runtime

import (
	"context"
	"dcbot/auth"
	"dcbot/domain"
	"dcbot/domain/event"
	"dcbot/errors"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

func (d *Dispatcher) listService(_ context.Context, req domain.CommandRequest) (domain.Response, error) {
	responseType := domain.Ephemeral
	if strings.TrimSpace(req.Text) == string(domain.InChannel) {
		responseType = domain.InChannel
	}

	services, err := d.directory.ListActiveServices()
	if err != nil {
		return domain.Response{}, fmt.Errorf("list services: %w", err)
	}
	prefix := d.directory.Prefix()
	lines := lo.Map(services, func(s domain.ServiceChannel, _ int) string {
		if s.HasHost() {
			return fmt.Sprintf("_%s_ in channel #%s | Hosting by %s", s.Name, prefix.ChannelName(s.Name), domain.Mention(*s.HostID))
		}
		return fmt.Sprintf("_%s_ in channel #%s | *Host wanted!*", s.Name, prefix.ChannelName(s.Name))
	})

	return domain.Response{
		ResponseType: responseType,
		Text:         fmt.Sprintf("%d services online.", len(services)),
		Attachments:  []domain.Attachment{{Text: strings.Join(lines, "\n")}},
	}, nil
}

func (d *Dispatcher) newService(_ context.Context, req domain.CommandRequest) (domain.Response, error) {
	service := strings.TrimSpace(req.Text)
	if err := auth.ValidateServiceName(service); err != nil {
		return rejection(errors.ErrInvalidServiceName, service), nil
	}

	d.deferReply(req, func(ctx context.Context) domain.Response {
		channelID, err := d.gateway.CreateChannel(ctx, d.directory.Prefix().ChannelName(service))
		if err != nil {
			d.log.Warn("Cannot create service channel", "service", service, "error", err)
			return domain.EphemeralText(fmt.Sprintf(msgCannotCreateChannel, service, reason(err)))
		}
		d.inviteBot(ctx, channelID)
		if _, err = d.directory.SyncServiceChannels(ctx); err != nil {
			d.log.Warn("Service channels not resynchronized", "error", err)
		}
		return domain.EphemeralText(fmt.Sprintf(msgChannelCreated, service))
	})
	return domain.PlainText(msgRequestReceived), nil
}

// inviteBot brings the bot account into a new service channel so that it can
// post announcements there. A bot missing from the directory is skipped.
func (d *Dispatcher) inviteBot(ctx context.Context, channelID string) {
	bot, err := d.directory.GetParticipantByHandle(d.botHandle)
	if err != nil || bot == nil {
		d.log.Warn("Bot account not found, not invited", "handle", d.botHandle, "error", err)
		return
	}
	if err = d.gateway.InviteMember(ctx, channelID, bot.ID); err != nil {
		d.log.Warn("Cannot invite bot account", "channel_id", channelID, "error", err)
	}
}

func (d *Dispatcher) workOn(_ context.Context, req domain.CommandRequest) (domain.Response, error) {
	service := strings.TrimSpace(req.Text)
	channel, err := d.directory.GetService(service)
	if err != nil {
		return domain.Response{}, fmt.Errorf("get service %s: %w", service, err)
	}
	if channel == nil {
		return rejection(errors.ErrChannelDoesNotExist, service), nil
	}

	d.deferReply(req, func(ctx context.Context) domain.Response {
		if channel.Archived {
			return rejection(errors.ErrCannotJoinChannel, service)
		}
		if err := d.gateway.InviteMember(ctx, channel.ID, req.UserID); err != nil {
			d.log.Warn("Cannot add member to service", "service", service, "user_id", req.UserID, "error", err)
			return rejection(errors.ErrCannotJoinChannel, service)
		}
		return domain.EphemeralText(msgSuccess)
	})
	return domain.PlainText(msgRequestReceived), nil
}

func (d *Dispatcher) host(_ context.Context, req domain.CommandRequest) (domain.Response, error) {
	service := strings.TrimSpace(req.Text)
	if service == "" && req.ChannelID != "" {
		current, err := d.directory.GetServiceByChannelID(req.ChannelID)
		if err != nil {
			return domain.Response{}, fmt.Errorf("get service of channel %s: %w", req.ChannelID, err)
		}
		if current != nil {
			service = current.Name
		}
	}
	if service == "" {
		return rejection(errors.ErrMissingServiceName), nil
	}

	channel, err := d.directory.GetService(service)
	if err != nil {
		return domain.Response{}, fmt.Errorf("get service %s: %w", service, err)
	}
	if channel == nil {
		return rejection(errors.ErrChannelDoesNotExist, service), nil
	}

	// Repeating /host on the same service is allowed, it announces again.
	hosting, err := d.hosting.GetCurrentHostingFor(req.UserID)
	if err != nil {
		return domain.Response{}, fmt.Errorf("get hosting of %s: %w", req.UserID, err)
	}
	if hosting != nil && *hosting != channel.Name {
		return rejection(errors.ErrAlreadyHosting, *hosting), nil
	}

	d.jobs.Go(req.Command, func(ctx context.Context) {
		d.assignHost(ctx, req, *channel)
	})
	return domain.PlainText(msgRequestReceived), nil
}

// assignHost makes the caller a member of the channel, then its host, then
// tells everyone. Exclusivity is checked again as another job may have won
// in between.
func (d *Dispatcher) assignHost(ctx context.Context, req domain.CommandRequest, channel domain.ServiceChannel) {
	if err := d.ensureMember(ctx, channel.ID, req.UserID); err != nil {
		d.log.Warn("Cannot add host to service channel", "service", channel.Name, "user_id", req.UserID, "error", err)
		d.reply(ctx, req, rejection(errors.ErrCannotJoinChannel, channel.Name))
		return
	}

	previous, err := d.hosting.AssignHost(req.UserID, channel.ID)
	var alreadyHosting *errors.AlreadyHostingError
	switch {
	case stderrors.As(err, &alreadyHosting):
		d.reply(ctx, req, rejection(errors.ErrAlreadyHosting, alreadyHosting.Service))
		return
	case err != nil:
		d.log.Error("Cannot assign host", "service", channel.Name, "user_id", req.UserID, "error", err)
		d.reply(ctx, req, domain.EphemeralText(fmt.Sprintf(msgHostingFailed, channel.Name, reason(err))))
		return
	}

	d.reply(ctx, req, domain.EphemeralText(msgSuccess))
	d.broadcaster.Announce(ctx, event.NewHostAssigned(channel.Name, channel.ID, req.UserID, previous, d.now().UTC()))
}

func (d *Dispatcher) ensureMember(ctx context.Context, channelID, participantID string) error {
	members, err := d.gateway.ListMembers(ctx, channelID)
	if err != nil {
		return err
	}
	if lo.Contains(members, participantID) {
		return nil
	}
	return d.gateway.InviteMember(ctx, channelID, participantID)
}

func (d *Dispatcher) unhost(_ context.Context, req domain.CommandRequest) (domain.Response, error) {
	channel, err := d.hosting.Unhost(req.UserID)
	if stderrors.Is(err, errors.ErrNotHosting) {
		return rejection(errors.ErrNotHosting), nil
	}
	if err != nil {
		return domain.Response{}, fmt.Errorf("unhost %s: %w", req.UserID, err)
	}

	at := d.now().UTC()
	d.jobs.Go(req.Command, func(ctx context.Context) {
		d.reply(ctx, req, domain.EphemeralText(fmt.Sprintf(msgUnhosted, channel.Name)))
		d.broadcaster.Announce(ctx, event.HostingChanged{
			Kind:      event.Unhosted,
			Service:   channel.Name,
			ChannelID: channel.ID,
			HostID:    req.UserID,
			At:        at,
		})
	})
	return domain.PlainText(msgRequestReceived), nil
}

// reason is the short form of a failure shown to players.
func reason(err error) string {
	if code := errors.RemoteCode(err); code != "" {
		return code
	}
	return err.Error()
}
