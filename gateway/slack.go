// Package gateway talks to the chat platform on behalf of the bot.
package gateway

import (
	"context"
	"dcbot/contract"
	"dcbot/domain"
	"dcbot/errors"
	"log/slog"
	"strings"

	"github.com/slack-go/slack"
)

const (
	// MaxChannelPage is the only page of channels ever read.
	MaxChannelPage = 1000
	// MaxMemberPage is the only page of channel members ever read.
	MaxMemberPage = 100
)

// SlackGateway uses two tokens: the app (user) token manages private
// channels, which bots cannot do on their own, and the bot token posts
// messages under the bot identity.
type SlackGateway struct {
	app *slack.Client
	bot *slack.Client
	log *slog.Logger
}

var _ contract.IChatGateway = (*SlackGateway)(nil)

// NewSlackGateway builds both clients. apiURL overrides the Web API endpoint
// when not empty (it must end with a slash).
func NewSlackGateway(appToken, botToken, apiURL string, log *slog.Logger) *SlackGateway {
	var options []slack.Option
	if apiURL != "" {
		options = append(options, slack.OptionAPIURL(apiURL))
	}
	return &SlackGateway{
		app: slack.New(appToken, options...),
		bot: slack.New(botToken, options...),
		log: log,
	}
}

func (g *SlackGateway) CreateChannel(ctx context.Context, name string) (string, error) {
	channel, err := g.app.CreateConversationContext(ctx, slack.CreateConversationParams{
		ChannelName: name,
		IsPrivate:   true,
	})
	if err != nil {
		return "", normalize(err)
	}
	return channel.ID, nil
}

func (g *SlackGateway) ListChannels(ctx context.Context, prefix string, includeArchived bool) ([]domain.ChannelInfo, error) {
	channels, next, err := g.app.GetConversationsContext(ctx, &slack.GetConversationsParameters{
		Types:           []string{"public_channel", "private_channel"},
		Limit:           MaxChannelPage,
		ExcludeArchived: !includeArchived,
	})
	if err != nil {
		return nil, normalize(err)
	}
	if next != "" {
		g.log.Warn("Channel list truncated to a single page", "limit", MaxChannelPage)
	}

	var infos []domain.ChannelInfo
	for _, channel := range channels {
		if !strings.HasPrefix(channel.Name, prefix) {
			continue
		}
		infos = append(infos, domain.ChannelInfo{
			ID:       channel.ID,
			Name:     channel.Name,
			Archived: channel.IsArchived,
		})
	}
	return infos, nil
}

func (g *SlackGateway) ListMembers(ctx context.Context, channelID string) ([]string, error) {
	members, next, err := g.app.GetUsersInConversationContext(ctx, &slack.GetUsersInConversationParameters{
		ChannelID: channelID,
		Limit:     MaxMemberPage,
	})
	if err != nil {
		return nil, normalize(err)
	}
	if next != "" {
		g.log.Warn("Member list truncated to a single page", "channel_id", channelID, "limit", MaxMemberPage)
	}
	return members, nil
}

func (g *SlackGateway) InviteMember(ctx context.Context, channelID, participantID string) error {
	_, err := g.app.InviteUsersToConversationContext(ctx, channelID, participantID)
	if err = normalize(err); err != nil {
		if errors.RemoteCode(err) == codeAlreadyInChannel {
			return nil
		}
		return err
	}
	return nil
}

func (g *SlackGateway) LookupParticipantInfo(ctx context.Context, participantID string) (domain.Participant, error) {
	user, err := g.app.GetUserInfoContext(ctx, participantID)
	if err != nil {
		return domain.Participant{}, normalize(err)
	}
	realName := user.RealName
	if realName == "" {
		realName = user.Profile.RealName
	}
	return domain.Participant{
		ID:          user.ID,
		Handle:      user.Name,
		DisplayName: user.Profile.DisplayName,
		RealName:    realName,
	}, nil
}

func (g *SlackGateway) PostMessage(ctx context.Context, channel, text string) error {
	_, _, err := g.bot.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false))
	return normalize(err)
}
