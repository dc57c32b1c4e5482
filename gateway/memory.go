package gateway

import (
	"context"
	"dcbot/contract"
	"dcbot/domain"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Operation names a gateway call for failure injection.
type Operation string

const (
	OpCreateChannel Operation = "CreateChannel"
	OpListChannels  Operation = "ListChannels"
	OpListMembers   Operation = "ListMembers"
	OpInviteMember  Operation = "InviteMember"
	OpLookupInfo    Operation = "LookupParticipantInfo"
	OpPostMessage   Operation = "PostMessage"
	OpRespond       Operation = "Respond"
)

type Post struct {
	Channel string
	Text    string
}

type Reply struct {
	ResponseURL string
	Response    domain.Response
}

// MemoryGateway is an in-memory chat platform. It keeps an ordered log of
// every side effect so tests can assert on what the bot did, and in which order.
type MemoryGateway struct {
	mu       sync.Mutex
	sequence int
	channels []domain.ChannelInfo
	members  map[string][]string
	users    map[string]domain.Participant
	failures map[Operation]error
	effects  []string
	posts    []Post
	replies  []Reply
}

var (
	_ contract.IChatGateway = (*MemoryGateway)(nil)
	_ contract.IResponder   = (*MemoryGateway)(nil)
)

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		members:  make(map[string][]string),
		users:    make(map[string]domain.Participant),
		failures: make(map[Operation]error),
	}
}

// AddChannel seeds a channel without recording an effect.
func (g *MemoryGateway) AddChannel(channel domain.ChannelInfo) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.channels = append(g.channels, channel)
}

// AddUser seeds a platform account without recording an effect.
func (g *MemoryGateway) AddUser(participant domain.Participant) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.users[participant.ID] = participant
}

// AddMembers seeds channel membership without recording an effect.
func (g *MemoryGateway) AddMembers(channelID string, participantIDs ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, id := range participantIDs {
		if !slices.Contains(g.members[channelID], id) {
			g.members[channelID] = append(g.members[channelID], id)
		}
	}
}

// ArchiveChannel flags a channel as archived.
func (g *MemoryGateway) ArchiveChannel(channelID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.channels {
		if g.channels[i].ID == channelID {
			g.channels[i].Archived = true
		}
	}
}

// FailOn makes every later call of op fail with err. A nil err clears the failure.
// Errors that are not already *errors.RemoteError are normalized first.
func (g *MemoryGateway) FailOn(op Operation, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err == nil {
		delete(g.failures, op)
		return
	}
	g.failures[op] = normalize(err)
}

func (g *MemoryGateway) Effects() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.effects)
}

func (g *MemoryGateway) Posts() []Post {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.posts)
}

func (g *MemoryGateway) Replies() []Reply {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.replies)
}

func (g *MemoryGateway) Members(channelID string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.members[channelID])
}

func (g *MemoryGateway) CreateChannel(_ context.Context, name string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.failures[OpCreateChannel]; err != nil {
		return "", err
	}
	if g.findByName(name) != nil {
		return "", fromCode(codeNameTaken)
	}
	g.sequence++
	id := fmt.Sprintf("G%08d", g.sequence)
	g.channels = append(g.channels, domain.ChannelInfo{ID: id, Name: name})
	g.effects = append(g.effects, fmt.Sprintf("Created channel '%s'", name))
	return id, nil
}

func (g *MemoryGateway) ListChannels(_ context.Context, prefix string, includeArchived bool) ([]domain.ChannelInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.failures[OpListChannels]; err != nil {
		return nil, err
	}
	var channels []domain.ChannelInfo
	for _, channel := range g.channels {
		if len(channels) == MaxChannelPage {
			break
		}
		if channel.Archived && !includeArchived {
			continue
		}
		if strings.HasPrefix(channel.Name, prefix) {
			channels = append(channels, channel)
		}
	}
	return channels, nil
}

func (g *MemoryGateway) ListMembers(_ context.Context, channelID string) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.failures[OpListMembers]; err != nil {
		return nil, err
	}
	if g.findByID(channelID) == nil {
		return nil, fromCode("channel_not_found")
	}
	members := g.members[channelID]
	if len(members) > MaxMemberPage {
		members = members[:MaxMemberPage]
	}
	return slices.Clone(members), nil
}

func (g *MemoryGateway) InviteMember(_ context.Context, channelID, participantID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.failures[OpInviteMember]; err != nil {
		return err
	}
	channel := g.findByID(channelID)
	if channel == nil {
		return fromCode("channel_not_found")
	}
	if channel.Archived {
		return fromCode("is_archived")
	}
	if _, ok := g.users[participantID]; !ok {
		return fromCode("user_not_found")
	}
	if slices.Contains(g.members[channelID], participantID) {
		return nil
	}
	g.members[channelID] = append(g.members[channelID], participantID)
	g.effects = append(g.effects, fmt.Sprintf("Added member '%s' to '%s'", g.users[participantID].Handle, channel.Name))
	return nil
}

func (g *MemoryGateway) LookupParticipantInfo(_ context.Context, participantID string) (domain.Participant, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.failures[OpLookupInfo]; err != nil {
		return domain.Participant{}, err
	}
	participant, ok := g.users[participantID]
	if !ok {
		return domain.Participant{}, fromCode("user_not_found")
	}
	return participant, nil
}

func (g *MemoryGateway) PostMessage(_ context.Context, channel, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.failures[OpPostMessage]; err != nil {
		return err
	}
	g.posts = append(g.posts, Post{Channel: channel, Text: text})
	g.effects = append(g.effects, fmt.Sprintf("Posted '%s' to '%s'", text, channel))
	return nil
}

func (g *MemoryGateway) Respond(_ context.Context, responseURL string, response domain.Response) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.failures[OpRespond]; err != nil {
		return err
	}
	g.replies = append(g.replies, Reply{ResponseURL: responseURL, Response: response})
	g.effects = append(g.effects, fmt.Sprintf("Sent '%s' to '%s'", response.Text, responseURL))
	return nil
}

func (g *MemoryGateway) findByID(id string) *domain.ChannelInfo {
	for i := range g.channels {
		if g.channels[i].ID == id {
			return &g.channels[i]
		}
	}
	return nil
}

func (g *MemoryGateway) findByName(name string) *domain.ChannelInfo {
	for i := range g.channels {
		if g.channels[i].Name == name {
			return &g.channels[i]
		}
	}
	return nil
}

