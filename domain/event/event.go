package event

import (
	"dcbot/domain"
	"fmt"
	"time"
)

// DomainEvent is an announcement worth broadcasting to the venue.
type DomainEvent interface {
	// Text is the human-readable announcement.
	Text() string
	// ChannelIDs are the channels the announcement belongs to, besides the main channel.
	ChannelIDs() []string
}

type HostingKind int

const (
	BecameHost HostingKind = iota
	StillHosting
	ReplacedHost
	Unhosted
)

// HostingChanged is raised every time the host of a service channel is
// assigned, confirmed, replaced or cleared.
type HostingChanged struct {
	Kind           HostingKind
	Service        string
	ChannelID      string
	HostID         string
	PreviousHostID string
	At             time.Time
}

// NewHostAssigned picks the hosting kind from the previous host of the channel.
func NewHostAssigned(service, channelID, hostID string, previous *string, at time.Time) HostingChanged {
	evt := HostingChanged{
		Kind:      BecameHost,
		Service:   service,
		ChannelID: channelID,
		HostID:    hostID,
		At:        at,
	}
	switch {
	case previous == nil || *previous == "":
	case *previous == hostID:
		evt.Kind = StillHosting
	default:
		evt.Kind = ReplacedHost
		evt.PreviousHostID = *previous
	}
	return evt
}

func (e HostingChanged) Text() string {
	host := domain.Mention(e.HostID)
	switch e.Kind {
	case StillHosting:
		return fmt.Sprintf("_%s is the service host of challenge %s._", host, e.Service)
	case ReplacedHost:
		return fmt.Sprintf("_%s becomes the service host of challenge %s replacing %s._",
			host, e.Service, domain.Mention(e.PreviousHostID))
	case Unhosted:
		return fmt.Sprintf("_%s is no longer the service host of challenge %s._", host, e.Service)
	default:
		return fmt.Sprintf("_%s becomes the service host of challenge %s._", host, e.Service)
	}
}

func (e HostingChanged) ChannelIDs() []string {
	return []string{e.ChannelID}
}
