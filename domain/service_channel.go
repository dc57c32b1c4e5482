package domain

import (
	"dcbot/errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultChannelPrefix is prepended to a service name to build its private channel name.
const DefaultChannelPrefix = "defcon2019-"

var serviceNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ServiceChannel is the private channel dedicated to one service (challenge).
// HostID is a weak reference to a Participant and is nil when nobody hosts it.
type ServiceChannel struct {
	ID              string
	Name            string
	Archived        bool
	HostID          *string
	HostConfirmedAt *time.Time
}

// HasHost reports whether a participant currently hosts the service.
func (s ServiceChannel) HasHost() bool {
	return s.HostID != nil && *s.HostID != ""
}

// ChannelPrefix maps service names to channel names and back.
type ChannelPrefix string

// ChannelName builds the channel name of a service.
func (p ChannelPrefix) ChannelName(service string) string {
	return string(p) + service
}

// ServiceName strips the prefix from a channel name. It is the exact left
// inverse of ChannelName.
func (p ChannelPrefix) ServiceName(channelName string) (string, error) {
	if !strings.HasPrefix(channelName, string(p)) {
		return "", fmt.Errorf("%w: %q does not start with %q", errors.ErrInvalidFormat, channelName, string(p))
	}
	return channelName[len(p):], nil
}

// IsServiceChannel reports whether a channel name carries the prefix.
func (p ChannelPrefix) IsServiceChannel(channelName string) bool {
	return strings.HasPrefix(channelName, string(p))
}

// IsValidServiceName checks the service name charset: letters, digits, dashes and underscores.
func IsValidServiceName(service string) bool {
	return serviceNamePattern.MatchString(service)
}

// ChannelInfo is what the chat platform reports about a channel.
type ChannelInfo struct {
	ID       string
	Name     string
	Archived bool
}
