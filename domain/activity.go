package domain

import "time"

// RecentActivity is the last time a participant did something in a service channel.
type RecentActivity struct {
	ParticipantID string
	ChannelID     string
	LastPostAt    time.Time
}
