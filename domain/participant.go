// Package domain contains core concepts of the bot.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

// Participant is a player of the current event, mirrored from the member
// list of the main venue channel. ID is the chat platform's user ID.
type Participant struct {
	ID          string
	Handle      string
	DisplayName string
	RealName    string
}

// Mention renders the platform mention markup for a participant ID.
func Mention(participantID string) string {
	return "<@" + participantID + ">"
}
