package domain

import (
	"regexp"
	"strings"
)

// participantIDLength is the fixed length of a platform user ID (e.g. "ULQ3YEH5G").
const participantIDLength = 9

var participantIDPattern = regexp.MustCompile(`^[A-Z0-9]{9}$`)

// ReferenceKind tells how a free-form participant reference was written.
type ReferenceKind int

const (
	ReferenceMention ReferenceKind = iota // <@ULQ3YEH5G>
	ReferenceID                           // ULQ3YEH5G
	ReferenceHandle                       // @fish
	ReferenceName                         // fish
)

// ParticipantReference is a parsed reference to a participant.
// Value is an ID for ReferenceMention and ReferenceID, a handle otherwise.
type ParticipantReference struct {
	Kind  ReferenceKind
	Value string
}

// IsParticipantID reports whether s has the shape of a platform user ID.
func IsParticipantID(s string) bool {
	return participantIDPattern.MatchString(s)
}

// ParseParticipantReference classifies text, trying in order: an angle
// bracket mention of exact length, a raw ID, an "@"-prefixed handle and
// finally a bare handle.
func ParseParticipantReference(text string) ParticipantReference {
	text = strings.TrimSpace(text)
	if len(text) == participantIDLength+3 && strings.HasPrefix(text, "<@") && strings.HasSuffix(text, ">") {
		return ParticipantReference{Kind: ReferenceMention, Value: text[2 : len(text)-1]}
	}
	if IsParticipantID(text) {
		return ParticipantReference{Kind: ReferenceID, Value: text}
	}
	if strings.HasPrefix(text, "@") {
		return ParticipantReference{Kind: ReferenceHandle, Value: text[1:]}
	}
	return ParticipantReference{Kind: ReferenceName, Value: text}
}
