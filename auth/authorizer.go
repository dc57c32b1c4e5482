package auth

import (
	"dcbot/domain"
	"dcbot/errors"
	"fmt"
)

type participantLookup interface {
	GetParticipant(id string) (*domain.Participant, error)
}

// Authorizer answers the two questions every command asks: is the caller a
// player (a member of the main channel) and is the caller an administrator.
type Authorizer struct {
	participants participantLookup
	admins       map[string]struct{}
}

func NewAuthorizer(participants participantLookup, admins map[string]struct{}) *Authorizer {
	if admins == nil {
		admins = map[string]struct{}{}
	}
	return &Authorizer{participants: participants, admins: admins}
}

func (a *Authorizer) IsAdmin(userID string) bool {
	_, ok := a.admins[userID]
	return ok
}

// RequirePlayer fails with errors.ErrNotAPlayer when userID is not in the directory.
func (a *Authorizer) RequirePlayer(userID string) error {
	participant, err := a.participants.GetParticipant(userID)
	if err != nil {
		return fmt.Errorf("look up caller %s: %w", userID, err)
	}
	if participant == nil {
		return errors.ErrNotAPlayer
	}
	return nil
}

// RequireAdmin fails with errors.ErrPermissionDenied when userID is not on the allow-list.
func (a *Authorizer) RequireAdmin(userID string) error {
	if !a.IsAdmin(userID) {
		return errors.ErrPermissionDenied
	}
	return nil
}
