package runtime

import (
	"context"
	"dcbot/domain"
	"dcbot/errors"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

func (d *Dispatcher) requestFloor(_ context.Context, req domain.CommandRequest) (domain.Response, error) {
	if err := d.floor.RequestFloor(req.UserID); err != nil {
		return domain.Response{}, err
	}
	return domain.PlainText(msgFloorRequest), nil
}

func (d *Dispatcher) floorStatus(_ context.Context, _ domain.CommandRequest) (domain.Response, error) {
	buckets, err := d.floor.Buckets()
	if err != nil {
		return domain.Response{}, err
	}

	wantsToGo := lo.Map(buckets.WantsToGo, func(r domain.FloorRecord, _ int) string {
		return fmt.Sprintf("%s | %s", domain.Mention(r.ParticipantID), r.Status)
	})
	mentions := func(records []domain.FloorRecord) string {
		return strings.Join(lo.Map(records, func(r domain.FloorRecord, _ int) string {
			return domain.Mention(r.ParticipantID)
		}), "\n")
	}

	return domain.Response{
		ResponseType: domain.Ephemeral,
		Text:         fmt.Sprintf("*There are %d players who want to go to the CTF floor.*", len(buckets.WantsToGo)),
		Attachments: []domain.Attachment{
			{Text: strings.Join(wantsToGo, "\n")},
			{Text: fmt.Sprintf("*%d players are currently on the floor.*", len(buckets.OnTheFloor))},
			{Text: mentions(buckets.OnTheFloor)},
			{Text: fmt.Sprintf("*%d players are OK either way.*", len(buckets.Neutral))},
			{Text: mentions(buckets.Neutral)},
		},
	}, nil
}

func (d *Dispatcher) approve(_ context.Context, req domain.CommandRequest) (domain.Response, error) {
	reference := strings.TrimSpace(req.Text)
	if reference == "" {
		return domain.PlainText(msgMissingPlayer), nil
	}
	participantID, err := d.resolveParticipant(reference)
	if stderrors.Is(err, errors.ErrUnknownParticipant) {
		return domain.PlainText(fmt.Sprintf(msgUnknownPlayer, reference)), nil
	}
	if err != nil {
		return domain.Response{}, err
	}

	if err = d.floor.AdmitToFloor(participantID); err != nil {
		return domain.Response{}, err
	}

	d.jobs.Go(req.Command, func(ctx context.Context) {
		d.broadcaster.Broadcast(ctx, participantID, msgInvitedOnFloor)
		d.reply(ctx, req, domain.EphemeralText(fmt.Sprintf(msgFloorInvite, participantID)))
	})
	return domain.PlainText(fmt.Sprintf(msgSetOnFloor, participantID)), nil
}

// leaveFloor lets a player leave the floor, or an administrator send
// someone else away.
func (d *Dispatcher) leaveFloor(_ context.Context, req domain.CommandRequest) (domain.Response, error) {
	participantID := req.UserID
	if reference := strings.TrimSpace(req.Text); reference != "" && !d.isSelf(reference, req.UserID) {
		// Only administrators may look anyone else up.
		if !d.authorizer.IsAdmin(req.UserID) {
			return domain.PlainText(msgPermissionDenied), nil
		}
		resolved, err := d.resolveParticipant(reference)
		if stderrors.Is(err, errors.ErrUnknownParticipant) {
			return domain.EphemeralText(fmt.Sprintf(msgUnknownPlayer, reference)), nil
		}
		if err != nil {
			return domain.Response{}, err
		}
		participantID = resolved
	}

	if err := d.floor.LeaveFloor(participantID); err != nil {
		return domain.Response{}, err
	}
	return domain.PlainText(fmt.Sprintf(msgLeftFloor, participantID)), nil
}

// isSelf reports whether reference names the caller, by mention, ID or handle.
func (d *Dispatcher) isSelf(reference, callerID string) bool {
	resolved, err := d.resolveParticipant(reference)
	return err == nil && resolved == callerID
}

// resolveParticipant turns what an administrator typed into the ID of a
// known participant. Mentions and raw IDs are looked up by ID, anything
// else by handle.
func (d *Dispatcher) resolveParticipant(reference string) (string, error) {
	ref := domain.ParseParticipantReference(reference)

	var participant *domain.Participant
	var err error
	switch ref.Kind {
	case domain.ReferenceMention, domain.ReferenceID:
		participant, err = d.directory.GetParticipant(ref.Value)
	default:
		participant, err = d.directory.GetParticipantByHandle(ref.Value)
	}
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", reference, err)
	}
	if participant == nil {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownParticipant, reference)
	}
	return participant.ID, nil
}
