package runtime

import (
	"context"
	"dcbot/domain"
	"fmt"
)

// echo is not gated, it is the smoke test of a fresh installation.
func (d *Dispatcher) echo(_ context.Context, req domain.CommandRequest) (domain.Response, error) {
	message := fmt.Sprintf(msgEcho, req.UserID, req.Text)
	d.deferReply(req, func(context.Context) domain.Response {
		return domain.EphemeralText(message)
	})
	return domain.PlainText(msgRequestReceived), nil
}

func (d *Dispatcher) help(_ context.Context, _ domain.CommandRequest) (domain.Response, error) {
	return domain.Response{
		ResponseType: domain.Ephemeral,
		Attachments:  []domain.Attachment{{Text: helpText}},
	}, nil
}

func (d *Dispatcher) notImplemented(_ context.Context, _ domain.CommandRequest) (domain.Response, error) {
	return domain.PlainText(msgNotImplemented), nil
}
