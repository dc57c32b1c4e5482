package gateway

import (
	"context"
	"dcbot/contract"
	"dcbot/domain"
	"net/http"

	"github.com/samber/lo"
	"github.com/slack-go/slack"
)

// WebhookResponder posts deferred replies to the response URL of a slash command.
type WebhookResponder struct {
	client *http.Client
}

var _ contract.IResponder = (*WebhookResponder)(nil)

// NewWebhookResponder uses http.DefaultClient when client is nil.
func NewWebhookResponder(client *http.Client) *WebhookResponder {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookResponder{client: client}
}

func (r *WebhookResponder) Respond(ctx context.Context, responseURL string, response domain.Response) error {
	return normalize(slack.PostWebhookCustomHTTPContext(ctx, responseURL, r.client, ToWebhookMessage(response)))
}

// ToWebhookMessage converts a reply into the slack payload, which has the
// same JSON shape as domain.Response.
func ToWebhookMessage(response domain.Response) *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Text:         response.Text,
		ResponseType: string(response.ResponseType),
		Attachments: lo.Map(response.Attachments, func(a domain.Attachment, _ int) slack.Attachment {
			return slack.Attachment{Text: a.Text}
		}),
	}
}
