package gateway

import (
	"context"
	"dcbot/domain"
	"dcbot/errors"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWebhookResponder_Posts_Response_As_Json(t *testing.T) {
	req := require.New(t)
	received := make(chan map[string]any, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		received <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// Given an ephemeral reply with one attachment
	response := domain.Response{
		ResponseType: domain.Ephemeral,
		Text:         "_Successfully created a private channel for service babyheap._",
		Attachments:  []domain.Attachment{{Text: "details"}},
	}

	// When it is delivered
	err := NewWebhookResponder(nil).Respond(context.Background(), server.URL, response)

	// Then the body carries the three fields
	req.NoError(err)
	body := <-received
	req.Equal("ephemeral", body["response_type"])
	req.Equal(response.Text, body["text"])
	attachments, ok := body["attachments"].([]any)
	req.True(ok)
	req.Len(attachments, 1)
	req.Equal("details", attachments[0].(map[string]any)["text"])
}

func TestWebhookResponder_Server_Error_Is_Remote_Error(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewWebhookResponder(server.Client()).Respond(context.Background(), server.URL, domain.PlainText("hi"))

	req.Error(err)
	var remoteErr *errors.RemoteError
	req.ErrorAs(err, &remoteErr)
}
