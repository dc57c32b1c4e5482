package web

import (
	"context"
	"dcbot/domain"
	"dcbot/errors"
	"dcbot/mocks"
	"dcbot/runtime/workers"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) (*Server, *mocks.MockICommandDispatcher) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockICommandDispatcher(ctrl)
	health := workers.NewHealthMonitoringWorker(slog.Default(), time.Minute)
	server := NewServer(slog.Default(), ServerConfig{Host: "127.0.0.1", ShutdownTimeout: time.Second}, dispatcher, health)
	return server, dispatcher
}

func postCommand(server *Server, route string, form url.Values) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/dcbot/"+route, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, r)
	return w
}

func floorForm() url.Values {
	return url.Values{
		"command":      {"/floor"},
		"text":         {""},
		"user_id":      {"U0000000A"},
		"channel_id":   {"GBABYHEAP"},
		"response_url": {"https://hooks.slack.com/commands/T1/2"},
	}
}

func TestServer_Index(t *testing.T) {
	req := require.New(t)
	server, dispatcher := newTestServer(t)
	dispatcher.EXPECT().Hello().Return("Hello, world!")

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dcbot", nil))

	req.Equal(http.StatusOK, w.Code)
	req.Equal("Hello, world!", w.Body.String())
}

func TestServer_Health(t *testing.T) {
	req := require.New(t)
	server, _ := newTestServer(t)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	req.Equal(http.StatusOK, w.Code)
	var snapshot workers.HealthSnapshot
	req.NoError(json.Unmarshal(w.Body.Bytes(), &snapshot))
	req.NotZero(snapshot.PID)
	req.Positive(snapshot.Goroutines)
}

func TestServer_Command_Parses_The_Form(t *testing.T) {
	req := require.New(t)
	server, dispatcher := newTestServer(t)

	// Given the dispatcher expects the exact form fields
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), "floor", domain.CommandRequest{
			Command:     "/floor",
			UserID:      "U0000000A",
			ChannelID:   "GBABYHEAP",
			ResponseURL: "https://hooks.slack.com/commands/T1/2",
		}).
		Return(domain.PlainText("_Request received :) Hang on._"), nil)

	// When the platform posts the command
	w := postCommand(server, "floor", floorForm())

	// Then a plain reply is written as bare text
	req.Equal(http.StatusOK, w.Code)
	req.Equal("_Request received :) Hang on._", w.Body.String())
}

func TestServer_Command_Writes_Structured_Replies_As_JSON(t *testing.T) {
	req := require.New(t)
	server, dispatcher := newTestServer(t)
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), "floor", gomock.Any()).
		Return(domain.Response{
			ResponseType: domain.Ephemeral,
			Text:         "0 services online.",
			Attachments:  []domain.Attachment{{Text: ""}},
		}, nil)

	w := postCommand(server, "floor", floorForm())

	req.Equal(http.StatusOK, w.Code)
	req.Contains(w.Header().Get("Content-Type"), "application/json")
	req.JSONEq(`{"attachments":[{"text":""}],"response_type":"ephemeral","text":"0 services online."}`, w.Body.String())
}

func TestServer_Command_Error_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unknown command", fmt.Errorf("command %q: %w", "nope", errors.ErrNotFound), http.StatusNotFound},
		{"route mismatch", errors.ErrCommandMismatch, http.StatusBadRequest},
		{"invalid request", errors.ErrInvalidRequest, http.StatusBadRequest},
		{"store failure", fmt.Errorf("badger closed"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			server, dispatcher := newTestServer(t)
			dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Response{}, tt.err)

			w := postCommand(server, "floor", floorForm())

			req.Equal(tt.code, w.Code)
		})
	}
}

func TestServer_Run_Stops_With_Context(t *testing.T) {
	req := require.New(t)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	port := listener.Addr().(*net.TCPAddr).Port
	req.NoError(listener.Close())

	server, dispatcher := newTestServer(t)
	server.config.Port = port
	dispatcher.EXPECT().Hello().Return("Hello, world!").AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	// When the server answers, then the context is cancelled
	req.Eventually(func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/dcbot", server.Address()))
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	cancel()

	// Then Run returns cleanly
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("server did not stop")
	}
}
