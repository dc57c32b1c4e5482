package e2e

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testFloorSuite struct {
	BaseHTTPSuite
}

func TestFloorSuite(t *testing.T) {
	suite.Run(t, &testFloorSuite{})
}

func (s *testFloorSuite) TestFloorRoundTrip() {
	s.Run("Step 0: The bot is up", func() {
		code, body := s.Get("/dcbot")
		s.Require().Equal(http.StatusOK, code)
		s.Require().Equal("Hello, world!", body)

		code, body = s.Get("/healthz")
		s.Require().Equal(http.StatusOK, code)
		var health map[string]any
		s.Require().NoError(json.Unmarshal([]byte(body), &health))
		s.Require().Contains(health, "uptime")
	})

	s.Run("Step 1: Ask for the floor", func() {
		code, body := s.Command("Request the floor", "floor", "")
		s.Require().Equal(http.StatusOK, code)
		s.Require().Contains(body, "You want to be on the CTF floor")
	})

	s.Run("Step 2: Show up in the wants to go bucket", func() {
		code, body := s.Command("Floor status", "floorstatus", "")
		s.Require().Equal(http.StatusOK, code)

		var reply struct {
			ResponseType string `json:"response_type"`
			Attachments  []struct {
				Text string `json:"text"`
			} `json:"attachments"`
		}
		s.Require().NoError(json.Unmarshal([]byte(body), &reply))
		s.Require().Equal("ephemeral", reply.ResponseType)
		s.Require().Len(reply.Attachments, 5)
		s.Require().Contains(reply.Attachments[0].Text, "<@"+s.Config.UserID+"> | Wants to go")
	})

	s.Run("Step 3: Leave the floor queue", func() {
		code, body := s.Command("Leave the floor", "leavefloor", "")
		s.Require().Equal(http.StatusOK, code)
		s.Require().Contains(body, "is not on the floor any more")
	})
}
