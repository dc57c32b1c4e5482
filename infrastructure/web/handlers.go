package web

import (
	"dcbot/domain"
	"dcbot/errors"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
)

func (s *Server) handleIndex(c *gin.Context) {
	c.String(http.StatusOK, s.dispatcher.Hello())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, s.health.Snapshot())
}

// handleCommand answers a slash command. Plain replies are written as bare
// text, anything else as the JSON message the platform renders.
func (s *Server) handleCommand(c *gin.Context) {
	command, err := slack.SlashCommandParse(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed slash command"})
		return
	}

	response, err := s.dispatcher.Dispatch(c.Request.Context(), c.Param("command"), domain.CommandRequest{
		Command:     command.Command,
		Text:        command.Text,
		UserID:      command.UserID,
		ChannelID:   command.ChannelID,
		ResponseURL: command.ResponseURL,
	})
	switch {
	case stderrors.Is(err, errors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case stderrors.Is(err, errors.ErrCommandMismatch), stderrors.Is(err, errors.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "command failed"})
		return
	}

	if response.IsPlain() {
		c.String(http.StatusOK, response.Text)
		return
	}
	c.JSON(http.StatusOK, response)
}
