package e2e

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

// BaseHTTPSuite talks to a running bot the way the chat platform does:
// signed form posts on /dcbot/<command>.
type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration and skips everything when
// no bot address is configured.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BotAddr == "" {
		s.T().Skip("DCBOT_ADDR is not set")
	}
	s.client = &http.Client{Timeout: 10 * time.Second}
}

func (s *BaseHTTPSuite) header(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// Command posts a slash command and returns the status code and the body of
// the synchronous reply.
func (s *BaseHTTPSuite) Command(name, command, text string) (int, string) {
	t := s.T()
	s.header(t, name)

	form := url.Values{
		"command":      {"/" + command},
		"text":         {text},
		"user_id":      {s.Config.UserID},
		"channel_id":   {""},
		"response_url": {"https://example.invalid/e2e/" + command},
	}
	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, s.Config.BotAddr+"/dcbot/"+command, strings.NewReader(body))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if s.Config.SigningSecret != "" {
		timestamp := strconv.FormatInt(time.Now().Unix(), 10)
		mac := hmac.New(sha256.New, []byte(s.Config.SigningSecret))
		_, _ = fmt.Fprintf(mac, "v0:%s:%s", timestamp, body)
		req.Header.Set("X-Slack-Request-Timestamp", timestamp)
		req.Header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(mac.Sum(nil)))
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Failed to reach the bot at "+s.Config.BotAddr)
	defer resp.Body.Close()
	reply, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	t.Logf("POST /dcbot/%s [%d] in %v", command, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		t.Logf("RESPONSE:\n%s", reply)
	}
	return resp.StatusCode, string(reply)
}

func (s *BaseHTTPSuite) Get(path string) (int, string) {
	resp, err := s.client.Get(s.Config.BotAddr + path)
	s.Require().NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(body)
}
