package auth_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"dcbot/auth"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const secret = "8f742231b10e8888abcd99yyyzzz85a5"

func newRouter(signingSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(auth.SignatureInterceptor(signingSecret, slog.Default()))
	r.GET("/dcbot", func(c *gin.Context) { c.String(http.StatusOK, "Hello, world!") })
	r.POST("/dcbot/:command", func(c *gin.Context) {
		c.String(http.StatusOK, c.PostForm("text"))
	})
	return r
}

func sign(body string, at time.Time) (string, string) {
	timestamp := strconv.FormatInt(at.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = fmt.Fprintf(mac, "v0:%s:%s", timestamp, body)
	return timestamp, "v0=" + hex.EncodeToString(mac.Sum(nil))
}

func newCommand(body, timestamp, signature string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/dcbot/echo", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if timestamp != "" {
		r.Header.Set("X-Slack-Request-Timestamp", timestamp)
		r.Header.Set("X-Slack-Signature", signature)
	}
	return r
}

func TestSignatureInterceptor(t *testing.T) {
	body := "command=%2Fecho&text=hello&user_id=ULQ3YEH5G"

	t.Run("should accept a signed command and keep its body", func(t *testing.T) {
		req := require.New(t)
		timestamp, signature := sign(body, time.Now())
		w := httptest.NewRecorder()

		newRouter(secret).ServeHTTP(w, newCommand(body, timestamp, signature))

		req.Equal(http.StatusOK, w.Code)
		req.Equal("hello", w.Body.String())
	})

	t.Run("should reject a command without signature", func(t *testing.T) {
		req := require.New(t)
		w := httptest.NewRecorder()

		newRouter(secret).ServeHTTP(w, newCommand(body, "", ""))

		req.Equal(http.StatusUnauthorized, w.Code)
	})

	t.Run("should reject a tampered body", func(t *testing.T) {
		req := require.New(t)
		timestamp, signature := sign(body, time.Now())
		w := httptest.NewRecorder()

		newRouter(secret).ServeHTTP(w, newCommand(body+"x", timestamp, signature))

		req.Equal(http.StatusUnauthorized, w.Code)
	})

	t.Run("should reject a replayed command", func(t *testing.T) {
		req := require.New(t)
		timestamp, signature := sign(body, time.Now().Add(-time.Hour))
		w := httptest.NewRecorder()

		newRouter(secret).ServeHTTP(w, newCommand(body, timestamp, signature))

		req.Equal(http.StatusUnauthorized, w.Code)
	})

	t.Run("should allow public routes without signature", func(t *testing.T) {
		req := require.New(t)
		w := httptest.NewRecorder()

		newRouter(secret).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dcbot", nil))

		req.Equal(http.StatusOK, w.Code)
	})

	t.Run("should skip the check without secret", func(t *testing.T) {
		req := require.New(t)
		w := httptest.NewRecorder()

		newRouter("").ServeHTTP(w, newCommand(body, "", ""))

		req.Equal(http.StatusOK, w.Code)
	})
}
