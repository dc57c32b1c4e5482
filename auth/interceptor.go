package auth

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
)

// Routes reachable without a request signature.
var publicRoutes = map[string]struct{}{
	http.MethodGet + " /dcbot":   {},
	http.MethodGet + " /healthz": {},
}

// SignatureInterceptor rejects slash commands whose signature does not match
// signingSecret. An empty secret disables the check (local runs, tests).
func SignatureInterceptor(signingSecret string, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if signingSecret == "" || isPublicRoute(c.Request.Method, c.FullPath()) {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
			return
		}
		// The form is parsed again by the handler.
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		verifier, err := slack.NewSecretsVerifier(c.Request.Header, signingSecret)
		if err != nil {
			log.Debug("Missing or stale signature headers", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "signature is missing"})
			return
		}
		if _, err = verifier.Write(body); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "cannot verify signature"})
			return
		}
		if err = verifier.Ensure(); err != nil {
			log.Warn("Rejected unsigned command", "path", c.FullPath(), "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
		c.Next()
	}
}

func isPublicRoute(method, path string) bool {
	_, ok := publicRoutes[method+" "+path]
	return ok
}
