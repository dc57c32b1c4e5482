// Package web exposes the dispatcher to the chat platform over HTTP.
package web

import (
	"context"
	"dcbot/auth"
	"dcbot/contract"
	"dcbot/runtime/workers"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type healthProbe interface {
	Snapshot() workers.HealthSnapshot
}

type ServerConfig struct {
	Host            string
	Port            int
	SigningSecret   string
	ShutdownTimeout time.Duration
}

// Server is the HTTP front of the bot. It is a contract.Worker so that the
// supervisor restarts it when it dies.
type Server struct {
	log        *slog.Logger
	config     ServerConfig
	dispatcher contract.ICommandDispatcher
	health     healthProbe
	engine     *gin.Engine
}

var _ contract.Worker = (*Server)(nil)

func NewServer(log *slog.Logger, config ServerConfig, dispatcher contract.ICommandDispatcher, health healthProbe) *Server {
	s := &Server{log: log, config: config, dispatcher: dispatcher, health: health}
	s.engine = s.routes()
	return s
}

func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is done, then lets in-flight requests finish for at
// most ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.Address(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting HTTP server", "address", server.Addr, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case err, ok := <-errChan:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func (s *Server) routes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(s.log), auth.SignatureInterceptor(s.config.SigningSecret, s.log))

	engine.GET("/healthz", s.handleHealth)
	bot := engine.Group("/dcbot")
	bot.GET("", s.handleIndex)
	bot.POST("/:command", s.handleCommand)
	return engine
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start))
	}
}
