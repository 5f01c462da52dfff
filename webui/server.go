// Package webui serves the browser front-ends for the translator and
// chatbot apps.
package webui

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deepnoodle-ai/parley/log"
)

// Server wraps an http.Server with context-driven graceful shutdown.
type Server struct {
	addr    string
	handler http.Handler
	logger  log.Logger
}

// NewServer creates a server for the given handler.
func NewServer(addr string, handler http.Handler, logger log.Logger) *Server {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Server{addr: addr, handler: handler, logger: logger}
}

// Start serves HTTP until the context is canceled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           logRequests(s.logger, s.handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func logRequests(logger log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}
