package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	shutdownTimeout = 10 * time.Second
	pruneInterval   = time.Minute
)

// Start runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully. Idle visitor forms are pruned while it runs.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", s.Cfg.ServerAddress, "backend", s.Cfg.BackendURL)
		if err := s.E.Start(s.Cfg.ServerAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	go s.pruneForms(ctx)

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.E.Shutdown(shutdownCtx)
}

func (s *Server) pruneForms(ctx context.Context) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.forms.Prune(s.Cfg.FormIdleTTL); n > 0 {
				slog.Debug("Pruned idle forms", "removed", n, "remaining", s.forms.Len())
			}
		}
	}
}
