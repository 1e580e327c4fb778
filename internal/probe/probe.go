// Package probe runs the one-shot backend connectivity check issued when a
// page is mounted. Its outcome is only ever logged.
package probe

import (
	"context"
	"log/slog"

	"github.com/amaljosh/wellness/internal/domain"
)

// Probe checks backend health and logs the result.
type Probe struct {
	checker domain.HealthChecker
	logger  *slog.Logger
}

// New creates a Probe. A nil logger uses slog.Default().
func New(checker domain.HealthChecker, logger *slog.Logger) *Probe {
	if logger == nil {
		logger = slog.Default()
	}
	return &Probe{checker: checker, logger: logger}
}

// Run issues one health check. It never retries and never returns an error.
func (p *Probe) Run(ctx context.Context) {
	body, err := p.checker.Health(ctx)
	if err != nil {
		p.logger.Error("API connection error", "error", err)
		return
	}
	p.logger.Info("API connected successfully", "response", body)
}

// Fire runs the check in the background. The check outlives the caller's
// cancellation so a finished page request does not abort it.
func (p *Probe) Fire(ctx context.Context) {
	go p.Run(context.WithoutCancel(ctx))
}
