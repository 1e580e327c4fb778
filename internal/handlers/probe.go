package handlers

import "context"

// prober fires the background backend connectivity check.
type prober interface {
	Fire(ctx context.Context)
}
