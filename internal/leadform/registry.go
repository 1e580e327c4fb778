package leadform

import (
	"sync"
	"time"

	"github.com/amaljosh/wellness/internal/domain"
)

// Registry keeps one mounted form per visitor.
type Registry struct {
	mu        sync.RWMutex
	forms     map[string]*Form
	submitter domain.LeadSubmitter
	now       func() time.Time
}

// NewRegistry creates an empty registry whose forms submit through submitter.
func NewRegistry(submitter domain.LeadSubmitter) *Registry {
	return &Registry{
		forms:     make(map[string]*Form),
		submitter: submitter,
		now:       time.Now,
	}
}

// Mount replaces the visitor's form with a fresh, empty one. A submission
// still running on the old instance completes against that instance only.
func (r *Registry) Mount(visitorID string) *Form {
	f := newForm(r.submitter, r.now)
	r.mu.Lock()
	r.forms[visitorID] = f
	r.mu.Unlock()
	return f
}

// Get returns the visitor's form, mounting one if none exists.
func (r *Registry) Get(visitorID string) *Form {
	r.mu.RLock()
	f, ok := r.forms[visitorID]
	r.mu.RUnlock()
	if ok {
		return f
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.forms[visitorID]; ok {
		return f
	}
	f = newForm(r.submitter, r.now)
	r.forms[visitorID] = f
	return f
}

// Prune drops forms not touched within ttl, except ones still submitting.
// It returns how many were removed.
func (r *Registry) Prune(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, f := range r.forms {
		if f.Status() == domain.StatusSubmitting {
			continue
		}
		if f.TouchedAt().Before(cutoff) {
			delete(r.forms, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of mounted forms.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.forms)
}
