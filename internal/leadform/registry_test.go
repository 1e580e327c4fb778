package leadform

import (
	"context"
	"testing"
	"time"

	"github.com/amaljosh/wellness/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetMountsOnce(t *testing.T) {
	r := NewRegistry(&fakeSubmitter{})

	a := r.Get("visitor-1")
	b := r.Get("visitor-1")
	c := r.Get("visitor-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_MountStartsFresh(t *testing.T) {
	r := NewRegistry(&fakeSubmitter{err: assert.AnError})
	f := r.Get("visitor-1")
	fillJane(t, f)
	_, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.StatusError, f.Status())

	fresh := r.Mount("visitor-1")

	assert.NotSame(t, f, fresh)
	assert.Same(t, fresh, r.Get("visitor-1"))
	assert.Equal(t, domain.StatusIdle, fresh.Status())
	assert.True(t, fresh.Snapshot().IsEmpty())
}

func TestRegistry_Prune(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	r := NewRegistry(&fakeSubmitter{})
	r.now = clock

	r.Mount("old")
	now = now.Add(20 * time.Minute)
	r.Mount("recent")
	now = now.Add(15 * time.Minute)

	removed := r.Prune(30 * time.Minute)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_PruneKeepsSubmittingForms(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sub := &fakeSubmitter{gate: make(chan struct{}), entered: make(chan struct{}, 1)}
	r := NewRegistry(sub)
	r.now = func() time.Time { return now }

	f := r.Mount("busy")
	fillJane(t, f)
	done := make(chan struct{})
	go func() {
		_, _ = f.Submit(context.Background())
		close(done)
	}()
	<-sub.entered

	now = now.Add(time.Hour)
	assert.Zero(t, r.Prune(time.Minute))
	assert.Equal(t, 1, r.Len())

	close(sub.gate)
	<-done
}
