package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amaljosh/wellness/internal/backend"
	"github.com/amaljosh/wellness/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jane = domain.LeadSubmission{
	FullName:      "Jane Doe",
	Email:         "jane@example.com",
	Phone:         "5551234",
	HealthConcern: "pcos",
	HealthGoals:   "lose weight",
}

func TestClient_SubmitLead(t *testing.T) {
	t.Run("posts the five fields as JSON", func(t *testing.T) {
		var calls atomic.Int32
		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/contact", r.URL.Path)
			assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &got))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":"abc"}`))
		}))
		defer srv.Close()

		c := backend.NewClient(srv.URL+"/api", time.Second)
		require.NoError(t, c.SubmitLead(context.Background(), jane))

		assert.EqualValues(t, 1, calls.Load())
		assert.Equal(t, map[string]string{
			"full_name":      "Jane Doe",
			"email":          "jane@example.com",
			"phone":          "5551234",
			"health_concern": "pcos",
			"health_goals":   "lose weight",
		}, got)
	})

	t.Run("non-2xx is a StatusError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"detail":"Failed to submit contact form"}`, http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := backend.NewClient(srv.URL+"/api", time.Second)
		err := c.SubmitLead(context.Background(), jane)

		var statusErr *backend.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "Failed to submit contact form")
	})

	t.Run("unreachable backend wraps ErrBackendUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c := backend.NewClient(url+"/api", time.Second)
		err := c.SubmitLead(context.Background(), jane)

		assert.True(t, errors.Is(err, domain.ErrBackendUnavailable))
	})

	t.Run("timeout wraps ErrBackendUnavailable", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		c := backend.NewClient(srv.URL+"/api", 50*time.Millisecond)
		err := c.SubmitLead(context.Background(), jane)

		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	})
}

func TestClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer srv.Close()

	body, err := backend.NewClient(srv.URL+"/api", time.Second).Health(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"healthy"}`, body)

	_, err = backend.NewClient(srv.URL+"/nope", time.Second).Health(context.Background())
	var statusErr *backend.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}
