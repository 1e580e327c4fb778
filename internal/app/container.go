// Package app builds the application object graph.
package app

import (
	"github.com/samber/do/v2"

	"github.com/amaljosh/wellness/internal/backend"
	"github.com/amaljosh/wellness/internal/config"
	"github.com/amaljosh/wellness/internal/handlers"
	"github.com/amaljosh/wellness/internal/leadform"
	"github.com/amaljosh/wellness/internal/probe"
	"github.com/amaljosh/wellness/internal/server"
)

// NewInjector registers every service. cfg is the only ambient input; all
// components that talk to the backend receive it from here.
func NewInjector(cfg *config.Config) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, newBackendClient)
	do.Provide(i, newProbe)
	do.Provide(i, newFormRegistry)
	do.Provide(i, newServer)

	return i
}

func newBackendClient(i do.Injector) (*backend.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return backend.NewClient(cfg.APIBaseURL(), cfg.BackendTimeout), nil
}

func newProbe(i do.Injector) (*probe.Probe, error) {
	return probe.New(do.MustInvoke[*backend.Client](i), nil), nil
}

func newFormRegistry(i do.Injector) (*leadform.Registry, error) {
	return leadform.NewRegistry(do.MustInvoke[*backend.Client](i)), nil
}

func newServer(i do.Injector) (*server.Server, error) {
	cfg := do.MustInvoke[*config.Config](i)
	forms := do.MustInvoke[*leadform.Registry](i)

	s := server.New(cfg, forms,
		handlers.NewHomeHandler(forms, do.MustInvoke[*probe.Probe](i)),
		handlers.NewContactHandler(forms),
	)
	s.RegisterRoutes()
	return s, nil
}

// Server resolves the fully wired HTTP server.
func Server(i do.Injector) (*server.Server, error) {
	return do.Invoke[*server.Server](i)
}

// Probe resolves the connectivity probe.
func Probe(i do.Injector) (*probe.Probe, error) {
	return do.Invoke[*probe.Probe](i)
}
