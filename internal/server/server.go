package server

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/amaljosh/wellness/internal/config"
	"github.com/amaljosh/wellness/internal/handlers"
	"github.com/amaljosh/wellness/internal/leadform"
	appmw "github.com/amaljosh/wellness/internal/middleware"
	"github.com/amaljosh/wellness/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E              *echo.Echo
	Cfg            *config.Config
	forms          *leadform.Registry
	homeHandler    *handlers.HomeHandler
	contactHandler *handlers.ContactHandler
}

// New creates a Server with its middleware chain installed. Routes are
// added by RegisterRoutes.
func New(cfg *config.Config, forms *leadform.Registry, home *handlers.HomeHandler, contact *handlers.ContactHandler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmw.Logger)
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	return &Server{
		E:              e,
		Cfg:            cfg,
		forms:          forms,
		homeHandler:    home,
		contactHandler: contact,
	}
}

// Forms is a getter for the server's form registry, useful for testing.
func (s *Server) Forms() *leadform.Registry {
	return s.forms
}
