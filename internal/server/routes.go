package server

import (
	"github.com/labstack/echo/v4"

	"github.com/amaljosh/wellness/internal/handlers"
	"github.com/amaljosh/wellness/internal/middleware"
	"github.com/amaljosh/wellness/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/health", handlers.HealthGet)

	page := s.E.Group("", middleware.Visitor)
	page.GET("/", s.homeHandler.HomeGet)
	page.POST("/contact", s.contactHandler.ContactPost, middleware.RateLimiter(s.Cfg.RateLimitPerMinute))
}
