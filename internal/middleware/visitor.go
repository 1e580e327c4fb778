package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	visitorSessionName = "visitor-session"
	visitorIDKey       = "visitor_id"
	// VisitorContextKey is the echo context key holding the visitor id.
	VisitorContextKey = "visitor_id"
)

// Visitor assigns every browser a stable anonymous id kept in a session
// cookie. Forms are mounted per visitor id. It must run after the session
// middleware.
func Visitor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(visitorSessionName, c)
		if sess == nil {
			return fmt.Errorf("visitor session: %w", err)
		}
		if err != nil {
			// A cookie we cannot decode (rotated secret, tampering) gets a fresh session.
			FromContext(c.Request().Context()).Warn("Discarding unreadable visitor session", "error", err)
		}

		id, _ := sess.Values[visitorIDKey].(string)
		if _, parseErr := uuid.Parse(id); parseErr != nil {
			id = uuid.NewString()
			sess.Values[visitorIDKey] = id
			sess.Options.Path = "/"
			sess.Options.HttpOnly = true
			sess.Options.SameSite = http.SameSiteLaxMode
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				slog.Error("Failed to save visitor session", "error", err)
			}
		}

		c.Set(VisitorContextKey, id)
		return next(c)
	}
}

// VisitorID returns the id set by the Visitor middleware, or "" without it.
func VisitorID(c echo.Context) string {
	id, _ := c.Get(VisitorContextKey).(string)
	return id
}
