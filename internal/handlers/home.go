package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amaljosh/wellness/internal/leadform"
	"github.com/amaljosh/wellness/internal/middleware"
	"github.com/amaljosh/wellness/internal/view"
	"github.com/amaljosh/wellness/web/src/templates/layouts"
	"github.com/amaljosh/wellness/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	forms *leadform.Registry
	probe prober
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(forms *leadform.Registry, probe prober) *HomeHandler {
	return &HomeHandler{forms: forms, probe: probe}
}

// HomeGet renders the page. Every load mounts a fresh form for the visitor
// and fires one connectivity probe; neither the probe nor its outcome
// affects the response.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	form := h.forms.Mount(middleware.VisitorID(c))
	h.probe.Fire(c.Request().Context())

	data := view.ContactFormData(form, leadform.Validation{Valid: true})
	return c.Render(http.StatusOK, "", layouts.Base("", pages.Home(data)))
}
