package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amaljosh/wellness/internal/domain"
	"github.com/amaljosh/wellness/internal/leadform"
	"github.com/amaljosh/wellness/internal/middleware"
	"github.com/amaljosh/wellness/internal/view"
	"github.com/amaljosh/wellness/web/src/templates/layouts"
	"github.com/amaljosh/wellness/web/src/templates/pages"
	"github.com/amaljosh/wellness/web/src/templates/partials"
)

var leadFields = []string{
	domain.FieldFullName,
	domain.FieldEmail,
	domain.FieldPhone,
	domain.FieldHealthConcern,
	domain.FieldHealthGoals,
}

// ContactHandler handles lead capture form submissions.
type ContactHandler struct {
	forms *leadform.Registry
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(forms *leadform.Registry) *ContactHandler {
	return &ContactHandler{forms: forms}
}

// ContactPost copies the posted fields onto the visitor's form, validates
// them and submits to the backend. A backend failure is answered with 200
// and the error banner; the typed values stay in the inputs.
func (h *ContactHandler) ContactPost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())
	form := h.forms.Get(middleware.VisitorID(c))

	if form.Status() == domain.StatusSubmitting {
		logger.Warn("Rejected duplicate lead submission")
		return h.render(c, http.StatusConflict, form, leadform.Validation{Valid: true})
	}

	for _, name := range leadFields {
		if err := form.UpdateField(name, c.FormValue(name)); err != nil {
			return err
		}
	}

	validation := leadform.Validate(form.Snapshot())
	if !validation.Valid {
		logger.Info("Lead submission failed validation", "violations", len(validation.Violations))
		return h.render(c, http.StatusUnprocessableEntity, form, validation)
	}

	// The backend call outlives the visitor's request; its result lands on the form.
	status, err := form.Submit(context.WithoutCancel(c.Request().Context()))
	if errors.Is(err, domain.ErrSubmissionInFlight) {
		logger.Warn("Rejected duplicate lead submission")
		return h.render(c, http.StatusConflict, form, validation)
	}
	if err != nil {
		return err
	}

	logger.Info("Lead submission resolved", "status", status)
	return h.render(c, http.StatusOK, form, validation)
}

// render answers htmx requests with the form region only and plain form
// posts with the whole page.
func (h *ContactHandler) render(c echo.Context, code int, form *leadform.Form, validation leadform.Validation) error {
	data := view.ContactFormData(form, validation)
	if isHTMX(c) {
		return c.Render(code, "", partials.ContactForm(data))
	}
	return c.Render(code, "", layouts.Base("", pages.Home(data)))
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
