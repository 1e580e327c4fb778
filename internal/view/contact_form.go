// Package view maps application state into the View Models the templates render.
package view

import (
	"github.com/amaljosh/wellness/internal/leadform"
	"github.com/amaljosh/wellness/internal/view/dto/contact"
)

// ContactFormData builds the form region's View Model from a mounted form
// and the validation outcome of the request being answered.
func ContactFormData(form *leadform.Form, validation leadform.Validation) contact.FormData {
	status := form.Status()
	data := contact.FormData{
		Values: form.Snapshot(),
		Status: status,
		Banner: leadform.Banner(status),
	}
	if len(validation.Violations) > 0 {
		data.Errors = make(map[string]string, len(validation.Violations))
		for _, v := range validation.Violations {
			// Keep the first message per field.
			if _, seen := data.Errors[v.Field]; !seen {
				data.Errors[v.Field] = v.Message
			}
		}
	}
	return data
}
