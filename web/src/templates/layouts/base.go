package layouts

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
	tailwindSrc = "https://cdn.tailwindcss.com"

	// htmxConfig lets htmx swap the 409 and 422 form responses, which carry
	// the re-rendered form, while other errors still do not swap.
	htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"409","swap":true},{"code":"422","swap":true},{"code":"[45]..","swap":false,"error":true}]}`
)

// Base wraps page content in the document shell.
func Base(title string, content ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Meta(h.Name("description"), h.Content("Dietician & Wellness Transformation Coach. Personalized nutrition and holistic wellness for families, online and offline.")),
				h.Meta(h.Name("htmx-config"), h.Content(htmxConfig)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				h.Script(h.Src(tailwindSrc)),
				h.Script(h.Src(htmxSrc), h.Defer()),
			),
			h.Body(
				h.Class("min-h-screen bg-gray-50"),
				g.Group(content),
			),
		),
	)
}
