package pages

import (
	"github.com/amaljosh/wellness/internal/content"
	"github.com/amaljosh/wellness/internal/domain"
	"github.com/amaljosh/wellness/internal/view/dto/contact"
	"github.com/amaljosh/wellness/web/src/templates/partials"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const container = "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"

// Home is the single marketing page. The contact form region is the only
// part that varies between renders.
func Home(form contact.FormData) g.Node {
	return g.Group([]g.Node{
		SiteHeader(),
		Main(
			Hero(),
			Mission(),
			Services(content.Services()),
			Testimonials(content.Testimonials),
			ContactSection(form),
		),
		SiteFooter(),
	})
}

// SiteHeader renders the brand and the in-page navigation.
func SiteHeader() g.Node {
	return Header(
		Class("bg-white shadow-sm"),
		Div(
			Class(container),
			Div(
				Class("flex justify-between items-center py-6"),
				Div(
					Class("flex items-center"),
					H1(Class("text-3xl font-bold text-green-600"), g.Text(content.BrandName)),
					Span(Class("ml-2 text-gray-600"), g.Text(content.BrandSubtitle)),
				),
				Nav(
					Class("hidden md:flex space-x-8"),
					g.Map(content.Nav, func(l content.NavLink) g.Node {
						return A(Href(l.Href), Class("text-gray-700 hover:text-green-600"), g.Text(l.Label))
					}),
				),
			),
		),
	)
}

// Hero introduces the coach.
func Hero() g.Node {
	return Section(
		ID("home"),
		Class("bg-gradient-to-r from-green-50 to-blue-50 py-20"),
		Div(
			Class(container),
			Div(
				ID("about"),
				Class("text-center"),
				H1(Class("text-4xl md:text-6xl font-bold text-gray-900 mb-6"), g.Text(content.CoachName)),
				P(Class("text-xl md:text-2xl text-gray-600 mb-8"), g.Text(content.CoachTitle)),
				Div(
					Class("bg-white p-6 rounded-lg shadow-lg inline-block mb-8"),
					P(Class("text-2xl font-semibold text-green-600 mb-2"), g.Text(content.Tagline)),
					P(Class("text-lg text-gray-700"), g.Text(content.SubTagline)),
				),
				P(Class("text-lg text-gray-700 max-w-4xl mx-auto mb-8"), g.Text(content.HeroStory)),
				P(Class("text-lg font-semibold text-blue-600 mb-8"), g.Text(content.Reach)),
				Div(
					Class("flex flex-col sm:flex-row gap-4 justify-center"),
					A(Href("#contact"), Class("bg-green-600 hover:bg-green-700 text-white font-bold py-3 px-8 rounded-lg transition duration-300"),
						g.Text("Join My Wellness Community")),
					A(Href("#about"), Class("bg-blue-600 hover:bg-blue-700 text-white font-bold py-3 px-8 rounded-lg transition duration-300"),
						g.Text("Read My Story")),
				),
			),
		),
	)
}

// Mission renders the 2030 mission and its headline figures.
func Mission() g.Node {
	return Section(
		Class("py-16 bg-white"),
		Div(
			Class(container),
			Div(
				Class("text-center mb-12"),
				H2(Class("text-3xl font-bold text-gray-900 mb-4"), g.Text(content.MissionTitle)),
				P(Class("text-xl text-gray-600"), g.Text(content.MissionSubtitle)),
				P(Class("text-lg text-green-600 mt-2"), g.Text(content.MissionPillars)),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Map(content.Stats, func(s domain.Stat) g.Node {
					return Div(
						Class("text-center"),
						Div(Class("text-4xl font-bold mb-2 "+s.Color), g.Text(s.Value)),
						Div(Class("text-gray-700"), g.Text(s.Label)),
					)
				}),
			),
		),
	)
}

// Services renders the catalog in the order given.
func Services(services []domain.ServiceDescriptor) g.Node {
	return Section(
		ID("services"),
		Class("py-20 bg-gray-50"),
		Div(
			Class(container),
			Div(
				Class("text-center mb-12"),
				H2(Class("text-3xl font-bold text-gray-900 mb-4"), g.Text(content.ServicesTitle)),
				P(Class("text-xl text-gray-600 mb-2"), g.Text(content.ServicesIntro)),
				P(Class("text-lg text-green-600"), g.Text(content.ServicesApproach)),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(services, func(s domain.ServiceDescriptor) g.Node {
					return Div(
						Class("service bg-white rounded-lg p-6 hover:shadow-lg transition duration-300"),
						H3(Class("text-xl font-bold text-gray-800 mb-3"), g.Text(s.Title)),
						P(Class("text-gray-600"), g.Text(s.Description)),
					)
				}),
			),
		),
	)
}

// Testimonials renders the success stories.
func Testimonials(stories []domain.Testimonial) g.Node {
	return Section(
		ID("testimonials"),
		Class("py-20 bg-green-50"),
		Div(
			Class(container),
			H2(Class("text-3xl font-bold text-gray-900 mb-12 text-center"), g.Text(content.TestimonialsTitle)),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Map(stories, func(s domain.Testimonial) g.Node {
					return Figure(
						Class("bg-white rounded-lg p-6 shadow"),
						BlockQuote(Class("text-gray-700 italic mb-4"), g.Text(s.Quote)),
						FigCaption(Class("text-sm font-semibold text-green-700"), g.Text(s.Author)),
					)
				}),
			),
		),
	)
}

// ContactSection places the lead form beside the contact details.
func ContactSection(form contact.FormData) g.Node {
	c := content.Contact
	return Section(
		ID("contact"),
		Class("py-20 bg-white"),
		Div(
			Class(container),
			Div(
				Class("text-center mb-12"),
				H2(Class("text-3xl font-bold text-gray-900 mb-4"), g.Text(content.ContactTitle)),
				P(Class("text-xl text-gray-600"), g.Text(content.ContactIntro)),
			),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12"),
				partials.ContactForm(form),
				Div(
					Class("space-y-8"),
					Div(
						H3(Class("text-2xl font-bold text-gray-800 mb-4"), g.Text("Get In Touch")),
						Div(
							Class("space-y-4"),
							contactLine("Email:", "mailto:"+c.Email, c.Email),
							contactLine("Phone:", c.PhoneLink, c.PhoneDisplay),
						),
					),
					infoBlock("Global Service Area", c.ServiceArea),
					infoBlock("Response Time", c.ResponseTime),
					Div(
						Class("bg-green-50 p-6 rounded-lg"),
						H4(Class("text-lg font-bold text-green-700 mb-3"), g.Text("\U0001F3AF Join Our Global Mission")),
						P(Class("text-green-600 mb-2"), g.Text(c.BusinessName)),
						P(Class("text-sm text-gray-600 mb-2"), g.Text("GST No: "+c.GSTNumber)),
						P(Class("text-green-700 font-semibold"), g.Text(c.Tagline)),
						P(Class("text-sm text-gray-600 mt-2"), g.Text(c.Mission)),
					),
				),
			),
		),
	)
}

func contactLine(label, href, text string) g.Node {
	return Div(
		Class("flex items-center"),
		Span(Class("font-bold text-gray-700 w-20"), g.Text(label)),
		A(Href(href), Class("text-blue-600 hover:underline"), g.Text(text)),
	)
}

func infoBlock(title, body string) g.Node {
	return Div(
		H4(Class("text-lg font-bold text-gray-800 mb-2"), g.Text(title)),
		P(Class("text-gray-600"), g.Text(body)),
	)
}

// SiteFooter renders the closing quote and copyright line.
func SiteFooter() g.Node {
	return Footer(
		Class("bg-gray-800 text-white py-8"),
		Div(
			Class(container+" text-center"),
			P(Class("mb-4"), g.Text(content.FooterQuote)),
			P(Class("text-gray-400"), g.Text(content.FooterCopyright)),
		),
	)
}
