package partials

import (
	"github.com/amaljosh/wellness/internal/domain"
	"github.com/amaljosh/wellness/internal/view/dto/contact"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ContactFormID is the id of the region htmx swaps after a submit.
const ContactFormID = "contact-form"

const inputClass = "w-full px-3 py-2 border border-gray-300 rounded-md focus:outline-none focus:ring-2 focus:ring-green-500"

// ContactForm renders the lead capture form with its status banner. The
// whole region is the htmx swap target, so a submit replaces banner and
// inputs in one response. Without JavaScript it is a plain POST.
func ContactForm(data contact.FormData) g.Node {
	return Div(
		ID(ContactFormID),
		Class("bg-white rounded-lg shadow-lg p-8"),
		H3(Class("text-2xl font-bold text-gray-800 mb-6"), g.Text("Get Your Free Consultation")),
		StatusBanner(data.Status, data.Banner),
		Form(
			Class("space-y-4"),
			Action("/contact"),
			Method("post"),
			hx.Post("/contact"),
			hx.Target("#"+ContactFormID),
			hx.Swap("outerHTML"),
			g.Attr("hx-disabled-elt", "find button[type='submit']"),

			field("Full Name *", domain.FieldFullName, data.Errors,
				Input(Type("text"), textAttrs(domain.FieldFullName, data.Values.FullName, data.Errors), Required(),
					Placeholder("Enter your full name")),
			),
			field("Email Address *", domain.FieldEmail, data.Errors,
				Input(Type("email"), textAttrs(domain.FieldEmail, data.Values.Email, data.Errors), Required(),
					Placeholder("Enter your email address")),
			),
			field("Phone Number *", domain.FieldPhone, data.Errors,
				Input(Type("tel"), textAttrs(domain.FieldPhone, data.Values.Phone, data.Errors), Required(),
					Placeholder("Enter your phone number")),
			),
			field("Primary Health Concern", domain.FieldHealthConcern, data.Errors,
				concernSelect(data.Values.HealthConcern, data.Errors),
			),
			field("Tell me about your health goals *", domain.FieldHealthGoals, data.Errors,
				Textarea(
					ID(domain.FieldHealthGoals),
					Name(domain.FieldHealthGoals),
					Class(inputClass),
					Rows("4"),
					Required(),
					Placeholder("Describe your health goals and what you'd like to achieve..."),
					invalidAttr(domain.FieldHealthGoals, data.Errors),
					g.Text(data.Values.HealthGoals),
				),
			),
			submitButton(data.Submitting()),
		),
	)
}

// StatusBanner renders the success or error message; other statuses render nothing.
func StatusBanner(status domain.SubmissionStatus, message string) g.Node {
	switch status {
	case domain.StatusSuccess:
		return Div(
			Class("bg-green-100 border border-green-400 text-green-700 px-4 py-3 rounded mb-4"),
			Role("status"),
			g.Text(message),
		)
	case domain.StatusError:
		return Div(
			Class("bg-red-100 border border-red-400 text-red-700 px-4 py-3 rounded mb-4"),
			Role("alert"),
			g.Text(message),
		)
	default:
		return nil
	}
}

func field(label, name string, errs map[string]string, control g.Node) g.Node {
	msg, invalid := errs[name]
	return Div(
		Label(For(name), Class("block text-gray-700 text-sm font-bold mb-2"), g.Text(label)),
		control,
		g.If(invalid, P(ID(name+"-error"), Class("text-red-600 text-sm mt-1"), g.Text(msg))),
	)
}

func textAttrs(name, value string, errs map[string]string) g.Node {
	return g.Group([]g.Node{
		ID(name),
		Name(name),
		Value(value),
		Class(inputClass),
		invalidAttr(name, errs),
	})
}

func invalidAttr(name string, errs map[string]string) g.Node {
	if _, ok := errs[name]; !ok {
		return nil
	}
	return g.Group([]g.Node{
		Aria("invalid", "true"),
		Aria("describedby", name+"-error"),
	})
}

func concernSelect(selected string, errs map[string]string) g.Node {
	return Select(
		ID(domain.FieldHealthConcern),
		Name(domain.FieldHealthConcern),
		Class(inputClass),
		invalidAttr(domain.FieldHealthConcern, errs),
		Option(Value(""), g.Text("Select a concern")),
		g.Map(domain.HealthConcerns, func(c domain.HealthConcern) g.Node {
			return Option(
				Value(string(c)),
				g.If(string(c) == selected, Selected()),
				g.Text(c.Label()),
			)
		}),
	)
}

func submitButton(submitting bool) g.Node {
	label := Span(Class("send-label"), g.Text("Send Message"))
	if submitting {
		label = Span(g.Text("Sending..."))
	}
	return Button(
		Type("submit"),
		g.If(submitting, Disabled()),
		Class("w-full bg-green-600 hover:bg-green-700 text-white font-bold py-3 px-4 rounded-md transition duration-300 disabled:opacity-50"),
		label,
		g.If(!submitting, Span(Class("sending-label"), g.Text("Sending..."))),
	)
}
