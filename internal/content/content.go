// Package content holds the fixed copy of the marketing page.
package content

import "github.com/amaljosh/wellness/internal/domain"

const (
	BrandName     = "Amal Josh"
	BrandSubtitle = "Wellness Centre"
	CoachName     = "Renukadevi M"
	CoachTitle    = "Dietician & Wellness Transformation Coach"
	Tagline       = "✨ \"From Illness to Wellness, From Family to Forever.\" ✨"
	SubTagline    = "\"Turning Personal Struggles into Family Wellness Stories\""
	HeroStory     = "From battling my family's health challenges including cancer, PCOS, and chronic conditions, " +
		"I discovered the power of natural healing. Now I help 100+ families transform their lives " +
		"through personalized nutrition and holistic wellness."
	Reach = "\U0001F30D Serving Online & Offline Globally | Wide Community across India, Singapore, Australia, UK, UAE, Middle East, US, Switzerland & more"

	MissionTitle    = "\U0001F3AF Amal Josh Mission 2030"
	MissionSubtitle = "Making 100,000 Families Healthier and Happier on or before 2030"
	MissionPillars  = "Value-Added Holistic Wellness Services | Mind • Body • Spirit Integration"

	ServicesTitle = "Holistic Wellness Services"
	ServicesIntro = "From Ayurvedic nutrition to specialized family health programs, I offer personalized solutions " +
		"for every stage of life and every health challenge through our value-added holistic approach."
	ServicesApproach = "\U0001F33F Holistic Healing Approach: Mind • Body • Spirit Integration"

	TestimonialsTitle = "Success Stories"

	ContactTitle = "Start Your Wellness Journey"
	ContactIntro = "Ready to transform your health naturally? Let's discuss your unique needs and create a " +
		"personalized wellness plan that works for you and your family."
	FormTitle = "Get Your Free Consultation"

	FooterQuote     = "\"Transforming pain into power, struggles into strength, and every home into a sanctuary of health, hope, and happiness.\""
	FooterCopyright = "© 2024 Amal Josh Wellness Centre. All rights reserved. | Registered Global Wellness Practice | Value-Added Holistic Services"
)

// NavLink is an in-page anchor in the header.
type NavLink struct {
	Href  string
	Label string
}

// Nav lists the header anchors in display order.
var Nav = []NavLink{
	{"#home", "Home"},
	{"#about", "About"},
	{"#services", "Services"},
	{"#testimonials", "Success Stories"},
	{"#contact", "Contact"},
}

// Stats are the mission figures.
var Stats = []domain.Stat{
	{Value: "100K+", Label: "Mission by 2030", Color: "text-green-600"},
	{Value: "20+", Label: "Years Experience", Color: "text-blue-600"},
	{Value: "Global", Label: "Community Reach", Color: "text-purple-600"},
}

var services = [...]domain.ServiceDescriptor{
	{
		Title:       "Ayurvedic Nutrition",
		Description: "Ancient wisdom meets modern nutrition science for holistic healing and balance.",
	},
	{
		Title:       "Family Health Reversal",
		Description: "Comprehensive health transformation programs for the entire family unit.",
	},
	{
		Title:       "Obesity & Fat Management",
		Description: "Natural, sustainable weight management without crash diets or surgery.",
	},
	{
		Title:       "Skin Care - Inner & Outer",
		Description: "Healing skin conditions from within through targeted nutrition and care.",
	},
	{
		Title:       "Kids Nutrition",
		Description: "Specialized nutrition programs for growing children and adolescents.",
	},
	{
		Title:       "Heart Health",
		Description: "Cardiovascular wellness through natural nutrition and lifestyle changes.",
	},
	{
		Title:       "Digestive Health",
		Description: "Restore gut health and digestive harmony through targeted nutrition.",
	},
	{
		Title:       "Bone & Joint Health",
		Description: "Strengthen bones and joints naturally for long-term mobility and comfort.",
	},
	{
		Title:       "Women and Men Nutrition",
		Description: "Specialized nutrition programs addressing gender-specific health needs, hormonal balance, and life stage requirements.",
	},
}

// Services returns the nine catalog entries in their fixed order. The
// result is a copy; callers cannot reorder the catalog.
func Services() []domain.ServiceDescriptor {
	out := make([]domain.ServiceDescriptor, len(services))
	copy(out, services[:])
	return out
}

// Testimonials are the success stories shown above the contact section.
var Testimonials = []domain.Testimonial{
	{
		Quote:  "Our whole family changed the way we eat. My mother's sugar levels are steady for the first time in years.",
		Author: "Family Health Reversal client",
	},
	{
		Quote:  "The PCOS plan was simple to follow and my cycles are regular again, without any crash dieting.",
		Author: "Women's Nutrition client",
	},
	{
		Quote:  "Weekly online sessions from abroad felt as personal as meeting in person.",
		Author: "Online client, Singapore",
	},
}

// Contact is the business contact block.
var Contact = domain.ContactDetails{
	Email:        "devirenuka301@gmail.com",
	PhoneDisplay: "+91-8144925468",
	PhoneLink:    "tel:+918144925468",
	ServiceArea:  "Online & Offline Worldwide",
	ResponseTime: "Within 24 hours",
	BusinessName: "Amal Josh Wellness Centre",
	GSTNumber:    "33AXIPR7042L2Z2",
	Tagline:      Tagline,
	Mission:      "Mission 2030: Make 100,000 Families Healthier and Happier",
}
