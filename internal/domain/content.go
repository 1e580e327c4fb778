package domain

// ServiceDescriptor is one entry of the services catalog.
type ServiceDescriptor struct {
	Title       string
	Description string
}

// Stat is a headline number in the mission section.
type Stat struct {
	Value string
	Label string
	// Color is the tailwind text color used for the value.
	Color string
}

// Testimonial is a short client story.
type Testimonial struct {
	Quote  string
	Author string
}

// ContactDetails holds the business contact block shown beside the form.
type ContactDetails struct {
	Email        string
	PhoneDisplay string
	PhoneLink    string
	ServiceArea  string
	ResponseTime string
	BusinessName string
	GSTNumber    string
	Tagline      string
	Mission      string
}
