package catalog

// City tiers used by the seed data. Descriptive metadata only; nothing in the
// API branches on them.
const (
	TierMetro = "metro"
	TierOne   = "tier1"
	TierTwo   = "tier2"
)

// ProcessStep is one entry of a service's delivery process.
type ProcessStep struct {
	Step        int    `json:"step" bson:"step"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// Service is a marketing service offering. Seeded once at startup and treated
// as read-only reference data; the slug is the stable lookup key.
type Service struct {
	ID               string        `json:"id" bson:"id"`
	Name             string        `json:"name" bson:"name"`
	Slug             string        `json:"slug" bson:"slug"`
	Description      string        `json:"description" bson:"description"`
	ShortDescription string        `json:"short_description" bson:"short_description"`
	Features         []string      `json:"features" bson:"features"`
	ProcessSteps     []ProcessStep `json:"process_steps" bson:"process_steps"`
	Keywords         []string      `json:"keywords" bson:"keywords"`
}

// City is a geography the site targets with landing pages.
type City struct {
	ID    string   `json:"id" bson:"id"`
	Name  string   `json:"name" bson:"name"`
	Slug  string   `json:"slug" bson:"slug"`
	State string   `json:"state" bson:"state"`
	Tier  string   `json:"tier" bson:"tier"`
	Areas []string `json:"areas" bson:"areas"`
}

// Testimonial is a client quote. City is a free-text city name, not a
// reference to the cities collection.
type Testimonial struct {
	ID         string `json:"id" bson:"id"`
	ClientName string `json:"client_name" bson:"client_name"`
	Company    string `json:"company" bson:"company"`
	Rating     int    `json:"rating" bson:"rating"`
	Content    string `json:"content" bson:"content"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
}

// PortfolioItem is a showcased piece of work. Category informally matches a
// service name; City is free text, as with testimonials.
type PortfolioItem struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Category    string `json:"category" bson:"category"`
	Description string `json:"description" bson:"description"`
	ImageURL    string `json:"image_url" bson:"image_url"`
	City        string `json:"city,omitempty" bson:"city,omitempty"`
}
