// internal/domain/models/content.go
package models

// DefaultSiteName is used when no site name is configured.
const DefaultSiteName = "Girl Child Productions"

// NavItem is one entry of the primary navigation.
type NavItem struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// Socials holds the studio's public profile links.
type Socials struct {
	Instagram         string `yaml:"instagram"`
	InstagramPersonal string `yaml:"instagram_personal"`
	Facebook          string `yaml:"facebook"`
	Twitter           string `yaml:"twitter"`
	YouTube           string `yaml:"youtube"`
	LinkedIn          string `yaml:"linkedin"`
}

// ContactInfo is rendered on the contact page and in the footer.
type ContactInfo struct {
	Phone    string  `yaml:"phone"`
	Email    string  `yaml:"email"`
	Location string  `yaml:"location"`
	Socials  Socials `yaml:"socials"`
}

// ServiceCategory groups the services offered under one heading.
// Icon is a symbolic name resolved by the templates (e.g. "film").
type ServiceCategory struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
	Icon     string   `yaml:"icon"`
}

// WorkItem is one portfolio entry. Work items are defined in the content
// catalog and never change while the process runs.
type WorkItem struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Category string `yaml:"category" json:"category"`
	Image    string `yaml:"image" json:"image"`
	Year     string `yaml:"year" json:"year"`
	Client   string `yaml:"client" json:"client"`
}

// WhyUsPoint is a selling point on the home page. Link defaults to /contact.
type WhyUsPoint struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
	Link  string `yaml:"link"`
}

// Hero is the home page hero block.
type Hero struct {
	Lines    []string `yaml:"lines"`
	VideoURL string   `yaml:"video_url"`
	Poster   string   `yaml:"poster"`
	Intro    string   `yaml:"intro"` // markdown
	Pitch    string   `yaml:"pitch"`
	CTA      string   `yaml:"cta"`
}

// FounderNote is one titled paragraph in the founder section.
type FounderNote struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"` // markdown
	Quote bool   `yaml:"quote"`
}

// About holds the about page copy.
type About struct {
	Manifesto     string        `yaml:"manifesto"`
	FounderName   string        `yaml:"founder_name"`
	FounderRole   string        `yaml:"founder_role"`
	FounderImage  string        `yaml:"founder_image"`
	FounderNotes  []FounderNote `yaml:"founder_notes"`
	Quote         string        `yaml:"quote"`
	ServicesIntro string        `yaml:"services_intro"`
}
