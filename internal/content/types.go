// Package content loads the portfolio's JSON documents and serves them to the
// render layer. Documents are read-only after load; a document that fails to
// load is simply absent and its section is skipped.
package content

// Profile describes the site owner: hero copy, about section, stats, CV and
// social links.
type Profile struct {
	Name    string   `json:"name"`
	Tagline string   `json:"tagline"`
	Roles   []string `json:"roles"`
	Avatar  string   `json:"avatar"`
	About   About    `json:"about"`
	Stats   []Stat   `json:"stats"`
	CV      CV       `json:"cv"`
	Social  Social   `json:"social"`
}

// About holds the long-form introduction. Description may contain markdown.
type About struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
}

// Stat is a single headline figure, e.g. {"value": "5+", "label": "Years"}.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CV references the downloadable resume, served relative to the public dir.
type CV struct {
	File     string `json:"file"`
	Filename string `json:"filename"`
}

// Social lists optional contact channels. Empty fields render no button.
type Social struct {
	Email     string `json:"email,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Skills groups individual skills under named categories.
type Skills struct {
	Categories []SkillCategory `json:"categories"`
}

// SkillCategory is a titled group of skills with an optional icon.
type SkillCategory struct {
	Name   string  `json:"name"`
	Icon   string  `json:"icon,omitempty"`
	Skills []Skill `json:"skills"`
}

// Skill carries a proficiency level on a 0-100 scale.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Experience is the work history timeline.
type Experience struct {
	Entries []ExperienceEntry `json:"entries"`
}

// ExperienceEntry is one timeline item.
type ExperienceEntry struct {
	Period      string   `json:"period"`
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// Projects is the portfolio project list. IDs are unique within the document
// and used as the modal lookup key.
type Projects struct {
	Projects []Project `json:"projects"`
}

// Project is a single portfolio entry.
type Project struct {
	ID               string       `json:"id"`
	Category         string       `json:"category"`
	Title            string       `json:"title"`
	ShortDescription string       `json:"shortDescription"`
	Description      string       `json:"description"`
	Thumbnail        string       `json:"thumbnail"`
	Images           []string     `json:"images"`
	TechStack        []string     `json:"techStack"`
	Highlights       []string     `json:"highlights"`
	Year             string       `json:"year"`
	Links            ProjectLinks `json:"links"`
}

// ProjectLinks holds optional external references for a project.
type ProjectLinks struct {
	GitHub string `json:"github,omitempty"`
	Demo   string `json:"demo,omitempty"`
}

// Achievements carries two lists that render as one collection.
type Achievements struct {
	Achievements   []Achievement `json:"achievements"`
	Certifications []Achievement `json:"certifications"`
}

// Achievement is an award or certification item.
type Achievement struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Description  string `json:"description"`
	Year         string `json:"year"`
	Icon         string `json:"icon,omitempty"`
}

// All returns achievements followed by certifications as a single slice.
func (a *Achievements) All() []Achievement {
	out := make([]Achievement, 0, len(a.Achievements)+len(a.Certifications))
	out = append(out, a.Achievements...)
	out = append(out, a.Certifications...)
	return out
}
