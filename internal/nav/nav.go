// Package nav defines the page's section registry and the scroll-spy rule
// that decides which nav link is highlighted for a given scroll position.
package nav

// Fixed offsets, in CSS pixels. ScrollOffset compensates for the fixed
// header when matching a section; ScrolledThreshold toggles the navbar's
// "scrolled" visual state.
const (
	ScrollOffset      = 100
	ScrolledThreshold = 50
)

// Section is one identified page section.
type Section struct {
	ID    string // element id, e.g. "projects"
	Label string // nav link text
}

// Sections is the page's section registry, in document order.
var Sections = []Section{
	{ID: "home", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "skills", Label: "Skills"},
	{ID: "experience", Label: "Experience"},
	{ID: "projects", Label: "Projects"},
	{ID: "achievements", Label: "Achievements"},
	{ID: "contact", Label: "Contact"},
}

// Link is the nav view model.
type Link struct {
	Href   string
	Label  string
	Active bool
}

// Build renders nav links, marking at most one as active.
func Build(activeID string) []Link {
	links := make([]Link, 0, len(Sections))
	for _, s := range Sections {
		links = append(links, Link{
			Href:   "#" + s.ID,
			Label:  s.Label,
			Active: s.ID == activeID,
		})
	}
	return links
}

// Metrics carries a section's measured geometry, in CSS pixels.
type Metrics struct {
	ID     string
	Top    int
	Height int
}

// ActiveSection returns the id of the section whose range
// [Top-ScrollOffset, Top-ScrollOffset+Height) contains scrollY. When ranges
// overlap, the last match in document order wins. Returns "" when no section
// matches.
func ActiveSection(sections []Metrics, scrollY int) string {
	active := ""
	for _, s := range sections {
		start := s.Top - ScrollOffset
		if scrollY >= start && scrollY < start+s.Height {
			active = s.ID
		}
	}
	return active
}

// Scrolled reports whether the navbar should carry its "scrolled" state.
func Scrolled(scrollY int) bool {
	return scrollY > ScrolledThreshold
}
