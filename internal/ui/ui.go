// Package ui holds the fixed timing and threshold model for the page's
// client-side behaviour. The values are rendered once into data attributes
// and served as JSON; templates and scripts never duplicate them.
package ui

import "github.com/drahman/folio-web/internal/nav"

// Settings is the full behaviour configuration surfaced to the client.
type Settings struct {
	// Scroll-spy and navbar.
	NavScrollOffset      int `json:"navScrollOffset"`
	NavScrolledThreshold int `json:"navScrolledThreshold"`

	// Back-to-top control.
	BackToTopThreshold int `json:"backToTopThreshold"`

	// Reveal-on-scroll. Reveal fires once at least RevealFraction of an
	// element is inside the viewport shrunk by RevealBottomInset, and is
	// one-way.
	RevealFraction    float64 `json:"revealFraction"`
	RevealBottomInset int     `json:"revealBottomInset"`

	// Skill bars animate to their target width this long after reveal.
	SkillBarDelayMS int `json:"skillBarDelayMs"`

	// Late re-scan for revealable elements injected after first attach.
	RescanDelayMS int `json:"rescanDelayMs"`

	// Filter fade choreography: non-matching cards leave layout after
	// HideDelay; restored cards fade in after ShowDelay.
	FilterHideDelayMS int `json:"filterHideDelayMs"`
	FilterShowDelayMS int `json:"filterShowDelayMs"`
}

// Default returns the page's fixed behaviour settings.
func Default() Settings {
	return Settings{
		NavScrollOffset:      nav.ScrollOffset,
		NavScrolledThreshold: nav.ScrolledThreshold,
		BackToTopThreshold:   500,
		RevealFraction:       0.10,
		RevealBottomInset:    50,
		SkillBarDelayMS:      200,
		RescanDelayMS:        500,
		FilterHideDelayMS:    300,
		FilterShowDelayMS:    10,
	}
}
