package handlers

import (
	"github.com/drahman/folio-web/internal/nav"
	"github.com/drahman/folio-web/internal/seo"
	"github.com/drahman/folio-web/internal/ui"
)

// PageData is the view model for the portfolio page using the shared layout.
// Section payloads are nil when their document failed to load; the layout
// skips those sections entirely.
type PageData struct {
	Title     string
	SEO       seo.Meta
	Analytics Analytics

	Nav      []nav.Link
	Settings ui.Settings

	// Per-section view model payloads
	Hero         any
	About        any
	SkillGroups  any
	Timeline     any
	Projects     any
	Achievements any
	Contact      any
}
