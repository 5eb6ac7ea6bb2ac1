package main

import (
	"github.com/drahman/folio-web/internal/content"
)

// TimelineEntryView is one work-history item.
type TimelineEntryView struct {
	Period      string
	Role        string
	Company     string
	Description string
	Highlights  []string
}

func buildTimeline(doc *content.Experience) []TimelineEntryView {
	entries := make([]TimelineEntryView, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		entries = append(entries, TimelineEntryView{
			Period:      e.Period,
			Role:        e.Role,
			Company:     e.Company,
			Description: e.Description,
			Highlights:  e.Highlights,
		})
	}
	return entries
}
