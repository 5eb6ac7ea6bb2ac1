package main

import (
	"github.com/drahman/folio-web/internal/content"
)

const defaultAchievementIcon = "fa-award"

// AchievementCardView is one award or certification card. Achievements and
// certifications render as a single collection.
type AchievementCardView struct {
	Title        string
	Organization string
	Description  string
	Year         string
	Icon         string
}

func buildAchievementCards(doc *content.Achievements) []AchievementCardView {
	items := doc.All()
	cards := make([]AchievementCardView, 0, len(items))
	for _, a := range items {
		icon := a.Icon
		if icon == "" {
			icon = defaultAchievementIcon
		}
		cards = append(cards, AchievementCardView{
			Title:        a.Title,
			Organization: a.Organization,
			Description:  a.Description,
			Year:         a.Year,
			Icon:         icon,
		})
	}
	return cards
}
