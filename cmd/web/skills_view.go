package main

import (
	"github.com/drahman/folio-web/internal/content"
	"github.com/drahman/folio-web/internal/format"
)

const defaultCategoryIcon = "fa-code"

// SkillGroupView is one rendered skill category.
type SkillGroupView struct {
	Name   string
	Icon   string
	Skills []SkillBarView
}

// SkillBarView carries the animated bar's target width and the displayed
// label; both are the clamped level as "N%".
type SkillBarView struct {
	Name  string
	Width string
	Label string
}

func buildSkillGroups(doc *content.Skills) []SkillGroupView {
	groups := make([]SkillGroupView, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		g := SkillGroupView{Name: c.Name, Icon: c.Icon}
		if g.Icon == "" {
			g.Icon = defaultCategoryIcon
		}
		for _, s := range c.Skills {
			pct := format.Percent(s.Level)
			g.Skills = append(g.Skills, SkillBarView{Name: s.Name, Width: pct, Label: pct})
		}
		groups = append(groups, g)
	}
	return groups
}
