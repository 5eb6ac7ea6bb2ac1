package main

import (
	"html/template"
	"strings"

	"github.com/drahman/folio-web/internal/content"
	"github.com/drahman/folio-web/internal/format"
	"github.com/drahman/folio-web/internal/markdown"
)

// filterAll is the synthetic category matching every project.
const filterAll = "all"

// ProjectsView renders the filter bar and the project grid.
type ProjectsView struct {
	ActiveFilter string
	Filters      []FilterButton
	Cards        []ProjectCardView
}

// FilterButton is one category filter control; exactly one is active.
type FilterButton struct {
	Value  string
	Label  string
	Active bool
}

// ProjectCardView is the grid card for one project.
type ProjectCardView struct {
	ID               string
	Category         string
	Title            string
	ShortDescription string
	Thumbnail        string
	FallbackImage    string
	Year             string
}

// ProjectModalView is the detail overlay for one project.
type ProjectModalView struct {
	ID            string
	Category      string
	Year          string
	Title         string
	Description   template.HTML
	Image         string
	FallbackImage string
	Highlights    []string
	TechStack     []string
	Links         []ExternalLink
}

// ExternalLink is a conditionally rendered outbound project link.
type ExternalLink struct {
	Label string
	Href  string
	Icon  string
}

func buildProjectsView(doc *content.Projects, category string) ProjectsView {
	active := normalizeFilter(category)
	view := ProjectsView{
		ActiveFilter: active,
		Filters:      deriveFilters(doc.Projects, active),
	}
	for _, p := range FilterProjects(doc.Projects, active) {
		view.Cards = append(view.Cards, buildProjectCard(p))
	}
	return view
}

func normalizeFilter(category string) string {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, filterAll) {
		return filterAll
	}
	return category
}

// deriveFilters returns the distinct category set in first-seen order,
// preceded by the synthetic "All" button.
func deriveFilters(projects []content.Project, active string) []FilterButton {
	buttons := []FilterButton{{Value: filterAll, Label: "All", Active: active == filterAll}}
	seen := map[string]bool{}
	for _, p := range projects {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		buttons = append(buttons, FilterButton{
			Value:  p.Category,
			Label:  p.Category,
			Active: p.Category == active,
		})
	}
	return buttons
}

// FilterProjects returns the projects whose category matches the selected
// tag; "all" matches every project.
func FilterProjects(projects []content.Project, category string) []content.Project {
	if normalizeFilter(category) == filterAll {
		return projects
	}
	var out []content.Project
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func buildProjectCard(p content.Project) ProjectCardView {
	card := ProjectCardView{
		ID:               p.ID,
		Category:         p.Category,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Thumbnail:        p.Thumbnail,
		FallbackImage:    format.PlaceholderImage(600, 400, p.Title),
		Year:             p.Year,
	}
	if card.Thumbnail == "" {
		card.Thumbnail = card.FallbackImage
	}
	return card
}

func buildProjectModal(p content.Project) ProjectModalView {
	view := ProjectModalView{
		ID:            p.ID,
		Category:      p.Category,
		Year:          p.Year,
		Title:         p.Title,
		Description:   markdown.Render(p.Description),
		FallbackImage: format.PlaceholderImage(800, 500, p.Title),
		Highlights:    p.Highlights,
		TechStack:     p.TechStack,
	}
	switch {
	case len(p.Images) > 0 && p.Images[0] != "":
		view.Image = p.Images[0]
	case p.Thumbnail != "":
		view.Image = p.Thumbnail
	default:
		view.Image = view.FallbackImage
	}
	if p.Links.GitHub != "" {
		view.Links = append(view.Links, ExternalLink{Label: "GitHub", Href: p.Links.GitHub, Icon: "fa-github"})
	}
	if p.Links.Demo != "" {
		view.Links = append(view.Links, ExternalLink{Label: "Live Demo", Href: p.Links.Demo, Icon: "fa-external-link"})
	}
	return view
}
