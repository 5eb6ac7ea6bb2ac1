package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drahman/folio-web/internal/content"
)

func sampleProjects() *content.Projects {
	return &content.Projects{Projects: []content.Project{
		{ID: "a", Category: "Web", Title: "Alpha", Thumbnail: "/assets/img/a.png"},
		{ID: "b", Category: "Mobile", Title: "Beta"},
		{ID: "c", Category: "Web", Title: "Gamma"},
	}}
}

func TestDeriveFiltersFirstSeenOrder(t *testing.T) {
	view := buildProjectsView(sampleProjects(), "")

	var values []string
	for _, f := range view.Filters {
		values = append(values, f.Value)
	}
	assert.Equal(t, []string{"all", "Web", "Mobile"}, values)
	assert.True(t, view.Filters[0].Active)
}

func TestDeriveFiltersSkipsEmptyCategory(t *testing.T) {
	doc := &content.Projects{Projects: []content.Project{
		{ID: "a", Category: "Web"},
		{ID: "b"},
	}}
	view := buildProjectsView(doc, "")
	require.Len(t, view.Filters, 2)
	assert.Equal(t, "Web", view.Filters[1].Value)
}

func TestFilterProjects(t *testing.T) {
	all := sampleProjects().Projects

	mobile := FilterProjects(all, "Mobile")
	require.Len(t, mobile, 1)
	assert.Equal(t, "b", mobile[0].ID)

	assert.Len(t, FilterProjects(all, "all"), 3)
	assert.Len(t, FilterProjects(all, ""), 3)
	assert.Len(t, FilterProjects(all, "ALL"), 3)
	assert.Empty(t, FilterProjects(all, "Desktop"))
}

func TestBuildProjectsViewActiveFilter(t *testing.T) {
	view := buildProjectsView(sampleProjects(), "Mobile")

	assert.Equal(t, "Mobile", view.ActiveFilter)
	require.Len(t, view.Cards, 1)
	assert.Equal(t, "b", view.Cards[0].ID)
	for _, f := range view.Filters {
		assert.Equal(t, f.Value == "Mobile", f.Active, "filter %s", f.Value)
	}
}

func TestBuildProjectCardPlaceholderThumbnail(t *testing.T) {
	card := buildProjectCard(content.Project{ID: "x", Title: "No Art"})
	assert.True(t, strings.HasPrefix(card.Thumbnail, "https://placehold.co/"))
	assert.Equal(t, card.FallbackImage, card.Thumbnail)

	card = buildProjectCard(content.Project{ID: "y", Title: "Art", Thumbnail: "/assets/img/y.png"})
	assert.Equal(t, "/assets/img/y.png", card.Thumbnail)
}

func TestBuildProjectModalImagePreference(t *testing.T) {
	p := content.Project{
		ID:        "a",
		Title:     "Alpha",
		Thumbnail: "/assets/img/thumb.png",
		Images:    []string{"/assets/img/full.png"},
	}
	assert.Equal(t, "/assets/img/full.png", buildProjectModal(p).Image)

	p.Images = nil
	assert.Equal(t, "/assets/img/thumb.png", buildProjectModal(p).Image)

	p.Thumbnail = ""
	assert.True(t, strings.HasPrefix(buildProjectModal(p).Image, "https://placehold.co/"))
}

func TestBuildProjectModalLinks(t *testing.T) {
	p := content.Project{ID: "a", Links: content.ProjectLinks{GitHub: "https://github.com/x/a"}}
	view := buildProjectModal(p)
	require.Len(t, view.Links, 1)
	assert.Equal(t, "GitHub", view.Links[0].Label)

	p.Links.Demo = "https://a.example"
	assert.Len(t, buildProjectModal(p).Links, 2)

	p.Links = content.ProjectLinks{}
	assert.Empty(t, buildProjectModal(p).Links)
}
