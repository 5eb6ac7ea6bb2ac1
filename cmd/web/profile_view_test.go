package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drahman/folio-web/internal/content"
)

func TestBuildContactViewOnlyPresentChannels(t *testing.T) {
	view := buildContactView(content.Social{Email: "a@b.dev"})
	require.Len(t, view.Links, 1)
	assert.Equal(t, "email", view.Links[0].Kind)
	assert.Equal(t, "mailto:a@b.dev", view.Links[0].Href)

	view = buildContactView(content.Social{
		Email:    "a@b.dev",
		WhatsApp: "+62 812-3456-7890",
		GitHub:   "https://github.com/a",
	})
	require.Len(t, view.Links, 3)
	assert.Equal(t, "https://wa.me/6281234567890", view.Links[1].Href)

	assert.Empty(t, buildContactView(content.Social{}).Links)
}

func TestBuildHeroViewCV(t *testing.T) {
	p := &content.Profile{
		Name: "A",
		CV:   content.CV{File: "assets/cv/a.pdf", Filename: "A-CV.pdf"},
	}
	view := buildHeroView(p)
	assert.Equal(t, "/cv", view.CVURL)
	assert.Equal(t, "A-CV.pdf", view.CVFilename)

	p.CV = content.CV{}
	assert.Empty(t, buildHeroView(p).CVURL)
}

func TestBuildAboutViewRendersMarkdown(t *testing.T) {
	p := &content.Profile{About: content.About{Description: "I build **services**."}}
	view := buildAboutView(p)
	assert.Contains(t, string(view.Description), "<strong>services</strong>")
}
