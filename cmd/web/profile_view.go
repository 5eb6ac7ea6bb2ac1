package main

import (
	"html/template"

	"github.com/drahman/folio-web/internal/content"
	"github.com/drahman/folio-web/internal/format"
	"github.com/drahman/folio-web/internal/markdown"
)

// HeroView is the view model for the landing section.
type HeroView struct {
	Name       string
	Tagline    string
	Roles      []string
	Avatar     string
	Stats      []StatView
	CVURL      string
	CVFilename string
}

// StatView is one headline figure.
type StatView struct {
	Value string
	Label string
}

// AboutView is the view model for the about section.
type AboutView struct {
	Summary     string
	Description template.HTML
	CTALabel    string
}

// ContactView lists the contact buttons to render; only channels present in
// the document produce a button.
type ContactView struct {
	Links []ContactLink
}

// ContactLink is one contact button.
type ContactLink struct {
	Kind  string
	Label string
	Href  string
	Icon  string
}

func buildHeroView(p *content.Profile) HeroView {
	v := HeroView{
		Name:    p.Name,
		Tagline: p.Tagline,
		Roles:   p.Roles,
		Avatar:  p.Avatar,
	}
	for _, s := range p.Stats {
		v.Stats = append(v.Stats, StatView{Value: s.Value, Label: s.Label})
	}
	if p.CV.File != "" {
		v.CVURL = "/cv"
		v.CVFilename = p.CV.Filename
	}
	return v
}

func buildAboutView(p *content.Profile) AboutView {
	return AboutView{
		Summary:     p.About.Summary,
		Description: markdown.Render(p.About.Description),
		CTALabel:    p.About.CTA,
	}
}

func buildContactView(s content.Social) ContactView {
	var v ContactView
	if href := format.Mailto(s.Email); href != "" {
		v.Links = append(v.Links, ContactLink{Kind: "email", Label: "Email", Href: href, Icon: "fa-envelope"})
	}
	if href := format.WhatsApp(s.WhatsApp); href != "" {
		v.Links = append(v.Links, ContactLink{Kind: "whatsapp", Label: "WhatsApp", Href: href, Icon: "fa-whatsapp"})
	}
	if s.LinkedIn != "" {
		v.Links = append(v.Links, ContactLink{Kind: "linkedin", Label: "LinkedIn", Href: s.LinkedIn, Icon: "fa-linkedin"})
	}
	if s.GitHub != "" {
		v.Links = append(v.Links, ContactLink{Kind: "github", Label: "GitHub", Href: s.GitHub, Icon: "fa-github"})
	}
	if s.Instagram != "" {
		v.Links = append(v.Links, ContactLink{Kind: "instagram", Label: "Instagram", Href: s.Instagram, Icon: "fa-instagram"})
	}
	return v
}

// socialProfileURLs returns the plain profile URLs for JSON-LD sameAs.
func socialProfileURLs(s content.Social) []string {
	var urls []string
	for _, u := range []string{s.LinkedIn, s.GitHub, s.Instagram} {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
