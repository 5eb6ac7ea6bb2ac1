package main

import (
	"github.com/drahman/folio-web/internal/content"
	"github.com/drahman/folio-web/internal/handlers"
	"github.com/drahman/folio-web/internal/nav"
	"github.com/drahman/folio-web/internal/seo"
)

// HomeData is handlers.PageData plus the brand shown in the navbar.
type HomeData struct {
	handlers.PageData
	Brand string
}

// buildHomeData assembles the full page view model. A section whose document
// is absent keeps a nil payload and is skipped by the layout.
func buildHomeData(s *content.Store, category string) HomeData {
	vm := HomeData{
		PageData: handlers.PageData{
			Title:     "Portfolio",
			Nav:       nav.Build("home"),
			Settings:  uiSettings,
			Analytics: handlers.LoadAnalyticsFromEnv(),
		},
		Brand: "Portfolio",
	}

	if p, ok := s.Profile(); ok {
		vm.Brand = p.Name
		vm.Title = p.Name + " — " + p.Tagline
		vm.Hero = buildHeroView(p)
		vm.About = buildAboutView(p)
		if contact := buildContactView(p.Social); len(contact.Links) > 0 {
			vm.Contact = contact
		}
		vm.SEO = buildHomeSEO(p)
	}
	if sk, ok := s.Skills(); ok {
		vm.SkillGroups = buildSkillGroups(sk)
	}
	if ex, ok := s.Experience(); ok {
		vm.Timeline = buildTimeline(ex)
	}
	if pr, ok := s.Projects(); ok {
		vm.Projects = buildProjectsView(pr, category)
	}
	if ac, ok := s.Achievements(); ok {
		vm.Achievements = buildAchievementCards(ac)
	}
	return vm
}

func buildHomeSEO(p *content.Profile) seo.Meta {
	meta := seo.Meta{
		Title:       p.Name + " — " + p.Tagline,
		Description: p.About.Summary,
	}
	meta.OG.Title = meta.Title
	meta.OG.Description = meta.Description
	meta.OG.Type = "website"
	meta.OG.SiteName = p.Name
	if cfg != nil && cfg.BaseURL != "" {
		meta.Canonical = cfg.BaseURL + "/"
		meta.OG.URL = meta.Canonical
	}
	jobTitle := ""
	if len(p.Roles) > 0 {
		jobTitle = p.Roles[0]
	}
	siteURL := ""
	if cfg != nil {
		siteURL = cfg.BaseURL
	}
	meta.JSONLD = append(meta.JSONLD,
		seo.JSON(seo.Person(p.Name, jobTitle, siteURL, p.Avatar, socialProfileURLs(p.Social))),
		seo.JSON(seo.WebSite(p.Name, siteURL)),
	)
	return meta
}
