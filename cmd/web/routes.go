package main

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	mw "github.com/drahman/folio-web/internal/middleware"
)

func newRouter(logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets under /assets/
	assets := http.StripPrefix("/assets", mw.AssetsWithCache("", filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	// Page and fragments
	r.Get("/", HomeHandler)
	r.Get("/fragments/projects", ProjectsGridFrag)
	r.Get("/projects/{projectID}/modal", ProjectModalFrag)
	r.Get("/cv", CVHandler)

	// Read-only JSON API mirroring the content documents
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			MaxAge:         300,
		}))
		r.Get("/profile", ProfileAPI)
		r.Get("/skills", SkillsAPI)
		r.Get("/experience", ExperienceAPI)
		r.Get("/projects", ProjectsAPI)
		r.Get("/projects/{projectID}", ProjectAPI)
		r.Get("/achievements", AchievementsAPI)
		r.Get("/ui-settings", UISettingsAPI)
	})

	return r
}
