package main

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	mw "github.com/drahman/folio-web/internal/middleware"
)

// ProjectsGridFrag renders the filter bar and grid for the selected
// category. With the projects document absent the fragment is empty content,
// never an error page.
func ProjectsGridFrag(w http.ResponseWriter, r *http.Request) {
	doc, ok := store.Projects()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	view := buildProjectsView(doc, r.URL.Query().Get("category"))
	push := "/"
	if view.ActiveFilter != filterAll {
		push = "/?category=" + url.QueryEscape(view.ActiveFilter)
	}
	w.Header().Set("HX-Push-Url", push)
	renderTemplate(w, r, "frag_projects_grid", view)
}

// ProjectModalFrag renders the detail overlay body for one project. A click
// before the projects document loaded is a silent no-op (204), an unknown id
// is a 404.
func ProjectModalFrag(w http.ResponseWriter, r *http.Request) {
	if _, ok := store.Projects(); !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	id := chi.URLParam(r, "projectID")
	p, ok := store.ProjectByID(id)
	if !ok {
		mw.WriteError(w, r, http.StatusNotFound, "unknown project")
		return
	}
	renderTemplate(w, r, "frag_project_modal", buildProjectModal(p))
}
