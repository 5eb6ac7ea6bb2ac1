package main

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// serveDocument writes a loaded document, or 404 when it is absent.
func serveDocument(w http.ResponseWriter, doc any, ok bool) {
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "document not available"})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// ProfileAPI serves the profile document.
func ProfileAPI(w http.ResponseWriter, r *http.Request) {
	doc, ok := store.Profile()
	serveDocument(w, doc, ok)
}

// SkillsAPI serves the skills document.
func SkillsAPI(w http.ResponseWriter, r *http.Request) {
	doc, ok := store.Skills()
	serveDocument(w, doc, ok)
}

// ExperienceAPI serves the experience document.
func ExperienceAPI(w http.ResponseWriter, r *http.Request) {
	doc, ok := store.Experience()
	serveDocument(w, doc, ok)
}

// ProjectsAPI serves the projects document.
func ProjectsAPI(w http.ResponseWriter, r *http.Request) {
	doc, ok := store.Projects()
	serveDocument(w, doc, ok)
}

// ProjectAPI serves one project by id.
func ProjectAPI(w http.ResponseWriter, r *http.Request) {
	p, ok := store.ProjectByID(chi.URLParam(r, "projectID"))
	serveDocument(w, p, ok)
}

// AchievementsAPI serves the achievements document.
func AchievementsAPI(w http.ResponseWriter, r *http.Request) {
	doc, ok := store.Achievements()
	serveDocument(w, doc, ok)
}

// UISettingsAPI serves the page behaviour settings.
func UISettingsAPI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, uiSettings)
}

// CVHandler offers the CV referenced by the profile as a named download.
func CVHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := store.Profile()
	if !ok || p.CV.File == "" {
		http.NotFound(w, r)
		return
	}
	rel := filepath.Clean(filepath.FromSlash(p.CV.File))
	if strings.Contains(rel, "..") || filepath.IsAbs(rel) {
		http.NotFound(w, r)
		return
	}
	name := p.CV.Filename
	if name == "" {
		name = filepath.Base(rel)
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeFile(w, r, filepath.Join(publicDir, rel))
}
