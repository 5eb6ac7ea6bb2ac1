package main

import (
	"net/http"
)

// HomeHandler renders the portfolio page. Documents are reloaded per request
// in dev mode so edits to the data files show up on refresh.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	if devMode {
		store.Load(r.Context())
	}
	vm := buildHomeData(store, r.URL.Query().Get("category"))
	render(w, r, vm)
}
