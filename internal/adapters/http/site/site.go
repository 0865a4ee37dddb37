// Package site serves the embedded dashboard page and its assets.
package site

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register attaches the dashboard page at / and its assets below it.
// Routes registered earlier on r take precedence.
func Register(_ context.Context, r chi.Router) {
	if r == nil {
		panic("router is nil")
	}

	files := http.FileServer(FS())
	r.Get("/*", files.ServeHTTP)
}
