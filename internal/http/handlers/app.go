// Package handlers holds the HTTP handler container and the endpoint
// implementations for the listing assistant API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"listingforge/internal/domain"
	"listingforge/internal/pipeline"
	"listingforge/internal/storage"
)

// App bundles the dependencies shared by all handlers.
type App struct {
	Logger     zerolog.Logger
	Categories domain.CategoryRepository
	Listings   domain.ListingRepository
	ImageLinks domain.ImageLinkRepository
	Images     storage.Uploader
	Runner     *pipeline.Runner

	validate *validator.Validate
}

// NewApp constructs the handler container.
func NewApp(logger zerolog.Logger, categories domain.CategoryRepository, listings domain.ListingRepository, links domain.ImageLinkRepository, images storage.Uploader, runner *pipeline.Runner) *App {
	return &App{
		Logger:     logger,
		Categories: categories,
		Listings:   listings,
		ImageLinks: links,
		Images:     images,
		Runner:     runner,
		validate:   validator.New(),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}
