package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"listingforge/internal/http/handlers"
	"listingforge/internal/middleware"
)

// NewRouter wires the API routes with the standard middleware stack.
func NewRouter(app *handlers.App, logger zerolog.Logger, corsOrigins string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(strings.Split(corsOrigins, ",")),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/categories", func(r chi.Router) {
		r.Get("/", app.ListCategories)
		r.Post("/", app.CreateCategory)
		r.Put("/{id}", app.UpdateCategory)
		r.Delete("/{id}", app.DeleteCategory)
	})

	r.Post("/v1/generate", app.Generate)
	r.Post("/v1/listings/import", app.ImportListings)

	r.Route("/v1/images", func(r chi.Router) {
		r.Get("/filters", app.ListImageFilters)
		r.Post("/upload", app.UploadImages)
	})

	return r
}
