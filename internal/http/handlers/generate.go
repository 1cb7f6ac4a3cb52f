package handlers

import (
	"errors"
	"net/http"
	"strings"

	"listingforge/internal/domain"
	"listingforge/internal/export"
	"listingforge/internal/ingest"
)

const maxUploadBytes = 32 << 20

// Generate runs the listing pipeline over an uploaded products CSV for one
// category. With ?format=csv the merged table is streamed back as a download;
// otherwise the rows and per-group reports are returned as JSON. With
// ?persist=true the merged rows are also appended to the listings table.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart form")
		return
	}

	category := strings.TrimSpace(r.FormValue("category"))
	if category == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "category is required")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "products file is required")
		return
	}
	defer file.Close()

	cat, err := a.Categories.GetByName(r.Context(), category)
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "no prompt configured for category "+category)
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Str("category", category).Msg("category lookup failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load category prompt")
		return
	}

	rows, err := ingest.ReadProducts(file)
	if errors.Is(err, domain.ErrEmptyTable) {
		a.error(w, http.StatusBadRequest, "empty_table", "upload contains no rows with both SKU and Name")
		return
	}
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	result := a.Runner.Run(r.Context(), rows, cat.Template)

	if r.URL.Query().Get("persist") == "true" {
		inserted, err := a.Listings.InsertBatch(r.Context(), result.Rows)
		if err != nil {
			a.Logger.Error().Err(err).Msg("listing persist failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to persist listings")
			return
		}
		a.Logger.Info().Int("inserted", inserted).Msg("generated listings persisted")
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="gpt_preview.csv"`)
		if err := export.WriteCSV(w, result.Rows); err != nil {
			a.Logger.Error().Err(err).Msg("csv export failed")
		}
		return
	}

	a.json(w, http.StatusOK, result)
}
