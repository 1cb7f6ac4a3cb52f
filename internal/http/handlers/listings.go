package handlers

import (
	"errors"
	"net/http"

	"listingforge/internal/domain"
	"listingforge/internal/export"
	"listingforge/internal/ingest"
)

// ImportListings inserts an uploaded listings CSV into the catalog. The file
// must match the listings schema exactly, column order included; a mismatch
// blocks the whole import.
func (a *App) ImportListings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "listings file is required")
		return
	}
	defer file.Close()

	records, err := ingest.ReadStrict(file, export.Columns)
	if errors.Is(err, domain.ErrColumnMismatch) {
		a.error(w, http.StatusBadRequest, "column_mismatch", err.Error())
		return
	}
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	rows := make([]domain.OutputRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, export.ParseRecord(record))
	}

	inserted, err := a.Listings.InsertBatch(r.Context(), rows)
	if err != nil {
		a.Logger.Error().Err(err).Msg("listings import failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to insert listings")
		return
	}
	a.json(w, http.StatusOK, map[string]int{"inserted": inserted, "received": len(rows)})
}
