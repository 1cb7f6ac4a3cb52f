package handlers

import (
	"io"
	"net/http"
	"strings"

	"listingforge/internal/storage"
)

// ListImageFilters returns the distinct (Category, Name, Colour) triples from
// the listings table, from which the staging folder name is derived.
func (a *App) ListImageFilters(w http.ResponseWriter, r *http.Request) {
	filters, err := a.Listings.ListFilters(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list image filters failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load filters")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": filters})
}

// UploadImages stages product images for a listing selection and records
// their public URLs. Per-file failures are reported without aborting the
// remaining uploads.
func (a *App) UploadImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart form")
		return
	}

	category := strings.TrimSpace(r.FormValue("category"))
	name := strings.TrimSpace(r.FormValue("name"))
	colour := strings.TrimSpace(r.FormValue("colour"))
	if category == "" || name == "" || colour == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "category, name and colour are required")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "at least one image is required")
		return
	}

	folder := storage.FolderName(category, name, colour)

	var urls []string
	var failed []string
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			failed = append(failed, header.Filename)
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			failed = append(failed, header.Filename)
			continue
		}
		url, err := a.Images.Upload(r.Context(), folder, header.Filename, data, header.Header.Get("Content-Type"))
		if err != nil {
			a.Logger.Error().Err(err).Str("file", header.Filename).Msg("image upload failed")
			failed = append(failed, header.Filename)
			continue
		}
		urls = append(urls, url)
	}

	if len(urls) > 0 {
		if err := a.ImageLinks.InsertBatch(r.Context(), folder, urls); err != nil {
			a.Logger.Error().Err(err).Str("folder", folder).Msg("image link persist failed")
			a.error(w, http.StatusInternalServerError, "internal", "uploaded but failed to record links")
			return
		}
	}

	a.json(w, http.StatusOK, map[string]any{
		"group_name": folder,
		"urls":       urls,
		"failed":     failed,
	})
}
