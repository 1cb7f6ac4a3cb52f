package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"listingforge/internal/domain"
)

type categoryPayload struct {
	Name     string `json:"category_name" validate:"required"`
	Template string `json:"gpt_prompt" validate:"required"`
}

func (a *App) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := a.Categories.ListAll(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list categories failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load categories")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": cats})
}

func (a *App) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	id, err := a.Categories.Insert(r.Context(), domain.CategoryPrompt{Name: req.Name, Template: req.Template})
	if err != nil {
		a.Logger.Error().Err(err).Str("category", req.Name).Msg("create category failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create category")
		return
	}
	a.json(w, http.StatusCreated, domain.CategoryPrompt{ID: id, Name: req.Name, Template: req.Template})
}

func (a *App) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid category id")
		return
	}
	var req categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	err = a.Categories.Update(r.Context(), domain.CategoryPrompt{ID: id, Name: req.Name, Template: req.Template})
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "category does not exist")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Int64("id", id).Msg("update category failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update category")
		return
	}
	a.json(w, http.StatusOK, domain.CategoryPrompt{ID: id, Name: req.Name, Template: req.Template})
}

func (a *App) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid category id")
		return
	}
	err = a.Categories.Delete(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "category does not exist")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Int64("id", id).Msg("delete category failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
