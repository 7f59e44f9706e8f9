package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/catalog"
)

type CatalogHandler struct {
	repo   catalog.Repository
	logger *log.Logger
}

func NewCatalogHandler(repo catalog.Repository, logger *log.Logger) *CatalogHandler {
	return &CatalogHandler{repo: repo, logger: logger}
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	services, err := h.repo.ListServices(ctx, catalog.Filter{
		Query:      q.Get("q"),
		CategoryID: q.Get("category"),
		Limit:      limit,
	})
	if err != nil {
		h.logger.Printf("list services: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load services")
		return
	}

	writeJSON(w, http.StatusOK, services)
}

func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	s, err := h.repo.GetService(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "service not found")
			return
		}
		h.logger.Printf("get service: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load service")
		return
	}

	writeJSON(w, http.StatusOK, s)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	categories, err := h.repo.ListCategories(ctx)
	if err != nil {
		h.logger.Printf("list categories: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load categories")
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	s, err := h.repo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "settings not found")
			return
		}
		h.logger.Printf("get settings: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	writeJSON(w, http.StatusOK, s)
}
