package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"cinetrack/models"
	"cinetrack/services/catalog"
	"cinetrack/services/ratings"
)

type catalogService interface {
	List(ctx context.Context, feed string) []models.CatalogItem
	Search(ctx context.Context, query string) []models.CatalogItem
	Details(ctx context.Context, id int64) *models.CatalogDetail
}

var _ catalogService = (*catalog.Service)(nil)

type ratingsService interface {
	GetRatings(ctx context.Context, imdbID string) []models.Rating
}

var _ ratingsService = (*ratings.Client)(nil)

type CatalogHandler struct {
	Catalog catalogService
	Ratings ratingsService
}

func NewCatalogHandler(cat catalogService, rat ratingsService) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, Ratings: rat}
}

// Feed returns one of the provider's curated lists. Unknown feeds and
// provider failures both come back as an empty list.
func (h *CatalogHandler) Feed(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	feed := strings.TrimSpace(vars["feed"])

	writeJSON(w, http.StatusOK, h.Catalog.List(r.Context(), feed))
}

// Search runs a text query against the catalog provider.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "q parameter is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.Catalog.Search(r.Context(), query))
}

// Detail returns one movie's full record, enriched with ratings when the
// ratings service knows the title.
func (h *CatalogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	detail := h.Catalog.Details(r.Context(), id)
	if detail == nil {
		http.Error(w, "movie not found", http.StatusNotFound)
		return
	}

	if h.Ratings != nil && detail.IMDBID != "" {
		detail.Ratings = h.Ratings.GetRatings(r.Context(), detail.IMDBID)
	}

	writeJSON(w, http.StatusOK, detail)
}
