package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"cinetrack/models"
	"cinetrack/services/recommend"
)

type recommendService interface {
	GetRecommendations(models.RecommendationFilters) []models.ScoredCandidate
	GetSimilarMovies(models.StaticMovie) []models.ScoredCandidate
	MovieByID(id int64) (models.StaticMovie, bool)
}

var _ recommendService = (*recommend.Service)(nil)

type RecommendHandler struct {
	Engine recommendService
}

func NewRecommendHandler(engine recommendService) *RecommendHandler {
	return &RecommendHandler{Engine: engine}
}

// Recommendations scores the static catalog against filters passed as query
// parameters.
func (h *RecommendHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.Engine.GetRecommendations(filters))
}

// Similar returns up to six movies close to the one named in the path.
func (h *RecommendHandler) Similar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	movie, found := h.Engine.MovieByID(id)
	if !found {
		http.Error(w, "movie not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, h.Engine.GetSimilarMovies(movie))
}

func parseFilters(r *http.Request) (models.RecommendationFilters, error) {
	q := r.URL.Query()

	filters := models.RecommendationFilters{
		Genres:   splitList(q.Get("genres")),
		Moods:    splitList(q.Get("moods")),
		Language: strings.TrimSpace(q.Get("language")),
		Query:    strings.TrimSpace(q.Get("q")),
		Runtime:  models.RuntimeAny,
	}

	if raw := strings.TrimSpace(q.Get("minRating")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 9 {
			return models.RecommendationFilters{}, errInvalidParam("minRating")
		}
		filters.MinRating = v
	}
	if raw := strings.TrimSpace(q.Get("yearMin")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return models.RecommendationFilters{}, errInvalidParam("yearMin")
		}
		filters.YearMin = v
	}
	if raw := strings.TrimSpace(q.Get("yearMax")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return models.RecommendationFilters{}, errInvalidParam("yearMax")
		}
		filters.YearMax = v
	}
	switch bucket := models.RuntimeBucket(strings.TrimSpace(q.Get("runtime"))); bucket {
	case "", models.RuntimeAny:
	case models.RuntimeShort, models.RuntimeLong:
		filters.Runtime = bucket
	default:
		return models.RecommendationFilters{}, errInvalidParam("runtime")
	}

	return filters, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func errInvalidParam(name string) error {
	return fmt.Errorf("invalid %s parameter", name)
}
