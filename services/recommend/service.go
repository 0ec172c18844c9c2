// Package recommend scores the built-in static catalog against user-selected
// filters. Both operations are pure functions of (catalog, input): no I/O, no
// mutation, identical output for identical input.
package recommend

import (
	"sort"
	"strings"
	"time"

	"cinetrack/models"
)

const (
	maxRecommendations = 10
	maxSimilar         = 6

	shortRuntimeMinutes = 120
	recencyHorizonYears = 50
)

// Subscore weights. The five weighted subscores sum to the final score.
const (
	genreWeight   = 0.30
	moodWeight    = 0.25
	ratingWeight  = 0.25
	recencyWeight = 0.10
	awardsWeight  = 0.10
)

// Match-reason thresholds. Genre and mood are compared against the weighted
// subscores, not the raw match fractions.
const (
	genreReasonThreshold  = 0.15
	moodReasonThreshold   = 0.12
	ratingReasonThreshold = 8.5
	recentReleaseYear     = 2020
)

// Service ranks candidates from a fixed in-memory catalog.
type Service struct {
	catalog     []models.StaticMovie
	currentYear func() int
}

// Option customizes a Service.
type Option func(*Service)

// WithCurrentYear pins the reference year for recency scoring, for tests.
func WithCurrentYear(year int) Option {
	return func(s *Service) { s.currentYear = func() int { return year } }
}

// NewService creates an engine over the provided catalog. Pass nil to use the
// built-in catalog.
func NewService(catalog []models.StaticMovie, opts ...Option) *Service {
	if catalog == nil {
		catalog = Catalog()
	}
	svc := &Service{
		catalog:     catalog,
		currentYear: func() int { return time.Now().Year() },
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Catalog returns the full static catalog in its canonical order.
func (s *Service) Catalog() []models.StaticMovie {
	return s.catalog
}

// MovieByID looks up a static catalog entry.
func (s *Service) MovieByID(id int64) (models.StaticMovie, bool) {
	for _, movie := range s.catalog {
		if movie.ID == id {
			return movie, true
		}
	}
	return models.StaticMovie{}, false
}

// GetRecommendations applies the hard filters, scores the survivors and
// returns the top candidates, highest score first. Ties keep catalog order.
func (s *Service) GetRecommendations(filters models.RecommendationFilters) []models.ScoredCandidate {
	year := s.currentYear()

	scored := make([]models.ScoredCandidate, 0, len(s.catalog))
	for _, movie := range s.catalog {
		if !passesFilters(movie, filters) {
			continue
		}
		scored = append(scored, scoreCandidate(movie, filters, year))
	}

	sortByScore(scored)

	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}
	return scored
}

// GetSimilarMovies ranks the rest of the catalog by overlap with the given
// movie: shared genres, shared moods, same director and close rating.
func (s *Service) GetSimilarMovies(movie models.StaticMovie) []models.ScoredCandidate {
	scored := make([]models.ScoredCandidate, 0, len(s.catalog))
	for _, other := range s.catalog {
		if other.ID == movie.ID {
			continue
		}

		sharedGenres := overlapCount(movie.Genres, other.Genres)
		sharedMoods := overlapCount(movie.Moods, other.Moods)
		sameDirector := movie.Director != "" && equalFold(movie.Director, other.Director)

		if sharedGenres == 0 && sharedMoods == 0 && !sameDirector {
			continue
		}

		score := 2*float64(sharedGenres) + 1.5*float64(sharedMoods)
		if sameDirector {
			score += 3
		}
		if diff := movie.Rating - other.Rating; diff < 0.5 && diff > -0.5 {
			score++
		}

		scored = append(scored, models.ScoredCandidate{StaticMovie: other, Score: score})
	}

	sortByScore(scored)

	if len(scored) > maxSimilar {
		scored = scored[:maxSimilar]
	}
	return scored
}

// passesFilters reports whether the movie satisfies every active hard filter.
func passesFilters(movie models.StaticMovie, f models.RecommendationFilters) bool {
	if len(f.Genres) > 0 && overlapCount(f.Genres, movie.Genres) == 0 {
		return false
	}
	if f.MinRating > 0 && movie.Rating < f.MinRating {
		return false
	}
	if lang := strings.TrimSpace(f.Language); lang != "" && !strings.EqualFold(lang, "all") {
		if !strings.EqualFold(movie.Language, lang) {
			return false
		}
	}
	if f.YearMin > 0 && movie.Year < f.YearMin {
		return false
	}
	if f.YearMax > 0 && movie.Year > f.YearMax {
		return false
	}
	switch f.Runtime {
	case models.RuntimeShort:
		if movie.RuntimeMinutes >= shortRuntimeMinutes {
			return false
		}
	case models.RuntimeLong:
		if movie.RuntimeMinutes < shortRuntimeMinutes {
			return false
		}
	}
	if query := strings.TrimSpace(f.Query); query != "" && !matchesQuery(movie, query) {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring match against the title, any
// cast member and the director.
func matchesQuery(movie models.StaticMovie, query string) bool {
	query = strings.ToLower(query)
	if strings.Contains(strings.ToLower(movie.Title), query) {
		return true
	}
	for _, actor := range movie.Cast {
		if strings.Contains(strings.ToLower(actor), query) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(movie.Director), query)
}

func scoreCandidate(movie models.StaticMovie, f models.RecommendationFilters, currentYear int) models.ScoredCandidate {
	genreScore := matchFraction(f.Genres, movie.Genres) * genreWeight
	moodScore := matchFraction(f.Moods, movie.Moods) * moodWeight
	ratingScore := movie.Rating / 10 * ratingWeight
	recencyScore := recency(movie.Year, currentYear) * recencyWeight
	awardsScore := awardsFactor(len(movie.Awards)) * awardsWeight

	candidate := models.ScoredCandidate{
		StaticMovie: movie,
		Score:       genreScore + moodScore + ratingScore + recencyScore + awardsScore,
	}

	// Reasons accumulate independently, in evaluation order.
	if genreScore > genreReasonThreshold {
		candidate.MatchReasons = append(candidate.MatchReasons, "Genre match")
	}
	if moodScore > moodReasonThreshold {
		candidate.MatchReasons = append(candidate.MatchReasons, "Mood match")
	}
	if movie.Rating >= ratingReasonThreshold {
		candidate.MatchReasons = append(candidate.MatchReasons, "Highly rated")
	}
	if len(movie.Awards) > 0 {
		candidate.MatchReasons = append(candidate.MatchReasons, "Award winning")
	}
	if movie.Year >= recentReleaseYear {
		candidate.MatchReasons = append(candidate.MatchReasons, "Recent release")
	}

	return candidate
}

// matchFraction is the share of selected tags present on the candidate, or 1
// when nothing is selected.
func matchFraction(selected, have []string) float64 {
	if len(selected) == 0 {
		return 1
	}
	return float64(overlapCount(selected, have)) / float64(len(selected))
}

// recency decays linearly from 1 for this year's releases to 0 at fifty years
// old, floored at 0.
func recency(releaseYear, currentYear int) float64 {
	v := 1 - float64(currentYear-releaseYear)/recencyHorizonYears
	if v < 0 {
		return 0
	}
	return v
}

// awardsFactor is a step function on the number of award entries.
func awardsFactor(count int) float64 {
	switch {
	case count >= 3:
		return 1.0
	case count == 2:
		return 0.8
	case count == 1:
		return 0.6
	default:
		return 0.3
	}
}

func overlapCount(a, b []string) int {
	count := 0
	for _, x := range a {
		for _, y := range b {
			if equalFold(x, y) {
				count++
				break
			}
		}
	}
	return count
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// sortByScore orders descending by score; equal scores keep their current
// (catalog) order.
func sortByScore(candidates []models.ScoredCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}
