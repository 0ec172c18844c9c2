package models

import (
	"fmt"
	"strings"
)

// RuntimeBucket selects candidates by runtime. Short means under 120 minutes.
type RuntimeBucket string

const (
	RuntimeAny   RuntimeBucket = "any"
	RuntimeShort RuntimeBucket = "short"
	RuntimeLong  RuntimeBucket = "long"
)

// RecommendationFilters configures a single recommendation request. It is
// never persisted.
type RecommendationFilters struct {
	Genres    []string      `json:"genres,omitempty"`
	Moods     []string      `json:"moods,omitempty"`
	MinRating float64       `json:"minRating,omitempty"` // 0–9, half steps; 0 disables
	Language  string        `json:"language,omitempty"`  // ISO code or "all"
	YearMin   int           `json:"yearMin,omitempty"`
	YearMax   int           `json:"yearMax,omitempty"`
	Runtime   RuntimeBucket `json:"runtime,omitempty"`
	Query     string        `json:"query,omitempty"`
}

// StaticMovie is an entry of the built-in recommendation catalog. It carries a
// richer schema than the external catalog: named genres, mood tags, credits
// and awards.
type StaticMovie struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Overview       string   `json:"overview,omitempty"`
	PosterURL      string   `json:"posterUrl,omitempty"`
	Year           int      `json:"year"`
	Rating         float64  `json:"rating"` // 0.0–10.0
	Genres         []string `json:"genres"`
	Moods          []string `json:"moods,omitempty"`
	Language       string   `json:"language"`
	RuntimeMinutes int      `json:"runtimeMinutes"`
	Director       string   `json:"director,omitempty"`
	Cast           []string `json:"cast,omitempty"`
	Awards         []string `json:"awards,omitempty"`
}

// ScoredCandidate is a static catalog movie annotated with its computed score
// and the human-readable reasons behind it, in evaluation order.
type ScoredCandidate struct {
	StaticMovie
	Score        float64  `json:"score"`
	MatchReasons []string `json:"matchReasons,omitempty"`
}

// tmdbGenreIDs maps the static catalog's genre names onto the external
// provider's numeric genre identifiers.
var tmdbGenreIDs = map[string]int64{
	"action":          28,
	"adventure":       12,
	"animation":       16,
	"comedy":          35,
	"crime":           80,
	"documentary":     99,
	"drama":           18,
	"family":          10751,
	"fantasy":         14,
	"history":         36,
	"horror":          27,
	"music":           10402,
	"mystery":         9648,
	"romance":         10749,
	"science fiction": 878,
	"sci-fi":          878,
	"thriller":        53,
	"war":             10752,
	"western":         37,
}

// CatalogItem converts the static-catalog schema into the external catalog
// shape at the boundary, so consumers never have to sniff which of the two
// record shapes they hold.
func (m StaticMovie) CatalogItem() CatalogItem {
	item := CatalogItem{
		ID:               m.ID,
		Title:            m.Title,
		Overview:         m.Overview,
		PosterURL:        m.PosterURL,
		VoteAverage:      m.Rating,
		OriginalLanguage: m.Language,
	}
	if m.Year > 0 {
		// Only the year component is known for static entries.
		item.ReleaseDate = fmt.Sprintf("%04d-01-01", m.Year)
	}
	for _, genre := range m.Genres {
		if id, ok := tmdbGenreIDs[strings.ToLower(genre)]; ok {
			item.GenreIDs = append(item.GenreIDs, id)
		}
	}
	return item
}
