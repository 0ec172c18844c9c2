package models

import "strconv"

// CatalogItem is a movie record as delivered by the external catalog provider.
// The numeric ID is assigned by the provider and is stable; items are never
// mutated locally.
type CatalogItem struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview,omitempty"`
	PosterURL        string  `json:"posterUrl,omitempty"`
	BackdropURL      string  `json:"backdropUrl,omitempty"`
	ReleaseDate      string  `json:"releaseDate,omitempty"` // ISO date, may be partial or absent
	VoteAverage      float64 `json:"voteAverage"`
	GenreIDs         []int64 `json:"genreIds,omitempty"`
	OriginalLanguage string  `json:"originalLanguage,omitempty"`
	Popularity       float64 `json:"popularity,omitempty"`
}

// ReleaseYear extracts the year from the release date, or 0 when absent or
// malformed.
func (c CatalogItem) ReleaseYear() int {
	if len(c.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(c.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// CatalogDetail extends CatalogItem with the fields only present on the
// provider's detail endpoint, plus ratings enrichment when available.
type CatalogDetail struct {
	CatalogItem
	RuntimeMinutes int      `json:"runtimeMinutes,omitempty"`
	Genres         []Genre  `json:"genres,omitempty"`
	IMDBID         string   `json:"imdbId,omitempty"`
	Tagline        string   `json:"tagline,omitempty"`
	Ratings        []Rating `json:"ratings,omitempty"`
}

// Genre is a catalog genre with its provider-assigned identifier.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Rating represents a single rating from an enrichment source.
type Rating struct {
	Source string  `json:"source"` // imdb, tomatoes, metacritic
	Value  float64 `json:"value"`  // scale varies by source
	Max    float64 `json:"max"`
}
