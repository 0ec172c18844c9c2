// Package catalog is the read-only client for the external movie catalog API.
// Every lookup fails soft: on any provider error the caller gets an empty
// slice or nil and the error is only logged, so a flaky catalog never blocks
// the rest of the application.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cinetrack/models"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	imageBaseURL    = "https://image.tmdb.org/t/p"
	posterSize      = "w500"
	backdropSize    = "w1280"
	defaultCacheTTL = 10 * time.Minute
)

// Feed names accepted by List.
const (
	FeedTrending = "trending"
	FeedPopular  = "popular"
	FeedTopRated = "top_rated"
	FeedUpcoming = "upcoming"
)

// Service fetches catalog records by feed, query or ID, with a short-TTL
// response cache.
type Service struct {
	apiKey   string
	language string
	baseURL  string
	httpc    *http.Client
	cache    *ttlCache
}

// NewService creates a catalog client. An empty API key leaves the client in
// an unconfigured state where every lookup returns empty results.
func NewService(apiKey, language string, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &Service{
		apiKey:   strings.TrimSpace(apiKey),
		language: language,
		baseURL:  defaultBaseURL,
		httpc:    &http.Client{Timeout: 15 * time.Second},
		cache:    newTTLCache(cacheTTL),
	}
}

// SetBaseURL overrides the provider endpoint, for tests.
func (s *Service) SetBaseURL(baseURL string) {
	s.baseURL = strings.TrimRight(baseURL, "/")
}

func (s *Service) isConfigured() bool {
	return s != nil && s.apiKey != ""
}

// List returns one of the provider's curated movie feeds.
func (s *Service) List(ctx context.Context, feed string) []models.CatalogItem {
	var endpoint string
	switch feed {
	case FeedTrending:
		endpoint = "/trending/movie/week"
	case FeedPopular:
		endpoint = "/movie/popular"
	case FeedTopRated:
		endpoint = "/movie/top_rated"
	case FeedUpcoming:
		endpoint = "/movie/upcoming"
	default:
		log.Printf("[catalog] unknown feed %q", feed)
		return []models.CatalogItem{}
	}
	return s.fetchList(ctx, "feed:"+feed, endpoint, nil)
}

// Search runs a text query against the provider.
func (s *Service) Search(ctx context.Context, query string) []models.CatalogItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.CatalogItem{}
	}
	params := url.Values{"query": []string{query}}
	return s.fetchList(ctx, "search:"+strings.ToLower(query), "/search/movie", params)
}

// Details fetches the full record for one movie, or nil when unavailable.
func (s *Service) Details(ctx context.Context, id int64) *models.CatalogDetail {
	if !s.isConfigured() || id <= 0 {
		return nil
	}

	cacheKey := "detail:" + strconv.FormatInt(id, 10)
	if cached, ok := s.cache.get(cacheKey); ok {
		if detail, ok := cached.(*models.CatalogDetail); ok {
			return detail
		}
	}

	var resp movieDetailResponse
	if err := s.doGET(ctx, fmt.Sprintf("/movie/%d", id), nil, &resp); err != nil {
		log.Printf("[catalog] details for %d: %v", id, err)
		return nil
	}

	detail := resp.toDetail()
	s.cache.set(cacheKey, detail)
	return detail
}

func (s *Service) fetchList(ctx context.Context, cacheKey, endpoint string, params url.Values) []models.CatalogItem {
	if !s.isConfigured() {
		return []models.CatalogItem{}
	}

	if cached, ok := s.cache.get(cacheKey); ok {
		if items, ok := cached.([]models.CatalogItem); ok {
			return items
		}
	}

	var resp movieListResponse
	if err := s.doGET(ctx, endpoint, params, &resp); err != nil {
		log.Printf("[catalog] %s: %v", endpoint, err)
		return []models.CatalogItem{}
	}

	items := make([]models.CatalogItem, 0, len(resp.Results))
	for _, raw := range resp.Results {
		items = append(items, raw.toItem())
	}

	s.cache.set(cacheKey, items)
	return items
}

func (s *Service) doGET(ctx context.Context, endpoint string, params url.Values, v any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", s.apiKey)
	if s.language != "" {
		params.Set("language", s.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := s.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("catalog request failed: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

type movieListResponse struct {
	Results []movieResult `json:"results"`
}

type movieResult struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	GenreIDs         []int64 `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
	Popularity       float64 `json:"popularity"`
}

func (r movieResult) toItem() models.CatalogItem {
	return models.CatalogItem{
		ID:               r.ID,
		Title:            r.Title,
		Overview:         r.Overview,
		PosterURL:        imageURL(posterSize, r.PosterPath),
		BackdropURL:      imageURL(backdropSize, r.BackdropPath),
		ReleaseDate:      r.ReleaseDate,
		VoteAverage:      r.VoteAverage,
		GenreIDs:         r.GenreIDs,
		OriginalLanguage: r.OriginalLanguage,
		Popularity:       r.Popularity,
	}
}

type movieDetailResponse struct {
	movieResult
	Runtime int    `json:"runtime"`
	IMDBID  string `json:"imdb_id"`
	Tagline string `json:"tagline"`
	Genres  []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

func (r movieDetailResponse) toDetail() *models.CatalogDetail {
	detail := &models.CatalogDetail{
		CatalogItem:    r.toItem(),
		RuntimeMinutes: r.Runtime,
		IMDBID:         r.IMDBID,
		Tagline:        r.Tagline,
	}
	for _, g := range r.Genres {
		detail.Genres = append(detail.Genres, models.Genre{ID: g.ID, Name: g.Name})
		detail.GenreIDs = append(detail.GenreIDs, g.ID)
	}
	return detail
}

func imageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + "/" + size + path
}
