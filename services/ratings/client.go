// Package ratings enriches catalog details with aggregated review scores from
// the external ratings API. The client is strictly best-effort: disabled,
// unconfigured or failing lookups all return nil.
package ratings

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"cinetrack/models"
)

const defaultBaseURL = "https://api.mdblist.com"

// Rating source metadata keyed by the API's source names.
var ratingSourceInfo = map[string]struct {
	label string
	max   float64
}{
	"imdb":       {"imdb", 10},
	"tomatoes":   {"tomatoes", 100},
	"metacritic": {"metacritic", 100},
}

// Client fetches aggregated ratings for a title by IMDB ID.
type Client struct {
	apiKey  string
	enabled bool
	baseURL string
	httpc   *http.Client

	cacheMu sync.RWMutex
	cache   map[string][]models.Rating
}

// NewClient creates a ratings client. With enabled false or an empty key every
// lookup returns nil without touching the network.
func NewClient(apiKey string, enabled bool) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		enabled: enabled,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		cache:   make(map[string][]models.Rating),
	}
}

// SetBaseURL overrides the provider endpoint, for tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

type mediaResponse struct {
	Ratings []struct {
		Source string   `json:"source"`
		Value  *float64 `json:"value"` // pointer to handle null
	} `json:"ratings"`
}

// GetRatings returns the known ratings for the title, or nil when the client
// is disabled, the title is unknown or the provider misbehaves.
func (c *Client) GetRatings(ctx context.Context, imdbID string) []models.Rating {
	if !c.enabled || c.apiKey == "" || imdbID == "" {
		return nil
	}
	if !strings.HasPrefix(imdbID, "tt") {
		imdbID = "tt" + imdbID
	}

	c.cacheMu.RLock()
	cached, ok := c.cache[imdbID]
	c.cacheMu.RUnlock()
	if ok {
		return cached
	}

	endpoint := fmt.Sprintf("%s/imdb/movie/%s?apikey=%s", c.baseURL, url.PathEscape(imdbID), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Printf("[ratings] fetch %s: %v", imdbID, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("[ratings] fetch %s: %s", imdbID, resp.Status)
		return nil
	}

	var body mediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("[ratings] decode %s: %v", imdbID, err)
		return nil
	}

	ratings := make([]models.Rating, 0, len(body.Ratings))
	for _, r := range body.Ratings {
		info, known := ratingSourceInfo[r.Source]
		if !known || r.Value == nil {
			continue
		}
		ratings = append(ratings, models.Rating{
			Source: info.label,
			Value:  *r.Value,
			Max:    info.max,
		})
	}

	c.cacheMu.Lock()
	c.cache[imdbID] = ratings
	c.cacheMu.Unlock()

	return ratings
}
