package ratings

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const mediaPayload = `{
	"ratings": [
		{"source": "imdb", "value": 8.8},
		{"source": "tomatoes", "value": 87},
		{"source": "letterboxd", "value": 4.4},
		{"source": "metacritic", "value": null}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient("test-key", true)
	client.SetBaseURL(srv.URL)
	return client
}

func TestGetRatings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/imdb/movie/tt1375666" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Error("expected apikey query parameter")
		}
		io.WriteString(w, mediaPayload)
	})

	ratings := client.GetRatings(context.Background(), "tt1375666")
	if len(ratings) != 2 {
		t.Fatalf("expected 2 known ratings, got %d: %v", len(ratings), ratings)
	}
	if ratings[0].Source != "imdb" || ratings[0].Value != 8.8 || ratings[0].Max != 10 {
		t.Errorf("unexpected imdb rating %+v", ratings[0])
	}
	if ratings[1].Source != "tomatoes" || ratings[1].Max != 100 {
		t.Errorf("unexpected tomatoes rating %+v", ratings[1])
	}
}

func TestGetRatingsNormalizesIMDBID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/imdb/movie/tt1375666" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, mediaPayload)
	})

	if ratings := client.GetRatings(context.Background(), "1375666"); len(ratings) == 0 {
		t.Error("expected ratings for bare IMDB id")
	}
}

func TestGetRatingsCaches(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		io.WriteString(w, mediaPayload)
	})

	ctx := context.Background()
	client.GetRatings(ctx, "tt1375666")
	client.GetRatings(ctx, "tt1375666")

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 upstream call, got %d", got)
	}
}

func TestGetRatingsDisabled(t *testing.T) {
	client := NewClient("test-key", false)
	client.SetBaseURL("http://unused.invalid")

	if ratings := client.GetRatings(context.Background(), "tt1375666"); ratings != nil {
		t.Errorf("expected nil while disabled, got %v", ratings)
	}
}

func TestGetRatingsFailsSoft(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	if ratings := client.GetRatings(context.Background(), "tt1375666"); ratings != nil {
		t.Errorf("expected nil on provider failure, got %v", ratings)
	}
}
