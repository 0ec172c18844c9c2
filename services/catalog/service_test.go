package catalog

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const popularPayload = `{
	"results": [
		{
			"id": 27205,
			"title": "Inception",
			"overview": "A thief who steals corporate secrets.",
			"poster_path": "/inception.jpg",
			"release_date": "2010-07-15",
			"vote_average": 8.4,
			"genre_ids": [28, 878],
			"original_language": "en"
		}
	]
}`

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewService("test-key", "en-US", time.Minute)
	svc.SetBaseURL(srv.URL)
	return svc
}

func TestListPopular(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/popular" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Error("expected api_key query parameter")
		}
		if r.URL.Query().Get("language") != "en-US" {
			t.Error("expected language query parameter")
		}
		io.WriteString(w, popularPayload)
	})

	items := svc.List(context.Background(), FeedPopular)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.ID != 27205 || item.Title != "Inception" {
		t.Errorf("unexpected item %+v", item)
	}
	if item.PosterURL != "https://image.tmdb.org/t/p/w500/inception.jpg" {
		t.Errorf("unexpected poster URL %q", item.PosterURL)
	}
	if item.ReleaseYear() != 2010 {
		t.Errorf("expected release year 2010, got %d", item.ReleaseYear())
	}
}

func TestListCachesResponses(t *testing.T) {
	var calls atomic.Int32
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		io.WriteString(w, popularPayload)
	})

	ctx := context.Background()
	svc.List(ctx, FeedPopular)
	svc.List(ctx, FeedPopular)

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 upstream call, got %d", got)
	}
}

func TestListUnknownFeed(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected upstream call")
	})

	if items := svc.List(context.Background(), "editors_picks"); len(items) != 0 {
		t.Errorf("expected empty result, got %v", items)
	}
}

func TestListFailsSoft(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	items := svc.List(context.Background(), FeedTrending)
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", items)
	}
}

func TestListUnconfigured(t *testing.T) {
	svc := NewService("", "en-US", time.Minute)
	if items := svc.List(context.Background(), FeedPopular); len(items) != 0 {
		t.Errorf("expected empty result without an API key, got %v", items)
	}
}

func TestSearch(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("query") != "inception" {
			t.Errorf("unexpected query %q", r.URL.Query().Get("query"))
		}
		io.WriteString(w, popularPayload)
	})

	if items := svc.Search(context.Background(), "  inception "); len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected upstream call")
	})

	if items := svc.Search(context.Background(), "   "); len(items) != 0 {
		t.Errorf("expected empty result, got %v", items)
	}
}

func TestDetails(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/27205" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `{
			"id": 27205,
			"title": "Inception",
			"runtime": 148,
			"imdb_id": "tt1375666",
			"tagline": "Your mind is the scene of the crime.",
			"genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}]
		}`)
	})

	detail := svc.Details(context.Background(), 27205)
	if detail == nil {
		t.Fatal("expected detail")
	}
	if detail.RuntimeMinutes != 148 || detail.IMDBID != "tt1375666" {
		t.Errorf("unexpected detail %+v", detail)
	}
	if len(detail.Genres) != 2 || detail.Genres[1].Name != "Science Fiction" {
		t.Errorf("unexpected genres %v", detail.Genres)
	}
}

func TestDetailsFailsSoft(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	if detail := svc.Details(context.Background(), 1); detail != nil {
		t.Errorf("expected nil detail, got %+v", detail)
	}
}
