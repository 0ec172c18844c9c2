package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"cinetrack/models"
)

type fakeWatchlistService struct {
	list    models.Watchlist
	syncing bool
	err     error
}

func (f *fakeWatchlistService) List() models.Watchlist { return f.list }

func (f *fakeWatchlistService) Add(item models.CatalogItem) error {
	if f.err != nil {
		return f.err
	}
	if f.IsPresent(item.ID) {
		return nil
	}
	f.list = append(models.Watchlist{{CatalogItem: item, AddedAt: 1}}, f.list...)
	return nil
}

func (f *fakeWatchlistService) Remove(id int64) error {
	if f.err != nil {
		return f.err
	}
	out := f.list[:0]
	for _, entry := range f.list {
		if entry.ID != id {
			out = append(out, entry)
		}
	}
	f.list = out
	return nil
}

func (f *fakeWatchlistService) Toggle(item models.CatalogItem) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.IsPresent(item.ID) {
		return false, f.Remove(item.ID)
	}
	return true, f.Add(item)
}

func (f *fakeWatchlistService) Clear() error {
	if f.err != nil {
		return f.err
	}
	f.list = nil
	return nil
}

func (f *fakeWatchlistService) IsPresent(id int64) bool { return f.list.Contains(id) }

func (f *fakeWatchlistService) Syncing() bool { return f.syncing }

func TestWatchlistList(t *testing.T) {
	svc := &fakeWatchlistService{list: models.Watchlist{
		{CatalogItem: models.CatalogItem{ID: 2, Title: "Newer"}, AddedAt: 200},
		{CatalogItem: models.CatalogItem{ID: 1, Title: "Older"}, AddedAt: 100},
	}}
	handler := NewWatchlistHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got models.Watchlist
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 {
		t.Errorf("unexpected list %+v", got)
	}
}

func TestWatchlistAdd(t *testing.T) {
	svc := &fakeWatchlistService{}
	handler := NewWatchlistHandler(svc)

	body := strings.NewReader(`{"id":27205,"title":"Inception"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", body)
	w := httptest.NewRecorder()
	handler.Add(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !svc.IsPresent(27205) {
		t.Error("expected item to be added")
	}
}

func TestWatchlistAddRejectsMissingID(t *testing.T) {
	handler := NewWatchlistHandler(&fakeWatchlistService{})

	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(`{"title":"No ID"}`))
	w := httptest.NewRecorder()
	handler.Add(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWatchlistAddRejectsBadJSON(t *testing.T) {
	handler := NewWatchlistHandler(&fakeWatchlistService{})

	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()
	handler.Add(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWatchlistRemove(t *testing.T) {
	svc := &fakeWatchlistService{list: models.Watchlist{
		{CatalogItem: models.CatalogItem{ID: 155, Title: "The Dark Knight"}, AddedAt: 100},
	}}
	handler := NewWatchlistHandler(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/watchlist/155", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "155"})
	w := httptest.NewRecorder()
	handler.Remove(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if svc.IsPresent(155) {
		t.Error("expected item to be removed")
	}
}

func TestWatchlistRemoveRejectsBadID(t *testing.T) {
	handler := NewWatchlistHandler(&fakeWatchlistService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/watchlist/movie", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "movie"})
	w := httptest.NewRecorder()
	handler.Remove(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWatchlistToggle(t *testing.T) {
	svc := &fakeWatchlistService{}
	handler := NewWatchlistHandler(svc)

	toggle := func() map[string]string {
		body := strings.NewReader(`{"id":680,"title":"Pulp Fiction"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/watchlist/toggle", body)
		w := httptest.NewRecorder()
		handler.Toggle(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]string
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return resp
	}

	if resp := toggle(); resp["status"] != "added" {
		t.Errorf("expected first toggle to add, got %v", resp)
	}
	if resp := toggle(); resp["status"] != "removed" {
		t.Errorf("expected second toggle to remove, got %v", resp)
	}
}

func TestWatchlistStatus(t *testing.T) {
	svc := &fakeWatchlistService{
		list:    models.Watchlist{{CatalogItem: models.CatalogItem{ID: 1}, AddedAt: 1}},
		syncing: true,
	}
	handler := NewWatchlistHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist/status", nil)
	w := httptest.NewRecorder()
	handler.Status(w, req)

	var resp struct {
		Syncing bool `json:"syncing"`
		Count   int  `json:"count"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Syncing || resp.Count != 1 {
		t.Errorf("unexpected status %+v", resp)
	}
}
