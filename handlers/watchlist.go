package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"cinetrack/models"
	"cinetrack/services/watchlist"
)

type watchlistService interface {
	List() models.Watchlist
	Add(models.CatalogItem) error
	Remove(id int64) error
	Toggle(models.CatalogItem) (added bool, err error)
	Clear() error
	IsPresent(id int64) bool
	Syncing() bool
}

var _ watchlistService = (*watchlist.Service)(nil)

type WatchlistHandler struct {
	Service watchlistService
}

func NewWatchlistHandler(service watchlistService) *WatchlistHandler {
	return &WatchlistHandler{Service: service}
}

// List returns the watchlist, newest first.
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.List())
}

// Add saves a catalog item onto the watchlist. Adding an item that is
// already present succeeds without changing the list.
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	item, ok := decodeCatalogItem(w, r)
	if !ok {
		return
	}

	if err := h.Service.Add(item); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, h.Service.List())
}

// Remove deletes an entry by catalog ID.
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Remove(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Toggle flips an item's membership and reports which way it went.
func (h *WatchlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	item, ok := decodeCatalogItem(w, r)
	if !ok {
		return
	}

	added, err := h.Service.Toggle(item)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	status := "removed"
	if added {
		status = "added"
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

// Clear empties the watchlist.
func (h *WatchlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Clear(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Status reports the sync indicator state and the current list size.
func (h *WatchlistHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"syncing": h.Service.Syncing(),
		"count":   len(h.Service.List()),
	})
}

func decodeCatalogItem(w http.ResponseWriter, r *http.Request) (models.CatalogItem, bool) {
	var item models.CatalogItem
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return models.CatalogItem{}, false
	}
	if item.ID <= 0 {
		http.Error(w, "catalog id is required", http.StatusBadRequest)
		return models.CatalogItem{}, false
	}
	return item, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(strings.TrimSpace(vars["id"]), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid catalog id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
