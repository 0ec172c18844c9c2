package models

import "sort"

// WatchlistEntry is a catalog item the user saved, stamped with the moment it
// was added. Identity is the catalog item's ID; any watchlist holds at most one
// entry per ID.
type WatchlistEntry struct {
	CatalogItem
	AddedAt int64 `json:"addedAt"` // Unix epoch milliseconds
}

// Watchlist is an ordered set of entries keyed by catalog ID. Canonical display
// order is AddedAt descending, newest first.
type Watchlist []WatchlistEntry

// Sort orders the list by AddedAt descending; entries with equal timestamps
// keep their relative order.
func (w Watchlist) Sort() {
	sort.SliceStable(w, func(i, j int) bool {
		return w[i].AddedAt > w[j].AddedAt
	})
}

// Contains reports whether an entry with the given ID is present.
func (w Watchlist) Contains(id int64) bool {
	for _, entry := range w {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the list.
func (w Watchlist) Clone() Watchlist {
	if w == nil {
		return nil
	}
	out := make(Watchlist, len(w))
	copy(out, w)
	return out
}
