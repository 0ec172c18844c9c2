// Package docstore talks to the per-user cloud document store. Each owner key
// maps to one document of named JSON fields; upserts merge by field name so a
// partial write never clobbers fields it does not mention.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

// WatchlistField is the document field the synchronizer owns.
const WatchlistField = "watchlist"

var ErrNotFound = errors.New("document not found")

// Document is a single owner's stored document, keyed by field name.
type Document map[string]json.RawMessage

// Field decodes a named field into v. It returns false without touching v when
// the field is absent.
func (d Document) Field(name string, v any) (bool, error) {
	raw, ok := d[name]
	if !ok || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

// Fields builds a partial document from a single named value.
func Fields(name string, v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Document{name: raw}, nil
}

// Store is the document store capability. Get returns ErrNotFound when no
// document exists for the owner; Upsert creates the document if needed and
// merges the provided fields into it.
type Store interface {
	Get(ctx context.Context, ownerKey string) (Document, error)
	Upsert(ctx context.Context, ownerKey string, fields Document) error
}
