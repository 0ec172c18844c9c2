package docstore

import (
	"context"
	"errors"
	"sync"
)

// Memory is an in-process Store used by tests and by deployments without a
// configured document store backend. It honors the same merge semantics as the
// hosted API.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]Document

	// FailGet / FailUpsert make the next matching call return the given
	// error, for exercising degraded-sync paths in tests.
	FailGet    error
	FailUpsert error
}

// NewMemory creates an empty in-memory document store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]Document)}
}

// Get returns a copy of the owner's document, or ErrNotFound.
func (m *Memory) Get(ctx context.Context, ownerKey string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailGet != nil {
		return nil, m.FailGet
	}

	doc, ok := m.docs[ownerKey]
	if !ok {
		return nil, ErrNotFound
	}

	out := make(Document, len(doc))
	for name, raw := range doc {
		out[name] = raw
	}
	return out, nil
}

// Upsert merges fields into the owner's document, creating it if absent.
func (m *Memory) Upsert(ctx context.Context, ownerKey string, fields Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ownerKey == "" {
		return errors.New("owner key is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailUpsert != nil {
		return m.FailUpsert
	}

	doc, ok := m.docs[ownerKey]
	if !ok {
		doc = make(Document, len(fields))
		m.docs[ownerKey] = doc
	}
	for name, raw := range fields {
		doc[name] = raw
	}
	return nil
}

var _ Store = (*Memory)(nil)
