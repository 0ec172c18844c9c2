// Package watchlist owns the user's saved-movie list and keeps its two
// copies, the durable local blob and the per-identity cloud document,
// reconciled.
// The in-memory list is the single source of truth for consumers; the local
// store is written synchronously on every mutation and the cloud copy is
// updated by best-effort pushes that never block the caller.
package watchlist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"cinetrack/models"
	"cinetrack/services/docstore"
	"cinetrack/services/localstore"
)

var ErrLocalStoreRequired = errors.New("local store not provided")

// Service is the watchlist synchronizer. All exported methods are safe for
// concurrent use; in-memory mutations are applied atomically under the lock
// before any I/O is issued.
type Service struct {
	mu       sync.RWMutex
	list     models.Watchlist // canonical order, AddedAt descending
	syncing  bool
	ownerKey string // active identity's document key, "" when logged out

	local  *localstore.Store
	remote docstore.Store // nil when no document store is configured

	now func() time.Time

	pushes conc.WaitGroup

	subMu   sync.Mutex
	nextSub int
	subs    map[int]func()
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates the synchronizer. The local store is read synchronously
// so the first consumer never observes a flash of empty state; a missing or
// unparsable blob starts the list empty. remote may be nil, in which case the
// list is local-only and identity changes are ignored.
func NewService(local *localstore.Store, remote docstore.Store, opts ...Option) (*Service, error) {
	if local == nil {
		return nil, ErrLocalStoreRequired
	}

	svc := &Service{
		local:  local,
		remote: remote,
		now:    time.Now,
		subs:   make(map[int]func()),
	}
	for _, opt := range opts {
		opt(svc)
	}

	list := local.Read()
	list.Sort()
	svc.list = list

	return svc, nil
}

// List returns the current watchlist, newest first.
func (s *Service) List() models.Watchlist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Clone()
}

// IsPresent reports whether the item with the given ID is on the list.
func (s *Service) IsPresent(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Contains(id)
}

// Syncing reports whether an identity-change reconciliation is in flight.
func (s *Service) Syncing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncing
}

// Subscribe registers a callback invoked after every state change (mutations,
// merges and syncing transitions) and returns an unsubscribe handle.
func (s *Service) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// Add appends the item with the current timestamp. Adding an ID that is
// already present is a silent no-op. The new list is persisted locally before
// Add returns; the cloud copy is updated by a push that is not awaited.
func (s *Service) Add(item models.CatalogItem) error {
	s.mu.Lock()
	if s.list.Contains(item.ID) {
		s.mu.Unlock()
		return nil
	}

	entry := models.WatchlistEntry{
		CatalogItem: item,
		AddedAt:     s.now().UnixMilli(),
	}
	// Newest entry goes first; equal timestamps keep insertion order via the
	// stable sort.
	s.list = append(models.Watchlist{entry}, s.list...)
	s.list.Sort()

	err := s.persistAndPushLocked()
	s.mu.Unlock()

	s.notify()
	return err
}

// Remove deletes the entry with the given ID. Removing an absent ID leaves
// the list unchanged.
func (s *Service) Remove(id int64) error {
	s.mu.Lock()
	if !s.list.Contains(id) {
		s.mu.Unlock()
		return nil
	}

	filtered := make(models.Watchlist, 0, len(s.list)-1)
	for _, entry := range s.list {
		if entry.ID != id {
			filtered = append(filtered, entry)
		}
	}
	s.list = filtered

	err := s.persistAndPushLocked()
	s.mu.Unlock()

	s.notify()
	return err
}

// Toggle removes the item when present and adds it otherwise. It reports
// true when the item ended up on the list.
func (s *Service) Toggle(item models.CatalogItem) (added bool, err error) {
	s.mu.RLock()
	present := s.list.Contains(item.ID)
	s.mu.RUnlock()

	if present {
		return false, s.Remove(item.ID)
	}
	return true, s.Add(item)
}

// Clear empties the list.
func (s *Service) Clear() error {
	s.mu.Lock()
	s.list = models.Watchlist{}
	err := s.persistAndPushLocked()
	s.mu.Unlock()

	s.notify()
	return err
}

// OnIdentityChange reconciles local and cloud state whenever the identity
// transitions, including the initial resolution. A nil identity (logged out)
// leaves local state untouched. Remote failures degrade to "not yet synced":
// the merged list survives locally and the next identity change retries the
// full reconciliation.
func (s *Service) OnIdentityChange(ctx context.Context, id *models.Identity) error {
	if id == nil {
		// Logged out: stop pushing, keep local state authoritative.
		s.mu.Lock()
		s.ownerKey = ""
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.ownerKey = id.Key
	s.mu.Unlock()

	if s.remote == nil {
		return nil
	}

	s.setSyncing(true)
	defer s.setSyncing(false)

	// Read the blob fresh rather than trusting possibly-stale memory.
	local := s.local.Read()

	remote := models.Watchlist{}
	var remoteErr error
	doc, err := s.remote.Get(ctx, id.Key)
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		// First sync for this identity; nothing stored yet.
	case err != nil:
		remoteErr = fmt.Errorf("fetch remote watchlist: %w", err)
		log.Printf("[watchlist] %v; merging against empty remote", remoteErr)
	default:
		if _, err := doc.Field(docstore.WatchlistField, &remote); err != nil {
			remoteErr = fmt.Errorf("decode remote watchlist: %w", err)
			log.Printf("[watchlist] %v; merging against empty remote", remoteErr)
			remote = models.Watchlist{}
		}
	}

	merged := Merge(local, remote)

	s.mu.Lock()
	s.list = merged
	localErr := s.local.Write(merged)
	s.mu.Unlock()
	s.notify()

	if localErr != nil {
		// No recovery path for a broken local store; memory keeps the merged
		// value.
		log.Printf("[watchlist] persist merged list: %v", localErr)
	}

	var pushErr error
	if result := s.pushRemote(ctx, id.Key, merged); result.Err != nil {
		log.Printf("[watchlist] merge-back %v", result)
		pushErr = result.Err
	}

	return errors.Join(remoteErr, localErr, pushErr)
}

// Merge combines the two copies deterministically. Local entries win on ID
// collision: the on-device copy the user just interacted with beats an
// arbitrary older cloud snapshot. The result has unique IDs and is ordered by
// AddedAt descending, and merging is idempotent.
func Merge(local, remote models.Watchlist) models.Watchlist {
	seen := make(map[int64]struct{}, len(local)+len(remote))
	merged := make(models.Watchlist, 0, len(local)+len(remote))

	for _, entry := range local {
		if _, ok := seen[entry.ID]; ok {
			continue
		}
		seen[entry.ID] = struct{}{}
		merged = append(merged, entry)
	}
	for _, entry := range remote {
		if _, ok := seen[entry.ID]; ok {
			continue
		}
		seen[entry.ID] = struct{}{}
		merged = append(merged, entry)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].AddedAt > merged[j].AddedAt
	})

	return merged
}

// Wait blocks until all fire-and-forget pushes issued so far have finished.
// Called at shutdown and by tests.
func (s *Service) Wait() {
	s.pushes.Wait()
}

// PushResult is the outcome of one best-effort cloud push.
type PushResult struct {
	OwnerKey string
	Err      error
}

func (r PushResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("push for %s failed: %v", r.OwnerKey, r.Err)
	}
	return fmt.Sprintf("push for %s ok", r.OwnerKey)
}

// persistAndPushLocked writes the current list to the local store and, when an
// identity is active, schedules a cloud push of the same snapshot. The caller
// holds the write lock.
func (s *Service) persistAndPushLocked() error {
	snapshot := s.list.Clone()

	if err := s.local.Write(snapshot); err != nil {
		// In-memory state stays as the most recent valid value.
		return fmt.Errorf("persist watchlist: %w", err)
	}

	ownerKey := s.ownerKey
	if ownerKey == "" || s.remote == nil {
		return nil
	}

	// Not awaited, not cancelable: a push issued just before logout still
	// completes against the identity it was issued for. Back-to-back pushes
	// may land out of issue order; each carries the full list, so the cloud
	// copy converges to the last-arriving snapshot.
	s.pushes.Go(func() {
		if result := s.pushRemote(context.Background(), ownerKey, snapshot); result.Err != nil {
			log.Printf("[watchlist] best-effort %v", result)
		}
	})

	return nil
}

// pushRemote writes the snapshot into the identity's document. Only the
// watchlist field is named, so unrelated fields survive the merge-write.
func (s *Service) pushRemote(ctx context.Context, ownerKey string, snapshot models.Watchlist) PushResult {
	fields, err := docstore.Fields(docstore.WatchlistField, snapshot)
	if err != nil {
		return PushResult{OwnerKey: ownerKey, Err: fmt.Errorf("encode watchlist field: %w", err)}
	}
	if err := s.remote.Upsert(ctx, ownerKey, fields); err != nil {
		return PushResult{OwnerKey: ownerKey, Err: err}
	}
	return PushResult{OwnerKey: ownerKey}
}

func (s *Service) setSyncing(v bool) {
	s.mu.Lock()
	s.syncing = v
	s.mu.Unlock()
	s.notify()
}

func (s *Service) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
