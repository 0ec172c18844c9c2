package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"cinetrack/models"
)

// blobName is the fixed well-known key the watchlist collection lives under.
const blobName = "watchlist.json"

var ErrStorageDirRequired = errors.New("storage directory not provided")

// Store persists the watchlist collection as a single JSON blob at a fixed
// key. Reads and writes are synchronous; writes replace the blob atomically.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a local store rooted at the provided directory. Pass nil to
// use the OS filesystem; tests inject afero.NewMemMapFs().
func NewStore(fsys afero.Fs, storageDir string) (*Store, error) {
	if strings.TrimSpace(storageDir) == "" {
		return nil, ErrStorageDirRequired
	}
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	if err := fsys.MkdirAll(storageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create local store dir: %w", err)
	}

	return &Store{
		fs:   fsys,
		path: filepath.Join(storageDir, blobName),
	}, nil
}

// Read loads the persisted watchlist. A missing or unparsable blob yields an
// empty list; the UI has no use for a partial or broken value.
func (s *Store) Read() models.Watchlist {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Watchlist{}
	}
	if err != nil {
		log.Printf("[localstore] read %s: %v", s.path, err)
		return models.Watchlist{}
	}
	if len(data) == 0 {
		return models.Watchlist{}
	}

	var list models.Watchlist
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("[localstore] unparsable blob at %s, treating as empty: %v", s.path, err)
		return models.Watchlist{}
	}

	return list
}

// Write replaces the persisted watchlist with the provided list.
func (s *Store) Write(list models.Watchlist) error {
	if list == nil {
		list = models.Watchlist{}
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode watchlist: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("write watchlist temp file: %w", err)
	}

	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace watchlist file: %w", err)
	}

	return nil
}
