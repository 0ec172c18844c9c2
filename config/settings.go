package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Settings represents the application configuration persisted to disk.
type Settings struct {
	Server   ServerSettings   `json:"server"`
	Storage  StorageSettings  `json:"storage"`
	Catalog  CatalogSettings  `json:"catalog"`
	Ratings  RatingsSettings  `json:"ratings"`
	DocStore DocStoreSettings `json:"docstore"`
	Log      LogConfig        `json:"log"`
}

type ServerSettings struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type StorageSettings struct {
	// DataDir holds the local watchlist blob and the account registry.
	DataDir string `json:"dataDir"`
}

type CatalogSettings struct {
	APIKey          string `json:"apiKey"`
	Language        string `json:"language"`
	CacheTTLMinutes int    `json:"cacheTtlMinutes"`
}

type RatingsSettings struct {
	APIKey  string `json:"apiKey"`
	Enabled bool   `json:"enabled"`
}

type DocStoreSettings struct {
	BaseURL        string `json:"baseUrl"`
	APIKey         string `json:"apiKey"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

type LogConfig struct {
	File       string `json:"file,omitempty"`
	MaxSize    int    `json:"maxSize"`    // megabytes
	MaxBackups int    `json:"maxBackups"` // number of rotated files to keep
	MaxAge     int    `json:"maxAge"`     // days
	Compress   bool   `json:"compress"`
}

// DefaultSettings returns the configuration written on first run.
func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{
			Host: "0.0.0.0",
			Port: 7485,
		},
		Storage: StorageSettings{
			DataDir: "data",
		},
		Catalog: CatalogSettings{
			Language:        "en-US",
			CacheTTLMinutes: 10,
		},
		Ratings: RatingsSettings{
			Enabled: false,
		},
		DocStore: DocStoreSettings{
			TimeoutSeconds: 10,
		},
		Log: LogConfig{
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     14,
			Compress:   true,
		},
	}
}

// Manager loads and persists settings to a JSON file.
type Manager struct {
	path string
}

func NewManager(configPath string) *Manager {
	return &Manager{path: configPath}
}

// EnsureDir ensures parent directory exists.
func (m *Manager) EnsureDir() error {
	dir := filepath.Dir(m.path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Load reads settings from disk or creates defaults if missing.
func (m *Manager) Load() (Settings, error) {
	if m.path == "" {
		return Settings{}, errors.New("config path not set")
	}
	if _, err := os.Stat(m.path); errors.Is(err, fs.ErrNotExist) {
		defaults := DefaultSettings()
		if err := m.Save(defaults); err != nil {
			return Settings{}, err
		}
		return defaults, nil
	}
	f, err := os.Open(m.path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	s := DefaultSettings()
	dec := json.NewDecoder(f)
	if err := dec.Decode(&s); err != nil {
		return Settings{}, err
	}

	// Backfill values older settings files may be missing.
	if s.Server.Port == 0 {
		s.Server.Port = DefaultSettings().Server.Port
	}
	if strings.TrimSpace(s.Storage.DataDir) == "" {
		s.Storage.DataDir = DefaultSettings().Storage.DataDir
	}
	if strings.TrimSpace(s.Catalog.Language) == "" {
		s.Catalog.Language = DefaultSettings().Catalog.Language
	}
	if s.Catalog.CacheTTLMinutes <= 0 {
		s.Catalog.CacheTTLMinutes = DefaultSettings().Catalog.CacheTTLMinutes
	}
	if s.DocStore.TimeoutSeconds <= 0 {
		s.DocStore.TimeoutSeconds = DefaultSettings().DocStore.TimeoutSeconds
	}
	if s.Log.MaxSize <= 0 {
		s.Log.MaxSize = DefaultSettings().Log.MaxSize
	}

	return s, nil
}

// Save writes the provided settings to disk atomically.
func (m *Manager) Save(s Settings) error {
	if m.path == "" {
		return errors.New("config path not set")
	}
	if err := m.EnsureDir(); err != nil {
		return err
	}
	tmp := m.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, m.path)
}
