// Package identity is the auth capability: it registers accounts, performs
// credential exchange and tells subscribers whenever the current identity
// changes.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cinetrack/models"
)

var (
	ErrStorageDirRequired = errors.New("storage directory not provided")
	ErrEmailRequired      = errors.New("email is required")
	ErrSecretRequired     = errors.New("secret is required")
	ErrSecretTooShort     = errors.New("secret must be at least 6 characters")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or secret")
)

const minSecretLength = 6

// ChangeFunc receives the new identity on every transition; nil means logged
// out.
type ChangeFunc func(*models.Identity)

// Service manages registered accounts and the process-wide current identity.
type Service struct {
	mu          sync.RWMutex
	accountPath string
	sessionPath string
	accounts    map[string]models.Account // keyed by owner key
	current     *models.Identity
	resolved    bool

	subMu   sync.Mutex
	nextSub int
	subs    map[int]ChangeFunc
}

// NewService creates an identity service storing data inside the provided
// directory.
func NewService(storageDir string) (*Service, error) {
	if strings.TrimSpace(storageDir) == "" {
		return nil, ErrStorageDirRequired
	}

	if err := os.MkdirAll(storageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create identity dir: %w", err)
	}

	svc := &Service{
		accountPath: filepath.Join(storageDir, "accounts.json"),
		sessionPath: filepath.Join(storageDir, "session.json"),
		accounts:    make(map[string]models.Account),
		subs:        make(map[int]ChangeFunc),
	}

	if err := svc.load(); err != nil {
		return nil, err
	}

	return svc, nil
}

// Current returns the active identity, or nil when logged out or not yet
// resolved.
func (s *Service) Current() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// OnChange subscribes to identity transitions and returns an unsubscribe
// handle. Callbacks run synchronously on the goroutine driving the transition,
// in subscription order.
func (s *Service) OnChange(fn ChangeFunc) func() {
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

// Resolve performs the one-time initial identity resolution: if a session was
// persisted for a still-registered account it becomes current, otherwise the
// process starts logged out. Either way subscribers are notified exactly once.
func (s *Service) Resolve() {
	s.mu.Lock()
	if s.resolved {
		s.mu.Unlock()
		return
	}
	s.resolved = true

	if key := s.loadSessionLocked(); key != "" {
		if account, ok := s.accounts[key]; ok {
			s.current = account.Identity()
		}
	}
	identity := s.current
	s.mu.Unlock()

	s.notify(identity)
}

// SignUp registers a new account and signs it in.
func (s *Service) SignUp(email, secret string) (*models.Identity, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if secret == "" {
		return nil, ErrSecretRequired
	}
	if len(secret) < minSecretLength {
		return nil, ErrSecretTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash secret: %w", err)
	}

	s.mu.Lock()
	for _, account := range s.accounts {
		if account.Email == email {
			s.mu.Unlock()
			return nil, ErrEmailTaken
		}
	}

	account := models.Account{
		Key:        uuid.NewString(),
		Email:      email,
		SecretHash: string(hash),
		CreatedAt:  time.Now().UTC(),
	}
	s.accounts[account.Key] = account

	if err := s.saveAccountsLocked(); err != nil {
		delete(s.accounts, account.Key)
		s.mu.Unlock()
		return nil, err
	}

	identity := account.Identity()
	s.current = identity
	s.saveSessionLocked(account.Key)
	s.mu.Unlock()

	s.notify(identity)
	return identity, nil
}

// SignIn exchanges credentials for the matching identity.
func (s *Service) SignIn(email, secret string) (*models.Identity, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if secret == "" {
		return nil, ErrSecretRequired
	}

	s.mu.Lock()
	var match *models.Account
	for _, account := range s.accounts {
		if account.Email == email {
			found := account
			match = &found
			break
		}
	}
	if match == nil {
		s.mu.Unlock()
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(match.SecretHash), []byte(secret)); err != nil {
		s.mu.Unlock()
		return nil, ErrInvalidCredentials
	}

	identity := match.Identity()
	s.current = identity
	s.saveSessionLocked(match.Key)
	s.mu.Unlock()

	s.notify(identity)
	return identity, nil
}

// SignOut clears the current identity. Signing out while already logged out is
// a no-op and fires no event.
func (s *Service) SignOut() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.saveSessionLocked("")
	s.mu.Unlock()

	s.notify(nil)
}

func (s *Service) notify(identity *models.Identity) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]ChangeFunc, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(identity)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type sessionFile struct {
	AccountKey string `json:"accountKey"`
}

func (s *Service) loadSessionLocked() string {
	data, err := os.ReadFile(s.sessionPath)
	if err != nil {
		return ""
	}
	var session sessionFile
	if err := json.Unmarshal(data, &session); err != nil {
		return ""
	}
	return strings.TrimSpace(session.AccountKey)
}

func (s *Service) saveSessionLocked(accountKey string) {
	if accountKey == "" {
		_ = os.Remove(s.sessionPath)
		return
	}
	data, err := json.Marshal(sessionFile{AccountKey: accountKey})
	if err != nil {
		return
	}
	// Session loss only means the user signs in again; not worth failing the
	// credential exchange over.
	_ = os.WriteFile(s.sessionPath, data, 0o600)
}

func (s *Service) load() error {
	file, err := os.Open(s.accountPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open accounts file: %w", err)
	}
	defer file.Close()

	var stored []storedAccount
	dec := json.NewDecoder(file)
	if err := dec.Decode(&stored); err != nil {
		return fmt.Errorf("decode accounts: %w", err)
	}

	s.accounts = make(map[string]models.Account, len(stored))
	for _, acc := range stored {
		if strings.TrimSpace(acc.Key) == "" || strings.TrimSpace(acc.Email) == "" {
			continue
		}
		s.accounts[acc.Key] = models.Account{
			Key:        acc.Key,
			Email:      acc.Email,
			SecretHash: acc.SecretHash,
			CreatedAt:  acc.CreatedAt,
		}
	}

	return nil
}

// storedAccount is the on-disk shape; unlike models.Account it serializes the
// secret hash.
type storedAccount struct {
	Key        string    `json:"key"`
	Email      string    `json:"email"`
	SecretHash string    `json:"secretHash"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s *Service) saveAccountsLocked() error {
	stored := make([]storedAccount, 0, len(s.accounts))
	for _, acc := range s.accounts {
		stored = append(stored, storedAccount{
			Key:        acc.Key,
			Email:      acc.Email,
			SecretHash: acc.SecretHash,
			CreatedAt:  acc.CreatedAt,
		})
	}

	sort.Slice(stored, func(i, j int) bool {
		if stored[i].CreatedAt.Equal(stored[j].CreatedAt) {
			return stored[i].Email < stored[j].Email
		}
		return stored[i].CreatedAt.Before(stored[j].CreatedAt)
	})

	tmp := s.accountPath + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create accounts temp file: %w", err)
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stored); err != nil {
		file.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encode accounts: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("sync accounts: %w", err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close accounts temp file: %w", err)
	}

	if err := os.Rename(tmp, s.accountPath); err != nil {
		return fmt.Errorf("replace accounts file: %w", err)
	}

	return nil
}
