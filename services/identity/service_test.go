package identity

import (
	"errors"
	"testing"

	"cinetrack/models"
)

func TestSignUpAndSignIn(t *testing.T) {
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	identity, err := svc.SignUp("Film.Fan@Example.com", "popcorn")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if identity.Email != "film.fan@example.com" {
		t.Errorf("expected normalized email, got %q", identity.Email)
	}
	if identity.Key == "" {
		t.Error("expected a generated owner key")
	}
	if current := svc.Current(); current == nil || current.Key != identity.Key {
		t.Errorf("expected signup to sign in, current=%v", current)
	}

	svc.SignOut()
	if svc.Current() != nil {
		t.Error("expected sign out to clear the current identity")
	}

	signedIn, err := svc.SignIn("film.fan@example.com", "popcorn")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if signedIn.Key != identity.Key {
		t.Errorf("signin returned key %q, want %q", signedIn.Key, identity.Key)
	}
}

func TestSignUpValidation(t *testing.T) {
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	tests := []struct {
		name    string
		email   string
		secret  string
		wantErr error
	}{
		{"missing email", "", "popcorn", ErrEmailRequired},
		{"missing secret", "a@b.com", "", ErrSecretRequired},
		{"short secret", "a@b.com", "abc", ErrSecretTooShort},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SignUp(tc.email, tc.secret); !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if _, err := svc.SignUp("taken@example.com", "popcorn"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if _, err := svc.SignUp("Taken@Example.com", "different"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	if _, err := svc.SignUp("a@b.com", "popcorn"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if _, err := svc.SignIn("nobody@b.com", "popcorn"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.SignIn("a@b.com", "wrong-secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong secret: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestOnChangeEvents(t *testing.T) {
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	var events []*models.Identity
	unsubscribe := svc.OnChange(func(id *models.Identity) {
		events = append(events, id)
	})

	svc.Resolve()
	identity, err := svc.SignUp("a@b.com", "popcorn")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	svc.SignOut()
	svc.SignOut() // already logged out, must not fire

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0] != nil {
		t.Errorf("expected resolve to report logged out, got %v", events[0])
	}
	if events[1] == nil || events[1].Key != identity.Key {
		t.Errorf("expected signup event for %q, got %v", identity.Key, events[1])
	}
	if events[2] != nil {
		t.Errorf("expected signout event to carry nil, got %v", events[2])
	}

	unsubscribe()
	if _, err := svc.SignIn("a@b.com", "popcorn"); err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("expected no events after unsubscribe, got %d", len(events))
	}
}

func TestResolveRestoresPersistedSession(t *testing.T) {
	dir := t.TempDir()

	svc, err := NewService(dir)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	identity, err := svc.SignUp("a@b.com", "popcorn")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	restarted, err := NewService(dir)
	if err != nil {
		t.Fatalf("failed to recreate service: %v", err)
	}
	if restarted.Current() != nil {
		t.Error("expected no identity before resolve")
	}

	var resolved *models.Identity
	restarted.OnChange(func(id *models.Identity) { resolved = id })
	restarted.Resolve()

	if resolved == nil || resolved.Key != identity.Key {
		t.Fatalf("expected resolve to restore %q, got %v", identity.Key, resolved)
	}
	if current := restarted.Current(); current == nil || current.Key != identity.Key {
		t.Errorf("expected current identity %q, got %v", identity.Key, current)
	}
}

func TestResolveRunsOnce(t *testing.T) {
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	calls := 0
	svc.OnChange(func(*models.Identity) { calls++ })

	svc.Resolve()
	svc.Resolve()

	if calls != 1 {
		t.Errorf("expected a single resolve notification, got %d", calls)
	}
}

func TestSignOutClearsPersistedSession(t *testing.T) {
	dir := t.TempDir()

	svc, err := NewService(dir)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	if _, err := svc.SignUp("a@b.com", "popcorn"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	svc.SignOut()

	restarted, err := NewService(dir)
	if err != nil {
		t.Fatalf("failed to recreate service: %v", err)
	}
	restarted.Resolve()
	if restarted.Current() != nil {
		t.Error("expected restart after sign out to stay logged out")
	}
}

func TestNewServiceRequiresDir(t *testing.T) {
	if _, err := NewService("  "); !errors.Is(err, ErrStorageDirRequired) {
		t.Fatalf("expected ErrStorageDirRequired, got %v", err)
	}
}
