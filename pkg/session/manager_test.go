package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/murikinatisankumar/blogspace/pkg/kv"
)

func login(t *testing.T, m *Manager, name, email string) (*Session, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	sess, err := m.Login(w, name, email)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return sess, w
}

func requestWithSessionCookie(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest("POST", "/api/logout", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestLoginDerivesUsernameAndPersists(t *testing.T) {
	store := kv.NewMemoryStore()
	m := NewSessionsManager(store)

	sess, _ := login(t, m, "Jane Q. Doe", "jane@example.com")
	if sess.Username != "janeq.doe" {
		t.Fatalf("session username = %q", sess.Username)
	}

	profile := m.Profile()
	if !profile.IsLoggedIn || profile.Username != "janeq.doe" || profile.Email != "jane@example.com" {
		t.Fatalf("profile after login: %+v", profile)
	}

	for key, want := range map[string]string{
		KeyIsLoggedIn: "true",
		KeyUserName:   "Jane Q. Doe",
		KeyUserEmail:  "jane@example.com",
	} {
		if val, err := store.Get(key); err != nil || val != want {
			t.Fatalf("store[%s] = %q, %v, want %q", key, val, err, want)
		}
	}
}

func TestLogoutClearsStateAndKeys(t *testing.T) {
	store := kv.NewMemoryStore()
	m := NewSessionsManager(store)

	_, w := login(t, m, "Sarah Chen", "sarah@example.com")

	r := requestWithSessionCookie(w)
	if err := m.Logout(httptest.NewRecorder(), r); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	profile := m.Profile()
	if profile.IsLoggedIn || profile.DisplayName != "" || profile.Username != "" {
		t.Fatalf("profile after logout: %+v", profile)
	}
	for _, key := range []string{KeyIsLoggedIn, KeyUserName, KeyUserEmail} {
		if _, err := store.Get(key); !errors.Is(err, kv.ErrNotFound) {
			t.Fatalf("store[%s] still present after logout", key)
		}
	}
	if _, err := m.CheckSession(r); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("session survived logout: %v", err)
	}
}

func TestCheckSession(t *testing.T) {
	m := NewSessionsManager(kv.NewMemoryStore())

	sess, w := login(t, m, "Sarah Chen", "sarah@example.com")

	got, err := m.CheckSession(requestWithSessionCookie(w))
	if err != nil {
		t.Fatalf("CheckSession: %v", err)
	}
	if got.ID != sess.ID {
		t.Fatalf("got session %s, want %s", got.ID, sess.ID)
	}

	bare := httptest.NewRequest("GET", "/api/profile", nil)
	if _, err := m.CheckSession(bare); err == nil {
		t.Fatal("CheckSession without cookie succeeded")
	}
}

func TestUpdateProfileRederivesUsername(t *testing.T) {
	m := NewSessionsManager(kv.NewMemoryStore())
	login(t, m, "Sarah Chen", "sarah@example.com")

	newName := "Sarah Chen Williams"
	profile, err := m.UpdateProfile(ProfileUpdate{DisplayName: &newName})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if profile.Username != "sarahchenwilliams" {
		t.Fatalf("username not re-derived: %q", profile.Username)
	}
	if profile.Email != "sarah@example.com" {
		t.Fatalf("untouched field changed: %q", profile.Email)
	}
}

func TestUpdateProfilePartialMerge(t *testing.T) {
	store := kv.NewMemoryStore()
	m := NewSessionsManager(store)
	login(t, m, "Sarah Chen", "sarah@example.com")

	bio := "Writing about the modern web."
	profile, err := m.UpdateProfile(ProfileUpdate{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if profile.Bio != bio || profile.DisplayName != "Sarah Chen" || profile.Username != "sarahchen" {
		t.Fatalf("merge result: %+v", profile)
	}

	// Bio-only edits touch no persisted key.
	if val, _ := store.Get(KeyUserName); val != "Sarah Chen" {
		t.Fatalf("store[userName] = %q", val)
	}
}

func TestUpdateProfileRequiresLogin(t *testing.T) {
	m := NewSessionsManager(kv.NewMemoryStore())

	name := "Nobody"
	if _, err := m.UpdateProfile(ProfileUpdate{DisplayName: &name}); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("got %v, want ErrNotLoggedIn", err)
	}
}

func TestRestoreTrustsSavedState(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Set(KeyIsLoggedIn, "true")            //nolint:errcheck
	store.Set(KeyUserName, "Emma Thompson")     //nolint:errcheck
	store.Set(KeyUserEmail, "emma@example.com") //nolint:errcheck

	m := NewSessionsManager(store)
	if err := m.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	profile := m.Profile()
	if !profile.IsLoggedIn || profile.Username != "emmathompson" || profile.Email != "emma@example.com" {
		t.Fatalf("restored profile: %+v", profile)
	}
}

func TestRestoreIgnoresIncompleteState(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Set(KeyIsLoggedIn, "true") //nolint:errcheck
	// No name or email saved.

	m := NewSessionsManager(store)
	if err := m.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if m.Profile().IsLoggedIn {
		t.Fatal("restored a login with no saved identity")
	}
}

func TestRestoreEmptyStore(t *testing.T) {
	m := NewSessionsManager(kv.NewMemoryStore())
	if err := m.Restore(); err != nil {
		t.Fatalf("Restore on empty store: %v", err)
	}
	if m.Profile().IsLoggedIn {
		t.Fatal("logged in from empty store")
	}
}
