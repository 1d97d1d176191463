package session

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/murikinatisankumar/blogspace/pkg/author"
	"github.com/murikinatisankumar/blogspace/pkg/kv"
)

// Keys written to the backing store. Plain strings, cleared wholesale on
// logout.
const (
	KeyIsLoggedIn = "isLoggedIn"
	KeyUserName   = "userName"
	KeyUserEmail  = "userEmail"
)

const defaultAvatar = "/static/avatars/placeholder.svg"

type Profile struct {
	DisplayName string `json:"name"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar"`
	Bio         string `json:"bio,omitempty"`
	IsLoggedIn  bool   `json:"isLoggedIn"`
}

// ProfileUpdate carries a partial edit; nil fields are left untouched.
type ProfileUpdate struct {
	DisplayName *string `json:"name"`
	Email       *string `json:"email"`
	Avatar      *string `json:"avatar"`
	Bio         *string `json:"bio"`
}

type Manager struct {
	store   kv.Store
	data    map[string]*Session
	profile Profile
	mu      sync.RWMutex
}

var ErrSessionNotFound = errors.New("session not found")
var ErrNotLoggedIn = errors.New("not logged in")

func NewSessionsManager(store kv.Store) *Manager {
	return &Manager{
		store:   store,
		data:    make(map[string]*Session),
		profile: Profile{Avatar: defaultAvatar},
	}
}

// Restore rehydrates the profile from the backing store. A previously saved
// logged-in state with a name and email is trusted as-is; there is no token
// to validate.
func (m *Manager) Restore() error {
	loggedIn, err := m.store.Get(KeyIsLoggedIn)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	name, errName := m.store.Get(KeyUserName)
	email, errEmail := m.store.Get(KeyUserEmail)
	if loggedIn != "true" || errName != nil || errEmail != nil || name == "" || email == "" {
		return nil
	}

	m.mu.Lock()
	m.profile = Profile{
		DisplayName: name,
		Email:       email,
		Username:    author.DeriveUsername(name),
		Avatar:      defaultAvatar,
		IsLoggedIn:  true,
	}
	m.mu.Unlock()
	return nil
}

func (m *Manager) Profile() Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile
}

// Login moves the state machine to LoggedIn, persists the profile keys and
// hands the caller a cookie-bound session.
func (m *Manager) Login(w http.ResponseWriter, displayName, email string) (*Session, error) {
	username := author.DeriveUsername(displayName)
	sess := NewSession(displayName, username)
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	m.mu.Lock()
	m.data[sess.ID] = sess
	m.profile = Profile{
		DisplayName: displayName,
		Email:       email,
		Username:    username,
		Avatar:      defaultAvatar,
		IsLoggedIn:  true,
	}
	m.mu.Unlock()

	if err := m.store.Set(KeyIsLoggedIn, "true"); err != nil {
		return nil, err
	}
	if err := m.store.Set(KeyUserName, displayName); err != nil {
		return nil, err
	}
	if err := m.store.Set(KeyUserEmail, email); err != nil {
		return nil, err
	}

	cookie := &http.Cookie{Name: "session_id",
		Value:   sess.ID,
		Expires: time.Now().Add(24 * time.Hour),
		Path:    "/"}

	http.SetCookie(w, cookie)
	return sess, nil
}

func (m *Manager) CheckSession(r *http.Request) (*Session, error) {
	sessID, err := r.Cookie("session_id")
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if sess, ok := m.data[sessID.Value]; ok {
		return sess, nil
	}
	return nil, ErrSessionNotFound
}

// Logout moves the state machine back to LoggedOut: profile fields cleared,
// persisted keys removed, cookie expired. The cookie session is dropped when
// present but its absence does not block the rest.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	if sessID, err := r.Cookie("session_id"); err == nil {
		m.mu.Lock()
		delete(m.data, sessID.Value)
		m.mu.Unlock()

		http.SetCookie(w, &http.Cookie{
			Name:    "session_id",
			Value:   "",
			Path:    "/",
			Expires: time.Now().Add(-1 * time.Hour),
		})
	}

	m.mu.Lock()
	m.profile = Profile{Avatar: defaultAvatar}
	m.mu.Unlock()

	if err := m.store.Remove(KeyIsLoggedIn); err != nil {
		return err
	}
	if err := m.store.Remove(KeyUserName); err != nil {
		return err
	}
	return m.store.Remove(KeyUserEmail)
}

// UpdateProfile merges the partial update. A display name change re-derives
// the username with the same rule login uses.
func (m *Manager) UpdateProfile(u ProfileUpdate) (Profile, error) {
	m.mu.Lock()
	if !m.profile.IsLoggedIn {
		m.mu.Unlock()
		return Profile{}, ErrNotLoggedIn
	}

	if u.DisplayName != nil {
		m.profile.DisplayName = *u.DisplayName
		m.profile.Username = author.DeriveUsername(*u.DisplayName)
	}
	if u.Email != nil {
		m.profile.Email = *u.Email
	}
	if u.Avatar != nil {
		m.profile.Avatar = *u.Avatar
	}
	if u.Bio != nil {
		m.profile.Bio = *u.Bio
	}
	updated := m.profile
	m.mu.Unlock()

	if u.DisplayName != nil {
		if err := m.store.Set(KeyUserName, *u.DisplayName); err != nil {
			return updated, err
		}
	}
	if u.Email != nil {
		if err := m.store.Set(KeyUserEmail, *u.Email); err != nil {
			return updated, err
		}
	}
	return updated, nil
}
