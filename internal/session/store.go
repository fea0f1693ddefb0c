package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultProfileName is the profile file name under the user config dir.
const DefaultProfileName = "profile.json"

// profile is the persisted client state: the session plus independent
// preferences. Each field is settable and clearable on its own; an
// absent token is the canonical logged-out signal.
type profile struct {
	Session
	Theme string `json:"theme,omitempty"`
}

// Store persists the session and client preferences. The CLI uses the
// file-backed implementation; tests use MemStore.
type Store interface {
	Current() (Session, error)
	SaveSession(Session) error
	ClearSession() error
	Theme() (string, error)
	SetTheme(string) error
}

// FileStore keeps the profile as a JSON file, written atomically.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath resolves the profile location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "imgboard", DefaultProfileName), nil
}

func (f *FileStore) load() (profile, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return profile{}, nil
	}
	if err != nil {
		return profile{}, fmt.Errorf("read profile: %w", err)
	}
	var p profile
	if err := json.Unmarshal(data, &p); err != nil {
		return profile{}, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

func (f *FileStore) save(p profile) error {
	p.Session = p.Session.normalized()
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}

// Current returns the persisted session, normalized. A missing
// profile file is a logged-out session, not an error.
func (f *FileStore) Current() (Session, error) {
	p, err := f.load()
	if err != nil {
		return Session{}, err
	}
	return p.Session.normalized(), nil
}

// SaveSession persists the session, preserving preferences.
func (f *FileStore) SaveSession(s Session) error {
	p, err := f.load()
	if err != nil {
		return err
	}
	p.Session = s
	return f.save(p)
}

// ClearSession logs out, preserving preferences.
func (f *FileStore) ClearSession() error {
	return f.SaveSession(Session{})
}

// Theme returns the persisted theme preference, possibly empty.
func (f *FileStore) Theme() (string, error) {
	p, err := f.load()
	if err != nil {
		return "", err
	}
	return p.Theme, nil
}

// SetTheme persists the theme preference. Empty clears it.
func (f *FileStore) SetTheme(theme string) error {
	p, err := f.load()
	if err != nil {
		return err
	}
	p.Theme = theme
	return f.save(p)
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	p profile
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore { return &MemStore{} }

func (m *MemStore) Current() (Session, error) { return m.p.Session.normalized(), nil }

func (m *MemStore) SaveSession(s Session) error {
	m.p.Session = s.normalized()
	return nil
}

func (m *MemStore) ClearSession() error {
	m.p.Session = Session{}
	return nil
}

func (m *MemStore) Theme() (string, error) { return m.p.Theme, nil }

func (m *MemStore) SetTheme(theme string) error {
	m.p.Theme = theme
	return nil
}
