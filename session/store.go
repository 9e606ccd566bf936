// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Session is a snapshot of the authentication state. The token is an
// opaque bearer credential issued by POST /auth/login; the user is a
// display name, never used for authorization decisions.
//
// Invariant: Authenticated is true if and only if Token is non-empty.
// The Store maintains this on every mutation and re-derives it when
// rehydrating from disk, so a hand-edited session file cannot put the
// process into a half-authenticated state.
type Session struct {
	// Token is the bearer credential, or "" when logged out.
	Token string `json:"token"`

	// User is the display name of the signed-in user, or "" when
	// logged out.
	User string `json:"user"`

	// Authenticated is derived from Token; persisted for readability
	// of the session file, recomputed on load.
	Authenticated bool `json:"authenticated"`
}

// Store is the process-wide session state container. Safe for
// concurrent use: reads take a shared lock and never perform I/O;
// mutations replace the whole session under an exclusive lock and then
// persist to disk best-effort.
type Store struct {
	mu          sync.RWMutex
	current     Session
	path        string
	logger      *slog.Logger
	subscribers []func(Session)
}

// FilePath returns the session file location. Checks the
// TALLER_SESSION_FILE environment variable first, then
// $XDG_CONFIG_HOME/taller/session.json, then
// ~/.config/taller/session.json.
func FilePath() string {
	if envPath := os.Getenv("TALLER_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "taller-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "taller", "session.json")
}

// Open creates a Store backed by the session file at path, rehydrating
// any persisted session. A missing or unparseable file yields the empty
// session — Open never fails. If logger is nil, slog.Default() is used.
func Open(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	store := &Store{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("unreadable session file, starting logged out",
				"path", path, "error", err)
		}
		return store
	}

	var persisted Session
	if err := json.Unmarshal(data, &persisted); err != nil {
		logger.Warn("corrupt session file, starting logged out",
			"path", path, "error", err)
		return store
	}

	// Authenticated is always derived from the credential, never
	// trusted from disk.
	persisted.Authenticated = persisted.Token != ""
	store.current = persisted
	return store
}

// Login replaces the session with the given credential and principal
// and persists it. The token is treated as opaque — any non-empty
// string is accepted. Both fields are set together; the session is
// never partially updated.
func (s *Store) Login(token, user string) {
	s.set(Session{
		Token:         token,
		User:          user,
		Authenticated: token != "",
	})
}

// Logout clears the session and removes the persisted file. Idempotent:
// logging out an already-empty session is a no-op apart from the
// (harmless) file removal attempt.
func (s *Store) Logout() {
	s.set(Session{})
}

// Current returns a snapshot of the session. Pure in-memory read — no
// storage or network I/O on this path.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Authenticated reports whether a credential is present.
func (s *Store) Authenticated() bool {
	return s.Current().Authenticated
}

// Token returns the current bearer credential, or "" when logged out.
func (s *Store) Token() string {
	return s.Current().Token
}

// Subscribe registers fn to be called after every mutation with the new
// session snapshot. Callbacks run synchronously on the mutating
// goroutine, after the lock is released; they must not call back into
// Login or Logout.
func (s *Store) Subscribe(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// set replaces the session, persists it, and notifies subscribers.
// Last write wins; there is no read-modify-write cycle to race.
func (s *Store) set(next Session) {
	s.mu.Lock()
	s.current = next
	subscribers := make([]func(Session), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	if next.Authenticated {
		s.persist(next)
	} else {
		s.removePersisted()
	}

	for _, fn := range subscribers {
		fn(next)
	}
}

// persist writes the session file with mode 0600 (it contains an access
// token), creating the parent directory with mode 0700 if needed.
// Failures are logged, never returned: the in-memory session is the
// authority and a full write happens again on the next mutation.
func (s *Store) persist(current Session) {
	if s.path == "" {
		return
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		s.logger.Warn("marshaling session", "error", err)
		return
	}
	data = append(data, '\n')

	directory := filepath.Dir(s.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		s.logger.Warn("creating session directory",
			"path", directory, "error", err)
		return
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		s.logger.Warn("writing session file",
			"path", s.path, "error", err)
	}
}

// removePersisted deletes the session file on logout so a restart does
// not resurrect the cleared credential.
func (s *Store) removePersisted() {
	if s.path == "" {
		return
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("removing session file",
			"path", s.path, "error", err)
	}
}
