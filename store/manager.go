package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/CODINGDONG1211/Lifestyleapp/repository"
)

// Manager owns session lifecycle: a session is created on a user's first
// authenticated request and torn down at logout.
type Manager struct {
	remote   repository.DocumentStore
	logger   *slog.Logger
	debounce time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager backed by the given document store.
func NewManager(remote repository.DocumentStore, logger *slog.Logger, debounce time.Duration) *Manager {
	return &Manager{
		remote:   remote,
		logger:   logger,
		debounce: debounce,
		sessions: make(map[string]*Session),
	}
}

// Session returns the live session for userID, creating it (and loading the
// user's document) on first use.
func (m *Manager) Session(userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s, nil
	}

	s, err := NewSession(userID, m.remote, m.logger, m.debounce)
	if err != nil {
		return nil, fmt.Errorf("failed to start session for user %s: %w", userID, err)
	}
	m.sessions[userID] = s
	m.logger.Info("session started", "user", userID)
	return s, nil
}

// End closes and removes the session for userID. No-op when there is none.
func (m *Manager) End(userID string) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()

	if ok {
		s.Close()
		m.logger.Info("session ended", "user", userID)
	}
}

// CloseAll tears down every live session, flushing pending state. Called at
// server shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
