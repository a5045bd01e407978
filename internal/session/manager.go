package session

import (
	"sync"

	"tradesouq/internal/commerce"
	"tradesouq/internal/currency"
	"tradesouq/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager issues session tokens and owns the commerce engine bound to each
// one. Nothing is shared across sessions; a sign-out tears the session's
// state down explicitly.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*commerce.Engine
	table    currency.Table
	logger   zerolog.Logger
}

// NewManager creates an empty session manager using the given country table
// for new engines.
func NewManager(table currency.Table, logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*commerce.Engine),
		table:    table,
		logger:   logger.With().Str("component", "session-manager").Logger(),
	}
}

// SignIn establishes a session for the user and returns its token along
// with a fresh engine.
func (m *Manager) SignIn(user model.User) (string, *commerce.Engine) {
	token := uuid.NewString()
	engine := commerce.NewEngine(user, m.table, m.logger)

	m.mu.Lock()
	m.sessions[token] = engine
	m.mu.Unlock()

	m.logger.Info().Str("user_id", user.ID).Msg("session established")
	return token, engine
}

// Lookup resolves a token to its engine. A missing or empty token yields
// the authentication-required signal.
func (m *Manager) Lookup(token string) (*commerce.Engine, error) {
	if token == "" {
		return nil, model.ErrAuthRequired
	}

	m.mu.RLock()
	engine, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return nil, model.ErrAuthRequired
	}
	return engine, nil
}

// SignOut clears the session's commerce state and invalidates the token.
// No-op for unknown tokens.
func (m *Manager) SignOut(token string) {
	m.mu.Lock()
	engine, ok := m.sessions[token]
	delete(m.sessions, token)
	m.mu.Unlock()

	if ok {
		engine.Clear()
		m.logger.Info().Str("user_id", engine.User().ID).Msg("session terminated")
	}
}

// Active returns the number of live sessions.
func (m *Manager) Active() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
