// Package session tracks who is logged in, which view they asked for and
// the screen currently mounted for them together with its local state.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/helpers"
)

// Mounter creates the local state of a screen for user. It is called each
// time a session switches to a different screen.
type Mounter interface {
	Mount(ctx context.Context, screen views.Screen, user models.User) (any, error)
}

// Info is a read-only view of a session.
type Info struct {
	ID            string           `json:"id"`
	User          models.User      `json:"user"`
	Language      models.Language  `json:"language"`
	RequestedView string           `json:"requestedView"`
	Resolution    views.Resolution `json:"resolution"`
	CreatedAt     time.Time        `json:"createdAt"`
}

type session struct {
	mu         sync.Mutex
	id         string
	user       models.User
	language   models.Language
	requested  string
	resolution views.Resolution
	local      any
	createdAt  time.Time
}

func (s *session) info() Info {
	return Info{
		ID:            s.id,
		User:          s.user,
		Language:      s.language,
		RequestedView: s.requested,
		Resolution:    s.resolution,
		CreatedAt:     s.createdAt,
	}
}

// Manager owns all open sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session
	router   *views.Router
	mounter  Mounter
	clock    helpers.Clock
	logger   zerolog.Logger
}

// NewManager creates a session manager.
func NewManager(router *views.Router, mounter Mounter, clock helpers.Clock, logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		router:   router,
		mounter:  mounter,
		clock:    clock,
		logger:   logger,
	}
}

// Login opens a session for user on the dashboard view.
func (m *Manager) Login(ctx context.Context, user models.User) (Info, error) {
	if !user.Role.IsValid() {
		return Info{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownDemoRole, user.Role)
	}

	s := &session{
		id:        uuid.NewString(),
		user:      user,
		language:  models.LanguageEnglish,
		createdAt: m.clock.Now(),
	}
	if err := m.navigate(ctx, s, string(views.ViewDashboard)); err != nil {
		return Info{}, err
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.logger.Info().Str("sessionID", s.id).Str("userID", user.ID).Str("role", string(user.Role)).Msg("Session opened")
	return s.info(), nil
}

// Logout closes the session, dropping its user, view and screen state.
func (m *Manager) Logout(sessionID string) error {
	m.mu.Lock()
	_, ok := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if !ok {
		return apperrors.ErrSessionNotFound
	}
	m.logger.Info().Str("sessionID", sessionID).Msg("Session closed")
	return nil
}

// Active reports whether sessionID is open.
func (m *Manager) Active(sessionID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sessions[sessionID]
	return ok
}

func (m *Manager) lookup(sessionID string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return s, nil
}

// Get returns the session's current state.
func (m *Manager) Get(sessionID string) (Info, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return Info{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info(), nil
}

// SetLanguage switches the UI language.
func (m *Manager) SetLanguage(sessionID string, lang models.Language) (Info, error) {
	if !lang.IsValid() {
		return Info{}, apperrors.NewValidationError(fmt.Sprintf("Unsupported language %q", lang))
	}
	s, err := m.lookup(sessionID)
	if err != nil {
		return Info{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	return s.info(), nil
}

// Navigate records view as requested and mounts the screen it resolves
// to. Staying on the same screen keeps its local state.
func (m *Manager) Navigate(ctx context.Context, sessionID, view string) (Info, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return Info{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := m.navigate(ctx, s, view); err != nil {
		return Info{}, err
	}
	return s.info(), nil
}

// navigate must be called with s.mu held or before s is shared.
func (m *Manager) navigate(ctx context.Context, s *session, view string) error {
	res := m.router.Resolve(s.user.Role, view)
	if s.local == nil || res.Screen != s.resolution.Screen {
		local, err := m.mounter.Mount(ctx, res.Screen, s.user)
		if err != nil {
			return fmt.Errorf("failed to mount %s: %w", res.Screen, err)
		}
		s.local = local
		m.logger.Debug().Str("sessionID", s.id).Str("screen", string(res.Screen)).Bool("fallback", res.Fallback).Msg("Screen mounted")
	}
	s.requested = view
	s.resolution = res
	return nil
}

// WithScreen runs fn against the local state of screen while holding the
// session lock. It fails with ErrScreenNotMounted when the session shows
// a different screen.
func WithScreen[T any](m *Manager, sessionID string, screen views.Screen, fn func(user models.User, local T) error) error {
	s, err := m.lookup(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolution.Screen != screen {
		return fmt.Errorf("%w: %s is mounted, not %s", apperrors.ErrScreenNotMounted, s.resolution.Screen, screen)
	}
	local, ok := s.local.(T)
	if !ok {
		return fmt.Errorf("%w: %s has local state of type %T", apperrors.ErrScreenNotMounted, screen, s.local)
	}
	return fn(s.user, local)
}
