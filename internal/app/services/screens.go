package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/views"
)

// MountFunc builds fresh local state for a screen.
type MountFunc func(ctx context.Context, user models.User) (any, error)

// ScreenMounter dispatches screen mounts to the service that owns each
// screen. Screens without local state mount to an empty value.
type ScreenMounter struct {
	mu     sync.RWMutex
	mounts map[views.Screen]MountFunc
}

// NewScreenMounter creates an empty mounter. Services register themselves
// when they are constructed.
func NewScreenMounter() *ScreenMounter {
	return &ScreenMounter{mounts: make(map[views.Screen]MountFunc)}
}

// Register installs fn for screen, replacing any previous registration.
func (m *ScreenMounter) Register(screen views.Screen, fn MountFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mounts[screen] = fn
}

// Mount implements session.Mounter.
func (m *ScreenMounter) Mount(ctx context.Context, screen views.Screen, user models.User) (any, error) {
	m.mu.RLock()
	fn, ok := m.mounts[screen]
	m.mu.RUnlock()
	if !ok {
		return &stateless{screen: screen}, nil
	}
	local, err := fn(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("mount %s: %w", screen, err)
	}
	return local, nil
}

type stateless struct {
	screen views.Screen
}
