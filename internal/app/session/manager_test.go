package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/helpers"
	"github.com/yigit/intlportal/internal/seed"
)

type counter struct {
	Screen views.Screen
	N      int
}

type countingMounter struct {
	mounts []views.Screen
	fail   views.Screen
}

func (c *countingMounter) Mount(_ context.Context, screen views.Screen, _ models.User) (any, error) {
	if screen == c.fail {
		return nil, errors.New("mount failed")
	}
	c.mounts = append(c.mounts, screen)
	return &counter{Screen: screen}, nil
}

func newManager(t *testing.T) (*Manager, *countingMounter) {
	t.Helper()
	mounter := &countingMounter{}
	clock := helpers.FixedClock{T: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
	return NewManager(views.MustNewRouter(views.DefaultTable()), mounter, clock, zerolog.Nop()), mounter
}

func login(t *testing.T, m *Manager, role models.Role) Info {
	t.Helper()
	user, ok := seed.DemoUser(role)
	require.True(t, ok)
	info, err := m.Login(context.Background(), user)
	require.NoError(t, err)
	return info
}

func TestLogin_StartsOnDashboard(t *testing.T) {
	m, mounter := newManager(t)
	info := login(t, m, models.RoleStudent)

	assert.Equal(t, "dashboard", info.RequestedView)
	assert.Equal(t, views.ScreenStudentDashboard, info.Resolution.Screen)
	assert.Equal(t, models.LanguageEnglish, info.Language)
	assert.True(t, m.Active(info.ID))
	assert.Equal(t, []views.Screen{views.ScreenStudentDashboard}, mounter.mounts)
}

func TestLogin_RejectsUnknownRole(t *testing.T) {
	m, _ := newManager(t)
	_, err := m.Login(context.Background(), models.User{ID: "9", Role: "registrar"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownDemoRole)
}

func TestNavigate_FreshStateOnlyWhenScreenChanges(t *testing.T) {
	ctx := context.Background()
	m, mounter := newManager(t)
	info := login(t, m, models.RoleStudent)

	_, err := m.Navigate(ctx, info.ID, "documents")
	require.NoError(t, err)
	require.NoError(t, WithScreen(m, info.ID, views.ScreenDocuments, func(_ models.User, c *counter) error {
		c.N = 3
		return nil
	}))

	// Same screen again keeps the edit.
	_, err = m.Navigate(ctx, info.ID, "documents")
	require.NoError(t, err)
	require.NoError(t, WithScreen(m, info.ID, views.ScreenDocuments, func(_ models.User, c *counter) error {
		assert.Equal(t, 3, c.N)
		return nil
	}))

	// Leaving and coming back starts over.
	_, err = m.Navigate(ctx, info.ID, "dashboard")
	require.NoError(t, err)
	_, err = m.Navigate(ctx, info.ID, "documents")
	require.NoError(t, err)
	require.NoError(t, WithScreen(m, info.ID, views.ScreenDocuments, func(_ models.User, c *counter) error {
		assert.Zero(t, c.N)
		return nil
	}))

	assert.Len(t, mounter.mounts, 4)
}

func TestNavigate_UnknownViewFallsBackToDashboard(t *testing.T) {
	m, mounter := newManager(t)
	info := login(t, m, models.RoleInternationalAdmin)

	got, err := m.Navigate(context.Background(), info.ID, "grades")
	require.NoError(t, err)
	assert.Equal(t, "grades", got.RequestedView)
	assert.Equal(t, views.ScreenAdminDashboard, got.Resolution.Screen)
	assert.True(t, got.Resolution.Fallback)
	// The dashboard was already mounted.
	assert.Len(t, mounter.mounts, 1)
}

func TestNavigate_MountFailureKeepsPreviousScreen(t *testing.T) {
	m, mounter := newManager(t)
	info := login(t, m, models.RoleStudent)
	mounter.fail = views.ScreenProfile

	_, err := m.Navigate(context.Background(), info.ID, "profile")
	require.Error(t, err)

	got, err := m.Get(info.ID)
	require.NoError(t, err)
	assert.Equal(t, views.ScreenStudentDashboard, got.Resolution.Screen)
}

func TestWithScreen_WrongScreen(t *testing.T) {
	m, _ := newManager(t)
	info := login(t, m, models.RoleAcademicAdmin)

	err := WithScreen(m, info.ID, views.ScreenStudentsManagement, func(models.User, *counter) error {
		t.Fatal("must not run")
		return nil
	})
	assert.ErrorIs(t, err, apperrors.ErrScreenNotMounted)
}

func TestSetLanguage(t *testing.T) {
	m, _ := newManager(t)
	info := login(t, m, models.RoleStudent)

	got, err := m.SetLanguage(info.ID, models.LanguageIndonesian)
	require.NoError(t, err)
	assert.Equal(t, models.LanguageIndonesian, got.Language)

	_, err = m.SetLanguage(info.ID, "fr")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLogout(t *testing.T) {
	m, _ := newManager(t)
	info := login(t, m, models.RoleStudent)

	require.NoError(t, m.Logout(info.ID))
	assert.False(t, m.Active(info.ID))
	_, err := m.Get(info.ID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	assert.ErrorIs(t, m.Logout(info.ID), apperrors.ErrSessionNotFound)
}
