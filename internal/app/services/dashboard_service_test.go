package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/filestorage"
	"github.com/yigit/intlportal/internal/seed"
)

func newDashboard(t *testing.T) (*fixture, DashboardService) {
	t.Helper()
	f := newFixture(t)
	return f, NewDashboardService(f.store, f.sessions, f.mounter, f.clock, zerolog.Nop())
}

func TestBuildCalendarMonth(t *testing.T) {
	events := []models.CalendarEvent{{ID: "x", Title: "Orientation", Date: "2024-02-05", Type: "event"}}
	cal := BuildCalendarMonth(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), testNow, events)

	assert.Equal(t, "February 2024", cal.Title)
	assert.Equal(t, "2024-01", cal.Prev)
	assert.Equal(t, "2024-03", cal.Next)
	// February 2024 starts on a Thursday and has 29 days.
	require.Len(t, cal.Days, 4+29)
	assert.Zero(t, cal.Days[3].Day)
	assert.Equal(t, 1, cal.Days[4].Day)
	assert.Len(t, cal.Days[4+4].Events, 1)
	assert.True(t, cal.Days[4+19].Today)

	march := BuildCalendarMonth(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), testNow, nil)
	for _, d := range march.Days {
		assert.False(t, d.Today)
	}
}

func TestMoveMonth(t *testing.T) {
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	got, err := moveMonth(feb, "prev", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.January, got.Month())

	got, err = moveMonth(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), "next", testNow)
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())

	got, err = moveMonth(feb, "2025-07", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.July, got.Month())

	_, err = moveMonth(feb, "July", testNow)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestStudentDashboard_KeepsMonth(t *testing.T) {
	f, svc := newDashboard(t)
	sid := f.open(t, models.RoleStudent, "")

	view, err := svc.StudentDashboard(sid, "")
	require.NoError(t, err)
	assert.Equal(t, "Welcome back, Maria Gonzalez!", view.Greeting)
	assert.Equal(t, "February 2024", view.Calendar.Title)
	assert.Len(t, view.Announcements, 3)

	_, err = svc.StudentDashboard(sid, "next")
	require.NoError(t, err)
	view, err = svc.StudentDashboard(sid, "")
	require.NoError(t, err)
	assert.Equal(t, "March 2024", view.Calendar.Title)

	view, err = svc.StudentDashboard(sid, "today")
	require.NoError(t, err)
	assert.Equal(t, "February 2024", view.Calendar.Title)
}

func TestAdminDashboard_StatsByRole(t *testing.T) {
	f, svc := newDashboard(t)

	view, err := svc.AdminDashboard(f.open(t, models.RoleAcademicAdmin, ""), "")
	require.NoError(t, err)
	require.NotNil(t, view.AcademicStats)
	assert.Nil(t, view.InternationalStats)
	assert.True(t, view.CanManageAnnouncements)
	assert.Equal(t, 1247, view.AcademicStats.TotalStudents)

	view, err = svc.AdminDashboard(f.open(t, models.RoleInternationalAdmin, ""), "")
	require.NoError(t, err)
	assert.Nil(t, view.AcademicStats)
	assert.NotNil(t, view.InternationalStats)
	assert.False(t, view.CanManageAnnouncements)

	today := 0
	for _, d := range view.Calendar.Days {
		today += len(d.Events)
	}
	assert.Equal(t, 1, today)
}

func TestAnnouncements_SharedAcrossSessions(t *testing.T) {
	f, svc := newDashboard(t)
	ctx := context.Background()
	admin := f.open(t, models.RoleAcademicAdmin, "")
	student := f.open(t, models.RoleStudent, "")

	_, err := svc.CreateAnnouncement(ctx, admin, dto.AnnouncementRequest{Title: " "})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	created, err := svc.CreateAnnouncement(ctx, admin, dto.AnnouncementRequest{Title: "Library closed", Message: "Closed on Friday."})
	require.NoError(t, err)
	assert.Equal(t, AuthorAcademicOffice, created.Author)
	assert.Equal(t, models.AnnouncementTypeInfo, created.Type)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.Equal(t, "2024-02-20", created.Date)

	view, err := svc.StudentDashboard(student, "")
	require.NoError(t, err)
	require.Len(t, view.Announcements, 4)
	assert.Equal(t, "Library closed", view.Announcements[3].Title)

	updated, err := svc.UpdateAnnouncement(ctx, admin, created.ID, dto.AnnouncementRequest{Priority: models.PriorityUrgent})
	require.NoError(t, err)
	assert.Equal(t, "Closed on Friday.", updated.Message)
	assert.Equal(t, models.PriorityUrgent, updated.Priority)

	err = svc.DeleteAnnouncement(ctx, admin, created.ID, false)
	require.ErrorIs(t, err, apperrors.ErrConfirmationRequired)
	require.NoError(t, svc.DeleteAnnouncement(ctx, admin, created.ID, true))
	assert.Len(t, f.store.Snapshot().Announcements, 3)

	_, err = svc.UpdateAnnouncement(ctx, admin, created.ID, dto.AnnouncementRequest{Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrAnnouncementNotFound)
}

func TestAnnouncements_OnlyAcademicOfficeEdits(t *testing.T) {
	f, svc := newDashboard(t)
	ctx := context.Background()

	_, err := svc.CreateAnnouncement(ctx, f.open(t, models.RoleInternationalAdmin, ""), dto.AnnouncementRequest{Title: "t", Message: "m"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.CreateAnnouncement(ctx, f.open(t, models.RoleStudent, ""), dto.AnnouncementRequest{Title: "t", Message: "m"})
	assert.ErrorIs(t, err, apperrors.ErrScreenNotMounted)

	assert.Len(t, f.store.Snapshot().Announcements, 3)
}

func TestStudentDashboard_NavigationDoesNotReloadAnnouncements(t *testing.T) {
	f, svc := newDashboard(t)
	docs := NewDocumentsService(f.store, f.sessions, f.mounter, &memFiles{}, filestorage.DocumentPolicy(10), f.clock, zerolog.Nop())
	sid := f.open(t, models.RoleStudent, "")

	first, err := svc.StudentDashboard(sid, "")
	require.NoError(t, err)
	reads := f.backend.Reads()

	f.navigate(t, sid, "documents")
	_, err = docs.List(sid, "")
	require.NoError(t, err)
	f.navigate(t, sid, "dashboard")

	again, err := svc.StudentDashboard(sid, "")
	require.NoError(t, err)
	assert.Equal(t, reads, f.backend.Reads())
	assert.Zero(t, f.backend.Writes())
	assert.Equal(t, first.Announcements, again.Announcements)
	assert.Equal(t, seed.Announcements(), again.Announcements)
}
