package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/state"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/helpers"
	"github.com/yigit/intlportal/internal/seed"
)

// Announcement authors derived from the editing administrator.
const (
	AuthorAcademicOffice      = "Academic Office"
	AuthorInternationalOffice = "International Office"
)

// DashboardLocal is the dashboard screens' local state: the month the
// calendar shows.
type DashboardLocal struct {
	Month time.Time
}

// StudentDashboardView is everything the student dashboard renders.
type StudentDashboardView struct {
	Greeting       string                 `json:"greeting"`
	Announcements  []models.Announcement  `json:"announcements"`
	Calendar       models.CalendarMonth   `json:"calendar"`
	UpcomingEvents []models.CalendarEvent `json:"upcomingEvents"`
	Labs           []models.LabInfo       `json:"labs"`
}

// AdminDashboardView is everything the administrator dashboard renders.
// Exactly one of the stats blocks is set, depending on the role.
type AdminDashboardView struct {
	Role                   models.Role               `json:"role"`
	AcademicStats          *seed.AcademicStats       `json:"academicStats,omitempty"`
	InternationalStats     *seed.InternationalStats  `json:"internationalStats,omitempty"`
	Announcements          []models.Announcement     `json:"announcements"`
	Calendar               models.CalendarMonth      `json:"calendar"`
	CanManageAnnouncements bool                      `json:"canManageAnnouncements"`
}

// DashboardService renders both dashboards and edits the shared
// announcement list.
type DashboardService interface {
	StudentDashboard(sessionID, month string) (*StudentDashboardView, error)
	AdminDashboard(sessionID, month string) (*AdminDashboardView, error)
	CreateAnnouncement(ctx context.Context, sessionID string, req dto.AnnouncementRequest) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, sessionID, id string, req dto.AnnouncementRequest) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, sessionID, id string, confirm bool) error
}

type dashboardServiceImpl struct {
	store    *state.Store
	sessions *session.Manager
	clock    helpers.Clock
	logger   zerolog.Logger
}

// NewDashboardService creates the dashboard service and registers its
// screens with mounter.
func NewDashboardService(store *state.Store, sessions *session.Manager, mounter *ScreenMounter, clock helpers.Clock, logger zerolog.Logger) DashboardService {
	s := &dashboardServiceImpl{store: store, sessions: sessions, clock: clock, logger: logger}
	mount := func(context.Context, models.User) (any, error) {
		return &DashboardLocal{Month: firstOfMonth(s.clock.Now())}, nil
	}
	mounter.Register(views.ScreenStudentDashboard, mount)
	mounter.Register(views.ScreenAdminDashboard, mount)
	return s
}

func (s *dashboardServiceImpl) calendar(local *DashboardLocal, month string, events []models.CalendarEvent) (models.CalendarMonth, error) {
	now := s.clock.Now()
	next, err := moveMonth(local.Month, month, now)
	if err != nil {
		return models.CalendarMonth{}, err
	}
	local.Month = firstOfMonth(next)
	return BuildCalendarMonth(local.Month, now, events), nil
}

// StudentDashboard renders the student dashboard. The announcements are
// the shared list, the same one the administrators edit.
func (s *dashboardServiceImpl) StudentDashboard(sessionID, month string) (*StudentDashboardView, error) {
	var view *StudentDashboardView
	err := session.WithScreen(s.sessions, sessionID, views.ScreenStudentDashboard, func(user models.User, local *DashboardLocal) error {
		cal, err := s.calendar(local, month, seed.CalendarEvents())
		if err != nil {
			return err
		}
		view = &StudentDashboardView{
			Greeting:       fmt.Sprintf("Welcome back, %s!", user.Name),
			Announcements:  s.store.Snapshot().Announcements,
			Calendar:       cal,
			UpcomingEvents: seed.UpcomingEvents(),
			Labs:           seed.Labs(),
		}
		return nil
	})
	return view, err
}

// AdminDashboard renders the dashboard of either administrator role. Its
// calendar marks today only.
func (s *dashboardServiceImpl) AdminDashboard(sessionID, month string) (*AdminDashboardView, error) {
	var view *AdminDashboardView
	err := session.WithScreen(s.sessions, sessionID, views.ScreenAdminDashboard, func(user models.User, local *DashboardLocal) error {
		today := []models.CalendarEvent{{ID: "today", Title: "Today", Date: helpers.ISODate(s.clock.Now()), Type: "event"}}
		cal, err := s.calendar(local, month, today)
		if err != nil {
			return err
		}
		view = &AdminDashboardView{
			Role:                   user.Role,
			Announcements:          s.store.Snapshot().Announcements,
			Calendar:               cal,
			CanManageAnnouncements: user.Role == models.RoleAcademicAdmin,
		}
		if user.Role == models.RoleAcademicAdmin {
			stats := seed.AcademicDashboardStats()
			view.AcademicStats = &stats
		} else {
			stats := seed.InternationalDashboardStats()
			view.InternationalStats = &stats
		}
		return nil
	})
	return view, err
}

func authorFor(role models.Role) string {
	if role == models.RoleAcademicAdmin {
		return AuthorAcademicOffice
	}
	return AuthorInternationalOffice
}

// withAnnouncementEditor runs fn for an academic administrator on the
// admin dashboard.
func (s *dashboardServiceImpl) withAnnouncementEditor(sessionID string, fn func(user models.User) error) error {
	return session.WithScreen(s.sessions, sessionID, views.ScreenAdminDashboard, func(user models.User, _ *DashboardLocal) error {
		if user.Role != models.RoleAcademicAdmin {
			return apperrors.NewForbiddenError("Only the academic office can manage announcements")
		}
		return fn(user)
	})
}

func (s *dashboardServiceImpl) CreateAnnouncement(ctx context.Context, sessionID string, req dto.AnnouncementRequest) (*models.Announcement, error) {
	var created models.Announcement
	err := s.withAnnouncementEditor(sessionID, func(user models.User) error {
		if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Message) == "" {
			return apperrors.NewValidationError("Title and message are required")
		}
		if req.Type == "" {
			req.Type = models.AnnouncementTypeInfo
		}
		if req.Priority == "" {
			req.Priority = models.PriorityMedium
		}

		now := s.clock.Now()
		current := s.store.Snapshot().Announcements
		created = models.Announcement{
			ID:       helpers.NextTimestampID(now, helpers.IDSet(current, func(a models.Announcement) string { return a.ID })),
			Title:    req.Title,
			Message:  req.Message,
			Type:     req.Type,
			Priority: req.Priority,
			Date:     helpers.ISODate(now),
			Author:   authorFor(user.Role),
		}

		next := make([]models.Announcement, 0, len(current)+1)
		next = append(append(next, current...), created)
		s.store.ReplaceAnnouncements(ctx, next)
		s.logger.Info().Str("announcementID", created.ID).Str("userID", user.ID).Msg("Announcement created")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAnnouncement replaces the editable fields of announcement id and
// re-derives its author. Empty fields in req keep their current value.
func (s *dashboardServiceImpl) UpdateAnnouncement(ctx context.Context, sessionID, id string, req dto.AnnouncementRequest) (*models.Announcement, error) {
	var updated models.Announcement
	err := s.withAnnouncementEditor(sessionID, func(user models.User) error {
		current := s.store.Snapshot().Announcements
		next := make([]models.Announcement, len(current))
		copy(next, current)

		found := false
		for i, a := range next {
			if a.ID != id {
				continue
			}
			if req.Title != "" {
				a.Title = req.Title
			}
			if req.Message != "" {
				a.Message = req.Message
			}
			if req.Type != "" {
				a.Type = req.Type
			}
			if req.Priority != "" {
				a.Priority = req.Priority
			}
			if strings.TrimSpace(a.Title) == "" || strings.TrimSpace(a.Text()) == "" {
				return apperrors.NewValidationError("Title and message are required")
			}
			a.Author = authorFor(user.Role)
			next[i] = a
			updated = a
			found = true
			break
		}
		if !found {
			return fmt.Errorf("%w: %s", apperrors.ErrAnnouncementNotFound, id)
		}

		s.store.ReplaceAnnouncements(ctx, next)
		s.logger.Info().Str("announcementID", id).Str("userID", user.ID).Msg("Announcement updated")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *dashboardServiceImpl) DeleteAnnouncement(ctx context.Context, sessionID, id string, confirm bool) error {
	return s.withAnnouncementEditor(sessionID, func(user models.User) error {
		current := s.store.Snapshot().Announcements
		next := make([]models.Announcement, 0, len(current))
		for _, a := range current {
			if a.ID != id {
				next = append(next, a)
			}
		}
		if len(next) == len(current) {
			return fmt.Errorf("%w: %s", apperrors.ErrAnnouncementNotFound, id)
		}
		if !confirm {
			return apperrors.NewConfirmationError("Are you sure you want to delete this announcement?")
		}

		s.store.ReplaceAnnouncements(ctx, next)
		s.logger.Info().Str("announcementID", id).Str("userID", user.ID).Msg("Announcement deleted")
		return nil
	})
}
