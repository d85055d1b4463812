package services

import (
	"context"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/state"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/pkg/export"
	"github.com/yigit/intlportal/internal/pkg/helpers"
)

// InternationalStudentsService is the international office's read-only
// view of the shared students.
type InternationalStudentsService struct {
	store    *state.Store
	sessions *session.Manager
	clock    helpers.Clock
	quoteCSV bool
}

// NewInternationalStudentsService creates the service and registers its screen.
func NewInternationalStudentsService(store *state.Store, sessions *session.Manager, mounter *ScreenMounter, clock helpers.Clock, quoteCSV bool) *InternationalStudentsService {
	mounter.Register(views.ScreenInternationalStudents, func(context.Context, models.User) (any, error) {
		return &StudentsLocal{}, nil
	})
	return &InternationalStudentsService{store: store, sessions: sessions, clock: clock, quoteCSV: quoteCSV}
}

func (s *InternationalStudentsService) with(sessionID string, fn func(user models.User, local *StudentsLocal) error) error {
	return session.WithScreen(s.sessions, sessionID, views.ScreenInternationalStudents, fn)
}

// List applies filter and remembers it for Export.
func (s *InternationalStudentsService) List(sessionID string, filter dto.StudentFilter) (*StudentsPage, error) {
	var page *StudentsPage
	err := s.with(sessionID, func(_ models.User, local *StudentsLocal) error {
		local.Filter = filter
		all := s.store.Snapshot().Students
		page = &StudentsPage{
			Students: FilterStudents(all, filter),
			Filter:   filter,
			Stats:    CountStudents(all),
			Options:  studentFilterOptions(models.StudentStatusActive, models.StudentStatusInactive, models.StudentStatusGraduated),
		}
		return nil
	})
	return page, err
}

// Get returns one student for the detail view.
func (s *InternationalStudentsService) Get(sessionID, id string) (*models.Student, error) {
	var found models.Student
	err := s.with(sessionID, func(models.User, *StudentsLocal) error {
		students := s.store.Snapshot().Students
		i, err := findStudent(students, id)
		if err != nil {
			return err
		}
		found = students[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// Export renders the currently filtered list.
func (s *InternationalStudentsService) Export(sessionID, format string) (*export.File, error) {
	var file *export.File
	err := s.with(sessionID, func(_ models.User, local *StudentsLocal) error {
		rows := FilterStudents(s.store.Snapshot().Students, local.Filter)
		var err error
		file, err = export.Render(StudentTable(rows), format, "international_students_export", "International Students", s.clock.Now(), s.quoteCSV)
		return err
	})
	return file, err
}
