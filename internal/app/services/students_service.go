package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/state"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/email"
	"github.com/yigit/intlportal/internal/pkg/export"
	"github.com/yigit/intlportal/internal/pkg/helpers"
	"github.com/yigit/intlportal/internal/seed"
)

// StudentsLocal is the filter bar of a student list screen. Exports use
// the filter last applied on the screen.
type StudentsLocal struct {
	Filter dto.StudentFilter
}

// StudentsPage is a rendered student list.
type StudentsPage struct {
	Students    []models.Student     `json:"students"`
	Filter      dto.StudentFilter    `json:"filter"`
	Stats       StudentStats         `json:"stats"`
	Options     StudentFilterOptions `json:"options"`
	ClassGroups []models.ClassGroup  `json:"classGroups,omitempty"`
}

// StudentsService backs the academic administrator's student management
// screen. Every change replaces the shared student collection.
type StudentsService interface {
	List(sessionID string, filter dto.StudentFilter) (*StudentsPage, error)
	Get(sessionID, id string) (*models.Student, error)
	Create(sessionID string, req dto.StudentRequest) (*models.Student, error)
	Update(sessionID, id string, req dto.StudentRequest) (*models.Student, error)
	Delete(sessionID, id string, confirm bool) error
	SendEmail(ctx context.Context, sessionID, id string) (string, error)
	Export(sessionID, format string) (*export.File, error)
}

type studentsServiceImpl struct {
	store    *state.Store
	sessions *session.Manager
	mailer   email.EmailService
	clock    helpers.Clock
	quoteCSV bool
	logger   zerolog.Logger
}

// NewStudentsService creates the student management service.
func NewStudentsService(store *state.Store, sessions *session.Manager, mounter *ScreenMounter, mailer email.EmailService, clock helpers.Clock, quoteCSV bool, logger zerolog.Logger) StudentsService {
	mounter.Register(views.ScreenStudentsManagement, func(context.Context, models.User) (any, error) {
		return &StudentsLocal{}, nil
	})
	return &studentsServiceImpl{
		store:    store,
		sessions: sessions,
		mailer:   mailer,
		clock:    clock,
		quoteCSV: quoteCSV,
		logger:   logger,
	}
}

func (s *studentsServiceImpl) with(sessionID string, fn func(user models.User, local *StudentsLocal) error) error {
	return session.WithScreen(s.sessions, sessionID, views.ScreenStudentsManagement, fn)
}

func (s *studentsServiceImpl) List(sessionID string, filter dto.StudentFilter) (*StudentsPage, error) {
	var page *StudentsPage
	err := s.with(sessionID, func(_ models.User, local *StudentsLocal) error {
		local.Filter = filter
		all := s.store.Snapshot().Students
		page = &StudentsPage{
			Students:    FilterStudents(all, filter),
			Filter:      filter,
			Stats:       CountStudents(all),
			Options:     studentFilterOptions(models.StudentStatusActive, models.StudentStatusInactive),
			ClassGroups: seed.StudentFormClassGroups(),
		}
		return nil
	})
	return page, err
}

func findStudent(students []models.Student, id string) (int, error) {
	for i, st := range students {
		if st.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, id)
}

func (s *studentsServiceImpl) Get(sessionID, id string) (*models.Student, error) {
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

// applyStudent copies the non-empty fields of req onto st.
func applyStudent(st *models.Student, req dto.StudentRequest) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&st.Name, req.Name)
	set(&st.Email, req.Email)
	set(&st.StudentID, req.StudentID)
	set(&st.Country, req.Country)
	set(&st.Program, req.Program)
	set(&st.Year, req.Year)
	set(&st.Avatar, req.Avatar)
	set(&st.EnrollmentDate, req.EnrollmentDate)
	set(&st.ClassGroup, req.ClassGroup)
	if req.GPA != nil {
		st.GPA = *req.GPA
	}
	if req.Status != "" {
		st.Status = req.Status
	}
	if req.VisaStatus != "" {
		st.VisaStatus = req.VisaStatus
	}
}

// Create appends a student. Unset fields take the add form's defaults.
func (s *studentsServiceImpl) Create(sessionID string, req dto.StudentRequest) (*models.Student, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("Please enter the student's name.")
	}

	var created models.Student
	err := s.with(sessionID, func(user models.User, _ *StudentsLocal) error {
		now := s.clock.Now()
		current := s.store.Snapshot().Students
		created = models.Student{
			ID:             helpers.NextTimestampID(now, helpers.IDSet(current, func(st models.Student) string { return st.ID })),
			Year:           "Freshman",
			Avatar:         seed.DefaultAvatar,
			Status:         models.StudentStatusActive,
			VisaStatus:     models.VisaStatusValid,
			EnrollmentDate: helpers.ISODate(now),
		}
		applyStudent(&created, req)

		next := make([]models.Student, 0, len(current)+1)
		next = append(append(next, current...), created)
		s.store.ReplaceStudents(next)
		s.logger.Info().Str("id", created.ID).Str("userID", user.ID).Msg("Student added")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *studentsServiceImpl) Update(sessionID, id string, req dto.StudentRequest) (*models.Student, error) {
	var updated models.Student
	err := s.with(sessionID, func(user models.User, _ *StudentsLocal) error {
		current := s.store.Snapshot().Students
		i, err := findStudent(current, id)
		if err != nil {
			return err
		}

		next := make([]models.Student, len(current))
		copy(next, current)
		applyStudent(&next[i], req)
		updated = next[i]

		s.store.ReplaceStudents(next)
		s.logger.Info().Str("id", id).Str("userID", user.ID).Msg("Student updated")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *studentsServiceImpl) Delete(sessionID, id string, confirm bool) error {
	return s.with(sessionID, func(user models.User, _ *StudentsLocal) error {
		current := s.store.Snapshot().Students
		if _, err := findStudent(current, id); err != nil {
			return err
		}
		if !confirm {
			return apperrors.NewConfirmationError("Are you sure you want to delete this student?")
		}

		next := make([]models.Student, 0, len(current)-1)
		for _, st := range current {
			if st.ID != id {
				next = append(next, st)
			}
		}
		s.store.ReplaceStudents(next)
		s.logger.Info().Str("id", id).Str("userID", user.ID).Msg("Student deleted")
		return nil
	})
}

// SendEmail mails a notice to the student and returns the confirmation
// shown to the administrator.
func (s *studentsServiceImpl) SendEmail(ctx context.Context, sessionID, id string) (string, error) {
	var target models.Student
	var sender models.User
	err := s.with(sessionID, func(user models.User, _ *StudentsLocal) error {
		students := s.store.Snapshot().Students
		i, err := findStudent(students, id)
		if err != nil {
			return err
		}
		target, sender = students[i], user
		return nil
	})
	if err != nil {
		return "", err
	}

	body := fmt.Sprintf("Dear %s,\n\nPlease contact the %s regarding your student record (%s).\n\n%s",
		target.Name, sender.Department, target.StudentID, sender.Name)
	if err := s.mailer.SendStudentNotice(ctx, target.Email, target.Name, "Message from the Academic Office", body); err != nil {
		return "", fmt.Errorf("failed to email student %s: %w", id, err)
	}
	return fmt.Sprintf("Email sent to %s at %s", target.Name, target.Email), nil
}

func (s *studentsServiceImpl) Export(sessionID, format string) (*export.File, error) {
	var file *export.File
	err := s.with(sessionID, func(_ models.User, local *StudentsLocal) error {
		rows := FilterStudents(s.store.Snapshot().Students, local.Filter)
		var err error
		file, err = export.Render(StudentTable(rows), format, "students_export", "Students", s.clock.Now(), s.quoteCSV)
		return err
	})
	return file, err
}
