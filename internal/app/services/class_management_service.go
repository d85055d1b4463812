package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/state"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/helpers"
	"github.com/yigit/intlportal/internal/pkg/validation"
	"github.com/yigit/intlportal/internal/seed"
)

// ClassManagementLocal holds the screen's class groups, subjects and
// schedules. None of it is shared with other screens.
type ClassManagementLocal struct {
	ClassGroups []models.ClassGroup
	Subjects    []models.Subject
	Schedules   []models.ClassSchedule
}

// ScheduleRow is a schedule with its subject and class group resolved.
// Either name is empty when the referenced record no longer exists.
type ScheduleRow struct {
	models.ClassSchedule
	SubjectName    string `json:"subjectName"`
	ClassGroupCode string `json:"classGroupCode"`
}

// ClassManagementPage is the rendered class management screen.
type ClassManagementPage struct {
	ClassGroups []models.ClassGroup `json:"classGroups"`
	Subjects    []models.Subject    `json:"subjects"`
	Schedules   []ScheduleRow       `json:"schedules"`
	Days        []string            `json:"days"`
}

// ClassManagementService edits the academic office's class data.
type ClassManagementService interface {
	Overview(sessionID string) (*ClassManagementPage, error)
	GroupStudents(sessionID, groupID string) ([]models.Student, error)

	CreateGroup(sessionID string, req dto.ClassGroupRequest) (*models.ClassGroup, error)
	UpdateGroup(sessionID, id string, req dto.ClassGroupRequest) (*models.ClassGroup, error)
	DeleteGroup(sessionID, id string, confirm bool) error

	CreateSubject(sessionID string, req dto.SubjectRequest) (*models.Subject, error)
	UpdateSubject(sessionID, id string, req dto.SubjectRequest) (*models.Subject, error)
	DeleteSubject(sessionID, id string, confirm bool) error

	CreateSchedule(sessionID string, req dto.ScheduleRequest) (*models.ClassSchedule, error)
	UpdateSchedule(sessionID, id string, req dto.ScheduleRequest) (*models.ClassSchedule, error)
	DeleteSchedule(sessionID, id string, confirm bool) error
}

type classManagementServiceImpl struct {
	store    *state.Store
	sessions *session.Manager
	clock    helpers.Clock
	logger   zerolog.Logger
}

// NewClassManagementService creates the class management service.
func NewClassManagementService(store *state.Store, sessions *session.Manager, mounter *ScreenMounter, clock helpers.Clock, logger zerolog.Logger) ClassManagementService {
	mounter.Register(views.ScreenClassManagement, func(context.Context, models.User) (any, error) {
		data := seed.ClassManagement()
		return &ClassManagementLocal{
			ClassGroups: data.ClassGroups,
			Subjects:    data.Subjects,
			Schedules:   data.Schedules,
		}, nil
	})
	return &classManagementServiceImpl{store: store, sessions: sessions, clock: clock, logger: logger}
}

func (s *classManagementServiceImpl) with(sessionID string, fn func(user models.User, local *ClassManagementLocal) error) error {
	return session.WithScreen(s.sessions, sessionID, views.ScreenClassManagement, fn)
}

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func withoutIndex[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	return append(append(out, items[:i]...), items[i+1:]...)
}

func withReplaced[T any](items []T, i int, v T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[i] = v
	return out
}

func groupID(g models.ClassGroup) string { return g.ID }
func subjectID(s models.Subject) string { return s.ID }
func scheduleID(s models.ClassSchedule) string { return s.ID }

func (s *classManagementServiceImpl) Overview(sessionID string) (*ClassManagementPage, error) {
	var page *ClassManagementPage
	err := s.with(sessionID, func(_ models.User, local *ClassManagementLocal) error {
		rows := make([]ScheduleRow, 0, len(local.Schedules))
		for _, sc := range local.Schedules {
			row := ScheduleRow{ClassSchedule: sc}
			if i := indexByID(local.Subjects, sc.SubjectID, subjectID); i >= 0 {
				row.SubjectName = local.Subjects[i].Name
			}
			if i := indexByID(local.ClassGroups, sc.ClassGroupID, groupID); i >= 0 {
				row.ClassGroupCode = local.ClassGroups[i].Code
			}
			rows = append(rows, row)
		}
		page = &ClassManagementPage{
			ClassGroups: local.ClassGroups,
			Subjects:    local.Subjects,
			Schedules:   rows,
			Days:        append([]string(nil), models.Weekdays...),
		}
		return nil
	})
	return page, err
}

// GroupStudents lists the shared students whose class group equals the
// group's code.
func (s *classManagementServiceImpl) GroupStudents(sessionID, id string) ([]models.Student, error) {
	var out []models.Student
	err := s.with(sessionID, func(_ models.User, local *ClassManagementLocal) error {
		i := indexByID(local.ClassGroups, id, groupID)
		if i < 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrClassGroupNotFound, id)
		}
		code := local.ClassGroups[i].Code
		out = []models.Student{}
		for _, st := range s.store.Snapshot().Students {
			if st.ClassGroup == code {
				out = append(out, st)
			}
		}
		return nil
	})
	return out, err
}

func checkGroup(req dto.ClassGroupRequest) error {
	return validation.NewStringValidation(req.Code).
		WithRequired(false).
		WithPattern(validation.CompiledPatterns.ClassGroupCode).
		WithMessage("Class group codes look like 4KA21.").
		Err()
}

func applyGroup(g *models.ClassGroup, req dto.ClassGroupRequest) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&g.Code, req.Code)
	set(&g.Program, req.Program)
	set(&g.Section, req.Section)
	set(&g.AcademicYear, req.AcademicYear)
	set(&g.Advisor, req.Advisor)
	if req.Year != nil {
		g.Year = *req.Year
	}
	if req.TotalStudents != nil {
		g.TotalStudents = *req.TotalStudents
	}
}

func (s *classManagementServiceImpl) CreateGroup(sessionID string, req dto.ClassGroupRequest) (*models.ClassGroup, error) {
	if err := checkGroup(req); err != nil {
		return nil, err
	}
	var created models.ClassGroup
	err := s.with(sessionID, func(user models.User, local *ClassManagementLocal) error {
		created = models.ClassGroup{
			ID:           helpers.NextTimestampID(s.clock.Now(), helpers.IDSet(local.ClassGroups, groupID)),
			Year:         1,
			AcademicYear: "2023/2024",
		}
		applyGroup(&created, req)
		local.ClassGroups = append(append(make([]models.ClassGroup, 0, len(local.ClassGroups)+1), local.ClassGroups...), created)
		s.logger.Info().Str("id", created.ID).Str("code", created.Code).Str("userID", user.ID).Msg("Class group added")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *classManagementServiceImpl) UpdateGroup(sessionID, id string, req dto.ClassGroupRequest) (*models.ClassGroup, error) {
	if err := checkGroup(req); err != nil {
		return nil, err
	}
	var updated models.ClassGroup
	err := s.with(sessionID, func(_ models.User, local *ClassManagementLocal) error {
		i := indexByID(local.ClassGroups, id, groupID)
		if i < 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrClassGroupNotFound, id)
		}
		updated = local.ClassGroups[i]
		applyGroup(&updated, req)
		local.ClassGroups = withReplaced(local.ClassGroups, i, updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *classManagementServiceImpl) DeleteGroup(sessionID, id string, confirm bool) error {
	return s.with(sessionID, func(user models.User, local *ClassManagementLocal) error {
		i := indexByID(local.ClassGroups, id, groupID)
		if i < 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrClassGroupNotFound, id)
		}
		if !confirm {
			return apperrors.NewConfirmationError("Are you sure you want to delete this class group?")
		}
		local.ClassGroups = withoutIndex(local.ClassGroups, i)
		s.logger.Info().Str("id", id).Str("userID", user.ID).Msg("Class group deleted")
		return nil
	})
}

func applySubject(sub *models.Subject, req dto.SubjectRequest) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&sub.Code, req.Code)
	set(&sub.Name, req.Name)
	set(&sub.Lecturer, req.Lecturer)
	set(&sub.Description, req.Description)
	if req.Credits != nil {
		sub.Credits = *req.Credits
	}
	if req.Semester != nil {
		sub.Semester = *req.Semester
	}
}

func (s *classManagementServiceImpl) CreateSubject(sessionID string, req dto.SubjectRequest) (*models.Subject, error) {
	var created models.Subject
	err := s.with(sessionID, func(user models.User, local *ClassManagementLocal) error {
		created = models.Subject{
			ID:       helpers.NextTimestampID(s.clock.Now(), helpers.IDSet(local.Subjects, subjectID)),
			Semester: 1,
		}
		applySubject(&created, req)
		local.Subjects = append(append(make([]models.Subject, 0, len(local.Subjects)+1), local.Subjects...), created)
		s.logger.Info().Str("id", created.ID).Str("code", created.Code).Str("userID", user.ID).Msg("Subject added")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *classManagementServiceImpl) UpdateSubject(sessionID, id string, req dto.SubjectRequest) (*models.Subject, error) {
	var updated models.Subject
	err := s.with(sessionID, func(_ models.User, local *ClassManagementLocal) error {
		i := indexByID(local.Subjects, id, subjectID)
		if i < 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrSubjectNotFound, id)
		}
		updated = local.Subjects[i]
		applySubject(&updated, req)
		local.Subjects = withReplaced(local.Subjects, i, updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *classManagementServiceImpl) DeleteSubject(sessionID, id string, confirm bool) error {
	return s.with(sessionID, func(user models.User, local *ClassManagementLocal) error {
		i := indexByID(local.Subjects, id, subjectID)
		if i < 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrSubjectNotFound, id)
		}
		if !confirm {
			return apperrors.NewConfirmationError("Are you sure you want to delete this subject?")
		}
		local.Subjects = withoutIndex(local.Subjects, i)
		s.logger.Info().Str("id", id).Str("userID", user.ID).Msg("Subject deleted")
		return nil
	})
}

func checkSchedule(req dto.ScheduleRequest) error {
	clock := func(v string) *validation.StringValidation {
		return validation.NewStringValidation(v).
			WithRequired(false).
			WithPattern(validation.CompiledPatterns.ClockTime).
			WithMessage("Times must be given as HH:MM.")
	}
	return validation.FirstError(clock(req.StartTime), clock(req.EndTime))
}

func applySchedule(sc *models.ClassSchedule, req dto.ScheduleRequest) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&sc.ClassGroupID, req.ClassGroupID)
	set(&sc.SubjectID, req.SubjectID)
	set(&sc.Day, req.Day)
	set(&sc.StartTime, req.StartTime)
	set(&sc.EndTime, req.EndTime)
	set(&sc.Room, req.Room)
	set(&sc.Lecturer, req.Lecturer)
	set(&sc.Semester, req.Semester)
}

func (s *classManagementServiceImpl) CreateSchedule(sessionID string, req dto.ScheduleRequest) (*models.ClassSchedule, error) {
	if err := checkSchedule(req); err != nil {
		return nil, err
	}
	var created models.ClassSchedule
	err := s.with(sessionID, func(user models.User, local *ClassManagementLocal) error {
		created = models.ClassSchedule{
			ID:  helpers.NextTimestampID(s.clock.Now(), helpers.IDSet(local.Schedules, scheduleID)),
			Day: "Monday",
		}
		applySchedule(&created, req)
		local.Schedules = append(append(make([]models.ClassSchedule, 0, len(local.Schedules)+1), local.Schedules...), created)
		s.logger.Info().Str("id", created.ID).Str("userID", user.ID).Msg("Schedule added")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *classManagementServiceImpl) UpdateSchedule(sessionID, id string, req dto.ScheduleRequest) (*models.ClassSchedule, error) {
	if err := checkSchedule(req); err != nil {
		return nil, err
	}
	var updated models.ClassSchedule
	err := s.with(sessionID, func(_ models.User, local *ClassManagementLocal) error {
		i := indexByID(local.Schedules, id, scheduleID)
		if i < 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrScheduleNotFound, id)
		}
		updated = local.Schedules[i]
		applySchedule(&updated, req)
		local.Schedules = withReplaced(local.Schedules, i, updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *classManagementServiceImpl) DeleteSchedule(sessionID, id string, confirm bool) error {
	return s.with(sessionID, func(user models.User, local *ClassManagementLocal) error {
		i := indexByID(local.Schedules, id, scheduleID)
		if i < 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrScheduleNotFound, id)
		}
		if !confirm {
			return apperrors.NewConfirmationError("Are you sure you want to delete this schedule?")
		}
		local.Schedules = withoutIndex(local.Schedules, i)
		s.logger.Info().Str("id", id).Str("userID", user.ID).Msg("Schedule deleted")
		return nil
	})
}
