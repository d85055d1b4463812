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
	"github.com/yigit/intlportal/internal/pkg/export"
	"github.com/yigit/intlportal/internal/pkg/helpers"
	"github.com/yigit/intlportal/internal/seed"
)

// GradesLocal is the grade book and the search typed on the screen.
type GradesLocal struct {
	Book   map[string][]models.Grade
	Search string
}

// GradeStats summarise the whole grade book.
type GradeStats struct {
	TotalStudents int    `json:"totalStudents"`
	TotalGrades   int    `json:"totalGrades"`
	AverageGPA    string `json:"averageGPA"`
	AGrades       int    `json:"aGrades"`
	PendingGrades int    `json:"pendingGrades"`
}

// GradedStudent is a row of the student list.
type GradedStudent struct {
	Student    models.Student `json:"student"`
	GradeCount int            `json:"gradeCount"`
	GPA        string         `json:"gpa"`
}

// GradesPage is the rendered grade book.
type GradesPage struct {
	Search   string          `json:"search"`
	Students []GradedStudent `json:"students"`
	Stats    GradeStats      `json:"stats"`
}

// StudentGradesView is one student's grades.
type StudentGradesView struct {
	Student models.Student `json:"student"`
	Grades  []models.Grade `json:"grades"`
	GPA     string         `json:"gpa"`
}

// GradeEdit is the outcome of an edit. Saved is always false: edits are
// accepted but the grade book keeps its value.
type GradeEdit struct {
	Grade models.Grade `json:"grade"`
	Saved bool         `json:"saved"`
}

// GradesService backs the academic office's grade book.
type GradesService interface {
	List(sessionID, search string) (*GradesPage, error)
	StudentGrades(sessionID, studentID string) (*StudentGradesView, error)
	EditGrade(sessionID, gradeID string, req dto.GradeEditRequest) (*GradeEdit, error)
	Export(sessionID, format string) (*export.File, error)
}

type gradesServiceImpl struct {
	store    *state.Store
	sessions *session.Manager
	clock    helpers.Clock
	quoteCSV bool
	logger   zerolog.Logger
}

// NewGradesService creates the grade book service.
func NewGradesService(store *state.Store, sessions *session.Manager, mounter *ScreenMounter, clock helpers.Clock, quoteCSV bool, logger zerolog.Logger) GradesService {
	mounter.Register(views.ScreenGradesManagement, func(context.Context, models.User) (any, error) {
		return &GradesLocal{Book: seed.GradeBook()}, nil
	})
	return &gradesServiceImpl{store: store, sessions: sessions, clock: clock, quoteCSV: quoteCSV, logger: logger}
}

func (s *gradesServiceImpl) with(sessionID string, fn func(user models.User, local *GradesLocal) error) error {
	return session.WithScreen(s.sessions, sessionID, views.ScreenGradesManagement, fn)
}

// PlainMeanGPA averages grade points without weighting by credits, with
// two decimals and "0.00" for no grades.
func PlainMeanGPA(grades []models.Grade) string {
	if len(grades) == 0 {
		return "0.00"
	}
	sum := 0.0
	for _, g := range grades {
		sum += g.GradePoints
	}
	return fmt.Sprintf("%.2f", sum/float64(len(grades)))
}

func allGrades(book map[string][]models.Grade, students []models.Student) []models.Grade {
	var out []models.Grade
	for _, st := range students {
		out = append(out, book[st.StudentID]...)
	}
	return out
}

// CountGrades computes the grade book stats over the grades of students.
func CountGrades(book map[string][]models.Grade, students []models.Student) GradeStats {
	grades := allGrades(book, students)
	stats := GradeStats{
		TotalStudents: len(students),
		TotalGrades:   len(grades),
		AverageGPA:    PlainMeanGPA(grades),
		PendingGrades: seed.PendingGrades,
	}
	for _, g := range grades {
		if strings.HasPrefix(g.Grade, "A") {
			stats.AGrades++
		}
	}
	return stats
}

func (s *gradesServiceImpl) List(sessionID, search string) (*GradesPage, error) {
	var page *GradesPage
	err := s.with(sessionID, func(_ models.User, local *GradesLocal) error {
		local.Search = search
		students := s.store.Snapshot().Students
		term := strings.ToLower(search)

		page = &GradesPage{Search: search, Students: []GradedStudent{}, Stats: CountGrades(local.Book, students)}
		for _, st := range students {
			if !strings.Contains(strings.ToLower(st.Name), term) && !strings.Contains(strings.ToLower(st.StudentID), term) {
				continue
			}
			grades := local.Book[st.StudentID]
			page.Students = append(page.Students, GradedStudent{Student: st, GradeCount: len(grades), GPA: PlainMeanGPA(grades)})
		}
		return nil
	})
	return page, err
}

func (s *gradesServiceImpl) StudentGrades(sessionID, studentID string) (*StudentGradesView, error) {
	var view *StudentGradesView
	err := s.with(sessionID, func(_ models.User, local *GradesLocal) error {
		for _, st := range s.store.Snapshot().Students {
			if st.StudentID != studentID {
				continue
			}
			grades := local.Book[studentID]
			if grades == nil {
				grades = []models.Grade{}
			}
			view = &StudentGradesView{Student: st, Grades: grades, GPA: PlainMeanGPA(grades)}
			return nil
		}
		return fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, studentID)
	})
	return view, err
}

func gradePoints(letter string) (float64, bool) {
	for _, g := range seed.GradeScale {
		if g.Grade == letter {
			return g.Points, true
		}
	}
	return 0, false
}

// EditGrade validates an edit and returns the edited grade. The grade book
// is not changed.
func (s *gradesServiceImpl) EditGrade(sessionID, gradeID string, req dto.GradeEditRequest) (*GradeEdit, error) {
	var edit *GradeEdit
	err := s.with(sessionID, func(user models.User, local *GradesLocal) error {
		points, ok := gradePoints(req.Grade)
		if !ok {
			return apperrors.NewValidationError("Unknown grade " + req.Grade)
		}
		for _, grades := range local.Book {
			for _, g := range grades {
				if g.ID != gradeID {
					continue
				}
				g.Grade, g.GradePoints = req.Grade, points
				edit = &GradeEdit{Grade: g}
				s.logger.Info().Str("gradeID", gradeID).Str("grade", req.Grade).Str("userID", user.ID).Msg("Grade edit discarded")
				return nil
			}
		}
		return fmt.Errorf("%w: %s", apperrors.ErrGradeNotFound, gradeID)
	})
	return edit, err
}

// GradeTable is the grade report layout: every grade of every student in
// list order.
func GradeTable(book map[string][]models.Grade, students []models.Student) export.Table {
	t := export.Table{Header: []string{"Student ID", "Student Name", "Course Code", "Course Name", "Credits", "Grade", "Grade Points", "Semester"}}
	for _, g := range allGrades(book, students) {
		t.Rows = append(t.Rows, []string{
			g.StudentID, g.StudentName, g.CourseCode, g.CourseName,
			fmt.Sprint(g.Credits), g.Grade, formatNumber(g.GradePoints), g.Semester,
		})
	}
	return t
}

func (s *gradesServiceImpl) Export(sessionID, format string) (*export.File, error) {
	var file *export.File
	err := s.with(sessionID, func(_ models.User, local *GradesLocal) error {
		var err error
		file, err = export.Render(GradeTable(local.Book, s.store.Snapshot().Students), format, "grades_report", "Grades", s.clock.Now(), s.quoteCSV)
		return err
	})
	return file, err
}
