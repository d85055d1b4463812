package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/export"
	"github.com/yigit/intlportal/internal/pkg/helpers"
	"github.com/yigit/intlportal/internal/seed"
)

// AcademicLocal is the semester picked on the course selection tab.
type AcademicLocal struct {
	Semester int
}

// CourseSelectionView is one semester's course selection sheet.
type CourseSelectionView struct {
	Semester     int              `json:"semester"`
	Semesters    []int            `json:"semesters"`
	Items        []models.KRSItem `json:"items"`
	TotalCredits int              `json:"totalCredits"`
}

// GradeLine is a grade with its weighted points.
type GradeLine struct {
	models.CourseGrade
	Points string `json:"points"`
}

// GradesSummary is the student's grade tab.
type GradesSummary struct {
	Grades       []GradeLine `json:"grades"`
	TotalCredits int         `json:"totalCredits"`
	TotalPoints  string      `json:"totalPoints"`
	GPA          string      `json:"gpa"`
}

// ExamOverview is the exam tab: one card per examination period.
type ExamOverview struct {
	Cards []models.ExamCard `json:"cards"`
}

// ExamScheduleView lists the sittings of one examination period.
type ExamScheduleView struct {
	ExamType models.ExamType    `json:"examType"`
	Exams    []ExamScheduleLine `json:"exams"`
}

// ExamScheduleLine is a sitting with its display date.
type ExamScheduleLine struct {
	models.ExamSchedule
	DateLabel string `json:"dateLabel"`
}

// PaymentLine is a payment with its display values.
type PaymentLine struct {
	models.Payment
	AmountLabel   string `json:"amountLabel"`
	DueDateLabel  string `json:"dueDateLabel"`
	PaidDateLabel string `json:"paidDateLabel,omitempty"`
	StatusLabel   string `json:"statusLabel"`
}

// AcademicService backs the student academic screen: course selection,
// grades, exams and payments.
type AcademicService struct {
	sessions *session.Manager
	clock    helpers.Clock
}

// NewAcademicService creates the service and registers its screen.
func NewAcademicService(sessions *session.Manager, mounter *ScreenMounter, clock helpers.Clock) *AcademicService {
	mounter.Register(views.ScreenAcademic, func(context.Context, models.User) (any, error) {
		return &AcademicLocal{Semester: seed.CurrentSemester}, nil
	})
	return &AcademicService{sessions: sessions, clock: clock}
}

func (s *AcademicService) with(sessionID string, fn func(user models.User, local *AcademicLocal) error) error {
	return session.WithScreen(s.sessions, sessionID, views.ScreenAcademic, fn)
}

func totalCredits(items []models.KRSItem) int {
	total := 0
	for _, it := range items {
		total += it.Credits
	}
	return total
}

// CourseSelection shows the sheet of semester, or of the semester already
// selected when semester is zero.
func (s *AcademicService) CourseSelection(sessionID string, semester int) (*CourseSelectionView, error) {
	var view *CourseSelectionView
	err := s.with(sessionID, func(_ models.User, local *AcademicLocal) error {
		if semester != 0 {
			if semester < 1 || semester > 8 {
				return apperrors.NewValidationError("Semester must be between 1 and 8.")
			}
			local.Semester = semester
		}
		items := seed.CourseSelections()[local.Semester]
		if items == nil {
			items = []models.KRSItem{}
		}
		view = &CourseSelectionView{
			Semester:     local.Semester,
			Semesters:    []int{1, 2, 3, 4, 5, 6, 7, 8},
			Items:        items,
			TotalCredits: totalCredits(items),
		}
		return nil
	})
	return view, err
}

// printHeader is the header shared by every printed sheet. The semester
// line names the current semester whatever sheet is printed.
func printHeader(user models.User) []string {
	return []string{
		fmt.Sprintf("%s - %s", user.Name, user.StudentID),
		fmt.Sprintf("Semester %d - Academic Year %s", seed.CurrentSemester, seed.AcademicYear),
	}
}

// CourseSelectionSheet builds the printable sheet for items.
func CourseSelectionSheet(user models.User, items []models.KRSItem, now time.Time) export.Sheet {
	sheet := export.Sheet{Title: "COURSE SELECTION SHEET", Lines: printHeader(user)}
	for _, it := range items {
		sheet.Entries = append(sheet.Entries, export.Entry{
			Heading: fmt.Sprintf("%s - %s (%d SKS)", it.CourseCode, it.CourseName, it.Credits),
			Fields: []export.Field{
				{Label: "Lecturer", Value: it.Lecturer},
				{Label: "Schedule", Value: it.Schedule},
				{Label: "Room", Value: it.Room},
				{Label: "Status", Value: string(it.Status)},
			},
		})
	}
	sheet.Footer = []string{
		fmt.Sprintf("Total Credits: %d", totalCredits(items)),
		"Print Date: " + helpers.USDate(now),
	}
	return sheet
}

// DownloadCourseSelection renders the selected semester's sheet as text
// or PDF.
func (s *AcademicService) DownloadCourseSelection(sessionID, format string) (*export.File, error) {
	var file *export.File
	err := s.with(sessionID, func(user models.User, local *AcademicLocal) error {
		sheet := CourseSelectionSheet(user, seed.CourseSelections()[local.Semester], s.clock.Now())
		var err error
		file, err = sheet.File(format, fmt.Sprintf("CourseSelection_%s_Semester%d", user.StudentID, local.Semester))
		return err
	})
	return file, err
}

// CreditWeightedGPA is sum(points*credits)/sum(credits) with two decimals,
// "0.00" when there are no credits.
func CreditWeightedGPA(grades []models.CourseGrade) string {
	points, credits := 0.0, 0
	for _, g := range grades {
		points += g.GradePoints * float64(g.Credits)
		credits += g.Credits
	}
	if credits == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", points/float64(credits))
}

// Grades returns the student's grade summary.
func (s *AcademicService) Grades(sessionID string) (*GradesSummary, error) {
	var summary *GradesSummary
	err := s.with(sessionID, func(models.User, *AcademicLocal) error {
		grades := seed.StudentGrades()
		summary = &GradesSummary{GPA: CreditWeightedGPA(grades)}
		points := 0.0
		for _, g := range grades {
			p := g.GradePoints * float64(g.Credits)
			points += p
			summary.TotalCredits += g.Credits
			summary.Grades = append(summary.Grades, GradeLine{CourseGrade: g, Points: fmt.Sprintf("%.1f", p)})
		}
		summary.TotalPoints = fmt.Sprintf("%.1f", points)
		return nil
	})
	return summary, err
}

// Exams returns the examination period cards.
func (s *AcademicService) Exams(sessionID string) (*ExamOverview, error) {
	var overview *ExamOverview
	err := s.with(sessionID, func(models.User, *AcademicLocal) error {
		overview = &ExamOverview{Cards: seed.ExamCards()}
		return nil
	})
	return overview, err
}

func examsOf(examType models.ExamType) ([]models.ExamSchedule, error) {
	exams, ok := seed.ExamSchedules()[examType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrExamTypeNotFound, examType)
	}
	return exams, nil
}

// ExamSchedule lists the sittings of one examination period.
func (s *AcademicService) ExamSchedule(sessionID string, examType models.ExamType) (*ExamScheduleView, error) {
	var view *ExamScheduleView
	err := s.with(sessionID, func(models.User, *AcademicLocal) error {
		exams, err := examsOf(examType)
		if err != nil {
			return err
		}
		view = &ExamScheduleView{ExamType: examType}
		for _, e := range exams {
			view.Exams = append(view.Exams, ExamScheduleLine{ExamSchedule: e, DateLabel: helpers.FormatISOAs(e.Date, helpers.USDate)})
		}
		return nil
	})
	return view, err
}

// ExamCardSheet builds the printable exam card of one period.
func ExamCardSheet(user models.User, examType models.ExamType, exams []models.ExamSchedule, now time.Time) export.Sheet {
	sheet := export.Sheet{
		Title:  "EXAM CARD - " + strings.ToUpper(string(examType)),
		Lines:  printHeader(user),
		Footer: []string{"Print Date: " + helpers.USDate(now)},
	}
	for _, e := range exams {
		sheet.Entries = append(sheet.Entries, export.Entry{
			Heading: fmt.Sprintf("%s - %s", e.CourseCode, e.CourseName),
			Fields: []export.Field{
				{Label: "Date", Value: helpers.FormatISOAs(e.Date, helpers.USDate)},
				{Label: "Time", Value: e.Time},
				{Label: "Room", Value: e.Room},
			},
		})
	}
	return sheet
}

// DownloadExamCard renders the exam card of one period as text or PDF.
func (s *AcademicService) DownloadExamCard(sessionID string, examType models.ExamType, format string) (*export.File, error) {
	var file *export.File
	err := s.with(sessionID, func(user models.User, _ *AcademicLocal) error {
		exams, err := examsOf(examType)
		if err != nil {
			return err
		}
		file, err = ExamCardSheet(user, examType, exams, s.clock.Now()).File(format, fmt.Sprintf("ExamCard_%s_%s", examType, user.StudentID))
		return err
	})
	return file, err
}

var paymentStatusLabels = map[models.PaymentStatus]string{
	models.PaymentStatusPaid:    "Paid",
	models.PaymentStatusPending: "Pending",
	models.PaymentStatusOverdue: "Overdue",
}

// Payments lists the student's invoices in rupiah with Indonesian dates.
func (s *AcademicService) Payments(sessionID string) ([]PaymentLine, error) {
	var lines []PaymentLine
	err := s.with(sessionID, func(models.User, *AcademicLocal) error {
		for _, p := range seed.Payments() {
			label, ok := paymentStatusLabels[p.Status]
			if !ok {
				label = "Overdue"
			}
			line := PaymentLine{
				Payment:      p,
				AmountLabel:  helpers.FormatIDR(p.Amount),
				DueDateLabel: helpers.FormatISOAs(p.DueDate, helpers.IndonesianDate),
				StatusLabel:  label,
			}
			if p.PaidDate != "" {
				line.PaidDateLabel = helpers.FormatISOAs(p.PaidDate, helpers.IndonesianDate)
			}
			lines = append(lines, line)
		}
		return nil
	})
	return lines, err
}
