package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/export"
)

func newAcademic(t *testing.T) (*fixture, *AcademicService, string) {
	t.Helper()
	f := newFixture(t)
	return f, NewAcademicService(f.sessions, f.mounter, f.clock), f.open(t, models.RoleStudent, "academic")
}

func TestAcademic_CourseSelection(t *testing.T) {
	_, svc, sid := newAcademic(t)

	view, err := svc.CourseSelection(sid, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, view.Semester)
	assert.Len(t, view.Items, 3)
	assert.Equal(t, 8, view.TotalCredits)

	view, err = svc.CourseSelection(sid, 8)
	require.NoError(t, err)
	assert.Equal(t, 10, view.TotalCredits)

	_, err = svc.CourseSelection(sid, 9)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAcademic_CourseSelectionDownload(t *testing.T) {
	_, svc, sid := newAcademic(t)
	_, err := svc.CourseSelection(sid, 8)
	require.NoError(t, err)

	file, err := svc.DownloadCourseSelection(sid, "txt")
	require.NoError(t, err)
	assert.Equal(t, "CourseSelection_STU2024001_Semester8.txt", file.Name)

	text := string(file.Body)
	assert.True(t, strings.HasPrefix(text, "\nCOURSE SELECTION SHEET\nMaria Gonzalez - STU2024001\nSemester 7 - Academic Year 2023/2024\n\n"))
	assert.Contains(t, text, "1. CS601 - Final Project (6 SKS)\n     Lecturer: Dr. Lisa Wang\n     Schedule: Monday 08:00-12:00\n     Room: A601\n     Status: approved")
	assert.True(t, strings.HasSuffix(text, "\n\nTotal Credits: 10\nPrint Date: 2/20/2024\n"))

	file, err = svc.DownloadCourseSelection(sid, "pdf")
	require.NoError(t, err)
	assert.Equal(t, export.ContentTypePDF, file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Body, []byte("%PDF-")))
}

func TestAcademic_GradesUseCreditWeightedGPA(t *testing.T) {
	_, svc, sid := newAcademic(t)

	summary, err := svc.Grades(sid)
	require.NoError(t, err)
	assert.Equal(t, "3.71", summary.GPA)
	assert.Equal(t, 8, summary.TotalCredits)
	assert.Equal(t, "29.7", summary.TotalPoints)
	require.Len(t, summary.Grades, 3)
	assert.Equal(t, "11.1", summary.Grades[1].Points)

	assert.Equal(t, "0.00", CreditWeightedGPA(nil))
}

func TestAcademic_ExamCardText(t *testing.T) {
	_, svc, sid := newAcademic(t)

	file, err := svc.DownloadExamCard(sid, models.ExamTypeMain, "")
	require.NoError(t, err)
	assert.Equal(t, "ExamCard_Ujian Utama_STU2024001.txt", file.Name)

	want := "\nEXAM CARD - UJIAN UTAMA\n" +
		"Maria Gonzalez - STU2024001\n" +
		"Semester 7 - Academic Year 2023/2024\n" +
		"\n" +
		"1. ENG401 - Technical Writing\n" +
		"     Date: 6/10/2024\n" +
		"     Time: 08:00-10:00\n" +
		"     Room: C201\n" +
		"\n" +
		"2. CS403 - Database Systems\n" +
		"     Date: 6/12/2024\n" +
		"     Time: 10:00-12:00\n" +
		"     Room: B105\n" +
		"\n" +
		"Print Date: 2/20/2024\n"
	assert.Equal(t, want, string(file.Body))

	_, err = svc.DownloadExamCard(sid, "Quiz", "txt")
	assert.ErrorIs(t, err, apperrors.ErrExamTypeNotFound)
}

func TestAcademic_ExamSchedule(t *testing.T) {
	_, svc, sid := newAcademic(t)

	overview, err := svc.Exams(sid)
	require.NoError(t, err)
	assert.Len(t, overview.Cards, 3)

	view, err := svc.ExamSchedule(sid, models.ExamTypeMidterm)
	require.NoError(t, err)
	require.Len(t, view.Exams, 3)
	assert.Equal(t, "3/15/2024", view.Exams[0].DateLabel)
}

func TestAcademic_Payments(t *testing.T) {
	_, svc, sid := newAcademic(t)

	lines, err := svc.Payments(sid)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "15/2/2024", lines[0].DueDateLabel)
	assert.Equal(t, "10/2/2024", lines[0].PaidDateLabel)
	assert.Equal(t, "Paid", lines[0].StatusLabel)
	assert.True(t, strings.HasPrefix(lines[0].AmountLabel, "Rp"))
	assert.Contains(t, lines[0].AmountLabel, "4.500.000")
	assert.Empty(t, lines[1].PaidDateLabel)
	assert.Equal(t, "Pending", lines[1].StatusLabel)
}
