package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
)

type sentNotice struct {
	to, name, subject, body string
}

type fakeMailer struct {
	sent []sentNotice
	err  error
}

func (m *fakeMailer) SendStudentNotice(_ context.Context, toEmail, toName, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentNotice{toEmail, toName, subject, body})
	return nil
}

func newStudents(t *testing.T, quoteCSV bool) (*fixture, StudentsService, *fakeMailer, string) {
	t.Helper()
	f := newFixture(t)
	mailer := &fakeMailer{}
	svc := NewStudentsService(f.store, f.sessions, f.mounter, mailer, f.clock, quoteCSV, zerolog.Nop())
	return f, svc, mailer, f.open(t, models.RoleAcademicAdmin, "students")
}

func TestFilterStudents(t *testing.T) {
	f := newFixture(t)
	all := f.store.Snapshot().Students

	assert.Len(t, FilterStudents(all, dto.StudentFilter{}), 5)
	assert.Len(t, FilterStudents(all, dto.StudentFilter{Status: "all", Program: "all", Country: "all"}), 5)

	got := FilterStudents(all, dto.StudentFilter{Search: "UNIVERSITY.EDU", Status: "graduated"})
	require.Len(t, got, 1)
	assert.Equal(t, "Sophie Dubois", got[0].Name)

	got = FilterStudents(all, dto.StudentFilter{Search: "stu2024004"})
	require.Len(t, got, 1)
	assert.Equal(t, "Egypt", got[0].Country)

	assert.Empty(t, FilterStudents(all, dto.StudentFilter{Country: "Mexico", Program: "Medicine"}))

	assert.Equal(t, StudentStats{Total: 5, Active: 4, Graduated: 1, VisaExpiring: 1}, CountStudents(all))
}

func TestStudents_ListCountsWholeCollection(t *testing.T) {
	_, svc, _, sid := newStudents(t, false)

	page, err := svc.List(sid, dto.StudentFilter{Country: "China"})
	require.NoError(t, err)
	require.Len(t, page.Students, 1)
	assert.Equal(t, 5, page.Stats.Total)
	assert.Equal(t, []models.StudentStatus{models.StudentStatusActive, models.StudentStatusInactive}, page.Options.Statuses)
	assert.NotEmpty(t, page.ClassGroups)
}

func TestStudents_CreateUpdateDelete(t *testing.T) {
	f, svc, _, sid := newStudents(t, false)

	_, err := svc.Create(sid, dto.StudentRequest{Email: "nobody@university.edu"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	created, err := svc.Create(sid, dto.StudentRequest{Name: "Yuki Tanaka", Country: "Japan", ClassGroup: "4KA20"})
	require.NoError(t, err)
	assert.Equal(t, "Freshman", created.Year)
	assert.Equal(t, models.StudentStatusActive, created.Status)
	assert.Equal(t, models.VisaStatusValid, created.VisaStatus)
	assert.Equal(t, "2024-02-20", created.EnrollmentDate)
	assert.Len(t, f.store.Snapshot().Students, 6)

	gpa := 3.6
	updated, err := svc.Update(sid, created.ID, dto.StudentRequest{GPA: &gpa, Status: models.StudentStatusInactive})
	require.NoError(t, err)
	assert.Equal(t, "Yuki Tanaka", updated.Name)
	assert.InDelta(t, 3.6, updated.GPA, 1e-9)
	assert.Equal(t, models.StudentStatusInactive, updated.Status)

	err = svc.Delete(sid, created.ID, false)
	require.ErrorIs(t, err, apperrors.ErrConfirmationRequired)
	assert.Equal(t, "Are you sure you want to delete this student?", apperrors.UserMessage(err))
	assert.Len(t, f.store.Snapshot().Students, 6)

	require.NoError(t, svc.Delete(sid, created.ID, true))
	assert.Len(t, f.store.Snapshot().Students, 5)

	_, err = svc.Get(sid, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudents_ChangesReachInternationalOffice(t *testing.T) {
	f, svc, _, sid := newStudents(t, false)
	intl := NewInternationalStudentsService(f.store, f.sessions, f.mounter, f.clock, false)
	other := f.open(t, models.RoleInternationalAdmin, "students")

	_, err := svc.Update(sid, "2", dto.StudentRequest{VisaStatus: models.VisaStatusValid})
	require.NoError(t, err)

	st, err := intl.Get(other, "2")
	require.NoError(t, err)
	assert.Equal(t, models.VisaStatusValid, st.VisaStatus)

	page, err := intl.List(other, dto.StudentFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Stats.VisaExpiring)
	assert.Len(t, page.Options.Statuses, 3)
}

func TestStudents_SendEmail(t *testing.T) {
	_, svc, mailer, sid := newStudents(t, false)

	msg, err := svc.SendEmail(context.Background(), sid, "2")
	require.NoError(t, err)
	assert.Equal(t, "Email sent to Chen Wei at chen.wei@university.edu", msg)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "chen.wei@university.edu", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, "Academic Affairs")

	_, err = svc.SendEmail(context.Background(), sid, "99")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudents_ExportUsesLastFilter(t *testing.T) {
	_, svc, _, sid := newStudents(t, false)

	_, err := svc.List(sid, dto.StudentFilter{Status: "graduated"})
	require.NoError(t, err)

	file, err := svc.Export(sid, "csv")
	require.NoError(t, err)
	assert.Equal(t, "students_export_2024-02-20.csv", file.Name)
	lines := strings.Split(string(file.Body), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Student ID,Name,Email,Country,Program,Class Group,GPA,Status,Visa Status", lines[0])
	assert.Equal(t, "STU2024005,Sophie Dubois,sophie.dubois@university.edu,France,Art History,4KA21,3.8,graduated,expired", lines[1])
}

func TestStudents_ExportCommaInName(t *testing.T) {
	for _, tc := range []struct {
		quote bool
		want  string
	}{
		{false, "STU2024009,Tanaka, Yuki,"},
		{true, `STU2024009,"Tanaka, Yuki",`},
	} {
		_, svc, _, sid := newStudents(t, tc.quote)
		_, err := svc.Create(sid, dto.StudentRequest{Name: "Tanaka, Yuki", StudentID: "STU2024009"})
		require.NoError(t, err)
		_, err = svc.List(sid, dto.StudentFilter{Search: "tanaka"})
		require.NoError(t, err)

		file, err := svc.Export(sid, "csv")
		require.NoError(t, err)
		lines := strings.Split(string(file.Body), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[1], tc.want), lines[1])
	}
}
