package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
)

func newClassManagement(t *testing.T) (*fixture, ClassManagementService, string) {
	t.Helper()
	f := newFixture(t)
	svc := NewClassManagementService(f.store, f.sessions, f.mounter, f.clock, zerolog.Nop())
	return f, svc, f.open(t, models.RoleAcademicAdmin, "courses")
}

func intPtr(v int) *int { return &v }

func TestClassManagement_Overview(t *testing.T) {
	_, svc, sid := newClassManagement(t)

	page, err := svc.Overview(sid)
	require.NoError(t, err)
	assert.Len(t, page.ClassGroups, 3)
	assert.Len(t, page.Subjects, 3)
	require.Len(t, page.Schedules, 2)
	assert.Equal(t, "Advanced Data Structures", page.Schedules[0].SubjectName)
	assert.Equal(t, "4KA21", page.Schedules[0].ClassGroupCode)
	assert.Equal(t, models.Weekdays, page.Days)
}

func TestClassManagement_GroupLifecycle(t *testing.T) {
	_, svc, sid := newClassManagement(t)

	created, err := svc.CreateGroup(sid, dto.ClassGroupRequest{Code: "4KA22", Program: "KA", Section: "22"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Year)
	assert.Equal(t, "2023/2024", created.AcademicYear)
	assert.NotContains(t, []string{"1", "2", "3"}, created.ID)

	updated, err := svc.UpdateGroup(sid, created.ID, dto.ClassGroupRequest{Year: intPtr(4), Advisor: "Dr. Lisa Park"})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Year)
	assert.Equal(t, "4KA22", updated.Code)
	assert.Equal(t, "Dr. Lisa Park", updated.Advisor)

	err = svc.DeleteGroup(sid, created.ID, false)
	require.ErrorIs(t, err, apperrors.ErrConfirmationRequired)
	assert.Equal(t, "Are you sure you want to delete this class group?", apperrors.UserMessage(err))

	page, err := svc.Overview(sid)
	require.NoError(t, err)
	assert.Len(t, page.ClassGroups, 4)

	require.NoError(t, svc.DeleteGroup(sid, created.ID, true))
	page, err = svc.Overview(sid)
	require.NoError(t, err)
	assert.Len(t, page.ClassGroups, 3)
}

func TestClassManagement_RejectsMalformedCode(t *testing.T) {
	_, svc, sid := newClassManagement(t)

	_, err := svc.CreateGroup(sid, dto.ClassGroupRequest{Code: "class-a"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateSchedule(sid, dto.ScheduleRequest{StartTime: "8am"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestClassManagement_SubjectsAndSchedules(t *testing.T) {
	_, svc, sid := newClassManagement(t)

	sub, err := svc.CreateSubject(sid, dto.SubjectRequest{Code: "CS404", Name: "Computer Networks", Credits: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 1, sub.Semester)

	sc, err := svc.CreateSchedule(sid, dto.ScheduleRequest{ClassGroupID: "2", SubjectID: sub.ID, StartTime: "13:00", EndTime: "15:00"})
	require.NoError(t, err)
	assert.Equal(t, "Monday", sc.Day)

	page, err := svc.Overview(sid)
	require.NoError(t, err)
	last := page.Schedules[len(page.Schedules)-1]
	assert.Equal(t, "Computer Networks", last.SubjectName)
	assert.Equal(t, "4KA20", last.ClassGroupCode)

	require.NoError(t, svc.DeleteSubject(sid, sub.ID, true))
	page, err = svc.Overview(sid)
	require.NoError(t, err)
	assert.Empty(t, page.Schedules[len(page.Schedules)-1].SubjectName)

	_, err = svc.UpdateSchedule(sid, sc.ID, dto.ScheduleRequest{Room: "C301"})
	require.NoError(t, err)

	err = svc.DeleteSchedule(sid, sc.ID, false)
	assert.Equal(t, "Are you sure you want to delete this schedule?", apperrors.UserMessage(err))
	require.NoError(t, svc.DeleteSchedule(sid, sc.ID, true))

	assert.ErrorIs(t, svc.DeleteSchedule(sid, sc.ID, true), apperrors.ErrScheduleNotFound)
	_, err = svc.UpdateSubject(sid, "missing", dto.SubjectRequest{})
	assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
}

func TestClassManagement_GroupStudentsMatchByCode(t *testing.T) {
	f, svc, sid := newClassManagement(t)

	students, err := svc.GroupStudents(sid, "1")
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Maria Gonzalez", students[0].Name)
	assert.Equal(t, "Sophie Dubois", students[1].Name)

	students, err = svc.GroupStudents(sid, "3")
	require.NoError(t, err)
	assert.Empty(t, students)

	_, err = svc.GroupStudents(sid, "42")
	assert.ErrorIs(t, err, apperrors.ErrClassGroupNotFound)

	f.navigate(t, sid, "students")
	_, err = svc.Overview(sid)
	assert.ErrorIs(t, err, apperrors.ErrScreenNotMounted)
}
