package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/seed"
)

func TestCourses_LookupNormalizesCode(t *testing.T) {
	f := newFixture(t)
	svc := NewCoursesService(f.sessions, f.mounter)
	sid := f.open(t, models.RoleStudent, "courses")

	res, err := svc.Lookup(sid, "  4ka21 ")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "4KA21", res.Code)
	require.NotNil(t, res.ClassGroup)
	assert.Equal(t, "Dr. Sarah Johnson", res.ClassGroup.Advisor)
	require.Len(t, res.Schedule, 3)
	require.NotNil(t, res.Schedule[0].Subject)
	assert.Equal(t, "Algoritma Lanjut", res.Schedule[0].Subject.Name)
	assert.Equal(t, []string{"4KA21", "4KA20", "3SI15"}, res.KnownCodes)

	res, err = svc.Lookup(sid, "")
	require.NoError(t, err)
	assert.Equal(t, "4KA21", res.Code)
}

func TestCourses_UnknownCode(t *testing.T) {
	f := newFixture(t)
	svc := NewCoursesService(f.sessions, f.mounter)
	sid := f.open(t, models.RoleStudent, "courses")

	res, err := svc.Lookup(sid, "9zz99")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Schedule)
	assert.Nil(t, res.ClassGroup)
	assert.Equal(t, "No schedule available for class 9ZZ99.", res.Message)
}

func TestCourses_AdminCoursesIsClassManagement(t *testing.T) {
	f := newFixture(t)
	svc := NewCoursesService(f.sessions, f.mounter)
	sid := f.open(t, models.RoleAcademicAdmin, "courses")

	_, err := svc.Lookup(sid, "4KA21")
	assert.ErrorIs(t, err, apperrors.ErrScreenNotMounted)
}

func TestBuildTimetable(t *testing.T) {
	view := BuildTimetable(seed.StudentTimetable("4KA21"))

	assert.Equal(t, 13, view.TotalCredits)
	assert.Equal(t, 14, view.WeeklyHours)
	require.Len(t, view.Days, 6)
	monday := view.Days[0]
	require.Len(t, monday.Classes, 2)
	assert.Equal(t, "08:00", monday.Classes[0].StartTime)
	assert.Equal(t, "10:30", monday.Classes[1].StartTime)
	assert.Empty(t, view.Days[5].Classes)

	require.Len(t, view.Grid, 10)
	cell := func(row, col int) *ScheduledClass { return view.Grid[row].Cells[col].Class }
	require.NotNil(t, cell(0, 0))
	assert.Equal(t, "Advanced Data Structures", cell(0, 0).Subject.Name)
	assert.NotNil(t, cell(1, 0), "09:00 falls inside 08:00-10:00")
	assert.Nil(t, cell(2, 0), "10:00 is before the 10:30 start")
	require.NotNil(t, cell(3, 0))
	assert.Equal(t, "Software Engineering", cell(3, 0).Subject.Name)
	assert.Nil(t, cell(5, 0), "nothing runs on Monday at 13:00")
	for _, row := range view.Grid {
		assert.Nil(t, row.Cells[5].Class)
	}
}

func TestSchedule_UsesDefaultClassGroup(t *testing.T) {
	f := newFixture(t)
	svc := NewScheduleService(f.sessions)
	sid := f.open(t, models.RoleStudent, "schedule")

	view, err := svc.Timetable(sid)
	require.NoError(t, err)
	assert.Equal(t, seed.DefaultClassGroup, view.ClassGroup.Code)
}
