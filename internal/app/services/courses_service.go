package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/seed"
)

// CoursesLocal remembers the last class code looked up.
type CoursesLocal struct {
	Code string
}

// ScheduledClass is a schedule slot joined with its subject.
type ScheduledClass struct {
	models.ClassSchedule
	Subject *models.Subject `json:"subject,omitempty"`
}

// ClassLookup is the result of a class code lookup. Message is set when
// the code has no schedule.
type ClassLookup struct {
	Code       string             `json:"code"`
	Found      bool               `json:"found"`
	ClassGroup *models.ClassGroup `json:"classGroup,omitempty"`
	Schedule   []ScheduledClass   `json:"schedule"`
	Message    string             `json:"message,omitempty"`
	KnownCodes []string           `json:"knownCodes"`
}

// CoursesService answers the student class lookup from its own catalog.
type CoursesService struct {
	sessions *session.Manager
}

// NewCoursesService creates the service and registers its screen.
func NewCoursesService(sessions *session.Manager, mounter *ScreenMounter) *CoursesService {
	mounter.Register(views.ScreenCourses, func(context.Context, models.User) (any, error) {
		return &CoursesLocal{}, nil
	})
	return &CoursesService{sessions: sessions}
}

// NormalizeClassCode upper-cases and trims a typed class code.
func NormalizeClassCode(code string) string {
	return strings.TrimSpace(strings.ToUpper(code))
}

func joinSubjects(schedules []models.ClassSchedule, subjects []models.Subject) []ScheduledClass {
	out := make([]ScheduledClass, 0, len(schedules))
	for _, sc := range schedules {
		row := ScheduledClass{ClassSchedule: sc}
		if i := indexByID(subjects, sc.SubjectID, subjectID); i >= 0 {
			sub := subjects[i]
			row.Subject = &sub
		}
		out = append(out, row)
	}
	return out
}

// Lookup finds the schedule of a class group. An empty code repeats the
// last lookup of the screen.
func (s *CoursesService) Lookup(sessionID, code string) (*ClassLookup, error) {
	var result *ClassLookup
	err := session.WithScreen(s.sessions, sessionID, views.ScreenCourses, func(_ models.User, local *CoursesLocal) error {
		if code != "" {
			local.Code = NormalizeClassCode(code)
		}
		catalog := seed.ClassCatalog()
		result = &ClassLookup{Code: local.Code, Schedule: []ScheduledClass{}}
		for _, g := range catalog.ClassGroups {
			result.KnownCodes = append(result.KnownCodes, g.Code)
		}
		if local.Code == "" {
			return nil
		}

		schedules, ok := catalog.Schedules[local.Code]
		if !ok || len(schedules) == 0 {
			result.Message = fmt.Sprintf("No schedule available for class %s.", local.Code)
			return nil
		}
		result.Found = true
		result.Schedule = joinSubjects(schedules, catalog.Subjects)
		for _, g := range catalog.ClassGroups {
			if g.Code == local.Code {
				group := g
				result.ClassGroup = &group
			}
		}
		return nil
	})
	return result, err
}

// TimetableCell is one cell of the weekly grid. Class is nil for a free
// slot.
type TimetableCell struct {
	Day   string          `json:"day"`
	Time  string          `json:"time"`
	Class *ScheduledClass `json:"class,omitempty"`
}

// TimetableRow is the grid row of one time slot.
type TimetableRow struct {
	Time  string          `json:"time"`
	Cells []TimetableCell `json:"cells"`
}

// DaySchedule lists one day's classes by start time.
type DaySchedule struct {
	Day     string           `json:"day"`
	Classes []ScheduledClass `json:"classes"`
}

// TimetableView is the student's weekly timetable.
type TimetableView struct {
	ClassGroup   models.ClassGroup `json:"classGroup"`
	Subjects     []models.Subject  `json:"subjects"`
	TotalCredits int               `json:"totalCredits"`
	WeeklyHours  int               `json:"weeklyHours"`
	Days         []DaySchedule     `json:"days"`
	Grid         []TimetableRow    `json:"grid"`
}

// ScheduleService renders the weekly timetable of the student's class
// group.
type ScheduleService struct {
	sessions *session.Manager
}

// NewScheduleService creates the timetable service.
func NewScheduleService(sessions *session.Manager) *ScheduleService {
	return &ScheduleService{sessions: sessions}
}

// slotAt returns the class running at time t on day: the first one with
// start <= t < end.
func slotAt(classes []ScheduledClass, day, t string) *ScheduledClass {
	for i := range classes {
		c := classes[i]
		if c.Day == day && t >= c.StartTime && t < c.EndTime {
			return &c
		}
	}
	return nil
}

// BuildTimetable lays out a class group's timetable on the 08:00-17:00,
// Monday to Saturday grid.
func BuildTimetable(data seed.TimetableData) TimetableView {
	classes := joinSubjects(data.Schedules, data.Subjects)
	view := TimetableView{
		ClassGroup:  data.ClassGroup,
		Subjects:    data.Subjects,
		WeeklyHours: len(data.Schedules) * 2,
	}
	for _, sub := range data.Subjects {
		view.TotalCredits += sub.Credits
	}

	for _, day := range models.Weekdays {
		ds := DaySchedule{Day: day, Classes: []ScheduledClass{}}
		for _, c := range classes {
			if c.Day == day {
				ds.Classes = append(ds.Classes, c)
			}
		}
		sort.SliceStable(ds.Classes, func(i, j int) bool {
			return ds.Classes[i].StartTime < ds.Classes[j].StartTime
		})
		view.Days = append(view.Days, ds)
	}

	for _, t := range seed.TimeSlots {
		row := TimetableRow{Time: t}
		for _, day := range models.Weekdays {
			row.Cells = append(row.Cells, TimetableCell{Day: day, Time: t, Class: slotAt(classes, day, t)})
		}
		view.Grid = append(view.Grid, row)
	}
	return view
}

// Timetable renders the timetable for the session user's class group.
func (s *ScheduleService) Timetable(sessionID string) (*TimetableView, error) {
	var view TimetableView
	err := session.WithScreen(s.sessions, sessionID, views.ScreenClassSchedule, func(user models.User, _ any) error {
		code := user.ClassGroup
		if code == "" {
			code = seed.DefaultClassGroup
		}
		view = BuildTimetable(seed.StudentTimetable(code))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}
