package models

// ClassGroup is a cohort such as 4KA21.
type ClassGroup struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Year          int    `json:"year"`
	Program       string `json:"program"`
	Section       string `json:"section"`
	TotalStudents int    `json:"totalStudents"`
	AcademicYear  string `json:"academicYear"`
	Advisor       string `json:"advisor"`
}

// Subject is a course taught to class groups.
type Subject struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Credits     int    `json:"credits"`
	Semester    int    `json:"semester"`
	Lecturer    string `json:"lecturer"`
	Description string `json:"description,omitempty"`
}

// ClassSchedule places a subject in a weekly slot for a class group.
type ClassSchedule struct {
	ID           string `json:"id"`
	ClassGroupID string `json:"classGroupId"`
	SubjectID    string `json:"subjectId"`
	Day          string `json:"day"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Room         string `json:"room"`
	Lecturer     string `json:"lecturer"`
	Semester     string `json:"semester"`
}

// Weekdays are the teaching days shown in schedules.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// IsWeekday reports whether day is a teaching day.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
