package services

import (
	"strconv"
	"strings"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/pkg/export"
	"github.com/yigit/intlportal/internal/seed"
)

// StudentStats counts the whole collection, not the filtered list.
type StudentStats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Inactive     int `json:"inactive"`
	Graduated    int `json:"graduated"`
	VisaExpiring int `json:"visaExpiring"`
}

// StudentFilterOptions are the choices offered by the filter bar.
type StudentFilterOptions struct {
	Statuses  []models.StudentStatus `json:"statuses"`
	Programs  []string               `json:"programs"`
	Countries []string               `json:"countries"`
}

func matchesOption(selected, value string) bool {
	return selected == "" || selected == "all" || selected == value
}

// FilterStudents applies f to students. The search matches name, student
// number or email, case-insensitively.
func FilterStudents(students []models.Student, f dto.StudentFilter) []models.Student {
	term := strings.ToLower(f.Search)
	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		matchesSearch := strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(s.StudentID), term) ||
			strings.Contains(strings.ToLower(s.Email), term)
		if matchesSearch &&
			matchesOption(f.Status, string(s.Status)) &&
			matchesOption(f.Program, s.Program) &&
			matchesOption(f.Country, s.Country) {
			out = append(out, s)
		}
	}
	return out
}

// CountStudents tallies students by status.
func CountStudents(students []models.Student) StudentStats {
	stats := StudentStats{Total: len(students)}
	for _, s := range students {
		switch s.Status {
		case models.StudentStatusActive:
			stats.Active++
		case models.StudentStatusInactive:
			stats.Inactive++
		case models.StudentStatusGraduated:
			stats.Graduated++
		}
		if s.VisaStatus == models.VisaStatusExpiring {
			stats.VisaExpiring++
		}
	}
	return stats
}

func studentFilterOptions(statuses ...models.StudentStatus) StudentFilterOptions {
	return StudentFilterOptions{
		Statuses:  statuses,
		Programs:  append([]string(nil), seed.Programs...),
		Countries: append([]string(nil), seed.Countries...),
	}
}

// formatNumber prints a float the shortest way that round-trips, so 3.0
// becomes "3" and 3.75 stays "3.75".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// StudentTable is the export layout shared by both student screens.
func StudentTable(students []models.Student) export.Table {
	t := export.Table{
		Header: []string{"Student ID", "Name", "Email", "Country", "Program", "Class Group", "GPA", "Status", "Visa Status"},
		Rows:   make([][]string, 0, len(students)),
	}
	for _, s := range students {
		t.Rows = append(t.Rows, []string{
			s.StudentID, s.Name, s.Email, s.Country, s.Program, s.ClassGroup,
			formatNumber(s.GPA), string(s.Status), string(s.VisaStatus),
		})
	}
	return t
}
