package seed

import (
	"errors"
	"fmt"

	"github.com/yigit/intlportal/internal/app/models"
)

// Check verifies the seed collections are internally consistent. All
// problems are reported together.
func Check() error {
	var errs []error

	errs = append(errs, duplicates("student", Students(), func(s models.Student) string { return s.ID })...)
	errs = append(errs, duplicates("student number", Students(), func(s models.Student) string { return s.StudentID })...)
	errs = append(errs, duplicates("announcement", Announcements(), func(a models.Announcement) string { return a.ID })...)
	errs = append(errs, duplicates("document", ReviewDocuments(), func(d models.Document) string { return d.ID })...)

	catalog := ClassCatalog()
	errs = append(errs, duplicates("class group", catalog.ClassGroups, func(g models.ClassGroup) string { return g.Code })...)
	errs = append(errs, duplicates("subject", catalog.Subjects, func(s models.Subject) string { return s.Code })...)

	for _, role := range models.Roles {
		if _, ok := DemoUser(role); !ok {
			errs = append(errs, fmt.Errorf("no demo user for role %s", role))
		}
	}
	for _, s := range Students() {
		switch s.Status {
		case models.StudentStatusActive, models.StudentStatusInactive, models.StudentStatusGraduated:
		default:
			errs = append(errs, fmt.Errorf("student %s: unknown status %q", s.ID, s.Status))
		}
	}
	for _, a := range Announcements() {
		switch a.Priority {
		case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityUrgent:
		default:
			errs = append(errs, fmt.Errorf("announcement %s: unknown priority %q", a.ID, a.Priority))
		}
	}

	return errors.Join(errs...)
}

func duplicates[T any](kind string, items []T, key func(T) string) []error {
	var errs []error
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		k := key(it)
		if seen[k] {
			errs = append(errs, fmt.Errorf("duplicate %s id %q", kind, k))
		}
		seen[k] = true
	}
	return errs
}
