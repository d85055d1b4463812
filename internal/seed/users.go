package seed

import "github.com/yigit/intlportal/internal/app/models"

// DefaultClassGroup is used for a student whose user record names none.
const DefaultClassGroup = "4KA21"

// DemoUser returns the demo identity for role.
func DemoUser(role models.Role) (models.User, bool) {
	switch role {
	case models.RoleStudent:
		return models.User{
			ID: "1", Name: "Maria Gonzalez", Email: "maria.gonzalez@university.edu", Role: models.RoleStudent,
			StudentID: "STU2024001", Country: "Mexico", Program: "Computer Science", Year: "Junior", GPA: 3.7,
			Avatar: Avatar("774909"),
		}, true
	case models.RoleAcademicAdmin:
		return models.User{
			ID: "2", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@university.edu", Role: models.RoleAcademicAdmin,
			Department: "Academic Affairs", Position: "Academic Administrator", Avatar: Avatar("1239291"),
		}, true
	case models.RoleInternationalAdmin:
		return models.User{
			ID: "3", Name: "James Wilson", Email: "james.wilson@university.edu", Role: models.RoleInternationalAdmin,
			Department: "International Student Services", Position: "International Student Advisor",
			Avatar: Avatar("1222271"),
		}, true
	}
	return models.User{}, false
}

// Notifications are the header bell entries.
func Notifications() []models.Notification {
	return []models.Notification{
		{
			ID: "1", Title: "Visa Renewal Reminder",
			Message: "Your F-1 visa expires in 30 days. Please schedule an appointment.",
			Type:    "warning", Date: "2024-01-15",
		},
		{
			ID: "2", Title: "Course Registration Open",
			Message: "Fall 2024 course registration is now open for international students.",
			Type:    "info", Date: "2024-01-14",
		},
	}
}
