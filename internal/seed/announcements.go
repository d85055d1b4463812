package seed

import "github.com/yigit/intlportal/internal/app/models"

// Announcements is the list used whenever nothing usable is stored.
func Announcements() []models.Announcement {
	return []models.Announcement{
		{
			ID:       "1",
			Title:    "Welcome to New Semester",
			Content:  "Welcome back students! The new semester has officially started. Please check your course schedules and make sure all required materials are ready.",
			Priority: models.PriorityHigh,
			Date:     "2024-01-15",
			Author:   "Academic Office",
		},
		{
			ID:       "2",
			Title:    "Library Hours Extended",
			Content:  "The university library will now be open until 10 PM on weekdays to support your studies during exam period.",
			Priority: models.PriorityMedium,
			Date:     "2024-01-10",
			Author:   "Library Administration",
		},
		{
			ID:       "3",
			Title:    "International Student Orientation",
			Content:  "All new international students are required to attend the orientation session on January 20th at 9 AM in the main auditorium.",
			Priority: models.PriorityUrgent,
			Date:     "2024-01-08",
			Author:   "International Office",
		},
	}
}
