package seed

import "github.com/yigit/intlportal/internal/app/models"

// CalendarEvents are the student dashboard's dated events.
func CalendarEvents() []models.CalendarEvent {
	return []models.CalendarEvent{
		{ID: "1", Title: "Midterm Exam - Data Structures", Date: "2024-02-15", Time: "2:00 PM", Type: "exam", Location: "CS Building Room 301"},
		{ID: "2", Title: "International Student Orientation", Date: "2024-02-20", Time: "10:00 AM", Type: "event", Location: "Student Center"},
		{ID: "3", Title: "Academic Advisor Meeting", Date: "2024-02-22", Time: "3:30 PM", Type: "meeting", Location: "Dean Office"},
		{ID: "4", Title: "Visa Renewal Appointment", Date: "2024-02-25", Time: "9:00 AM", Type: "immigration", Location: "Immigration Office"},
		{ID: "5", Title: "Final Project Presentation", Date: "2024-02-28", Time: "1:00 PM", Type: "academic", Location: "CS Building Room 205"},
	}
}

// UpcomingEvents is the short list beside the calendar.
func UpcomingEvents() []models.CalendarEvent {
	return CalendarEvents()[:3]
}

// Labs is the lab status panel.
func Labs() []models.LabInfo {
	return []models.LabInfo{
		{ID: "1", Name: "Computer Lab A1", Code: "LAB-A1", Type: "computer", Location: "Building A, Floor 1", Capacity: 40,
			Supervisor: "Dr. Ahmad Susanto", Status: "available", CurrentActivity: "Available for practice sessions"},
		{ID: "2", Name: "Language Lab C1", Code: "LAB-C1", Type: "language", Location: "Building C, Floor 1", Capacity: 30,
			Supervisor: "Ms. Sarah Johnson", Status: "occupied", CurrentActivity: "English Practice Session - Class 3SI15"},
		{ID: "3", Name: "Engineering Lab D1", Code: "LAB-D1", Type: "engineering", Location: "Building D, Floor 1", Capacity: 25,
			Supervisor: "Prof. Budi Hartono", Status: "maintenance", CurrentActivity: "Under maintenance until 3:00 PM"},
		{ID: "4", Name: "Computer Lab B2", Code: "LAB-B2", Type: "computer", Location: "Building B, Floor 2", Capacity: 35,
			Supervisor: "Dr. Lisa Chen", Status: "available", CurrentActivity: "Available for programming practice"},
	}
}

// AcademicStats are the academic admin's dashboard figures.
type AcademicStats struct {
	TotalStudents      int     `json:"totalStudents"`
	ActiveCourses      int     `json:"activeCourses"`
	PendingGrades      int     `json:"pendingGrades"`
	AverageGPA         float64 `json:"averageGPA"`
	GraduatingStudents int     `json:"graduatingStudents"`
	NewEnrollments     int     `json:"newEnrollments"`
}

// InternationalStats are the international admin's dashboard figures.
type InternationalStats struct {
	InternationalStudents int `json:"internationalStudents"`
	VisaApplications      int `json:"visaApplications"`
	ExpiredDocuments      int `json:"expiredDocuments"`
	PendingRenewals       int `json:"pendingRenewals"`
	ActiveVisas           int `json:"activeVisas"`
	Countries             int `json:"countries"`
}

func AcademicDashboardStats() AcademicStats {
	return AcademicStats{
		TotalStudents: 1247, ActiveCourses: 156, PendingGrades: 23, AverageGPA: 3.4,
		GraduatingStudents: 89, NewEnrollments: 156,
	}
}

func InternationalDashboardStats() InternationalStats {
	return InternationalStats{
		InternationalStudents: 342, VisaApplications: 45, ExpiredDocuments: 12, PendingRenewals: 8,
		ActiveVisas: 298, Countries: 67,
	}
}
