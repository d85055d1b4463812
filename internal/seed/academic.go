package seed

import "github.com/yigit/intlportal/internal/app/models"

// CurrentSemester is the semester the academic screen opens on.
const CurrentSemester = 7

// AcademicYear is printed on every exam card and course selection sheet.
const AcademicYear = "2023/2024"

func krs(id, code, name string, credits int, lecturer, schedule, room string, status models.KRSStatus) models.KRSItem {
	return models.KRSItem{ID: id, CourseCode: code, CourseName: name, Credits: credits, Lecturer: lecturer, Schedule: schedule, Room: room, Status: status}
}

// CourseSelections returns the course selection sheets keyed by semester
// number 1 through 8.
func CourseSelections() map[int][]models.KRSItem {
	ok := models.KRSStatusApproved
	return map[int][]models.KRSItem{
		1: {
			krs("1", "CS101", "Introduction to Programming", 3, "Dr. John Smith", "Monday 08:00-10:00", "A101", ok),
			krs("2", "MATH101", "Calculus I", 3, "Prof. Jane Doe", "Tuesday 10:00-12:00", "B201", ok),
		},
		2: {
			krs("1", "CS102", "Data Structures", 3, "Dr. Alice Johnson", "Wednesday 08:00-10:00", "A102", ok),
			krs("2", "MATH102", "Calculus II", 3, "Prof. Bob Wilson", "Thursday 10:00-12:00", "B202", ok),
		},
		3: {
			krs("1", "CS201", "Object Oriented Programming", 3, "Dr. Carol Brown", "Monday 13:00-15:00", "A201", ok),
			krs("2", "CS202", "Computer Networks", 3, "Prof. David Lee", "Tuesday 13:00-15:00", "B301", ok),
		},
		4: {
			krs("1", "CS301", "Database Systems", 3, "Dr. Emma Davis", "Wednesday 13:00-15:00", "A301", ok),
			krs("2", "CS302", "Operating Systems", 3, "Prof. Frank Miller", "Thursday 13:00-15:00", "B401", ok),
		},
		5: {
			krs("1", "CS401", "Software Engineering", 3, "Dr. Grace Taylor", "Monday 15:00-17:00", "A401", ok),
			krs("2", "CS402", "Computer Graphics", 3, "Prof. Henry Wilson", "Tuesday 15:00-17:00", "B501", ok),
		},
		6: {
			krs("1", "CS501", "Artificial Intelligence", 3, "Dr. Ivy Chen", "Wednesday 15:00-17:00", "A501", ok),
			krs("2", "CS502", "Machine Learning", 3, "Prof. Jack Anderson", "Thursday 15:00-17:00", "B601", ok),
		},
		7: {
			krs("1", "CS401", "Advanced Data Structures", 3, "Dr. Sarah Johnson", "Tuesday 08:00-10:00", "B231", ok),
			krs("2", "CS402", "Software Engineering", 3, "Prof. Michael Chen", "Wednesday 10:00-12:00", "A102", ok),
			krs("3", "MATH401", "Discrete Mathematics", 2, "Dr. Emily Rodriguez", "Thursday 13:00-15:00", "B302", models.KRSStatusPending),
		},
		8: {
			krs("1", "CS601", "Final Project", 6, "Dr. Lisa Wang", "Monday 08:00-12:00", "A601", ok),
			krs("2", "CS602", "Internship", 4, "Prof. Mark Thompson", "External", "External", ok),
		},
	}
}

// StudentGrades is the student's own grade summary.
func StudentGrades() []models.CourseGrade {
	return []models.CourseGrade{
		{ID: "1", CourseCode: "CS301", CourseName: "Database Systems", Credits: 3, Grade: "A", GradePoints: 4.0, Semester: "Semester 6"},
		{ID: "2", CourseCode: "CS302", CourseName: "Web Programming", Credits: 3, Grade: "A-", GradePoints: 3.7, Semester: "Semester 6"},
		{ID: "3", CourseCode: "MATH301", CourseName: "Statistics", Credits: 2, Grade: "B+", GradePoints: 3.3, Semester: "Semester 6"},
	}
}

// ExamTypes lists the examination periods in display order.
var ExamTypes = []models.ExamType{models.ExamTypeMidterm, models.ExamTypeFinal, models.ExamTypeMain}

// ExamCards summarises each examination period.
func ExamCards() []models.ExamCard {
	return []models.ExamCard{
		{ID: "1", ExamType: models.ExamTypeMidterm, Title: "Midterm Exams", SubjectCount: 3, Status: "active", CourseCode: "Multiple", Period: "2024-03-15 - 2024-03-18", Time: "Various", Room: "Various", Seat: "A-15"},
		{ID: "2", ExamType: models.ExamTypeFinal, Title: "Final Exams", SubjectCount: 3, Status: "active", CourseCode: "Multiple", Period: "2024-05-20 - 2024-05-24", Time: "Various", Room: "Various", Seat: "A-15"},
		{ID: "3", ExamType: models.ExamTypeMain, Title: "Main Exams", SubjectCount: 2, Status: "active", CourseCode: "Multiple", Period: "2024-06-10 - 2024-06-12", Time: "Various", Room: "Various", Seat: "A-15"},
	}
}

func exam(id string, t models.ExamType, code, name, date, time, room string) models.ExamSchedule {
	return models.ExamSchedule{ID: id, ExamType: t, CourseCode: code, CourseName: name, Date: date, Time: time, Room: room, Seat: "A-15"}
}

// ExamSchedules returns the sittings of each examination period.
func ExamSchedules() map[models.ExamType][]models.ExamSchedule {
	uts, uas, main := models.ExamTypeMidterm, models.ExamTypeFinal, models.ExamTypeMain
	return map[models.ExamType][]models.ExamSchedule{
		uts: {
			exam("1", uts, "CS401", "Advanced Data Structures", "2024-03-15", "08:00-10:00", "B231"),
			exam("2", uts, "CS402", "Software Engineering", "2024-03-16", "10:00-12:00", "A102"),
			exam("3", uts, "MATH401", "Discrete Mathematics", "2024-03-18", "13:00-15:00", "B302"),
		},
		uas: {
			exam("4", uas, "CS401", "Advanced Data Structures", "2024-05-20", "08:00-10:00", "B231"),
			exam("5", uas, "CS402", "Software Engineering", "2024-05-22", "10:00-12:00", "A102"),
			exam("6", uas, "MATH401", "Discrete Mathematics", "2024-05-24", "13:00-15:00", "B302"),
		},
		main: {
			exam("7", main, "ENG401", "Technical Writing", "2024-06-10", "08:00-10:00", "C201"),
			exam("8", main, "CS403", "Database Systems", "2024-06-12", "10:00-12:00", "B105"),
		},
	}
}

// Payments are the student's tuition and fee invoices.
func Payments() []models.Payment {
	return []models.Payment{
		{ID: "1", Semester: "Semester 7", Type: "SPP", Amount: 4500000, DueDate: "2024-02-15", Status: models.PaymentStatusPaid, PaidDate: "2024-02-10"},
		{ID: "2", Semester: "Semester 7", Type: "Praktikum", Amount: 750000, DueDate: "2024-03-01", Status: models.PaymentStatusPending},
		{ID: "3", Semester: "Semester 8", Type: "SPP", Amount: 4500000, DueDate: "2024-07-15", Status: models.PaymentStatusPending},
	}
}
