package seed

import "github.com/yigit/intlportal/internal/app/models"

// PendingGrades is the fixed pending count shown on the grades screen.
const PendingGrades = 5

// GradeScale lists the letter grades an administrator can pick.
var GradeScale = []struct {
	Grade  string
	Points float64
}{
	{"A", 4.0}, {"A-", 3.7}, {"B+", 3.3}, {"B", 3.0}, {"B-", 2.7}, {"C+", 2.3},
	{"C", 2.0}, {"C-", 1.7}, {"D+", 1.3}, {"D", 1.0}, {"F", 0.0},
}

// GradeBook returns the administrators' grades keyed by student id.
// Students without an entry have no grades.
func GradeBook() map[string][]models.Grade {
	return map[string][]models.Grade{
		"STU2024001": {
			{ID: "1", StudentID: "STU2024001", StudentName: "Maria Gonzalez", CourseCode: "CS401", CourseName: "Advanced Data Structures", Credits: 3, Grade: "A", GradePoints: 4.0, Semester: "Semester 7", Year: "2023"},
			{ID: "2", StudentID: "STU2024001", StudentName: "Maria Gonzalez", CourseCode: "CS402", CourseName: "Software Engineering", Credits: 3, Grade: "A-", GradePoints: 3.7, Semester: "Semester 7", Year: "2023"},
		},
		"STU2024002": {
			{ID: "3", StudentID: "STU2024002", StudentName: "Chen Wei", CourseCode: "BUS301", CourseName: "Business Strategy", Credits: 3, Grade: "A", GradePoints: 4.0, Semester: "Semester 8", Year: "2023"},
			{ID: "4", StudentID: "STU2024002", StudentName: "Chen Wei", CourseCode: "BUS302", CourseName: "Marketing Management", Credits: 3, Grade: "A-", GradePoints: 3.7, Semester: "Semester 8", Year: "2023"},
		},
		"STU2024003": {
			{ID: "5", StudentID: "STU2024003", StudentName: "Priya Sharma", CourseCode: "ENG201", CourseName: "Engineering Mathematics", Credits: 4, Grade: "B+", GradePoints: 3.3, Semester: "Semester 5", Year: "2023"},
		},
	}
}
