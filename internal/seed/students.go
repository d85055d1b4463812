// Package seed holds the fixed records every screen starts from.
package seed

import (
	"fmt"

	"github.com/yigit/intlportal/internal/app/models"
)

const avatarURL = "https://images.pexels.com/photos/%s/pexels-photo-%s.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&dpr=2"

// Avatar returns the stock portrait URL for a photo id.
func Avatar(photoID string) string {
	return fmt.Sprintf(avatarURL, photoID, photoID)
}

// DefaultAvatar is given to students added without a picture.
var DefaultAvatar = Avatar("774909")

// Students returns the shared student collection.
func Students() []models.Student {
	return []models.Student{
		{
			ID: "1", Name: "Maria Gonzalez", Email: "maria.gonzalez@university.edu", StudentID: "STU2024001",
			Country: "Mexico", Program: "Computer Science", Year: "Junior", GPA: 3.7, Avatar: Avatar("774909"),
			Status: models.StudentStatusActive, VisaStatus: models.VisaStatusValid, EnrollmentDate: "2022-08-15",
			ClassGroup: "4KA21",
		},
		{
			ID: "2", Name: "Chen Wei", Email: "chen.wei@university.edu", StudentID: "STU2024002",
			Country: "China", Program: "Business Administration", Year: "Senior", GPA: 3.9, Avatar: Avatar("1222271"),
			Status: models.StudentStatusActive, VisaStatus: models.VisaStatusExpiring, EnrollmentDate: "2021-08-15",
			ClassGroup: "4KA20",
		},
		{
			ID: "3", Name: "Priya Sharma", Email: "priya.sharma@university.edu", StudentID: "STU2024003",
			Country: "India", Program: "Engineering", Year: "Sophomore", GPA: 3.5, Avatar: Avatar("1239291"),
			Status: models.StudentStatusActive, VisaStatus: models.VisaStatusValid, EnrollmentDate: "2023-08-15",
			ClassGroup: "3KA15",
		},
		{
			ID: "4", Name: "Ahmed Hassan", Email: "ahmed.hassan@university.edu", StudentID: "STU2024004",
			Country: "Egypt", Program: "Medicine", Year: "Freshman", GPA: 3.2, Avatar: Avatar("1043471"),
			Status: models.StudentStatusActive, VisaStatus: models.VisaStatusValid, EnrollmentDate: "2024-08-15",
			ClassGroup: "2SI12",
		},
		{
			ID: "5", Name: "Sophie Dubois", Email: "sophie.dubois@university.edu", StudentID: "STU2024005",
			Country: "France", Program: "Art History", Year: "Senior", GPA: 3.8, Avatar: Avatar("1181686"),
			Status: models.StudentStatusGraduated, VisaStatus: models.VisaStatusExpired, EnrollmentDate: "2021-08-15",
			ClassGroup: "4KA21",
		},
	}
}

// Programs are the program filter and form options.
var Programs = []string{"Computer Science", "Business Administration", "Engineering", "Medicine", "Art History"}

// Countries are the country filter options.
var Countries = []string{"Mexico", "China", "India", "Egypt", "France"}

// StudentFormClassGroups is the class group picker of the student form.
// It is maintained apart from class management and lists groups that
// screen does not know about.
func StudentFormClassGroups() []models.ClassGroup {
	return []models.ClassGroup{
		{ID: "1", Code: "4KA21", Year: 4, Program: "KA", Section: "21", TotalStudents: 35, AcademicYear: "2023/2024", Advisor: "Dr. Sarah Johnson"},
		{ID: "2", Code: "4KA20", Year: 4, Program: "KA", Section: "20", TotalStudents: 32, AcademicYear: "2023/2024", Advisor: "Prof. Michael Chen"},
		{ID: "3", Code: "3SI15", Year: 3, Program: "SI", Section: "15", TotalStudents: 38, AcademicYear: "2023/2024", Advisor: "Dr. Emily Rodriguez"},
		{ID: "4", Code: "2TI12", Year: 2, Program: "TI", Section: "12", TotalStudents: 30, AcademicYear: "2023/2024", Advisor: "Prof. Ahmad Susanto"},
		{ID: "5", Code: "1IF08", Year: 1, Program: "IF", Section: "08", TotalStudents: 40, AcademicYear: "2023/2024", Advisor: "Dr. Lisa Park"},
	}
}
