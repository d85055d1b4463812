package seed

import "github.com/yigit/intlportal/internal/app/models"

// The class lookup, the student timetable and class management each carry
// their own reference data. The sets disagree with each other on subject
// codes and slots; callers must not join across them.

// CatalogData is the class lookup's reference data.
type CatalogData struct {
	ClassGroups []models.ClassGroup
	Subjects    []models.Subject
	// Schedules are keyed by class group code.
	Schedules map[string][]models.ClassSchedule
}

// ClassCatalog returns the reference data behind the class code lookup.
func ClassCatalog() CatalogData {
	return CatalogData{
		ClassGroups: []models.ClassGroup{
			{ID: "1", Code: "4KA21", Year: 4, Program: "KA", Section: "21", TotalStudents: 35, AcademicYear: "2023/2024", Advisor: "Dr. Sarah Johnson"},
			{ID: "2", Code: "4KA20", Year: 4, Program: "KA", Section: "20", TotalStudents: 32, AcademicYear: "2023/2024", Advisor: "Prof. Michael Chen"},
			{ID: "3", Code: "3SI15", Year: 3, Program: "SI", Section: "15", TotalStudents: 38, AcademicYear: "2023/2024", Advisor: "Dr. Emily Rodriguez"},
		},
		Subjects: []models.Subject{
			{ID: "1", Code: "ALG401", Name: "Algoritma Lanjut", Credits: 3, Semester: 7, Lecturer: "Dr. Sarah Johnson"},
			{ID: "2", Code: "SCI401", Name: "Sains Komputer", Credits: 2, Semester: 7, Lecturer: "Prof. Michael Chen"},
			{ID: "3", Code: "MAT401", Name: "Matematika Diskrit", Credits: 3, Semester: 7, Lecturer: "Dr. Emily Rodriguez"},
			{ID: "4", Code: "ENG401", Name: "Bahasa Inggris Teknik", Credits: 2, Semester: 7, Lecturer: "Prof. James Wilson"},
			{ID: "5", Code: "DB401", Name: "Basis Data", Credits: 3, Semester: 7, Lecturer: "Dr. Lisa Park"},
		},
		Schedules: map[string][]models.ClassSchedule{
			"4KA21": {
				{ID: "1", ClassGroupID: "1", SubjectID: "1", Day: "Tuesday", StartTime: "08:00", EndTime: "10:00", Room: "B231", Lecturer: "Dr. Sarah Johnson", Semester: "Semester 7"},
				{ID: "2", ClassGroupID: "1", SubjectID: "2", Day: "Wednesday", StartTime: "10:00", EndTime: "12:00", Room: "A102", Lecturer: "Prof. Michael Chen", Semester: "Semester 7"},
				{ID: "3", ClassGroupID: "1", SubjectID: "3", Day: "Thursday", StartTime: "13:00", EndTime: "15:00", Room: "B302", Lecturer: "Dr. Emily Rodriguez", Semester: "Semester 7"},
			},
			"4KA20": {
				{ID: "4", ClassGroupID: "2", SubjectID: "1", Day: "Monday", StartTime: "08:00", EndTime: "10:00", Room: "B233", Lecturer: "Dr. Sarah Johnson", Semester: "Semester 7"},
				{ID: "5", ClassGroupID: "2", SubjectID: "4", Day: "Tuesday", StartTime: "13:00", EndTime: "15:00", Room: "C201", Lecturer: "Prof. James Wilson", Semester: "Semester 7"},
				{ID: "6", ClassGroupID: "2", SubjectID: "5", Day: "Friday", StartTime: "10:00", EndTime: "12:00", Room: "B105", Lecturer: "Dr. Lisa Park", Semester: "Semester 7"},
			},
			"3SI15": {
				{ID: "7", ClassGroupID: "3", SubjectID: "2", Day: "Monday", StartTime: "10:00", EndTime: "12:00", Room: "A201", Lecturer: "Prof. Michael Chen", Semester: "Semester 5"},
				{ID: "8", ClassGroupID: "3", SubjectID: "3", Day: "Wednesday", StartTime: "08:00", EndTime: "10:00", Room: "B401", Lecturer: "Dr. Emily Rodriguez", Semester: "Semester 5"},
			},
		},
	}
}

// TimetableData is the student timetable's reference data. The same
// weekly plan is shown whatever class group the student belongs to.
type TimetableData struct {
	ClassGroup models.ClassGroup
	Subjects   []models.Subject
	Schedules  []models.ClassSchedule
}

// StudentTimetable returns the timetable for the class group code.
func StudentTimetable(code string) TimetableData {
	return TimetableData{
		ClassGroup: models.ClassGroup{ID: "1", Code: code, Year: 4, Program: "KA", Section: "21", TotalStudents: 35, AcademicYear: "2023/2024", Advisor: "Dr. Sarah Johnson"},
		Subjects: []models.Subject{
			{ID: "1", Code: "CS401", Name: "Advanced Data Structures", Credits: 3, Semester: 7, Lecturer: "Dr. Sarah Johnson"},
			{ID: "2", Code: "CS402", Name: "Software Engineering", Credits: 3, Semester: 7, Lecturer: "Prof. Michael Chen"},
			{ID: "3", Code: "MATH401", Name: "Discrete Mathematics", Credits: 2, Semester: 7, Lecturer: "Dr. Emily Rodriguez"},
			{ID: "4", Code: "ENG401", Name: "Technical Writing", Credits: 2, Semester: 7, Lecturer: "Prof. James Wilson"},
			{ID: "5", Code: "CS403", Name: "Database Systems", Credits: 3, Semester: 7, Lecturer: "Dr. Lisa Park"},
		},
		Schedules: []models.ClassSchedule{
			{ID: "1", ClassGroupID: "1", SubjectID: "1", Day: "Monday", StartTime: "08:00", EndTime: "10:00", Room: "B231", Lecturer: "Dr. Sarah Johnson", Semester: "Semester 7"},
			{ID: "2", ClassGroupID: "1", SubjectID: "2", Day: "Monday", StartTime: "10:30", EndTime: "12:30", Room: "A102", Lecturer: "Prof. Michael Chen", Semester: "Semester 7"},
			{ID: "3", ClassGroupID: "1", SubjectID: "3", Day: "Tuesday", StartTime: "08:00", EndTime: "10:00", Room: "B302", Lecturer: "Dr. Emily Rodriguez", Semester: "Semester 7"},
			{ID: "4", ClassGroupID: "1", SubjectID: "4", Day: "Tuesday", StartTime: "13:00", EndTime: "15:00", Room: "C201", Lecturer: "Prof. James Wilson", Semester: "Semester 7"},
			{ID: "5", ClassGroupID: "1", SubjectID: "5", Day: "Wednesday", StartTime: "10:00", EndTime: "12:00", Room: "B105", Lecturer: "Dr. Lisa Park", Semester: "Semester 7"},
			{ID: "6", ClassGroupID: "1", SubjectID: "1", Day: "Thursday", StartTime: "08:00", EndTime: "10:00", Room: "B231", Lecturer: "Dr. Sarah Johnson", Semester: "Semester 7"},
			{ID: "7", ClassGroupID: "1", SubjectID: "2", Day: "Friday", StartTime: "13:00", EndTime: "15:00", Room: "A102", Lecturer: "Prof. Michael Chen", Semester: "Semester 7"},
		},
	}
}

// TimeSlots are the rows of the weekly timetable grid.
var TimeSlots = []string{"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

// ManagementData is the class management screen's starting state.
type ManagementData struct {
	ClassGroups []models.ClassGroup
	Subjects    []models.Subject
	Schedules   []models.ClassSchedule
}

// ClassManagement returns fresh class management data.
func ClassManagement() ManagementData {
	return ManagementData{
		ClassGroups: ClassCatalog().ClassGroups,
		Subjects: []models.Subject{
			{ID: "1", Code: "CS401", Name: "Advanced Data Structures", Credits: 3, Semester: 7, Lecturer: "Dr. Sarah Johnson"},
			{ID: "2", Code: "CS402", Name: "Software Engineering", Credits: 3, Semester: 7, Lecturer: "Prof. Michael Chen"},
			{ID: "3", Code: "MATH401", Name: "Discrete Mathematics", Credits: 2, Semester: 7, Lecturer: "Dr. Emily Rodriguez"},
		},
		Schedules: []models.ClassSchedule{
			{ID: "1", ClassGroupID: "1", SubjectID: "1", Day: "Monday", StartTime: "08:00", EndTime: "10:00", Room: "B231", Lecturer: "Dr. Sarah Johnson", Semester: "Semester 7"},
			{ID: "2", ClassGroupID: "1", SubjectID: "2", Day: "Tuesday", StartTime: "10:00", EndTime: "12:00", Room: "A102", Lecturer: "Prof. Michael Chen", Semester: "Semester 7"},
		},
	}
}
