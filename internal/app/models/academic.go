package models

import "strings"

// KRSStatus is the approval state of a course selection entry.
type KRSStatus string

const (
	KRSStatusApproved KRSStatus = "approved"
	KRSStatusPending  KRSStatus = "pending"
	KRSStatusRejected KRSStatus = "rejected"
)

// KRSItem is one course on a student's semester course selection sheet.
type KRSItem struct {
	ID         string    `json:"id"`
	CourseCode string    `json:"courseCode"`
	CourseName string    `json:"courseName"`
	Credits    int       `json:"credits"`
	Lecturer   string    `json:"lecturer"`
	Schedule   string    `json:"schedule"`
	Room       string    `json:"room"`
	Status     KRSStatus `json:"status"`
}

// CourseGrade is a line of a student's own grade summary.
type CourseGrade struct {
	ID          string  `json:"id"`
	CourseCode  string  `json:"courseCode"`
	CourseName  string  `json:"courseName"`
	Credits     int     `json:"credits"`
	Grade       string  `json:"grade"`
	GradePoints float64 `json:"gradePoints"`
	Semester    string  `json:"semester"`
}

// Grade is an entry of the administrators' grade book.
type Grade struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"studentId"`
	StudentName string  `json:"studentName"`
	CourseCode  string  `json:"courseCode"`
	CourseName  string  `json:"courseName"`
	Credits     int     `json:"credits"`
	Grade       string  `json:"grade"`
	GradePoints float64 `json:"gradePoints"`
	Semester    string  `json:"semester"`
	Year        string  `json:"year"`
}

// GradeTier buckets a letter grade by its first letter: A, B, C, D or F
// for anything else.
func GradeTier(grade string) string {
	switch {
	case strings.HasPrefix(grade, "A"):
		return "A"
	case strings.HasPrefix(grade, "B"):
		return "B"
	case strings.HasPrefix(grade, "C"):
		return "C"
	case strings.HasPrefix(grade, "D"):
		return "D"
	default:
		return "F"
	}
}

// ExamType names an examination period.
type ExamType string

const (
	ExamTypeMidterm ExamType = "UTS"
	ExamTypeFinal   ExamType = "UAS"
	ExamTypeMain    ExamType = "Ujian Utama"
)

// ExamCard summarises an examination period for a student.
type ExamCard struct {
	ID           string   `json:"id"`
	ExamType     ExamType `json:"examType"`
	Title        string   `json:"title"`
	SubjectCount int      `json:"subjectCount"`
	Period       string   `json:"period"`
	CourseCode   string   `json:"courseCode"`
	Time         string   `json:"time"`
	Room         string   `json:"room"`
	Seat         string   `json:"seat"`
	Status       string   `json:"status"`
}

// ExamSchedule is one sitting within an examination period.
type ExamSchedule struct {
	ID         string   `json:"id"`
	ExamType   ExamType `json:"examType"`
	CourseCode string   `json:"courseCode"`
	CourseName string   `json:"courseName"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Room       string   `json:"room"`
	Seat       string   `json:"seat"`
}

// PaymentStatus is the settlement state of a tuition payment.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Payment is a tuition or fee invoice in Indonesian rupiah.
type Payment struct {
	ID       string        `json:"id"`
	Semester string        `json:"semester"`
	Type     string        `json:"type"`
	Amount   int64         `json:"amount"`
	DueDate  string        `json:"dueDate"`
	Status   PaymentStatus `json:"status"`
	PaidDate string        `json:"paidDate,omitempty"`
}
