package models

// StudentStatus is the enrollment status of a student.
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusInactive  StudentStatus = "inactive"
	StudentStatusGraduated StudentStatus = "graduated"
)

// VisaStatus is the state of a student's visa as recorded by the office.
type VisaStatus string

const (
	VisaStatusValid    VisaStatus = "valid"
	VisaStatusExpiring VisaStatus = "expiring"
	VisaStatusExpired  VisaStatus = "expired"
)

// Student is an international student record in the shared store.
//
// ClassGroup is free text. It is matched against class group codes by
// string equality and is never validated, so it may name a group that
// does not exist.
type Student struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	StudentID      string        `json:"studentId"`
	Country        string        `json:"country"`
	Program        string        `json:"program"`
	Year           string        `json:"year"`
	GPA            float64       `json:"gpa"`
	Avatar         string        `json:"avatar"`
	Status         StudentStatus `json:"status"`
	VisaStatus     VisaStatus    `json:"visaStatus"`
	EnrollmentDate string        `json:"enrollmentDate"`
	ClassGroup     string        `json:"classGroup,omitempty"`
}
