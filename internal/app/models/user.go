package models

// User is the identity granted by the demo login.
type User struct {
	ID         string  `json:"id" example:"1"`
	Name       string  `json:"name" example:"Maria Gonzalez"`
	Email      string  `json:"email" example:"maria.gonzalez@university.edu"`
	Role       Role    `json:"role" example:"student"`
	Avatar     string  `json:"avatar,omitempty"`
	StudentID  string  `json:"studentId,omitempty" example:"STU2024001"`
	Country    string  `json:"country,omitempty"`
	Program    string  `json:"program,omitempty"`
	Year       string  `json:"year,omitempty"`
	GPA        float64 `json:"gpa,omitempty"`
	Department string  `json:"department,omitempty"`
	Position   string  `json:"position,omitempty"`
	ClassGroup string  `json:"classGroup,omitempty"`
}
