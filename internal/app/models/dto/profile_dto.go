package dto

// PersonalInfoRequest edits the profile's personal information buffer.
// Empty fields are left as they are.
type PersonalInfoRequest struct {
	FirstName   string `json:"firstName" example:"Maria"`
	LastName    string `json:"lastName" example:"Gonzalez"`
	Email       string `json:"email" binding:"omitempty,email" example:"maria.gonzalez@university.edu"`
	Phone       string `json:"phone" example:"+1 (555) 123-4567"`
	DateOfBirth string `json:"dateOfBirth" example:"1999-06-15"`
	Nationality string `json:"nationality" example:"Mexican"`
	Address     string `json:"address" example:"123 University Ave, Apt 4B"`
	City        string `json:"city" example:"College Town"`
	State       string `json:"state" example:"CA"`
	ZipCode     string `json:"zipCode" example:"90210"`
}
