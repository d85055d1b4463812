package models

// PersonalInfo is the editable part of a student profile.
type PersonalInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
}

// EmergencyContact is the person to call on the student's behalf.
type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// AcademicInfo is the read-only academic section of a profile.
type AcademicInfo struct {
	StudentID    string  `json:"studentId"`
	Program      string  `json:"program"`
	Year         string  `json:"year"`
	GPA          float64 `json:"gpa"`
	Major        string  `json:"major"`
	Advisor      string  `json:"advisor"`
	AdvisorEmail string  `json:"advisorEmail"`
}

// ImmigrationInfo is the read-only immigration section of a profile.
type ImmigrationInfo struct {
	VisaType          string `json:"visaType"`
	VisaStatus        string `json:"visaStatus"`
	VisaExpiry        string `json:"visaExpiry"`
	I20Number         string `json:"i20Number"`
	SEVISID           string `json:"sevisId"`
	PassportNumber    string `json:"passportNumber"`
	PassportExpiry    string `json:"passportExpiry"`
	WorkAuthorization string `json:"workAuthorization"`
}
