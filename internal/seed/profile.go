package seed

import "github.com/yigit/intlportal/internal/app/models"

// PersonalInfo is the starting content of the profile edit buffer.
func PersonalInfo(user models.User) models.PersonalInfo {
	return models.PersonalInfo{
		FirstName: "Maria", LastName: "Gonzalez", Email: user.Email, Phone: "+1 (555) 123-4567",
		DateOfBirth: "1999-06-15", Nationality: "Mexican", Address: "123 University Ave, Apt 4B",
		City: "College Town", State: "CA", ZipCode: "90210",
	}
}

func EmergencyContact() models.EmergencyContact {
	return models.EmergencyContact{Name: "Carlos Gonzalez", Relationship: "Father", Phone: "+52 55 1234 5678", Email: "carlos.gonzalez@email.com"}
}

func AcademicInfo(user models.User) models.AcademicInfo {
	return models.AcademicInfo{
		StudentID: user.StudentID, Program: user.Program, Major: "Computer Science", Year: user.Year, GPA: user.GPA,
		Advisor: "Dr. Sarah Johnson", AdvisorEmail: "sarah.johnson@university.edu",
	}
}

func ImmigrationInfo() models.ImmigrationInfo {
	return models.ImmigrationInfo{
		VisaType: "F-1", VisaStatus: "Active", VisaExpiry: "2025-08-15", I20Number: "N0123456789",
		SEVISID: "N0123456789", PassportNumber: "MX1234567", PassportExpiry: "2026-05-12",
		WorkAuthorization: "On-Campus Only",
	}
}
