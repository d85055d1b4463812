package seed

import "github.com/yigit/intlportal/internal/app/models"

// VisaSteps returns the guide for a visa path.
func VisaSteps(path models.VisaPath) []models.VisaStep {
	if path == models.VisaPathVITAS {
		return []models.VisaStep{
			{Step: 1, Title: "Determine Study Program", Description: "Choose your study program and duration"},
			{Step: 2, Title: "Apply for VITAS", Description: "Apply for Student Visa (Study Permit)"},
			{Step: 3, Title: "Arrive in Indonesia", Description: "Enter Indonesia with VITAS"},
			{Step: 4, Title: "Apply for SKTT", Description: "Apply for SKTT at Dukcapil"},
			{Step: 5, Title: "Apply for STM", Description: "Apply for STM at Police"},
			{Step: 6, Title: "Extend ITAS", Description: "Extend your residence permit"},
		}
	}
	return []models.VisaStep{
		{Step: 1, Title: "Determine Study Program", Description: "Choose your study program and duration"},
		{Step: 2, Title: "Apply for Visit Visa", Description: "60–180 days, renewable up to 3 times"},
		{Step: 3, Title: "Arrive in Indonesia", Description: "Enter Indonesia with valid visit visa"},
		{Step: 4, Title: "Extend Visa", Description: "Extend up to 3 times maximum"},
	}
}

// ApplicationFlow is the fixed admission timeline shown above the guides.
func ApplicationFlow() []models.VisaStep {
	return []models.VisaStep{
		{Step: 1, Title: "Application Submission", Description: "Submit application to Gunadarma University", Status: "completed"},
		{Step: 2, Title: "Document Verification", Description: "University verifies academic documents", Status: "completed"},
		{Step: 3, Title: "Letter of Acceptance", Description: "Receive LOA from university", Status: "completed"},
		{Step: 4, Title: "Visa Application", Description: "Apply for student visa at embassy", Status: "current"},
		{Step: 5, Title: "Visa Approval", Description: "Receive visa approval and stamp", Status: "pending"},
		{Step: 6, Title: "Travel to Indonesia", Description: "Arrive in Indonesia with valid visa", Status: "pending"},
		{Step: 7, Title: "Study Permit", Description: "Obtain study permit from immigration", Status: "pending"},
		{Step: 8, Title: "Begin Studies", Description: "Start academic program at Gunadarma", Status: "pending"},
	}
}
