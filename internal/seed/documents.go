package seed

import "github.com/yigit/intlportal/internal/app/models"

func doc(id, name string, t models.DocumentType, s models.DocumentStatus, expiry, upload, studentID, studentName string) models.Document {
	return models.Document{ID: id, Name: name, Type: t, Status: s, ExpiryDate: expiry, UploadDate: upload, StudentID: studentID, StudentName: studentName}
}

// StudentDocuments returns the document list a student's documents screen
// starts with, owned by user.
func StudentDocuments(user models.User) []models.Document {
	id, name := user.StudentID, user.Name
	return []models.Document{
		doc("1", "I-20 Form", models.DocumentTypeImmigration, models.DocumentStatusValid, "2024-08-15", "2023-08-15", id, name),
		doc("2", "F-1 Visa", models.DocumentTypeImmigration, models.DocumentStatusExpiring, "2024-03-20", "2023-03-20", id, name),
		doc("3", "Official Transcript", models.DocumentTypeAcademic, models.DocumentStatusValid, "", "2024-01-10", id, name),
		doc("4", "Passport", models.DocumentTypeIdentity, models.DocumentStatusValid, "2026-05-12", "2023-01-15", id, name),
		doc("5", "Health Insurance Card", models.DocumentTypeHealth, models.DocumentStatusExpiring, "2024-02-28", "2023-02-28", id, name),
		doc("6", "Bank Statement", models.DocumentTypeFinancial, models.DocumentStatusExpired, "2024-01-01", "2023-12-01", id, name),
	}
}

// ReviewDocuments is the international office's own document list. It is
// not connected to what students upload.
func ReviewDocuments() []models.Document {
	const (
		maria = "Maria Gonzalez"
		chen  = "Chen Wei"
		priya = "Priya Sharma"
		ahmed = "Ahmed Hassan"
	)
	return []models.Document{
		doc("1", "I-20 Form", models.DocumentTypeImmigration, models.DocumentStatusValid, "2024-08-15", "2023-08-15", "STU2024001", maria),
		doc("2", "F-1 Visa", models.DocumentTypeImmigration, models.DocumentStatusValid, "2025-08-15", "2023-08-15", "STU2024001", maria),
		doc("3", "Passport", models.DocumentTypeIdentity, models.DocumentStatusValid, "2026-05-12", "2023-01-15", "STU2024001", maria),
		doc("4", "I-20 Form", models.DocumentTypeImmigration, models.DocumentStatusExpiring, "2024-03-20", "2022-03-20", "STU2024002", chen),
		doc("5", "F-1 Visa", models.DocumentTypeImmigration, models.DocumentStatusExpiring, "2024-03-20", "2022-03-20", "STU2024002", chen),
		doc("6", "Health Insurance Card", models.DocumentTypeHealth, models.DocumentStatusValid, "2024-12-31", "2024-01-01", "STU2024002", chen),
		doc("7", "I-20 Form", models.DocumentTypeImmigration, models.DocumentStatusValid, "2026-08-15", "2023-08-15", "STU2024003", priya),
		doc("8", "Bank Statement", models.DocumentTypeFinancial, models.DocumentStatusExpired, "2024-01-01", "2023-12-01", "STU2024003", priya),
		doc("9", "Official Transcript", models.DocumentTypeAcademic, models.DocumentStatusValid, "", "2023-08-10", "STU2024003", priya),
		doc("10", "Passport", models.DocumentTypeIdentity, models.DocumentStatusValid, "2027-12-15", "2024-01-15", "STU2024004", ahmed),
		doc("11", "F-1 Visa", models.DocumentTypeImmigration, models.DocumentStatusValid, "2026-01-01", "2024-01-01", "STU2024004", ahmed),
	}
}
