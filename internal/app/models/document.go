package models

// DocumentType categorises uploaded documents.
type DocumentType string

const (
	DocumentTypeImmigration DocumentType = "Immigration"
	DocumentTypeAcademic    DocumentType = "Academic"
	DocumentTypeIdentity    DocumentType = "Identity"
	DocumentTypeHealth      DocumentType = "Health"
	DocumentTypeFinancial   DocumentType = "Financial"
)

// DocumentTypes lists the document categories in display order.
var DocumentTypes = []DocumentType{
	DocumentTypeImmigration,
	DocumentTypeAcademic,
	DocumentTypeIdentity,
	DocumentTypeHealth,
	DocumentTypeFinancial,
}

// DocumentStatus is set by whoever edits the document. It is not derived
// from ExpiryDate and can contradict it.
type DocumentStatus string

const (
	DocumentStatusValid    DocumentStatus = "valid"
	DocumentStatusExpiring DocumentStatus = "expiring"
	DocumentStatusExpired  DocumentStatus = "expired"
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// Document is a student document record.
type Document struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        DocumentType   `json:"type"`
	Status      DocumentStatus `json:"status"`
	UploadDate  string         `json:"uploadDate"`
	ExpiryDate  string         `json:"expiryDate,omitempty"`
	StudentID   string         `json:"studentId,omitempty"`
	StudentName string         `json:"studentName,omitempty"`
	FileURL     string         `json:"fileUrl,omitempty"`
}

// DocumentStats counts documents by status.
type DocumentStats struct {
	Total    int `json:"total"`
	Valid    int `json:"valid"`
	Expiring int `json:"expiring"`
	Expired  int `json:"expired"`
}

// CountDocuments tallies docs by status.
func CountDocuments(docs []Document) DocumentStats {
	stats := DocumentStats{Total: len(docs)}
	for _, d := range docs {
		switch d.Status {
		case DocumentStatusValid:
			stats.Valid++
		case DocumentStatusExpiring:
			stats.Expiring++
		case DocumentStatusExpired:
			stats.Expired++
		}
	}
	return stats
}
