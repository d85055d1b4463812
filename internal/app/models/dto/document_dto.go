package dto

import "github.com/yigit/intlportal/internal/app/models"

// DocumentQuery selects a category on the student documents screen.
type DocumentQuery struct {
	Category string `form:"category" example:"Immigration"`
}

// DocumentRequest is the add document form.
type DocumentRequest struct {
	Name       string                `json:"name" example:"Passport"`
	Type       models.DocumentType   `json:"type" binding:"omitempty,oneof=Immigration Academic Identity Health Financial" example:"Identity"`
	Status     models.DocumentStatus `json:"status" binding:"omitempty,oneof=valid expiring expired pending approved rejected" example:"valid"`
	UploadDate string                `json:"uploadDate" example:"2024-02-20"`
	ExpiryDate string                `json:"expiryDate" example:"2026-05-12"`
}

// DocumentFilter narrows the document review list. "all" or an empty value
// disables a filter.
type DocumentFilter struct {
	Search  string `form:"search" example:"visa"`
	Student string `form:"student" example:"STU2024002"`
	Type    string `form:"type" example:"Immigration"`
	Status  string `form:"status" example:"expiring"`
}

// FlagRequest carries the reason a document is flagged for.
type FlagRequest struct {
	Reason string `json:"reason" example:"Photo page is unreadable"`
}
