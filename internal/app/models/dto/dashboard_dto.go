package dto

import "github.com/yigit/intlportal/internal/app/models"

// CalendarQuery selects the month shown by a dashboard calendar.
type CalendarQuery struct {
	Month string `form:"month" example:"2024-02"`
}

// AnnouncementRequest is the body of announcement create and update.
// Title and message are checked by the service so the user sees the
// dashboard's own wording.
type AnnouncementRequest struct {
	Title    string                  `json:"title" example:"Library closed"`
	Message  string                  `json:"message" example:"The library is closed on Friday."`
	Type     models.AnnouncementType `json:"type" binding:"omitempty,oneof=info warning success" example:"info"`
	Priority models.Priority         `json:"priority" binding:"omitempty,oneof=low medium high urgent" example:"medium"`
}
