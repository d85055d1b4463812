package models

// AnnouncementType controls how an announcement is styled.
type AnnouncementType string

const (
	AnnouncementTypeInfo    AnnouncementType = "info"
	AnnouncementTypeWarning AnnouncementType = "warning"
	AnnouncementTypeSuccess AnnouncementType = "success"
)

// Priority is an announcement's urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Announcement is the one entity persisted across restarts.
//
// Seeded announcements carry Content while ones written from the admin
// dashboard carry Message and Type. Empty message, content and type are
// omitted when stored, and unknown fields in a stored record are dropped
// on load.
type Announcement struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Message  string           `json:"message,omitempty"`
	Content  string           `json:"content,omitempty"`
	Type     AnnouncementType `json:"type,omitempty"`
	Priority Priority         `json:"priority"`
	Date     string           `json:"date"`
	Author   string           `json:"author"`
}

// Text returns the body of the announcement whichever field holds it.
func (a Announcement) Text() string {
	if a.Message != "" {
		return a.Message
	}
	return a.Content
}
