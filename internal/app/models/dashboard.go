package models

// CalendarEvent is an entry on a dashboard calendar.
type CalendarEvent struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Type     string `json:"type"`
	Location string `json:"location,omitempty"`
}

// CalendarDay is one cell of a month grid. Day is zero for the blank
// cells that pad the first week.
type CalendarDay struct {
	Day    int             `json:"day"`
	Date   string          `json:"date,omitempty"`
	Today  bool            `json:"today"`
	Events []CalendarEvent `json:"events,omitempty"`
}

// CalendarMonth is a month grid starting on Sunday.
type CalendarMonth struct {
	Year     int           `json:"year"`
	Month    int           `json:"month"`
	Title    string        `json:"title"`
	Prev     string        `json:"prev"`
	Next     string        `json:"next"`
	Days     []CalendarDay `json:"days"`
	Weekdays []string      `json:"weekdays"`
}

// LabInfo describes a teaching laboratory and what it is doing now.
type LabInfo struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Code            string `json:"code"`
	Type            string `json:"type"`
	Location        string `json:"location"`
	Capacity        int    `json:"capacity"`
	Supervisor      string `json:"supervisor"`
	Status          string `json:"status"`
	CurrentActivity string `json:"currentActivity"`
}

// Notification is shown in the header bell menu.
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}
