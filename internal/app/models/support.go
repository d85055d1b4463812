package models

// FAQ is a question with its answer.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQCategory groups related questions.
type FAQCategory struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Questions []FAQ  `json:"questions"`
}

// SupportContact is an office students can reach.
type SupportContact struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Hours       string `json:"hours"`
}
