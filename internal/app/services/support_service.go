package services

import (
	"context"
	"strings"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/seed"
)

// SupportLocal is the FAQ search box.
type SupportLocal struct {
	Search string
}

// SupportPage is the rendered support screen.
type SupportPage struct {
	Search     string                  `json:"search"`
	Categories []models.FAQCategory    `json:"categories"`
	Contacts   []models.SupportContact `json:"contacts"`
}

// SupportService answers FAQ searches.
type SupportService struct {
	sessions *session.Manager
}

// NewSupportService creates the service and registers its screen.
func NewSupportService(sessions *session.Manager, mounter *ScreenMounter) *SupportService {
	mounter.Register(views.ScreenSupport, func(context.Context, models.User) (any, error) {
		return &SupportLocal{}, nil
	})
	return &SupportService{sessions: sessions}
}

// FilterFAQs keeps the questions whose question or answer contains term,
// ignoring case. Categories left empty are dropped.
func FilterFAQs(categories []models.FAQCategory, term string) []models.FAQCategory {
	term = strings.ToLower(term)
	out := make([]models.FAQCategory, 0, len(categories))
	for _, c := range categories {
		var kept []models.FAQ
		for _, q := range c.Questions {
			if strings.Contains(strings.ToLower(q.Question), term) || strings.Contains(strings.ToLower(q.Answer), term) {
				kept = append(kept, q)
			}
		}
		if len(kept) > 0 {
			c.Questions = kept
			out = append(out, c)
		}
	}
	return out
}

// Page renders the FAQ filtered by search.
func (s *SupportService) Page(sessionID, search string) (*SupportPage, error) {
	var page *SupportPage
	err := session.WithScreen(s.sessions, sessionID, views.ScreenSupport, func(_ models.User, local *SupportLocal) error {
		local.Search = search
		page = &SupportPage{
			Search:     search,
			Categories: FilterFAQs(seed.FAQCategories(), search),
			Contacts:   seed.SupportContacts(),
		}
		return nil
	})
	return page, err
}

// VisaLocal is the visa path picked on the screen.
type VisaLocal struct {
	Path models.VisaPath
}

// VisaPage is the rendered visa and immigration screen.
type VisaPage struct {
	Path            models.VisaPath   `json:"path"`
	Paths           []models.VisaPath `json:"paths"`
	Steps           []models.VisaStep `json:"steps"`
	ApplicationFlow []models.VisaStep `json:"applicationFlow"`
}

// VisaService renders the visa guides.
type VisaService struct {
	sessions *session.Manager
}

// NewVisaService creates the service and registers its screen.
func NewVisaService(sessions *session.Manager, mounter *ScreenMounter) *VisaService {
	mounter.Register(views.ScreenVisaStatus, func(context.Context, models.User) (any, error) {
		return &VisaLocal{Path: models.VisaPathVisit}, nil
	})
	return &VisaService{sessions: sessions}
}

// Page renders the guide of path, or of the path already shown when path
// is empty.
func (s *VisaService) Page(sessionID string, path models.VisaPath) (*VisaPage, error) {
	var page *VisaPage
	err := session.WithScreen(s.sessions, sessionID, views.ScreenVisaStatus, func(_ models.User, local *VisaLocal) error {
		switch path {
		case "":
		case models.VisaPathVisit, models.VisaPathVITAS:
			local.Path = path
		default:
			return apperrors.NewValidationError("Unknown visa path " + string(path))
		}
		page = &VisaPage{
			Path:            local.Path,
			Paths:           []models.VisaPath{models.VisaPathVisit, models.VisaPathVITAS},
			Steps:           seed.VisaSteps(local.Path),
			ApplicationFlow: seed.ApplicationFlow(),
		}
		return nil
	})
	return page, err
}
