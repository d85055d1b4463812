package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/state"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/export"
	"github.com/yigit/intlportal/internal/pkg/helpers"
	"github.com/yigit/intlportal/internal/seed"
)

// DocumentReviewLocal is the review screen's own document list and the
// filter last applied to it.
type DocumentReviewLocal struct {
	Documents []models.Document
	Filter    dto.DocumentFilter
}

// ReviewRow is a document row with its days until expiry. DaysUntilExpiry
// is nil for documents without an expiry date.
type ReviewRow struct {
	models.Document
	DaysUntilExpiry *int `json:"daysUntilExpiry"`
}

// StudentOption is an entry of the student filter.
type StudentOption struct {
	StudentID string `json:"studentId"`
	Label     string `json:"label"`
}

// DocumentReviewPage is the rendered document management screen.
type DocumentReviewPage struct {
	Documents []ReviewRow           `json:"documents"`
	Filter    dto.DocumentFilter    `json:"filter"`
	Stats     models.DocumentStats  `json:"stats"`
	Students  []StudentOption       `json:"students"`
	Types     []models.DocumentType `json:"types"`
}

// DocumentManagementService backs the international office's document
// review screen. Approving and flagging only acknowledge the action.
type DocumentManagementService struct {
	store    *state.Store
	sessions *session.Manager
	clock    helpers.Clock
	quoteCSV bool
	logger   zerolog.Logger
}

// NewDocumentManagementService creates the service and registers its screen.
func NewDocumentManagementService(store *state.Store, sessions *session.Manager, mounter *ScreenMounter, clock helpers.Clock, quoteCSV bool, logger zerolog.Logger) *DocumentManagementService {
	mounter.Register(views.ScreenDocumentManagement, func(context.Context, models.User) (any, error) {
		return &DocumentReviewLocal{Documents: seed.ReviewDocuments()}, nil
	})
	return &DocumentManagementService{store: store, sessions: sessions, clock: clock, quoteCSV: quoteCSV, logger: logger}
}

func (s *DocumentManagementService) with(sessionID string, fn func(user models.User, local *DocumentReviewLocal) error) error {
	return session.WithScreen(s.sessions, sessionID, views.ScreenDocumentManagement, fn)
}

// FilterDocuments applies f. The search matches the document name or the
// student's name, case-insensitively.
func FilterDocuments(docs []models.Document, f dto.DocumentFilter) []models.Document {
	term := strings.ToLower(f.Search)
	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		matchesSearch := strings.Contains(strings.ToLower(d.Name), term) ||
			(d.StudentName != "" && strings.Contains(strings.ToLower(d.StudentName), term))
		if matchesSearch &&
			matchesOption(f.Student, d.StudentID) &&
			matchesOption(f.Type, string(d.Type)) &&
			matchesOption(f.Status, string(d.Status)) {
			out = append(out, d)
		}
	}
	return out
}

// InternationalStudentOptions lists students whose country is not Indonesia.
func InternationalStudentOptions(students []models.Student) []StudentOption {
	out := make([]StudentOption, 0, len(students))
	for _, st := range students {
		if st.Country == "Indonesia" {
			continue
		}
		out = append(out, StudentOption{
			StudentID: st.StudentID,
			Label:     fmt.Sprintf("%s (%s)", st.Name, st.StudentID),
		})
	}
	return out
}

func reviewRows(docs []models.Document, now time.Time) []ReviewRow {
	rows := make([]ReviewRow, 0, len(docs))
	for _, d := range docs {
		row := ReviewRow{Document: d}
		if d.ExpiryDate != "" {
			if days, err := helpers.DaysUntil(d.ExpiryDate, now); err == nil {
				row.DaysUntilExpiry = &days
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// List applies filter and remembers it for Export.
func (s *DocumentManagementService) List(sessionID string, filter dto.DocumentFilter) (*DocumentReviewPage, error) {
	var page *DocumentReviewPage
	err := s.with(sessionID, func(_ models.User, local *DocumentReviewLocal) error {
		local.Filter = filter
		page = &DocumentReviewPage{
			Documents: reviewRows(FilterDocuments(local.Documents, filter), s.clock.Now()),
			Filter:    filter,
			Stats:     models.CountDocuments(local.Documents),
			Students:  InternationalStudentOptions(s.store.Snapshot().Students),
			Types:     append([]models.DocumentType(nil), models.DocumentTypes...),
		}
		return nil
	})
	return page, err
}

func (s *DocumentManagementService) find(sessionID, id string) (models.Document, error) {
	var found models.Document
	err := s.with(sessionID, func(_ models.User, local *DocumentReviewLocal) error {
		i, err := findDocument(local.Documents, id)
		if err != nil {
			return err
		}
		found = local.Documents[i]
		return nil
	})
	return found, err
}

// Get returns one document with its days until expiry.
func (s *DocumentManagementService) Get(sessionID, id string) (*ReviewRow, error) {
	doc, err := s.find(sessionID, id)
	if err != nil {
		return nil, err
	}
	row := reviewRows([]models.Document{doc}, s.clock.Now())[0]
	return &row, nil
}

// localeTimestamp formats t as M/D/YYYY, h:mm:ss AM.
func localeTimestamp(t time.Time) string {
	return helpers.USDate(t) + ", " + t.Format("3:04:05 PM")
}

// DownloadText is the body of a mock document download.
func DownloadText(d models.Document, now time.Time) string {
	expiry := ""
	if d.ExpiryDate != "" {
		expiry = "Expiry Date: " + d.ExpiryDate
	}
	return fmt.Sprintf("Document: %s\nStudent: %s\nStudent ID: %s\nType: %s\nStatus: %s\nUpload Date: %s\n%s\n\nThis is a mock document download.\nGenerated on: %s",
		d.Name, d.StudentName, d.StudentID, d.Type, d.Status, d.UploadDate, expiry, localeTimestamp(now))
}

// Download renders the mock download file for a document.
func (s *DocumentManagementService) Download(sessionID, id string) (*export.File, error) {
	doc, err := s.find(sessionID, id)
	if err != nil {
		return nil, err
	}
	return &export.File{
		Name:        fmt.Sprintf("%s_%s.txt", doc.Name, doc.StudentName),
		ContentType: export.ContentTypeText,
		Body:        []byte(DownloadText(doc, s.clock.Now())),
	}, nil
}

// Approve acknowledges an approval. The document is left unchanged.
func (s *DocumentManagementService) Approve(sessionID, id string, confirm bool) (string, error) {
	doc, err := s.find(sessionID, id)
	if err != nil {
		return "", err
	}
	if !confirm {
		return "", apperrors.NewConfirmationError("Are you sure you want to approve this document?")
	}
	s.logger.Info().Str("id", doc.ID).Str("studentId", doc.StudentID).Msg("Document approved")
	return "Document approved successfully!", nil
}

// Flag acknowledges a flag with its reason. The document is left unchanged.
func (s *DocumentManagementService) Flag(sessionID, id string, req dto.FlagRequest) (string, error) {
	doc, err := s.find(sessionID, id)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(req.Reason) == "" {
		return "", apperrors.NewValidationError("Please provide a reason for flagging this document:")
	}
	s.logger.Info().Str("id", doc.ID).Str("reason", req.Reason).Msg("Document flagged")
	return "Document flagged successfully. Reason: " + req.Reason, nil
}

// DocumentTable is the review list export layout.
func DocumentTable(docs []models.Document) export.Table {
	t := export.Table{
		Header: []string{"Student ID", "Student Name", "Document Name", "Type", "Status", "Upload Date", "Expiry Date"},
		Rows:   make([][]string, 0, len(docs)),
	}
	for _, d := range docs {
		expiry := d.ExpiryDate
		if expiry == "" {
			expiry = "N/A"
		}
		t.Rows = append(t.Rows, []string{d.StudentID, d.StudentName, d.Name, string(d.Type), string(d.Status), d.UploadDate, expiry})
	}
	return t
}

// Export renders the currently filtered list.
func (s *DocumentManagementService) Export(sessionID, format string) (*export.File, error) {
	var file *export.File
	err := s.with(sessionID, func(_ models.User, local *DocumentReviewLocal) error {
		var err error
		file, err = export.Render(DocumentTable(FilterDocuments(local.Documents, local.Filter)), format, "documents_export", "Documents", s.clock.Now(), s.quoteCSV)
		return err
	})
	return file, err
}
