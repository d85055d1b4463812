package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/state"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/filestorage"
	"github.com/yigit/intlportal/internal/pkg/helpers"
	"github.com/yigit/intlportal/internal/pkg/validation"
	"github.com/yigit/intlportal/internal/seed"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// DocumentCategory is a tab of the documents screen.
type DocumentCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DocumentCategories lists the tabs in display order.
func DocumentCategories() []DocumentCategory {
	out := []DocumentCategory{{ID: CategoryAll, Name: "All Documents"}}
	for _, t := range models.DocumentTypes {
		out = append(out, DocumentCategory{ID: string(t), Name: string(t)})
	}
	return out
}

// DocumentsLocal is the student's own document list plus the draft built
// from the last upload.
type DocumentsLocal struct {
	Documents []models.Document
	Category  string
	Draft     *models.Document
}

// DocumentsPage is the rendered documents screen.
type DocumentsPage struct {
	Documents  []models.Document    `json:"documents"`
	Category   string               `json:"category"`
	Categories []DocumentCategory   `json:"categories"`
	Counts     models.DocumentStats `json:"counts"`
	Draft      *models.Document     `json:"draft,omitempty"`
}

// DocumentsService backs the student documents screen. The screen's list
// replaces the shared documents collection on mount and on every change.
type DocumentsService interface {
	List(sessionID, category string) (*DocumentsPage, error)
	Get(sessionID, id string) (*models.Document, error)
	Upload(sessionID string, fh *multipart.FileHeader) (*models.Document, error)
	Create(sessionID string, req dto.DocumentRequest) (*models.Document, error)
	Delete(sessionID, id string, confirm bool) error
	Download(sessionID, id string) (string, *models.Document, error)
}

type documentsServiceImpl struct {
	store    *state.Store
	sessions *session.Manager
	files    filestorage.FileStorage
	policy   filestorage.UploadPolicy
	clock    helpers.Clock
	logger   zerolog.Logger
}

// NewDocumentsService creates the student documents service. Uploads are
// checked against policy and written to files.
func NewDocumentsService(store *state.Store, sessions *session.Manager, mounter *ScreenMounter, files filestorage.FileStorage, policy filestorage.UploadPolicy, clock helpers.Clock, logger zerolog.Logger) DocumentsService {
	mounter.Register(views.ScreenDocuments, func(_ context.Context, user models.User) (any, error) {
		docs := seed.StudentDocuments(user)
		store.ReplaceDocuments(docs)
		return &DocumentsLocal{Documents: docs, Category: CategoryAll}, nil
	})
	return &documentsServiceImpl{
		store:    store,
		sessions: sessions,
		files:    files,
		policy:   policy,
		clock:    clock,
		logger:   logger,
	}
}

func (s *documentsServiceImpl) with(sessionID string, fn func(user models.User, local *DocumentsLocal) error) error {
	return session.WithScreen(s.sessions, sessionID, views.ScreenDocuments, fn)
}

// replace swaps the local list and republishes it as the shared collection.
func (s *documentsServiceImpl) replace(local *DocumentsLocal, docs []models.Document) {
	local.Documents = docs
	s.store.ReplaceDocuments(docs)
}

// FilterByCategory keeps the documents of type category; "all" or "" keeps
// everything.
func FilterByCategory(docs []models.Document, category string) []models.Document {
	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if category == "" || category == CategoryAll || string(d.Type) == category {
			out = append(out, d)
		}
	}
	return out
}

func (s *documentsServiceImpl) List(sessionID, category string) (*DocumentsPage, error) {
	var page *DocumentsPage
	err := s.with(sessionID, func(_ models.User, local *DocumentsLocal) error {
		if category != "" {
			local.Category = category
		}
		page = &DocumentsPage{
			Documents:  FilterByCategory(local.Documents, local.Category),
			Category:   local.Category,
			Categories: DocumentCategories(),
			Counts:     models.CountDocuments(local.Documents),
			Draft:      local.Draft,
		}
		return nil
	})
	return page, err
}

func findDocument(docs []models.Document, id string) (int, error) {
	for i, d := range docs {
		if d.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", apperrors.ErrDocumentNotFound, id)
}

func (s *documentsServiceImpl) Get(sessionID, id string) (*models.Document, error) {
	var found models.Document
	err := s.with(sessionID, func(_ models.User, local *DocumentsLocal) error {
		i, err := findDocument(local.Documents, id)
		if err != nil {
			return err
		}
		found = local.Documents[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// Upload validates and stores the file, then returns the draft the add
// form is prefilled with. Nothing is added until Create.
func (s *documentsServiceImpl) Upload(sessionID string, fh *multipart.FileHeader) (*models.Document, error) {
	var draft models.Document
	err := s.with(sessionID, func(user models.User, local *DocumentsLocal) error {
		if _, err := s.policy.Check(fh); err != nil {
			return err
		}
		url, err := s.files.SaveFileWithPath(fh, "documents/"+user.ID)
		if err != nil {
			return fmt.Errorf("failed to store upload: %w: %w", apperrors.ErrStorage, err)
		}
		if local.Draft != nil && local.Draft.FileURL != "" {
			s.discard(local.Draft.FileURL)
		}

		draft = models.Document{
			Name:        strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename)),
			Type:        models.DocumentTypeImmigration,
			Status:      models.DocumentStatusValid,
			UploadDate:  helpers.ISODate(s.clock.Now()),
			StudentID:   user.StudentID,
			StudentName: user.Name,
			FileURL:     url,
		}
		local.Draft = &draft
		s.logger.Info().Str("userID", user.ID).Str("file", fh.Filename).Str("url", url).Msg("Document uploaded")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *documentsServiceImpl) discard(url string) {
	if err := s.files.DeleteFile(url); err != nil {
		s.logger.Warn().Err(err).Str("url", url).Msg("Failed to remove stored file")
	}
}

// Create adds a document built from the pending draft, if any, overlaid
// with the form fields. The owner is always the current user.
func (s *documentsServiceImpl) Create(sessionID string, req dto.DocumentRequest) (*models.Document, error) {
	var created models.Document
	err := s.with(sessionID, func(user models.User, local *DocumentsLocal) error {
		if err := validation.NewStringValidation(req.Name).WithMessage("Please enter a document name.").Err(); err != nil {
			return err
		}

		now := s.clock.Now()
		created = models.Document{
			Type:       models.DocumentTypeImmigration,
			Status:     models.DocumentStatusValid,
			UploadDate: helpers.ISODate(now),
		}
		if local.Draft != nil {
			created = *local.Draft
		}
		created.Name = strings.TrimSpace(req.Name)
		if req.Type != "" {
			created.Type = req.Type
		}
		if req.Status != "" {
			created.Status = req.Status
		}
		if req.UploadDate != "" {
			created.UploadDate = req.UploadDate
		}
		if req.ExpiryDate != "" {
			created.ExpiryDate = req.ExpiryDate
		}
		created.ID = helpers.NextTimestampID(now, helpers.IDSet(local.Documents, func(d models.Document) string { return d.ID }))
		created.StudentID = user.StudentID
		created.StudentName = user.Name

		next := make([]models.Document, 0, len(local.Documents)+1)
		next = append(append(next, local.Documents...), created)
		s.replace(local, next)
		local.Draft = nil
		s.logger.Info().Str("id", created.ID).Str("userID", user.ID).Msg("Document added")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *documentsServiceImpl) Delete(sessionID, id string, confirm bool) error {
	return s.with(sessionID, func(user models.User, local *DocumentsLocal) error {
		i, err := findDocument(local.Documents, id)
		if err != nil {
			return err
		}
		if !confirm {
			return apperrors.NewConfirmationError("Are you sure you want to delete this document?")
		}

		removed := local.Documents[i]
		next := make([]models.Document, 0, len(local.Documents)-1)
		next = append(append(next, local.Documents[:i]...), local.Documents[i+1:]...)
		s.replace(local, next)
		if removed.FileURL != "" {
			s.discard(removed.FileURL)
		}
		s.logger.Info().Str("id", id).Str("userID", user.ID).Msg("Document deleted")
		return nil
	})
}

// Download returns the notice shown for a download. Documents with a
// stored file also carry its URL.
func (s *documentsServiceImpl) Download(sessionID, id string) (string, *models.Document, error) {
	doc, err := s.Get(sessionID, id)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Downloading %s...", doc.Name), doc, nil
}
