package services

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/filestorage"
)

func newDocuments(t *testing.T) (*fixture, DocumentsService, *memFiles, string) {
	t.Helper()
	f := newFixture(t)
	files := &memFiles{}
	svc := NewDocumentsService(f.store, f.sessions, f.mounter, files, filestorage.DocumentPolicy(10), f.clock, zerolog.Nop())
	sid := f.open(t, models.RoleStudent, "documents")
	return f, svc, files, sid
}

func TestDocuments_MountPublishesSeedList(t *testing.T) {
	f, svc, _, sid := newDocuments(t)

	page, err := svc.List(sid, "")
	require.NoError(t, err)
	assert.Len(t, page.Documents, 6)
	assert.Equal(t, models.DocumentStats{Total: 6, Valid: 3, Expiring: 2, Expired: 1}, page.Counts)
	assert.Len(t, page.Categories, 6)
	assert.Equal(t, page.Documents, f.store.Snapshot().Documents)
	for _, d := range page.Documents {
		assert.Equal(t, "STU2024001", d.StudentID)
		assert.Equal(t, "Maria Gonzalez", d.StudentName)
	}
}

func TestDocuments_CategoryFilterIsRemembered(t *testing.T) {
	_, svc, _, sid := newDocuments(t)

	page, err := svc.List(sid, "Immigration")
	require.NoError(t, err)
	assert.Len(t, page.Documents, 2)

	page, err = svc.List(sid, "")
	require.NoError(t, err)
	assert.Equal(t, "Immigration", page.Category)
	assert.Len(t, page.Documents, 2)
	assert.Equal(t, 6, page.Counts.Total)
}

func TestDocuments_UploadRejectsWrongTypeAndSize(t *testing.T) {
	_, svc, files, sid := newDocuments(t)

	_, err := svc.Upload(sid, fileHeader(t, "notes.txt", []byte("plain text, not a document")))
	require.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
	assert.Equal(t, "Please upload only PDF, JPG, or PNG files.", apperrors.UserMessage(err))

	big := append(append([]byte{}, pdfBytes...), bytes.Repeat([]byte("0"), 10*1024*1024)...)
	_, err = svc.Upload(sid, fileHeader(t, "scan.pdf", big))
	require.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	assert.Equal(t, "File size must be less than 10MB.", apperrors.UserMessage(err))
	assert.Empty(t, files.saved)
}

func TestDocuments_UploadStoreFailure(t *testing.T) {
	_, svc, files, sid := newDocuments(t)
	files.saveErr = errors.New("disk full")

	_, err := svc.Upload(sid, fileHeader(t, "visa.pdf", pdfBytes))
	require.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorContains(t, err, "disk full")

	page, err := svc.List(sid, "")
	require.NoError(t, err)
	assert.Nil(t, page.Draft)
}

func TestDocuments_UploadThenCreate(t *testing.T) {
	f, svc, files, sid := newDocuments(t)

	draft, err := svc.Upload(sid, fileHeader(t, "visa.scan.pdf", pdfBytes))
	require.NoError(t, err)
	assert.Equal(t, "visa.scan", draft.Name)
	assert.Equal(t, models.DocumentTypeImmigration, draft.Type)
	assert.Equal(t, models.DocumentStatusValid, draft.Status)
	assert.Equal(t, "2024-02-20", draft.UploadDate)
	require.Len(t, files.saved, 1)

	created, err := svc.Create(sid, dto.DocumentRequest{Name: "Visa scan", ExpiryDate: "2025-01-01"})
	require.NoError(t, err)
	assert.Equal(t, files.saved[0], created.FileURL)
	assert.Equal(t, "STU2024001", created.StudentID)
	assert.Equal(t, "2025-01-01", created.ExpiryDate)

	shared := f.store.Snapshot().Documents
	require.Len(t, shared, 7)
	assert.Equal(t, created.ID, shared[6].ID)

	page, err := svc.List(sid, "all")
	require.NoError(t, err)
	assert.Nil(t, page.Draft)
}

func TestDocuments_CreateRequiresName(t *testing.T) {
	f, svc, _, sid := newDocuments(t)

	_, err := svc.Create(sid, dto.DocumentRequest{Name: "   "})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Please enter a document name.", apperrors.UserMessage(err))
	assert.Len(t, f.store.Snapshot().Documents, 6)
}

func TestDocuments_DeleteNeedsConfirmation(t *testing.T) {
	f, svc, _, sid := newDocuments(t)

	err := svc.Delete(sid, "2", false)
	require.ErrorIs(t, err, apperrors.ErrConfirmationRequired)
	assert.Len(t, f.store.Snapshot().Documents, 6)

	require.NoError(t, svc.Delete(sid, "2", true))
	docs := f.store.Snapshot().Documents
	require.Len(t, docs, 5)
	for _, d := range docs {
		assert.NotEqual(t, "2", d.ID)
	}

	assert.ErrorIs(t, svc.Delete(sid, "2", true), apperrors.ErrDocumentNotFound)
}

func TestDocuments_Download(t *testing.T) {
	_, svc, _, sid := newDocuments(t)

	msg, doc, err := svc.Download(sid, "4")
	require.NoError(t, err)
	assert.Equal(t, "Downloading Passport...", msg)
	assert.Equal(t, "Passport", doc.Name)
}

func TestDocuments_RemountStartsOver(t *testing.T) {
	f, svc, _, sid := newDocuments(t)
	require.NoError(t, svc.Delete(sid, "1", true))

	f.navigate(t, sid, "dashboard")
	_, err := svc.List(sid, "")
	assert.ErrorIs(t, err, apperrors.ErrScreenNotMounted)
	assert.Len(t, f.store.Snapshot().Documents, 5)

	f.navigate(t, sid, "documents")
	page, err := svc.List(sid, "")
	require.NoError(t, err)
	assert.Len(t, page.Documents, 6)
	assert.Len(t, f.store.Snapshot().Documents, 6)
}
