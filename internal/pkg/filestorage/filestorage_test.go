package filestorage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/pkg/apperrors"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	pdfHeader = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")
	gifHeader = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
)

// fileHeader builds a real multipart.FileHeader by parsing a form.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestDocumentPolicy(t *testing.T) {
	policy := DocumentPolicy(10)

	mime, err := policy.Check(fileHeader(t, "visa.pdf", pdfHeader))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mime)

	_, err = policy.Check(fileHeader(t, "photo.png", pngHeader))
	assert.NoError(t, err)

	// Renaming a GIF does not get it past the content check
	_, err = policy.Check(fileHeader(t, "fake.pdf", gifHeader))
	assert.True(t, errors.Is(err, apperrors.ErrUnsupportedFileType))
	assert.Equal(t, "Please upload only PDF, JPG, or PNG files.", apperrors.UserMessage(err))
}

func TestPolicy_SizeLimit(t *testing.T) {
	policy := PicturePolicy(5)
	policy.MaxBytes = int64(len(gifHeader) - 1)

	_, err := policy.Check(fileHeader(t, "me.gif", gifHeader))
	assert.True(t, errors.Is(err, apperrors.ErrFileTooLarge))
	assert.Equal(t, "File size must be less than 5MB.", apperrors.UserMessage(err))

	_, err = PicturePolicy(5).Check(fileHeader(t, "me.gif", gifHeader))
	assert.NoError(t, err)

	_, err = PicturePolicy(5).Check(fileHeader(t, "scan.pdf", pdfHeader))
	assert.Equal(t, "Please upload only JPG, PNG, or GIF files.", apperrors.UserMessage(err))
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	base := t.TempDir()
	ls, err := NewLocalStorage(base, "http://localhost:8080/uploads/", zerolog.Nop())
	require.NoError(t, err)

	url, err := ls.SaveFileWithPath(fileHeader(t, "Visa.PDF", pdfHeader), "documents/STU2024001")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/documents/STU2024001/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	rel := strings.TrimPrefix(url, "http://localhost:8080/uploads/")
	saved := filepath.Join(base, filepath.FromSlash(rel))
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, pdfHeader, data)

	require.NoError(t, ls.DeleteFile(url))
	_, err = os.Stat(saved)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, ls.DeleteFile(url))
}

func TestLocalStorage_SubPathCannotEscape(t *testing.T) {
	base := t.TempDir()
	ls, err := NewLocalStorage(base, "/uploads", zerolog.Nop())
	require.NoError(t, err)

	url, err := ls.SaveFileWithPath(fileHeader(t, "a.png", pngHeader), "../../etc")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/etc/"))
	_, err = os.Stat(filepath.Join(base, "etc"))
	assert.NoError(t, err)
}
