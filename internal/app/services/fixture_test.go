package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/state"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/pkg/durable"
	"github.com/yigit/intlportal/internal/pkg/helpers"
	"github.com/yigit/intlportal/internal/seed"
)

var testNow = time.Date(2024, 2, 20, 14, 5, 9, 0, time.UTC)

type fixture struct {
	backend  *durable.MemoryBackend
	store    *state.Store
	mounter  *ScreenMounter
	sessions *session.Manager
	clock    helpers.Clock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := durable.NewMemoryBackend(nil)
	slice := durable.NewSlice(backend, "globalAnnouncements", seed.Announcements, zerolog.Nop())
	store := state.NewStore(context.Background(), seed.Students(), slice, zerolog.Nop())
	mounter := NewScreenMounter()
	clock := helpers.FixedClock{T: testNow}
	sessions := session.NewManager(views.MustNewRouter(views.DefaultTable()), mounter, clock, zerolog.Nop())
	return &fixture{backend: backend, store: store, mounter: mounter, sessions: sessions, clock: clock}
}

// open logs in as role and navigates to view.
func (f *fixture) open(t *testing.T, role models.Role, view string) string {
	t.Helper()
	user, ok := seed.DemoUser(role)
	require.True(t, ok)
	info, err := f.sessions.Login(context.Background(), user)
	require.NoError(t, err)
	if view != "" && view != string(views.ViewDashboard) {
		_, err = f.sessions.Navigate(context.Background(), info.ID, view)
		require.NoError(t, err)
	}
	return info.ID
}

func (f *fixture) navigate(t *testing.T, sessionID, view string) {
	t.Helper()
	_, err := f.sessions.Navigate(context.Background(), sessionID, view)
	require.NoError(t, err)
}

// memFiles is an in-memory filestorage.FileStorage.
type memFiles struct {
	mu      sync.Mutex
	saved   []string
	deleted []string
	saveErr error
}

func (m *memFiles) SaveFileWithPath(fh *multipart.FileHeader, subPath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return "", m.saveErr
	}
	url := "/uploads/" + subPath + "/" + fh.Filename
	m.saved = append(m.saved, url)
	return url, nil
}

func (m *memFiles) DeleteFile(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, url)
	return nil
}

// fileHeader builds a multipart file header the way a request parser does.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00\x90wS\xde")
	gifBytes = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\xff\xff\xff\x00\x00\x00!\xf9\x04\x01\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")
)
