package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/config"
)

type app struct {
	router *gin.Engine
}

func newApp(t *testing.T) *app {
	t.Helper()
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SERVER_MODE", "production")
	t.Setenv("STORAGE_DRIVER", config.StorageDriverMemory)
	t.Setenv("STORAGE_UPLOAD_DIR", t.TempDir())
	t.Setenv("SESSION_LOGIN_DELAY", "0s")
	t.Setenv("SESSION_DEMO_LOGIN_DELAY", "0s")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	storage, err := SetupStorage(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(storage.Close)

	deps, err := BuildDependencies(ctx, cfg, storage.Backend, zerolog.Nop())
	require.NoError(t, err)
	StartWorkers(ctx, deps)

	router, err := SetupRouter(cfg, deps, zerolog.Nop())
	require.NoError(t, err)
	return &app{router: router}
}

func (a *app) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *app) demoLogin(t *testing.T, role string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/v1/auth/demo/"+role, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data dto.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

func TestPingAndNoRoute(t *testing.T) {
	a := newApp(t)

	assert.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/ping", "", nil).Code)

	w := a.do(t, http.MethodGet, "/api/v1/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, errorCode(t, w))
}

func TestStudentNavigatesBetweenScreens(t *testing.T) {
	a := newApp(t)
	token := a.demoLogin(t, "student")

	w := a.do(t, http.MethodGet, "/api/v1/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "StudentDashboard", decodeData(t, w)["screen"])

	w = a.do(t, http.MethodGet, "/api/v1/profile", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.ErrorCodeScreenNotMounted, errorCode(t, w))

	w = a.do(t, http.MethodPut, "/api/v1/session/view", token, dto.NavigateRequest{View: "profile"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Profile", decodeData(t, w)["screen"])

	assert.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/v1/profile", token, nil).Code)
	assert.Equal(t, http.StatusForbidden, a.do(t, http.MethodGet, "/api/v1/students", token, nil).Code)
}

func TestAcademicAdminAnnouncements(t *testing.T) {
	a := newApp(t)
	token := a.demoLogin(t, "academic_admin")

	w := a.do(t, http.MethodPost, "/api/v1/announcements", token, dto.AnnouncementRequest{
		Title:   "Library closed",
		Message: "The library is closed on Friday.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, _ := decodeData(t, w)["id"].(string)
	require.NotEmpty(t, id)

	w = a.do(t, http.MethodDelete, "/api/v1/announcements/"+id, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeConfirmationRequired, errorCode(t, w))

	w = a.do(t, http.MethodDelete, "/api/v1/announcements/"+id+"?confirm=true", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	intl := a.demoLogin(t, "international_admin")
	w = a.do(t, http.MethodPost, "/api/v1/announcements", intl, dto.AnnouncementRequest{Title: "x", Message: "y"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogoutClosesSession(t *testing.T) {
	a := newApp(t)
	token := a.demoLogin(t, "international_admin")

	assert.Equal(t, http.StatusOK, a.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, a.do(t, http.MethodGet, "/api/v1/session", token, nil).Code)
}

func TestHTMLPages(t *testing.T) {
	a := newApp(t)

	w := a.do(t, http.MethodGet, "/app/dashboard", "", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = a.do(t, http.MethodGet, "/login", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Demo accounts")

	w = a.do(t, http.MethodPost, "/login/demo/student", "", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/app/dashboard", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/app/profile", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Maria Gonzalez")
	assert.Contains(t, body, `data-screen="Profile"`)
}
