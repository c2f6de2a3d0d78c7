package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"file-storage-server/internal/handler"
	"file-storage-server/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== MOCKS =====

type stubTokens struct{}

func (stubTokens) Issue(username string) (string, error) { return "token-" + username, nil }

func (stubTokens) Validate(_ context.Context, token string) (string, error) {
	if username, ok := strings.CutPrefix(token, "token-"); ok {
		return username, nil
	}
	return "", model.ErrInvalidToken
}

type MockFileService struct{ mock.Mock }

func (m *MockFileService) Upload(ctx context.Context, folderID *string, filename string, body io.Reader, size int64, contentType, owner string) (string, error) {
	args := m.Called(ctx, folderID, filename, body, size, contentType, owner)
	return args.String(0), args.Error(1)
}

func (m *MockFileService) List(ctx context.Context, owner string, folderID *string) ([]model.File, error) {
	args := m.Called(ctx, owner, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.File), args.Error(1)
}

func (m *MockFileService) Download(ctx context.Context, key, owner string) (*model.DownloadedFile, error) {
	args := m.Called(ctx, key, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DownloadedFile), args.Error(1)
}

func (m *MockFileService) Delete(ctx context.Context, key, owner string) error {
	return m.Called(ctx, key, owner).Error(0)
}

type MockFolderService struct{ mock.Mock }

func (m *MockFolderService) Create(ctx context.Context, name, owner string) (string, error) {
	args := m.Called(ctx, name, owner)
	return args.String(0), args.Error(1)
}

func (m *MockFolderService) List(ctx context.Context, owner string) ([]model.Folder, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderService) Delete(ctx context.Context, folderID, owner string) error {
	return m.Called(ctx, folderID, owner).Error(0)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Register(ctx context.Context, username, password, email, fullName string) (*model.User, error) {
	args := m.Called(ctx, username, password, email, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetCurrentUser(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockAuthenticationService struct{ mock.Mock }

func (m *MockAuthenticationService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthenticationService) Login(ctx context.Context, username, password string) (*model.AccessToken, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccessToken), args.Error(1)
}

// ===== HELPERS =====

type fixture struct {
	router  *chi.Mux
	files   *MockFileService
	folders *MockFolderService
	users   *MockUserService
	auth    *MockAuthenticationService
}

func newFixture() *fixture {
	f := &fixture{
		router:  chi.NewRouter(),
		files:   new(MockFileService),
		folders: new(MockFolderService),
		users:   new(MockUserService),
		auth:    new(MockAuthenticationService),
	}
	handler.SetupRoutes(f.router, handler.Handlers{
		Auth:   handler.NewAuthenticationHandler(f.auth),
		User:   handler.NewUserHandler(f.users),
		File:   handler.NewFileHandler(f.files, 1),
		Folder: handler.NewFolderHandler(f.folders),
	}, stubTokens{})
	return f
}

func (f *fixture) do(req *http.Request, username string) *httptest.ResponseRecorder {
	if username != "" {
		req.Header.Set("Authorization", "Bearer token-"+username)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// ===== HEALTH =====

func TestHealthCheck(t *testing.T) {
	f := newFixture()
	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/healthcheck", nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decodeBody(t, rec)["message"])
}

// ===== FILES =====

func TestSaveFileToFolder(t *testing.T) {
	f := newFixture()
	body, contentType := multipartBody(t, "report.pdf", []byte("hello"))
	folderID := "7f2c1f0e-2d8c-4d6e-9f3a-0b1c2d3e4f50"

	f.files.On("Upload", mock.Anything, &folderID, "report.pdf", mock.Anything, int64(5), "application/octet-stream", "alice").
		Return("k_report.pdf", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/file/"+folderID+"/save", body)
	req.Header.Set("Content-Type", contentType)
	rec := f.do(req, "alice")

	assert.Equal(t, http.StatusCreated, rec.Code)
	response := decodeBody(t, rec)
	assert.Equal(t, "k_report.pdf", response["key"])
	assert.NotEmpty(t, response["message"])
	f.files.AssertExpectations(t)
}

func TestSaveFileToFolder_RequiresAuth(t *testing.T) {
	f := newFixture()
	body, contentType := multipartBody(t, "report.pdf", []byte("hello"))

	req := httptest.NewRequest(http.MethodPost, "/api/file/some-folder/save", body)
	req.Header.Set("Content-Type", contentType)

	assert.Equal(t, http.StatusUnauthorized, f.do(req, "").Code)
	f.files.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveFile_Anonymous(t *testing.T) {
	f := newFixture()
	body, contentType := multipartBody(t, "a.txt", []byte("x"))

	f.files.On("Upload", mock.Anything, (*string)(nil), "a.txt", mock.Anything, int64(1), mock.Anything, "").
		Return("k_a.txt", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/file/save", body)
	req.Header.Set("Content-Type", contentType)

	assert.Equal(t, http.StatusCreated, f.do(req, "").Code)
	f.files.AssertExpectations(t)
}

func TestSaveFile_InvalidTokenRejected(t *testing.T) {
	f := newFixture()
	body, contentType := multipartBody(t, "a.txt", []byte("x"))

	req := httptest.NewRequest(http.MethodPost, "/api/file/save", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, f.do(req, "").Code)
}

func TestSaveFile_Errors(t *testing.T) {
	f := newFixture()

	noFile := httptest.NewRequest(http.MethodPost, "/api/file/save", strings.NewReader("not multipart"))
	assert.Equal(t, http.StatusBadRequest, f.do(noFile, "alice").Code)

	body, contentType := multipartBody(t, "big.bin", bytes.Repeat([]byte("a"), 2<<20))
	tooBig := httptest.NewRequest(http.MethodPost, "/api/file/save", body)
	tooBig.Header.Set("Content-Type", contentType)
	assert.Equal(t, http.StatusBadRequest, f.do(tooBig, "alice").Code)

	f.files.On("Upload", mock.Anything, (*string)(nil), "a.txt", mock.Anything, int64(1), mock.Anything, "alice").
		Return("", model.ErrOrphanInconsistency)
	body, contentType = multipartBody(t, "a.txt", []byte("x"))
	orphan := httptest.NewRequest(http.MethodPost, "/api/file/save", body)
	orphan.Header.Set("Content-Type", contentType)

	rec := f.do(orphan, "alice")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "orphan")
}

func TestListFiles(t *testing.T) {
	f := newFixture()
	folderID := "f-1"
	f.files.On("List", mock.Anything, "alice", (*string)(nil)).
		Return([]model.File{{Name: "a.txt", StorageKey: "k_a.txt", Owner: "alice"}}, nil)
	f.files.On("List", mock.Anything, "alice", &folderID).Return([]model.File{}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/file/all", nil), "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	var files []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &files))
	require.Len(t, files, 1)
	assert.Equal(t, "k_a.txt", files[0]["key"])

	rec = f.do(httptest.NewRequest(http.MethodGet, "/api/file/folder/f-1/all", nil), "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListFiles_StoreError(t *testing.T) {
	f := newFixture()
	f.files.On("List", mock.Anything, "alice", (*string)(nil)).Return(nil, model.ErrStore)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/file/all", nil), "alice")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDownloadFile(t *testing.T) {
	f := newFixture()
	tmp := filepath.Join(t.TempDir(), "download")
	require.NoError(t, os.WriteFile(tmp, []byte("%PDF"), 0o600))

	f.files.On("Download", mock.Anything, "k_report.pdf", "alice").Return(&model.DownloadedFile{
		File: &model.File{Name: "report.pdf", ContentType: "application/pdf"},
		Path: tmp,
	}, nil)
	f.files.On("Download", mock.Anything, "k_report.pdf", "bob").Return(nil, model.ErrNotFound)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/file/download/k_report.pdf", nil), "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF", rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=report.pdf", rec.Header().Get("Content-Disposition"))

	_, err := os.Stat(tmp)
	assert.True(t, os.IsNotExist(err), "временный файл должен удаляться после отправки")

	rec = f.do(httptest.NewRequest(http.MethodGet, "/api/file/download/k_report.pdf", nil), "bob")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type brokenConnWriter struct {
	header http.Header
	status int
}

func (w *brokenConnWriter) Header() http.Header {
	if w.header == nil {
		w.header = http.Header{}
	}
	return w.header
}

func (w *brokenConnWriter) WriteHeader(status int) { w.status = status }

func (w *brokenConnWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestDownloadFile_RemovesTempFileWhenSendFails(t *testing.T) {
	f := newFixture()
	tmp := filepath.Join(t.TempDir(), "download")
	require.NoError(t, os.WriteFile(tmp, []byte("%PDF"), 0o600))

	f.files.On("Download", mock.Anything, "k_report.pdf", "alice").Return(&model.DownloadedFile{
		File: &model.File{Name: "report.pdf", ContentType: "application/pdf"},
		Path: tmp,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/file/download/k_report.pdf", nil)
	req.Header.Set("Authorization", "Bearer token-alice")
	w := &brokenConnWriter{}
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.status)
	_, err := os.Stat(tmp)
	assert.True(t, os.IsNotExist(err), "временный файл должен удаляться и при ошибке отправки")
	f.files.AssertExpectations(t)
}

func TestDeleteFile(t *testing.T) {
	f := newFixture()
	f.files.On("Delete", mock.Anything, "k_a.txt", "alice").Return(nil)
	f.files.On("Delete", mock.Anything, "k_a.txt", "bob").Return(model.ErrNotFound)
	f.files.On("Delete", mock.Anything, "k_b.txt", "alice").Return(model.ErrStore)

	assert.Equal(t, http.StatusOK, f.do(httptest.NewRequest(http.MethodDelete, "/api/file/delete/k_a.txt", nil), "alice").Code)
	assert.Equal(t, http.StatusNotFound, f.do(httptest.NewRequest(http.MethodDelete, "/api/file/delete/k_a.txt", nil), "bob").Code)
	assert.Equal(t, http.StatusInternalServerError, f.do(httptest.NewRequest(http.MethodDelete, "/api/file/delete/k_b.txt", nil), "alice").Code)
}

// ===== FOLDERS =====

func TestCreateFolder(t *testing.T) {
	f := newFixture()
	f.folders.On("Create", mock.Anything, "reports", "alice").Return("f-1", nil)
	f.folders.On("Create", mock.Anything, "", "alice").Return("", model.ErrValidation)

	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/folder/create?name=reports", nil), "alice")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "f-1", decodeBody(t, rec)["folderId"])

	rec = f.do(httptest.NewRequest(http.MethodPost, "/api/folder/create", nil), "alice")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListFolders(t *testing.T) {
	f := newFixture()
	f.folders.On("List", mock.Anything, "alice").Return([]model.Folder{
		{FolderID: "f-1", Name: "reports", Owner: "alice", CreatedAt: time.Now()},
	}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/folder/all", nil), "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"folder_id":"f-1"`)

	assert.Equal(t, http.StatusUnauthorized, f.do(httptest.NewRequest(http.MethodGet, "/api/folder/all", nil), "").Code)
}

func TestDeleteFolder(t *testing.T) {
	f := newFixture()
	f.folders.On("Delete", mock.Anything, "f-1", "alice").Return(nil)
	f.folders.On("Delete", mock.Anything, "f-2", "alice").Return(model.ErrStore)

	assert.Equal(t, http.StatusOK, f.do(httptest.NewRequest(http.MethodDelete, "/api/folder/delete/f-1", nil), "alice").Code)
	assert.Equal(t, http.StatusInternalServerError, f.do(httptest.NewRequest(http.MethodDelete, "/api/folder/delete/f-2", nil), "alice").Code)
}

// ===== USERS =====

func TestRegisterUser(t *testing.T) {
	f := newFixture()
	f.users.On("Register", mock.Anything, "Alice", "P@ssw0rd123", "alice@example.com", "").
		Return(&model.User{Username: "alice"}, nil)
	f.users.On("Register", mock.Anything, "bob", "P@ssw0rd123", "", "").
		Return(nil, model.ErrConflict)

	rec := f.do(httptest.NewRequest(http.MethodPost, "/user/register",
		strings.NewReader(`{"username":"Alice","password":"P@ssw0rd123","email":"alice@example.com"}`)), "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", decodeBody(t, rec)["status"])

	rec = f.do(httptest.NewRequest(http.MethodPost, "/user/register",
		strings.NewReader(`{"username":"bob","password":"P@ssw0rd123"}`)), "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(httptest.NewRequest(http.MethodPost, "/user/register",
		strings.NewReader(`{"username":"carol","password":"short"}`)), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(httptest.NewRequest(http.MethodPost, "/user/register", strings.NewReader(`{`)), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	f := newFixture()
	f.auth.On("Login", mock.Anything, "alice", "P@ssw0rd123").
		Return(&model.AccessToken{AccessToken: "jwt", TokenType: "Bearer"}, nil)
	f.auth.On("Login", mock.Anything, "alice", "wrong").
		Return(nil, model.ErrAuth)

	form := url.Values{"username": {"alice"}, "password": {"P@ssw0rd123"}}
	req := httptest.NewRequest(http.MethodPost, "/user/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := f.do(req, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "jwt", body["access_token"])
	assert.Equal(t, "Bearer", body["token_type"])

	form.Set("password", "wrong")
	req = httptest.NewRequest(http.MethodPost, "/user/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	assert.Equal(t, http.StatusUnauthorized, f.do(req, "").Code)

	req = httptest.NewRequest(http.MethodPost, "/user/token", strings.NewReader("username=alice"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	assert.Equal(t, http.StatusBadRequest, f.do(req, "").Code)
}

func TestGetCurrentUser(t *testing.T) {
	f := newFixture()
	f.users.On("GetCurrentUser", mock.Anything, "alice").Return(&model.User{Username: "alice", PasswordHash: "secret-hash"}, nil)
	f.users.On("GetCurrentUser", mock.Anything, "carol").Return(nil, model.ErrInactiveUser)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/user/users/me", nil), "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decodeBody(t, rec)["username"])
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	assert.Equal(t, http.StatusBadRequest, f.do(httptest.NewRequest(http.MethodGet, "/user/users/me", nil), "carol").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(httptest.NewRequest(http.MethodGet, "/user/users/me", nil), "").Code)
}
