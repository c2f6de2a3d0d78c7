package service_test

import (
	"context"
	"file-storage-server/internal/model"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

type MockFileRepository struct{ mock.Mock }

func (m *MockFileRepository) Create(ctx context.Context, file *model.File) error {
	return m.Called(ctx, file).Error(0)
}

func (m *MockFileRepository) GetByKey(ctx context.Context, key, owner string) (*model.File, error) {
	args := m.Called(ctx, key, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) ListByOwner(ctx context.Context, owner string, folderID *string) ([]model.File, error) {
	args := m.Called(ctx, owner, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.File), args.Error(1)
}

func (m *MockFileRepository) DeleteByKey(ctx context.Context, key, owner string) error {
	return m.Called(ctx, key, owner).Error(0)
}

type MockFolderRepository struct{ mock.Mock }

func (m *MockFolderRepository) Create(ctx context.Context, folder *model.Folder) error {
	return m.Called(ctx, folder).Error(0)
}

func (m *MockFolderRepository) GetByFolderID(ctx context.Context, folderID, owner string) (*model.Folder, error) {
	args := m.Called(ctx, folderID, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListByOwner(ctx context.Context, owner string) ([]model.Folder, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderRepository) Delete(ctx context.Context, folderID, owner string) error {
	return m.Called(ctx, folderID, owner).Error(0)
}

type MockObjectStorage struct{ mock.Mock }

func (m *MockObjectStorage) Bucket() string { return "files" }

func (m *MockObjectStorage) PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, body, size, contentType).Error(0)
}

func (m *MockObjectStorage) GetObject(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockOrphanReporter struct{ mock.Mock }

func (m *MockOrphanReporter) Report(ctx context.Context, orphan model.Orphan) error {
	return m.Called(ctx, orphan).Error(0)
}

func (m *MockOrphanReporter) List(ctx context.Context, limit int64) ([]model.Orphan, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Orphan), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) Issue(username string) (string, error) {
	args := m.Called(username)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
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

// ===== IN-MEMORY STORES =====

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]model.User{}}
}

func (r *memoryUsers) CreateUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return model.ErrConflict
	}
	r.users[user.Username] = *user
	return nil
}

func (r *memoryUsers) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &user, nil
}

type memoryFiles struct {
	mu        sync.Mutex
	files     []model.File
	failNext  error
	failOnKey string
}

func (r *memoryFiles) Create(_ context.Context, file *model.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	r.files = append(r.files, *file)
	return nil
}

func (r *memoryFiles) GetByKey(_ context.Context, key, owner string) (*model.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, file := range r.files {
		if file.StorageKey == key && file.Owner == owner {
			return &file, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *memoryFiles) ListByOwner(_ context.Context, owner string, folderID *string) ([]model.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	files := []model.File{}
	for _, file := range r.files {
		if file.Owner != owner {
			continue
		}
		if folderID != nil && (file.FolderID == nil || *file.FolderID != *folderID) {
			continue
		}
		files = append(files, file)
	}
	return files, nil
}

func (r *memoryFiles) DeleteByKey(_ context.Context, key, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOnKey != "" && strings.HasSuffix(key, r.failOnKey) {
		return model.ErrStore
	}
	for i, file := range r.files {
		if file.StorageKey == key && file.Owner == owner {
			r.files = append(r.files[:i], r.files[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

type memoryFolders struct {
	mu      sync.Mutex
	folders map[string]model.Folder
}

func newMemoryFolders() *memoryFolders {
	return &memoryFolders{folders: map[string]model.Folder{}}
}

func (r *memoryFolders) Create(_ context.Context, folder *model.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.folders[folder.FolderID] = *folder
	return nil
}

func (r *memoryFolders) GetByFolderID(_ context.Context, folderID, owner string) (*model.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	folder, ok := r.folders[folderID]
	if !ok || folder.Owner != owner {
		return nil, model.ErrNotFound
	}
	return &folder, nil
}

func (r *memoryFolders) ListByOwner(_ context.Context, owner string) ([]model.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	folders := []model.Folder{}
	for _, folder := range r.folders {
		if folder.Owner == owner {
			folders = append(folders, folder)
		}
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	return folders, nil
}

func (r *memoryFolders) Delete(_ context.Context, folderID, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	folder, ok := r.folders[folderID]
	if !ok || folder.Owner != owner {
		return model.ErrNotFound
	}
	delete(r.folders, folderID)
	return nil
}

type recordingOrphans struct {
	mu      sync.Mutex
	orphans []model.Orphan
}

func (r *recordingOrphans) Report(_ context.Context, orphan model.Orphan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orphans = append(r.orphans, orphan)
	return nil
}

func (r *recordingOrphans) List(_ context.Context, _ int64) ([]model.Orphan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Orphan(nil), r.orphans...), nil
}
