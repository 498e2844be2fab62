package task

import (
	"context"
	"testing"

	"taskhive/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskRepo) ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *mockTaskRepo) ListByProjectPaginated(ctx context.Context, projectID int64, page, size int) ([]domain.Task, int64, error) {
	args := m.Called(ctx, projectID, page, size)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Task), args.Get(1).(int64), args.Error(2)
}

func (m *mockTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockProjectReader struct {
	mock.Mock
}

func (m *mockProjectReader) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func activeProject(id int64, memberUID string) *domain.Project {
	return &domain.Project{ID: id, Users: []domain.User{{UID: memberUID}}}
}

func TestService_Create_DefaultStatus(t *testing.T) {
	tasks := new(mockTaskRepo)
	projects := new(mockProjectReader)
	service := NewService(tasks, projects)

	projects.On("GetByID", mock.Anything, int64(1)).Return(activeProject(1, "u1"), nil)
	tasks.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := service.Create(context.Background(), "u1", 1, CreateRequest{Title: "Write docs"})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusTodo, created.Status)
	assert.Equal(t, int64(1), created.ProjectID)
}

func TestService_Create_ArchivedProject(t *testing.T) {
	tasks := new(mockTaskRepo)
	projects := new(mockProjectReader)
	service := NewService(tasks, projects)

	p := activeProject(1, "u1")
	p.IsArchived = true
	projects.On("GetByID", mock.Anything, int64(1)).Return(p, nil)

	_, err := service.Create(context.Background(), "u1", 1, CreateRequest{Title: "Write docs"})
	assert.ErrorIs(t, err, ErrProjectArchived)

	tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_NonMember(t *testing.T) {
	tasks := new(mockTaskRepo)
	projects := new(mockProjectReader)
	service := NewService(tasks, projects)

	projects.On("GetByID", mock.Anything, int64(1)).Return(activeProject(1, "owner"), nil)

	_, err := service.Create(context.Background(), "stranger", 1, CreateRequest{Title: "Write docs"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_GetByID_WrongProject(t *testing.T) {
	tasks := new(mockTaskRepo)
	projects := new(mockProjectReader)
	service := NewService(tasks, projects)

	projects.On("GetByID", mock.Anything, int64(1)).Return(activeProject(1, "u1"), nil)
	tasks.On("GetByID", mock.Anything, int64(5)).Return(&domain.Task{ID: 5, ProjectID: 2}, nil)

	// Task 5 belongs to project 2; asking for it under project 1 is
	// not found, not forbidden.
	_, err := service.GetByID(context.Background(), "u1", 1, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	tasks := new(mockTaskRepo)
	projects := new(mockProjectReader)
	service := NewService(tasks, projects)

	projects.On("GetByID", mock.Anything, int64(1)).Return(activeProject(1, "u1"), nil)
	tasks.On("GetByID", mock.Anything, int64(5)).Return(&domain.Task{ID: 5, ProjectID: 1, Status: domain.TaskStatusTodo}, nil)
	tasks.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := service.UpdateStatus(context.Background(), "u1", 1, 5, domain.TaskStatusDone)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusDone, updated.Status)
}

func TestService_UpdateStatus_Invalid(t *testing.T) {
	tasks := new(mockTaskRepo)
	projects := new(mockProjectReader)
	service := NewService(tasks, projects)

	projects.On("GetByID", mock.Anything, int64(1)).Return(activeProject(1, "u1"), nil)

	_, err := service.UpdateStatus(context.Background(), "u1", 1, 5, "SHIPPED")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_ArchivedProject(t *testing.T) {
	tasks := new(mockTaskRepo)
	projects := new(mockProjectReader)
	service := NewService(tasks, projects)

	p := activeProject(1, "u1")
	p.IsArchived = true
	projects.On("GetByID", mock.Anything, int64(1)).Return(p, nil)

	_, err := service.UpdateStatus(context.Background(), "u1", 1, 5, domain.TaskStatusDone)
	assert.ErrorIs(t, err, ErrProjectArchived)

	tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_ListPaginated_ClampsPageSize(t *testing.T) {
	tasks := new(mockTaskRepo)
	projects := new(mockProjectReader)
	service := NewService(tasks, projects)

	projects.On("GetByID", mock.Anything, int64(1)).Return(activeProject(1, "u1"), nil)
	tasks.On("ListByProjectPaginated", mock.Anything, int64(1), 0, 20).
		Return([]domain.Task{}, int64(0), nil)

	page, err := service.ListPaginated(context.Background(), "u1", 1, -3, 10000)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 20, page.Size)

	tasks.AssertExpectations(t)
}

func TestService_Delete_MissingTask(t *testing.T) {
	tasks := new(mockTaskRepo)
	projects := new(mockProjectReader)
	service := NewService(tasks, projects)

	projects.On("GetByID", mock.Anything, int64(1)).Return(activeProject(1, "u1"), nil)
	tasks.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	err := service.Delete(context.Background(), "u1", 1, 5)
	assert.ErrorIs(t, err, ErrNotFound)

	tasks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_ArchivedProject(t *testing.T) {
	tasks := new(mockTaskRepo)
	projects := new(mockProjectReader)
	service := NewService(tasks, projects)

	p := activeProject(1, "u1")
	p.IsArchived = true
	projects.On("GetByID", mock.Anything, int64(1)).Return(p, nil)

	err := service.Delete(context.Background(), "u1", 1, 5)
	assert.ErrorIs(t, err, ErrProjectArchived)

	tasks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
