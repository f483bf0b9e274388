package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"todoapp/infras/otel/mocks"
	todoMocks "todoapp/internal/domains/todo/mocks"
	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/service"
	"todoapp/shared/failure"
	"todoapp/shared/timezone"
)

func sampleTodo(id string) model.Todo {
	now := timezone.Now()

	return model.Todo{
		ID:        id,
		Title:     "Test Todo",
		Priority:  model.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTodoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateTodoRequest{
				Title:    "Test Todo",
				Priority: model.PriorityMedium,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, id string, fields model.Fields) (model.Todo, error) {
						assert.NotEmpty(t, id, "service must generate the id")

						todo := sampleTodo(id)
						todo.Title = fields.Title
						todo.Priority = fields.Priority

						return todo, nil
					})
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateTodoRequest{
				Title: "Test Todo",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Todo{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, tt.req.Title, res.Title)
				assert.NotEmpty(t, res.CreatedAt, "create must echo the full record")
			}
		})
	}
}

func TestTodoService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), "test-id").
					Return(sampleTodo("test-id"), nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), "missing-id").
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "backend failure is not a 404",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), "test-id").
					Return(model.Todo{}, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, res.ID)
			}
		})
	}
}

func TestTodoService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return([]model.Todo{sampleTodo("id-1"), sampleTodo("id-2")}, nil)
			},
			wantLen: 2,
		},
		{
			name: "empty result",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return([]model.Todo{}, nil)
			},
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantLen, res.Total)
				assert.Len(t, res.Todos, tt.wantLen)
			}
		})
	}
}

func TestTodoService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	title := "Updated Title"

	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateTodoRequest{Title: &title},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), "test-id", model.Patch{Title: &title}).
					DoAndReturn(func(_ context.Context, id string, patch model.Patch) (model.Todo, error) {
						todo := sampleTodo(id)
						todo.Title = *patch.Title

						return todo, nil
					})
			},
		},
		{
			name: "empty patch is legal",
			req:  dto.UpdateTodoRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), "test-id", model.Patch{}).
					Return(sampleTodo("test-id"), nil)
			},
		},
		{
			name: "not found",
			req:  dto.UpdateTodoRequest{Title: &title},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), "test-id", gomock.Any()).
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			req:  dto.UpdateTodoRequest{Title: &title},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), "test-id", gomock.Any()).
					Return(model.Todo{}, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Update(context.Background(), tt.req, "test-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "test-id", res.ID)
			}
		})
	}
}

func TestTodoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), "test-id").
					Return(true, nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), "test-id").
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), "test-id").
					Return(false, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "test-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTodoService_HealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().HealthCheck(gomock.Any()).Return(true)
	assert.True(t, svc.HealthCheck(context.Background()))

	mockRepo.EXPECT().HealthCheck(gomock.Any()).Return(false)
	assert.False(t, svc.HealthCheck(context.Background()))
}
