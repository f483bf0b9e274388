package todo_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "todoapp/infras/otel/mocks"
	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/model/dto"
	serviceMocks "todoapp/internal/domains/todo/service/mocks"
	"todoapp/internal/handlers/todo"
	"todoapp/shared/failure"
)

func newTestRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockTodo(ctrl)

	handler := todo.New(mockService, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService
}

func sampleResponse(id string) dto.TodoResponse {
	return dto.TodoResponse{
		ID:        id,
		Title:     "Test Todo",
		Priority:  model.PriorityMedium,
		CreatedAt: "2024-01-01T12:00:00Z",
		UpdatedAt: "2024-01-01T12:00:00Z",
	}
}

func TestHandler_CreateTodo(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(m *serviceMocks.MockTodo)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"title": "Test Todo"}`,
			setupMock: func(m *serviceMocks.MockTodo) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(sampleResponse("new-id"), nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing title",
			body:      `{"description": "no title"}`,
			setupMock: func(m *serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid priority",
			body:      `{"title": "x", "priority": "urgent"}`,
			setupMock: func(m *serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"title": "Test Todo"}`,
			setupMock: func(m *serviceMocks.MockTodo) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.TodoResponse{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newTestRouter(t)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/todos/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetTodos(t *testing.T) {
	router, mockService := newTestRouter(t)

	res := dto.GetTodosResponse{
		Todos: []dto.TodoResponse{sampleResponse("id-1"), sampleResponse("id-2")},
		Total: 2,
	}

	mockService.EXPECT().
		GetAll(gomock.Any()).
		Return(res, nil)

	req := httptest.NewRequest(http.MethodGet, "/todos/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.GetTodosResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Data.Total)
	assert.Equal(t, "id-1", body.Data.Todos[0].ID)
	assert.Equal(t, "id-2", body.Data.Todos[1].ID)
}

func TestHandler_GetTodoByID(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *serviceMocks.MockTodo)
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func(m *serviceMocks.MockTodo) {
				m.EXPECT().
					Get(gomock.Any(), "test-id").
					Return(sampleResponse("test-id"), nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not found",
			setupMock: func(m *serviceMocks.MockTodo) {
				m.EXPECT().
					Get(gomock.Any(), "test-id").
					Return(dto.TodoResponse{}, failure.NotFound("todo not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newTestRouter(t)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodGet, "/todos/test-id", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_UpdateTodo(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(m *serviceMocks.MockTodo)
		wantCode  int
	}{
		{
			name: "updated",
			body: `{"priority": "high"}`,
			setupMock: func(m *serviceMocks.MockTodo) {
				m.EXPECT().
					Update(gomock.Any(), gomock.Any(), "test-id").
					DoAndReturn(func(_ any, req dto.UpdateTodoRequest, id string) (dto.TodoResponse, error) {
						assert.Nil(t, req.Title, "omitted fields must stay unset")
						require.NotNil(t, req.Priority)
						assert.Equal(t, model.PriorityHigh, *req.Priority)

						res := sampleResponse(id)
						res.Priority = *req.Priority

						return res, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name: "empty patch accepted",
			body: `{}`,
			setupMock: func(m *serviceMocks.MockTodo) {
				m.EXPECT().
					Update(gomock.Any(), dto.UpdateTodoRequest{}, "test-id").
					Return(sampleResponse("test-id"), nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not found",
			body: `{"title": "x"}`,
			setupMock: func(m *serviceMocks.MockTodo) {
				m.EXPECT().
					Update(gomock.Any(), gomock.Any(), "test-id").
					Return(dto.TodoResponse{}, failure.NotFound("todo not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "invalid priority",
			body:      `{"priority": "urgent"}`,
			setupMock: func(m *serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newTestRouter(t)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPatch, "/todos/test-id", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_DeleteTodo(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *serviceMocks.MockTodo)
		wantCode  int
	}{
		{
			name: "deleted",
			setupMock: func(m *serviceMocks.MockTodo) {
				m.EXPECT().
					Delete(gomock.Any(), "test-id").
					Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "not found",
			setupMock: func(m *serviceMocks.MockTodo) {
				m.EXPECT().
					Delete(gomock.Any(), "test-id").
					Return(failure.NotFound("todo not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newTestRouter(t)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodDelete, "/todos/test-id", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusNoContent {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
