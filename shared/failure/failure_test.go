package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"todoapp/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("todo not found")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
	}
	if f.Message != "todo not found" {
		t.Errorf("expected message to be 'todo not found', got %s", f.Message)
	}
}

func TestIsNotFound(t *testing.T) {
	if !failure.IsNotFound(failure.NotFound("missing")) {
		t.Error("expected IsNotFound to be true for NotFound failure")
	}

	if failure.IsNotFound(errors.New("connection refused")) {
		t.Error("expected IsNotFound to be false for plain error")
	}

	wrapped := fmt.Errorf("fetching todo: %w", failure.NotFound("missing"))
	if !failure.IsNotFound(wrapped) {
		t.Error("expected IsNotFound to unwrap wrapped failures")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure with code",
			input:    failure.BadRequestFromString("bad"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "conflict failure",
			input:    failure.Conflict("already exists"),
			expected: http.StatusConflict,
		},
		{
			name:     "plain error defaults to internal",
			input:    errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.input); code != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, code)
			}
		})
	}
}
