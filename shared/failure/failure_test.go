package failure_test

import (
	"errors"
	"medibook/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Kind:    failure.KindValidation,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		kind    string
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			kind:    failure.KindForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "ResourceRestrictedError",
			failure: failure.ResourceRestrictedError,
			code:    http.StatusForbidden,
			kind:    failure.KindForbidden,
			message: "You don't have permission to access this resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, tt.failure.Kind)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
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
			expected: &failure.Failure{Code: http.StatusBadRequest, Kind: failure.KindValidation, Message: "validation failed"},
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

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Kind != expectedF.Kind || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestSlotUnavailable(t *testing.T) {
	result := failure.SlotUnavailable()

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusConflict {
		t.Errorf("expected code to be %d, got %d", http.StatusConflict, f.Code)
	}

	if f.Kind != failure.KindSlotUnavailable {
		t.Errorf("expected kind to be %s, got %s", failure.KindSlotUnavailable, f.Kind)
	}

	if f.Message != "Selected slot is not available" {
		t.Errorf("unexpected message: %s", f.Message)
	}
}

func TestInvalidTransition(t *testing.T) {
	result := failure.InvalidTransition("cancelled", "confirmed")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}

	if f.Kind != failure.KindInvalidStateTransition {
		t.Errorf("expected kind to be %s, got %s", failure.KindInvalidStateTransition, f.Kind)
	}

	if f.Message != `invalid state transition from "cancelled" to "confirmed"` {
		t.Errorf("unexpected message: %s", f.Message)
	}
}

func TestTokenSpaceExhausted(t *testing.T) {
	result := failure.TokenSpaceExhausted(25)

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, f.Code)
	}

	if f.Kind != failure.KindTokenSpaceExhausted {
		t.Errorf("expected kind to be %s, got %s", failure.KindTokenSpaceExhausted, f.Kind)
	}
}

func TestExternalService(t *testing.T) {
	result := failure.ExternalService("payment signature mismatch")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusBadGateway {
		t.Errorf("expected code to be %d, got %d", http.StatusBadGateway, f.Code)
	}

	if f.Kind != failure.KindExternalService {
		t.Errorf("expected kind to be %s, got %s", failure.KindExternalService, f.Kind)
	}
}

func TestUnauthorized(t *testing.T) {
	result := failure.Unauthorized("token expired")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusUnauthorized {
		t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, f.Code)
	}

	if f.Message != "token expired" {
		t.Errorf("expected message to be 'token expired', got %s", f.Message)
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("booking not found")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
	}

	if f.Message != "booking not found" {
		t.Errorf("expected message to be 'booking not found', got %s", f.Message)
	}
}

func TestInternalError(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("database connection failed"),
			expected: &failure.Failure{Code: http.StatusInternalServerError, Kind: failure.KindInternal, Message: "database connection failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.InternalError(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Kind != expectedF.Kind || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    failure.BadRequestFromString("test"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetKind(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected string
	}{
		{
			name:     "slot unavailable",
			input:    failure.SlotUnavailable(),
			expected: failure.KindSlotUnavailable,
		},
		{
			name:     "invalid transition",
			input:    failure.InvalidTransition("completed", "cancelled"),
			expected: failure.KindInvalidStateTransition,
		},
		{
			name:     "regular error",
			input:    errors.New("boom"),
			expected: failure.KindInternal,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetKind(tt.input)
			if result != tt.expected {
				t.Errorf("expected kind to be %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	if !failure.IsKind(failure.SlotUnavailable(), failure.KindSlotUnavailable) {
		t.Error("expected IsKind to match slot_unavailable")
	}

	if failure.IsKind(errors.New("boom"), failure.KindSlotUnavailable) {
		t.Error("expected IsKind to not match a plain error")
	}
}

func TestTooManyRequests(t *testing.T) {
	err := failure.TooManyRequests("please wait before requesting a new code")

	if failure.GetCode(err) != 429 {
		t.Errorf("expected code to be 429, got %d", failure.GetCode(err))
	}

	if failure.GetKind(err) != failure.KindRateLimited {
		t.Errorf("expected kind to be rate_limited, got %s", failure.GetKind(err))
	}

	if err.Error() != "please wait before requesting a new code" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
