package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorTypes(t *testing.T) {
	tests := []struct {
		name         string
		err          *AppError
		expectedType ErrorType
		expectedCode string
	}{
		{
			name:         "validation error",
			err:          NewValidationError("at least one time window is required", nil),
			expectedType: ErrorTypeValidation,
			expectedCode: "VALIDATION_FAILED",
		},
		{
			name:         "not found error",
			err:          NewNotFoundError("mechanic", "m-42"),
			expectedType: ErrorTypeNotFound,
			expectedCode: "NOT_FOUND",
		},
		{
			name:         "database error",
			err:          NewDatabaseError("save mechanic", fmt.Errorf("disk full")),
			expectedType: ErrorTypeDatabase,
			expectedCode: "DATABASE_ERROR",
		},
		{
			name:         "sweep error",
			err:          NewSweepError("m-42", fmt.Errorf("save failed")),
			expectedType: ErrorTypeSweep,
			expectedCode: "SWEEP_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.err.IsType(tt.expectedType))
			assert.Equal(t, tt.expectedCode, GetErrorCode(tt.err))
			assert.True(t, IsAppError(tt.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := NewDatabaseError("load mechanic", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAppErrorWrappedDetection(t *testing.T) {
	inner := NewNotFoundError("mechanic", "m-1")
	wrapped := fmt.Errorf("loading aggregate: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.True(t, appErr.IsType(ErrorTypeNotFound))
	assert.True(t, IsErrorType(wrapped, ErrorTypeNotFound))
}

func TestGetUserMessage(t *testing.T) {
	assert.Equal(t, "mechanic not found: m-9", GetUserMessage(NewNotFoundError("mechanic", "m-9")))
	assert.Equal(t, "A database error occurred. Please try again.",
		GetUserMessage(NewDatabaseError("save mechanic", fmt.Errorf("locked"))))
	assert.Equal(t, "plain", GetUserMessage(fmt.Errorf("plain")))
}
