package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("save products: %w", NewStorageError(cause))

	require.True(t, IsAppError(err))
	assert.ErrorIs(t, err, cause)

	appErr := GetAppError(err)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
	assert.Contains(t, appErr.Error(), "disk full")
}

func TestGetAppErrorFallsBackToInternal(t *testing.T) {
	appErr := GetAppError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "boom", appErr.Message)
}

func TestClassifiers(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("Sale")))
	assert.False(t, IsNotFound(NewFieldError("name", "required")))
	assert.True(t, IsValidation(NewFieldError("name", "required")))
	assert.False(t, IsValidation(errors.New("plain")))
}
