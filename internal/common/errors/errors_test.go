package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code   ErrorCode
		status int
	}{
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeUnknownIntent, http.StatusUnprocessableEntity},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.status, StatusForCode(tt.code))
		})
	}
}

func TestCodeForStatus(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, CodeForStatus(http.StatusNotFound))
	assert.Equal(t, ErrCodeBadRequest, CodeForStatus(http.StatusBadRequest))
	assert.Equal(t, ErrCodeBadRequest, CodeForStatus(http.StatusUnprocessableEntity))
	assert.Equal(t, ErrCodeInternal, CodeForStatus(http.StatusBadGateway))
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, Normalize(nil))

	notFound := NewNotFoundError("no such city")
	assert.Same(t, notFound, Normalize(notFound))

	wrapped := fmt.Errorf("call provider: %w", notFound)
	assert.Same(t, notFound, Normalize(wrapped))

	plain := Normalize(fmt.Errorf("connection refused"))
	assert.Equal(t, ErrCodeInternal, plain.Code)
	assert.Equal(t, "connection refused", plain.Details)
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("relay: %w", NewBadRequestError("Invalid request type"))
	assert.True(t, HasCode(err, ErrCodeBadRequest))
	assert.False(t, HasCode(err, ErrCodeInternal))
	assert.False(t, HasCode(fmt.Errorf("plain"), ErrCodeBadRequest))
}

func TestStandardError_Detail(t *testing.T) {
	assert.Equal(t, "Invalid request type", NewBadRequestError("Invalid request type").Detail())

	unknown := NewUnknownIntentError("hello")
	assert.Contains(t, unknown.Detail(), "I don't understand that request")
	assert.Equal(t, "hello", unknown.Metadata["query"])
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "CLIENT", GetErrorCategory(ErrCodeNotFound))
	assert.Equal(t, "SERVER", GetErrorCategory(ErrCodeInternal))
	assert.Equal(t, "OTHER", GetErrorCategory("X"))
}
