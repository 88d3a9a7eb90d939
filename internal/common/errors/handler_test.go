package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	warns  []string
	errors []string
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.errors = append(l.errors, msg)
}

func TestErrorHandler_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectCode   ErrorCode
		expectDetail string
		expectWarn   bool
	}{
		{
			name:         "bad request",
			err:          NewBadRequestError("Invalid request type"),
			expectStatus: http.StatusBadRequest,
			expectCode:   ErrCodeBadRequest,
			expectDetail: "Invalid request type",
			expectWarn:   true,
		},
		{
			name:         "not found",
			err:          NewNotFoundError("Weather data not available for Atlantis"),
			expectStatus: http.StatusNotFound,
			expectCode:   ErrCodeNotFound,
			expectDetail: "Weather data not available for Atlantis",
			expectWarn:   true,
		},
		{
			name:         "raw error becomes internal",
			err:          fmt.Errorf("dial tcp: connection refused"),
			expectStatus: http.StatusInternalServerError,
			expectCode:   ErrCodeInternal,
			expectDetail: "dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &recordingLogger{}
			h := NewErrorHandler(log)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			h.HandleHTTPError(rec, req, tt.err)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectCode, body.Code)
			assert.Equal(t, tt.expectDetail, body.Detail)

			if tt.expectWarn {
				assert.Len(t, log.warns, 1)
				assert.Empty(t, log.errors)
			} else {
				assert.Len(t, log.errors, 1)
				assert.Empty(t, log.warns)
			}
		})
	}
}
