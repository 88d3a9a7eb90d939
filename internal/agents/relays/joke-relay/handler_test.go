package jokerelay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "agent-relay/internal/common/errors"
	httpx "agent-relay/internal/common/http"
	"agent-relay/internal/common/logger"
	"agent-relay/internal/models"
)

type stubClient struct {
	payload map[string]interface{}
	err     error
	calls   int
	closed  int
}

func (s *stubClient) GetJoke(context.Context) (map[string]interface{}, error) {
	s.calls++
	return s.payload, s.err
}

func (s *stubClient) Close() error {
	s.closed++
	return nil
}

func joke() map[string]interface{} {
	return map[string]interface{}{
		"setup":     "Why don't scientists trust atoms?",
		"punchline": "Because they make up everything!",
		"type":      "science",
	}
}

func handlerWith(t *testing.T, c *stubClient) *Handler {
	return NewHandlerWithClientFactory(LoadConfig(), func() ProviderClient { return c }, logger.NewTestLogger(t))
}

func TestHandler_Execute(t *testing.T) {
	c := &stubClient{payload: joke()}

	out, err := handlerWith(t, c).Execute(context.Background(), &Input{Type: models.RequestTypeJoke})
	require.NoError(t, err)

	assert.Equal(t, &Output{
		Setup:     "Why don't scientists trust atoms?",
		Punchline: "Because they make up everything!",
		Category:  "science",
	}, out)
	assert.Equal(t, 1, c.calls)
	assert.Equal(t, 1, c.closed)
}

func TestHandler_Execute_RejectsWeatherType(t *testing.T) {
	c := &stubClient{payload: joke()}

	_, err := handlerWith(t, c).Execute(context.Background(), &Input{Type: models.RequestTypeWeather})

	var stdErr *apperrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, apperrors.ErrCodeBadRequest, stdErr.Code)
	assert.Equal(t, "Invalid request type", stdErr.Detail())
	assert.Zero(t, c.calls)
}

func TestHandler_Execute_ProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		client  *stubClient
		message string
	}{
		{
			name:    "transport failure",
			client:  &stubClient{err: errors.New("HTTP error occurred: connection refused")},
			message: "connection refused",
		},
		{
			name:    "missing punchline",
			client:  &stubClient{payload: map[string]interface{}{"setup": "s", "type": "general"}},
			message: "punchline",
		},
		{
			name:    "non-string setup",
			client:  &stubClient{payload: map[string]interface{}{"setup": 1.0, "punchline": "p", "type": "general"}},
			message: "setup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handlerWith(t, tt.client).Execute(context.Background(), &Input{Type: models.RequestTypeJoke})
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInternal))
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, 1, tt.client.closed)
		})
	}
}

func TestHandler_HTTP(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/joke", r.URL.Path)
		httpx.RespondJSON(w, http.StatusOK, joke())
	}))
	defer provider.Close()

	r := httpx.NewRouter(httpx.RouterOptions{Service: ServiceName, Logger: logger.NewNoOpLogger()})
	NewHandler(&Config{ProviderURL: provider.URL + "/", Timeout: LoadConfig().Timeout}, logger.NewNoOpLogger()).Register(r)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, err := http.Post(server.URL+"/", "application/json", bytes.NewBufferString(`{"type":"joke"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out models.JokeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "science", out.Category)

	resp2, err := http.Post(server.URL+"/", "application/json", bytes.NewBufferString(`{"type":"weather"}`))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)

	var errBody apperrors.ErrorBody
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&errBody))
	assert.Equal(t, "Invalid request type", errBody.Detail)
}
