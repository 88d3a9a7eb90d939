package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = MustCompile("test", map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"type", "location"},
	"properties": map[string]interface{}{
		"type":     map[string]interface{}{"type": "string"},
		"location": map[string]interface{}{"type": "string", "minLength": 1},
		"humidity": map[string]interface{}{"type": "integer"},
	},
})

func TestSchema_ValidateBytes(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		valid       bool
		expectField string
		expectCode  string
	}{
		{name: "valid", body: `{"type":"weather","location":"Tokyo"}`, valid: true},
		{name: "missing location", body: `{"type":"weather"}`, expectField: "(root)", expectCode: "REQUIRED"},
		{name: "wrong type", body: `{"type":"weather","location":7}`, expectField: "location", expectCode: "INVALID_TYPE"},
		{name: "empty location", body: `{"type":"weather","location":""}`, expectField: "location"},
		{name: "non integer humidity", body: `{"type":"w","location":"x","humidity":4.5}`, expectField: "humidity"},
		{name: "not json", body: `{"type":`, expectField: "(root)", expectCode: "INVALID_JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testSchema.ValidateBytes([]byte(tt.body))
			assert.Equal(t, tt.valid, result.Valid)
			if tt.valid {
				assert.Empty(t, result.Errors)
				assert.Empty(t, result.Summary())
				return
			}
			require.NotEmpty(t, result.Errors)
			assert.Equal(t, tt.expectField, result.Errors[0].Field)
			if tt.expectCode != "" {
				assert.Equal(t, tt.expectCode, result.Errors[0].Code)
			}
			assert.NotEmpty(t, result.Summary())
		})
	}
}

func TestSchema_ValidateDocument(t *testing.T) {
	ok := testSchema.ValidateDocument(map[string]interface{}{"type": "joke", "location": "Paris"})
	assert.True(t, ok.Valid)

	bad := testSchema.ValidateDocument(map[string]interface{}{"type": "joke"})
	assert.False(t, bad.Valid)
	assert.Contains(t, bad.Summary(), "location")
}

func TestMustCompile_PanicsOnMalformedSchema(t *testing.T) {
	assert.Panics(t, func() {
		MustCompile("broken", map[string]interface{}{"type": 42})
	})
	assert.Equal(t, "test", testSchema.Name())
}
