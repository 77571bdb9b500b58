package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator()
	require.NoError(t, validator.RegisterSchema("person.schema.json", []byte(personSchema)))

	tmpDir := t.TempDir()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name:      "valid data",
			data:      `{"name": "John", "age": 30}`,
			wantError: false,
		},
		{
			name:      "valid data without optional field",
			data:      `{"name": "Jane"}`,
			wantError: false,
		},
		{
			name:      "missing required field",
			data:      `{"age": 25}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "wrong type for field",
			data:      `{"name": "John", "age": "thirty"}`,
			wantError: true,
			errorMsg:  "age",
		},
		{
			name:      "constraint violation",
			data:      `{"name": "John", "age": -5}`,
			wantError: true,
			errorMsg:  "age",
		},
		{
			name:      "invalid JSON",
			data:      `{"name": "John", "age": }`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(tmpDir, "test_data.json")
			require.NoError(t, os.WriteFile(dataPath, []byte(tt.data), 0o644))

			err := validator.ValidateFile(dataPath, "person.schema.json")

			if tt.wantError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.True(t, strings.Contains(err.Error(), tt.errorMsg), "got: %v", err)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchemaValidator_ValidateBytes_Catalog(t *testing.T) {
	validator := NewSchemaValidator()
	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"additionalProperties": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"id": {"type": "string", "minLength": 1}
				},
				"required": ["name", "id"]
			}
		}
	}`
	require.NoError(t, validator.RegisterSchema("catalog.schema.json", []byte(schema)))

	tests := []struct {
		name      string
		data      string
		wantError bool
	}{
		{"valid category", `{"weapons": [{"name": "Claymore", "id": "T4_2H_CLAYMORE"}]}`, false},
		{"empty category", `{"weapons": []}`, false},
		{"missing id", `{"weapons": [{"name": "Claymore"}]}`, true},
		{"category not an array", `{"weapons": {"name": "Claymore"}}`, true},
		{"empty name", `{"boots": [{"name": "", "id": "T4_SHOES"}]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), "catalog.schema.json")
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchemaValidator_UnregisteredSchema(t *testing.T) {
	validator := NewSchemaValidator()

	err := validator.ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	assert.ErrorIs(t, err, ErrSchemaNotRegistered)
}

func TestSchemaValidator_InvalidSchema(t *testing.T) {
	validator := NewSchemaValidator()

	err := validator.RegisterSchema("broken.schema.json", []byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema JSON")
}

func TestSchemaValidator_InvalidDataFile(t *testing.T) {
	validator := NewSchemaValidator()
	require.NoError(t, validator.RegisterSchema("object.schema.json", []byte(`{"type": "object"}`)))

	err := validator.ValidateFile("nonexistent.json", "object.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_RegisterTwiceKeepsOneCompilation(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	require.NoError(t, v.RegisterSchema("object.schema.json", []byte(`{"type": "object"}`)))
	require.NoError(t, v.RegisterSchema("object.schema.json", []byte(`{"type": "object"}`)))
	assert.Len(t, v.schemas, 1)

	assert.NoError(t, v.ValidateBytes([]byte(`{"test": "value"}`), "object.schema.json"))
}
