package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveSchemaPath_FindsShippedSchemas(t *testing.T) {
	// validate_test.go runs from internal/schemas, two levels below the
	// repository root where schemas/ lives.
	path := ResolveSchemaPath(ResumeDataSchema)
	require.NotEmpty(t, path)
	assert.FileExists(t, path)

	path = ResolveSchemaPath(JobDescriptionSchema)
	require.NotEmpty(t, path)
	assert.FileExists(t, path)
}

func TestResolveSchemaPath_Missing(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/no_such.schema.json"))
}

func TestValidateJSON_ValidResume(t *testing.T) {
	doc := writeJSON(t, `{
		"skills": ["Python", "Django"],
		"work_experience": [{"title": "Engineer", "years": 4}],
		"full_text": "Backend engineer."
	}`)

	err := ValidateJSON(ResolveSchemaPath(ResumeDataSchema), doc)
	assert.NoError(t, err)
}

func TestValidateJSON_InvalidResume_NegativeYears(t *testing.T) {
	doc := writeJSON(t, `{
		"skills": ["Python"],
		"work_experience": [{"title": "Engineer", "years": -2}]
	}`)

	err := ValidateJSON(ResolveSchemaPath(ResumeDataSchema), doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_InvalidResume_SkillsNotArray(t *testing.T) {
	doc := writeJSON(t, `{"skills": "Python, Django"}`)

	err := ValidateJSON(ResolveSchemaPath(ResumeDataSchema), doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_InvalidJob_UnknownSeniority(t *testing.T) {
	doc := writeJSON(t, `{
		"required_skills": ["Python"],
		"experience_requirements": {"seniority_level": "wizard"}
	}`)

	err := ValidateJSON(ResolveSchemaPath(JobDescriptionSchema), doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	doc := writeJSON(t, `{}`)

	err := ValidateJSON("testdata/nonexistent_schema.json", doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	err := ValidateJSON(ResolveSchemaPath(ResumeDataSchema), "testdata/nonexistent.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "skills", Message: "is required"},
			{Field: "years", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "skills")
	assert.Contains(t, errorMsg, "years")
}

func TestValidateJSONString_NestedFieldPath(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["role"],
		"properties": {
			"role": {
				"type": "object",
				"required": ["title"],
				"properties": {
					"title": {"type": "string"}
				}
			}
		}
	}`

	err := ValidateJSONString(schemaContent, `{"role": {}}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Greater(t, len(validationErr.Errors), 0)
	assert.NotEmpty(t, validationErr.Errors[0].Field)
}
