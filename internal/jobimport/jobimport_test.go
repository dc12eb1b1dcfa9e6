package jobimport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSchema(t *testing.T) []byte {
	t.Helper()
	path := ResolveSchemaPath(DefaultSchemaPath)
	require.NotEmpty(t, path, "listing schema not found")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return content
}

func TestValidate_ValidListings(t *testing.T) {
	schema := loadSchema(t)
	doc := []byte(`[
		{
			"title": "Backend Engineer",
			"department": "Engineering",
			"location": "Remote",
			"type": "Full-time",
			"description": "Build the hiring platform.",
			"requirements": ["Go", "PostgreSQL"],
			"salary": {"min": 90000, "max": 120000, "currency": "USD", "isVisible": true},
			"status": "Published",
			"featured": true
		},
		{
			"title": "Recruiter",
			"department": "People",
			"location": "Austin, TX",
			"type": "Part-time",
			"description": "Run the pipeline."
		}
	]`)

	assert.NoError(t, Validate(schema, doc))
}

func TestValidate_EmptyArray(t *testing.T) {
	assert.NoError(t, Validate(loadSchema(t), []byte(`[]`)))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	schema := loadSchema(t)
	doc := []byte(`[{"title": "Backend Engineer", "department": "Engineering", "location": "Remote", "type": "Full-time"}]`)

	err := Validate(schema, doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "description")
}

func TestValidate_BadEnumAndExtraProperty(t *testing.T) {
	schema := loadSchema(t)
	doc := []byte(`[{
		"title": "Backend Engineer",
		"department": "Engineering",
		"location": "Remote",
		"type": "Gig",
		"description": "Build things.",
		"headcount": 3
	}]`)

	err := Validate(schema, doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.GreaterOrEqual(t, len(ve.Errors), 2)
}

func TestValidate_NotAnArray(t *testing.T) {
	schema := loadSchema(t)
	doc := []byte(`{"title": "Backend Engineer"}`)

	var ve *ValidationError
	require.ErrorAs(t, Validate(schema, doc), &ve)
}

func TestValidationError_Message(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "0.type", Message: "must be one of the allowed values"},
		{Field: "1.title", Message: "is required"},
	}}

	msg := ve.Error()
	assert.Contains(t, msg, "1. 0.type:")
	assert.Contains(t, msg, "2. 1.title:")
}

func TestResolveSchemaPath_Missing(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/definitely_not_here.schema.json"))
}

func TestImport_InvalidDataFails(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	dataPath := filepath.Join(dir, "listings.json")
	require.NoError(t, os.WriteFile(schemaPath, loadSchema(t), 0o644))
	require.NoError(t, os.WriteFile(dataPath, []byte(`[{"title": ""}]`), 0o644))

	// Validation fails before the store is touched, so a nil store is fine.
	count, err := Import(t.Context(), nil, schemaPath, dataPath)
	assert.Zero(t, count)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}
