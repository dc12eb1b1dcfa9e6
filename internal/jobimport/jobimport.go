// Package jobimport loads job listings from a JSON file into the document
// store, validating each file against the job listing JSON Schema first.
package jobimport

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/marisol/talentdesk/internal/docstore"
)

// DefaultSchemaPath is where the listing schema lives relative to the repo
// root.
const DefaultSchemaPath = "schemas/job_listing.schema.json"

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ResolveSchemaPath attempts to find the schema file by trying multiple
// common path resolutions, since the import command may run from different
// working directories. Returns the first path that exists, or empty string.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// Validate checks a JSON document holding an array of job listings against
// the schema. Returns a *ValidationError when the document is well-formed
// JSON but violates the schema.
func Validate(schemaContent, jsonContent []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// Import validates the listings file against the schema and bulk-inserts
// the listings. Returns the number of listings inserted. Nothing is
// inserted when validation fails.
func Import(ctx context.Context, store *docstore.Store, schemaPath, dataPath string) (int, error) {
	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema file: %w", err)
	}

	jsonContent, err := os.ReadFile(dataPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read listings file: %w", err)
	}

	if err := Validate(schemaContent, jsonContent); err != nil {
		return 0, err
	}

	var jobs []docstore.JobListing
	if err := json.Unmarshal(jsonContent, &jobs); err != nil {
		return 0, fmt.Errorf("failed to parse listings file: %w", err)
	}

	return store.InsertJobListings(ctx, jobs)
}
