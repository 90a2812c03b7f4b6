package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed meta.schema.json
var metaSchema []byte

// ValidationError lists every violation of the supported schema subset
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("spec is invalid (%d violations):\n  - %s", len(e.Violations), strings.Join(e.Violations, "\n  - "))
}

// Validate checks a document against the subset of JSON Schema the generator
// understands. Definitions that are not objects are accepted here; the
// generator skips them with a warning.
func Validate(data []byte, format Format) error {
	jsonData, _, err := toJSON(data, format)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(metaSchema),
		gojsonschema.NewBytesLoader(jsonData),
	)
	if err != nil {
		return fmt.Errorf("failed to validate spec: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, re.String())
	}
	return &ValidationError{Violations: violations}
}

// ValidateFile reads path from fsys and validates it
func ValidateFile(fsys afero.Fs, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read spec %s: %w", path, err)
	}
	return Validate(data, FormatFromPath(path))
}
