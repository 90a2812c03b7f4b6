package schema

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"
	"github.com/oasdiff/yaml"
	"github.com/spf13/afero"
)

var (
	// ErrMissingDefinitions is returned when the document has no "definitions" section
	ErrMissingDefinitions = errors.New(`missing property "definitions" in spec file`)
	// ErrEmptyDefinitions is returned when the "definitions" section has no entries
	ErrEmptyDefinitions = errors.New(`property "definitions" is empty`)
)

// Format is the serialization of a schema document
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the format from the file extension; anything that is
// not .yaml or .yml is read as JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// rawDocument is the subset of a JSON Schema document the generator reads
type rawDocument struct {
	Definitions openapi3.Schemas `json:"definitions"`
}

// LoadDocument reads and parses a schema document from fsys
func LoadDocument(fsys afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec %s: %w", path, err)
	}
	doc, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load spec %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a schema document. Key order of definitions and their
// properties is recovered from the raw bytes since Go maps do not keep it.
func Parse(data []byte, format Format) (*Document, error) {
	jsonData, order, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}

	var raw rawDocument
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode definitions: %w", err)
	}
	if raw.Definitions == nil {
		return nil, ErrMissingDefinitions
	}
	if len(raw.Definitions) == 0 {
		return nil, ErrEmptyDefinitions
	}

	return &Document{Definitions: raw.Definitions, order: order}, nil
}

// toJSON normalises the input to JSON and extracts its key order
func toJSON(data []byte, format Format) ([]byte, *keyOrder, error) {
	if format == FormatYAML {
		order, err := keyOrderFromYAML(data)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
		jsonData, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to convert yaml: %w", err)
		}
		return jsonData, order, nil
	}

	order, err := keyOrderFromJSON(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse json: %w", err)
	}
	return data, order, nil
}
