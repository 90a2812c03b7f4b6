// Package jsontyper generates typed data structures from the "definitions"
// of a JSON Schema document.
//
// Each object definition becomes a struct and each inline enum becomes an
// enum type in the target language. Golang, Rust, Python and TypeScript are
// supported; every language ships an embedded template that can be replaced.
//
// Quick Start:
//
//	import "github.com/blimu-dev/jsontyper"
//
//	err := jsontyper.Generate("./schema.json", "./src/types.rs", "rust")
//
// For more advanced usage, see the generator package.
package jsontyper

import (
	"context"

	"github.com/blimu-dev/jsontyper/pkg/generator"
)

// Options configures a single generation run
type Options = generator.Options

// Generate renders the definitions of spec for language and writes them to output.
//
// Example:
//
//	err := jsontyper.Generate("./schema.yaml", "./models/types.go", "golang")
func Generate(spec, output, language string) error {
	return GenerateWithOptions(Options{Spec: spec, Output: output, Language: language})
}

// GenerateWithOptions runs the generator with full control over templates,
// package naming and strict type resolution.
//
// Example:
//
//	err := jsontyper.GenerateWithOptions(jsontyper.Options{
//		Spec:     "./schema.json",
//		Output:   "./types.py",
//		Language: "python",
//		Strict:   true,
//	})
func GenerateWithOptions(opts Options) error {
	_, err := generator.GenerateTypes(context.Background(), opts)
	return err
}

// GenerateFromConfig generates every target of a YAML configuration file.
// Optionally, languages restrict the run to the matching targets.
//
// Example:
//
//	// Generate all targets from config
//	err := jsontyper.GenerateFromConfig("./jsontyper.yaml")
//
//	// Generate only the Rust target
//	err := jsontyper.GenerateFromConfig("./jsontyper.yaml", "rust")
func GenerateFromConfig(configPath string, languages ...string) error {
	_, err := generator.GenerateFromConfig(context.Background(), configPath, languages...)
	return err
}

// ValidateSpec checks a schema file against the supported subset of JSON Schema.
// This is useful for checking a spec before attempting to generate from it.
func ValidateSpec(specPath string) error {
	return generator.ValidateSpec(specPath)
}
