package python

import (
	"embed"

	"github.com/blimu-dev/jsontyper/pkg/target"
)

//go:embed templates/*
var templatesFS embed.FS

const templateName = "types.py.gotmpl"

// PythonBackend generates dataclasses and string enums
type PythonBackend struct{}

// NewBackend creates the Python backend
func NewBackend() *PythonBackend {
	return &PythonBackend{}
}

// Name returns the language identifier
func (b *PythonBackend) Name() string {
	return "python"
}

// Aliases returns alternative language identifiers
func (b *PythonBackend) Aliases() []string {
	return []string{"py"}
}

// FileExtension returns the extension of generated files
func (b *PythonBackend) FileExtension() string {
	return ".py"
}

// Template returns the embedded default template
func (b *PythonBackend) Template() (string, []byte) {
	text, err := templatesFS.ReadFile("templates/" + templateName)
	if err != nil {
		panic("python: missing embedded template: " + err.Error())
	}
	return templateName, text
}

// NewResolver creates a resolver bound to session
func (b *PythonBackend) NewResolver(session *target.Session) target.Resolver {
	return &Resolver{session: session}
}
