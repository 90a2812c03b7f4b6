package typescript

import (
	"embed"

	"github.com/blimu-dev/jsontyper/pkg/target"
)

//go:embed templates/*
var templatesFS embed.FS

const templateName = "types.ts.gotmpl"

// TypeScriptBackend generates interfaces and string enums
type TypeScriptBackend struct{}

// NewBackend creates the TypeScript backend
func NewBackend() *TypeScriptBackend {
	return &TypeScriptBackend{}
}

// Name returns the language identifier
func (b *TypeScriptBackend) Name() string {
	return "typescript"
}

// Aliases returns alternative language identifiers
func (b *TypeScriptBackend) Aliases() []string {
	return []string{"ts"}
}

// FileExtension returns the extension of generated files
func (b *TypeScriptBackend) FileExtension() string {
	return ".ts"
}

// Template returns the embedded default template
func (b *TypeScriptBackend) Template() (string, []byte) {
	text, err := templatesFS.ReadFile("templates/" + templateName)
	if err != nil {
		panic("typescript: missing embedded template: " + err.Error())
	}
	return templateName, text
}

// NewResolver creates a resolver bound to session
func (b *TypeScriptBackend) NewResolver(session *target.Session) target.Resolver {
	return &Resolver{session: session}
}
