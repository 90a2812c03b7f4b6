package rust

import (
	"embed"

	"github.com/blimu-dev/jsontyper/pkg/target"
)

//go:embed templates/*
var templatesFS embed.FS

const templateName = "types.rs.gotmpl"

// RustBackend generates serde structs and enums
type RustBackend struct{}

// NewBackend creates the Rust backend
func NewBackend() *RustBackend {
	return &RustBackend{}
}

// Name returns the language identifier
func (b *RustBackend) Name() string {
	return "rust"
}

// Aliases returns alternative language identifiers
func (b *RustBackend) Aliases() []string {
	return []string{"rs"}
}

// FileExtension returns the extension of generated files
func (b *RustBackend) FileExtension() string {
	return ".rs"
}

// Template returns the embedded default template
func (b *RustBackend) Template() (string, []byte) {
	text, err := templatesFS.ReadFile("templates/" + templateName)
	if err != nil {
		panic("rust: missing embedded template: " + err.Error())
	}
	return templateName, text
}

// NewResolver creates a resolver bound to session
func (b *RustBackend) NewResolver(session *target.Session) target.Resolver {
	return &Resolver{session: session}
}
