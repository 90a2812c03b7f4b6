package golang

import (
	"embed"
	"go/format"

	"github.com/blimu-dev/jsontyper/pkg/target"
)

//go:embed templates/*
var templatesFS embed.FS

const templateName = "types.go.gotmpl"

// GoBackend generates Go struct and string enum declarations
type GoBackend struct{}

// NewBackend creates the Go backend
func NewBackend() *GoBackend {
	return &GoBackend{}
}

// Name returns the language identifier
func (b *GoBackend) Name() string {
	return "golang"
}

// Aliases returns alternative language identifiers
func (b *GoBackend) Aliases() []string {
	return []string{"go"}
}

// FileExtension returns the extension of generated files
func (b *GoBackend) FileExtension() string {
	return ".go"
}

// Template returns the embedded default template
func (b *GoBackend) Template() (string, []byte) {
	text, err := templatesFS.ReadFile("templates/" + templateName)
	if err != nil {
		panic("golang: missing embedded template: " + err.Error())
	}
	return templateName, text
}

// NewResolver creates a resolver bound to session
func (b *GoBackend) NewResolver(session *target.Session) target.Resolver {
	return &Resolver{session: session}
}

// Format runs gofmt over the rendered source
func (b *GoBackend) Format(src []byte) ([]byte, error) {
	return format.Source(src)
}
