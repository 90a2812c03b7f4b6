// Package target defines the contract every language backend implements:
// a Resolver that maps IR properties and identifiers into target syntax,
// and a Backend that creates resolvers and ships a default template.
package target

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/blimu-dev/jsontyper/internal/logger"
	"github.com/blimu-dev/jsontyper/pkg/ir"
)

// IdentifierKind selects the casing convention applied to an identifier.
// The values double as template helper names.
type IdentifierKind string

const (
	TypeName  IdentifierKind = "typeName"
	PropName  IdentifierKind = "propName"
	EnumName  IdentifierKind = "enumName"
	EnumValue IdentifierKind = "enumValue"
)

// IdentifierKinds lists every identifier kind in helper registration order
var IdentifierKinds = []IdentifierKind{TypeName, PropName, EnumName, EnumValue}

// Resolver converts IR type information into target-language syntax.
type Resolver interface {
	// ResolveType returns the target type for a property, wrapped for optionality
	// when the target has an optional wrapper. It may register externals.
	ResolveType(prop ir.Property) string

	// ResolveIdentifier applies the target casing for kind and escapes reserved words.
	ResolveIdentifier(kind IdentifierKind, raw string) string
}

// Backend describes a target language.
type Backend interface {
	// Name returns the language identifier (e.g., "rust")
	Name() string
	// Aliases returns alternative identifiers accepted on the command line
	Aliases() []string
	// FileExtension returns the extension of generated files, including the dot
	FileExtension() string
	// Template returns the name and text of the default template
	Template() (string, []byte)
	// NewResolver creates a resolver bound to one generation run
	NewResolver(session *Session) Resolver
}

// Formatter is implemented by backends that post-process rendered source
type Formatter interface {
	Format(src []byte) ([]byte, error)
}

// Session is the mutable state of one generation run: the externals
// registry and the warnings side channel. It is never shared between runs.
type Session struct {
	Externals *ir.Externals

	warnings   []string
	unresolved int
	definition string
	log        *zap.Logger
}

// NewSession creates a session that mirrors warnings to log (nil disables logging)
func NewSession(log *zap.Logger) *Session {
	return &Session{
		Externals: ir.NewExternals(),
		log:       logger.OrNop(log),
	}
}

// Warn records a recoverable problem
func (s *Session) Warn(msg string, fields ...zap.Field) {
	s.warnings = append(s.warnings, msg)
	s.log.Warn(msg, fields...)
}

// Warnf records a formatted recoverable problem
func (s *Session) Warnf(format string, args ...any) {
	s.Warn(fmt.Sprintf(format, args...))
}

// Warnings returns every warning recorded so far, in order
func (s *Session) Warnings() []string {
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// SetDefinition names the definition whose properties are being resolved.
// Warnings carry it as a log field; an empty name clears it.
func (s *Session) SetDefinition(name string) {
	s.definition = name
}

// Unresolved returns how many property types could not be resolved
func (s *Session) Unresolved() int {
	return s.unresolved
}

// AddExternal registers a dependency; duplicates are ignored
func (s *Session) AddExternal(dep string) {
	if s.Externals.Add(dep) {
		s.log.Debug("external registered", zap.String("external", dep))
	}
}

// UnresolvedTypeWarning formats the warning emitted when a property type cannot be mapped
func UnresolvedTypeWarning(prop ir.Property) string {
	return fmt.Sprintf("Could not resolve prop type: %q", string(prop.Type))
}
