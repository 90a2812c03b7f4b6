package target

import (
	"go.uber.org/zap"

	"github.com/blimu-dev/jsontyper/pkg/ir"
)

// TypeMapper holds the language specific pieces of type resolution.
// Backends implement it and delegate ResolveType to ResolveProperty,
// which owns the dispatch order shared by every target.
type TypeMapper interface {
	// NamedType formats a reference to a generated struct or enum
	NamedType(name string) string
	// StringType maps a string property, honouring its format. It may register externals.
	StringType(format string) string
	// MapType builds a string-keyed map type; it may register externals
	MapType(valueType string) string
	// ArrayType builds a sequence type; it may register externals
	ArrayType(elemType string) string
	// PrimitiveType maps boolean, null, number, integer and float
	PrimitiveType(t ir.PropType) (string, bool)
	// Optional wraps a type for a property that is not required.
	// Targets without an optional wrapper return t unchanged.
	Optional(t string) string
}

// ResolveProperty resolves prop with m. Ref wins over Enum, both win over Type.
// An unresolvable type is recorded as a warning and yields an empty type.
func ResolveProperty(s *Session, m TypeMapper, prop ir.Property) string {
	t, ok := resolveBare(s, m, prop)
	if !ok {
		s.unresolved++
		fields := []zap.Field{zap.String("property", prop.Name), zap.String("type", string(prop.Type))}
		if s.definition != "" {
			fields = append(fields, zap.String("definition", s.definition))
		}
		s.Warn(UnresolvedTypeWarning(prop), fields...)
		t = ""
	}
	if !prop.IsRequired {
		return m.Optional(t)
	}
	return t
}

func resolveBare(s *Session, m TypeMapper, prop ir.Property) (string, bool) {
	if prop.Ref != "" {
		return m.NamedType(prop.Ref), true
	}
	if prop.Enum != "" {
		return m.NamedType(prop.Enum), true
	}

	switch prop.Type {
	case ir.TypeString:
		return m.StringType(prop.Format), true
	case ir.TypeObject:
		return m.MapType(ElementType(s, m, prop.AdditionalPropertyType)), true
	case ir.TypeArray:
		// arrays reuse AdditionalPropertyType as their element type, like objects
		return m.ArrayType(ElementType(s, m, prop.AdditionalPropertyType)), true
	default:
		return m.PrimitiveType(prop.Type)
	}
}

// ElementType resolves the value type of a map or array. An empty value means
// no type was declared and defaults to the target string type; a primitive kind
// name resolves like a required property of that kind; anything else is a
// referenced type name.
func ElementType(s *Session, m TypeMapper, value string) string {
	if value == "" {
		return m.StringType("")
	}
	kind := ir.PropType(value)
	if !kind.IsPrimitive() {
		return m.NamedType(value)
	}
	return ResolveProperty(s, m, ir.Property{Name: value, Type: kind, IsRequired: true})
}
