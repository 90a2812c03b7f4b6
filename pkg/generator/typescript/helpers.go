package typescript

import (
	"github.com/blimu-dev/jsontyper/pkg/ir"
	"github.com/blimu-dev/jsontyper/pkg/target"
	"github.com/blimu-dev/jsontyper/pkg/utils"
)

// typeNames cannot be declared as interface or enum names
var typeNames = map[string]struct{}{
	"Array": {}, "Boolean": {}, "Date": {}, "Error": {}, "Function": {},
	"Map": {}, "Number": {}, "Object": {}, "Promise": {}, "Record": {},
	"Set": {}, "String": {}, "Symbol": {},
	"Any": {}, "Never": {}, "Unknown": {}, "Void": {},
}

// Resolver maps IR properties onto TypeScript types. Optionality is carried
// by the "?" modifier in the template, so types are never wrapped.
type Resolver struct {
	session *target.Session
}

// ResolveType returns the TypeScript type of a property
func (r *Resolver) ResolveType(prop ir.Property) string {
	return target.ResolveProperty(r.session, r, prop)
}

// ResolveIdentifier uses camelCase members and PascalCase types and enum members
func (r *Resolver) ResolveIdentifier(kind target.IdentifierKind, raw string) string {
	switch kind {
	case target.PropName:
		return quotePropertyName(utils.ToCamelCase(raw), raw)
	case target.EnumValue:
		name := utils.PrefixLeadingDigit(utils.ToPascalCase(raw), "_")
		if name == "" {
			return "Empty"
		}
		return name
	default:
		return r.NamedType(raw)
	}
}

// NamedType formats a generated type name, renaming clashes with builtin types
func (r *Resolver) NamedType(name string) string {
	n := utils.PrefixLeadingDigit(utils.ToPascalCase(name), "_")
	if n == "" {
		return "_"
	}
	if _, ok := typeNames[n]; ok {
		return n + "_"
	}
	return n
}

// StringType returns string for every format
func (r *Resolver) StringType(string) string {
	return "string"
}

// MapType returns a Record keyed by string
func (r *Resolver) MapType(valueType string) string {
	return "Record<string, " + valueType + ">"
}

// ArrayType returns an Array of elemType
func (r *Resolver) ArrayType(elemType string) string {
	return "Array<" + elemType + ">"
}

// PrimitiveType maps the non-string primitive kinds to TypeScript types
func (r *Resolver) PrimitiveType(t ir.PropType) (string, bool) {
	switch t {
	case ir.TypeBoolean:
		return "boolean", true
	case ir.TypeNull:
		return "null", true
	case ir.TypeNumber, ir.TypeInteger, ir.TypeFloat:
		return "number", true
	}
	return "", false
}

// Optional returns t unchanged; optional fields are marked with ?
func (r *Resolver) Optional(t string) string {
	return t
}

// quotePropertyName keeps the raw name as a string literal when casing left
// nothing usable or the name starts with a digit
func quotePropertyName(name, raw string) string {
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return `"` + raw + `"`
	}
	return name
}
