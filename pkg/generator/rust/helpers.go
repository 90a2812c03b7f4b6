package rust

import (
	"github.com/blimu-dev/jsontyper/pkg/ir"
	"github.com/blimu-dev/jsontyper/pkg/target"
	"github.com/blimu-dev/jsontyper/pkg/utils"
)

const (
	chronoImport  = "chrono::{DateTime, Utc}"
	uuidImport    = "uuid::Uuid"
	hashMapImport = "std::collections::HashMap"
)

// reserved holds strict, reserved and weak keywords plus the compiler's
// internal identifiers
var reserved = map[string]struct{}{
	"{{root}}": {}, "$crate": {},

	"as": {}, "box": {}, "break": {}, "const": {}, "continue": {}, "crate": {},
	"else": {}, "enum": {}, "extern": {}, "false": {}, "fn": {}, "for": {},
	"if": {}, "impl": {}, "in": {}, "let": {}, "loop": {}, "match": {},
	"mod": {}, "move": {}, "mut": {}, "pub": {}, "ref": {}, "return": {},
	"self": {}, "Self": {}, "static": {}, "struct": {}, "super": {},
	"trait": {}, "true": {}, "type": {}, "unsafe": {}, "use": {},
	"where": {}, "while": {}, "async": {}, "await": {},

	"abstract": {}, "alignof": {}, "become": {}, "do": {}, "final": {},
	"macro": {}, "offsetof": {}, "override": {}, "priv": {}, "proc": {},
	"pure": {}, "sizeof": {}, "typeof": {}, "unsized": {}, "virtual": {},
	"yield": {}, "try": {},

	"catch": {}, "default": {}, "dyn": {}, "'static": {}, "union": {},
}

// these cannot be raw identifiers and get a trailing underscore instead
var noRaw = map[string]struct{}{
	"crate": {}, "self": {}, "Self": {}, "super": {},
}

// Resolver maps IR properties onto Rust types
type Resolver struct {
	session *target.Session
}

// ResolveType returns the Rust type of a property, Option-wrapped when not required
func (r *Resolver) ResolveType(prop ir.Property) string {
	return target.ResolveProperty(r.session, r, prop)
}

// ResolveIdentifier applies snake_case to fields and PascalCase to everything
// else, then escapes keywords
func (r *Resolver) ResolveIdentifier(kind target.IdentifierKind, raw string) string {
	var name string
	switch kind {
	case target.PropName:
		name = utils.PrefixLeadingDigit(utils.ToSnakeCase(raw), "_")
		if name == "" {
			name = "_field"
		}
	default:
		name = utils.PrefixLeadingDigit(utils.ToPascalCase(raw), "X")
		if name == "" {
			name = "Empty"
		}
	}
	return escape(name)
}

// NamedType formats a generated type name, escaping reserved words
func (r *Resolver) NamedType(name string) string {
	return escape(utils.PrefixLeadingDigit(utils.ToPascalCase(name), "X"))
}

// StringType maps date and time formats to chrono and uuid to uuid::Uuid
func (r *Resolver) StringType(format string) string {
	switch format {
	case "date-time", "time", "date":
		r.session.AddExternal(chronoImport)
		return "DateTime<Utc>"
	case "uuid":
		r.session.AddExternal(uuidImport)
		return "Uuid"
	default:
		return "String"
	}
}

// MapType returns a HashMap keyed by String
func (r *Resolver) MapType(valueType string) string {
	r.session.AddExternal(hashMapImport)
	return "HashMap<String, " + valueType + ">"
}

// ArrayType returns a Vec of elemType
func (r *Resolver) ArrayType(elemType string) string {
	return "Vec<" + elemType + ">"
}

// PrimitiveType maps the non-string primitive kinds to Rust types
func (r *Resolver) PrimitiveType(t ir.PropType) (string, bool) {
	switch t {
	case ir.TypeBoolean:
		return "bool", true
	case ir.TypeNull:
		return "()", true
	case ir.TypeNumber:
		return "u64", true
	case ir.TypeInteger:
		return "i64", true
	case ir.TypeFloat:
		return "f64", true
	}
	return "", false
}

// Optional wraps t in Option
func (r *Resolver) Optional(t string) string {
	return "Option<" + t + ">"
}

func escape(name string) string {
	if _, ok := reserved[name]; !ok {
		return name
	}
	if _, ok := noRaw[name]; ok {
		return name + "_"
	}
	return "r#" + name
}
