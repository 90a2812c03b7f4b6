package golang

import (
	"strings"

	"github.com/blimu-dev/jsontyper/pkg/ir"
	"github.com/blimu-dev/jsontyper/pkg/target"
	"github.com/blimu-dev/jsontyper/pkg/utils"
)

const (
	timeImport = "time"
	uuidImport = "github.com/google/uuid"
)

// initialisms are written fully uppercased in Go identifiers
var initialisms = map[string]string{
	"api":  "API",
	"html": "HTML",
	"http": "HTTP",
	"id":   "ID",
	"ip":   "IP",
	"json": "JSON",
	"sql":  "SQL",
	"uri":  "URI",
	"url":  "URL",
	"uuid": "UUID",
	"xml":  "XML",
}

// Resolver maps IR properties onto Go types. Go has no optional wrapper:
// optional fields keep their bare type and rely on zero values and omitempty.
type Resolver struct {
	session *target.Session
}

// ResolveType returns the Go type of a property
func (r *Resolver) ResolveType(prop ir.Property) string {
	return target.ResolveProperty(r.session, r, prop)
}

// ResolveIdentifier returns an exported Go identifier. Exported names are
// capitalized, so they never collide with Go keywords.
func (r *Resolver) ResolveIdentifier(kind target.IdentifierKind, raw string) string {
	name := goName(raw)
	if name == "" {
		if kind == target.EnumValue {
			return "Empty"
		}
		return "X"
	}
	if kind == target.EnumValue {
		// enum values are appended to the enum type name, a leading digit is fine
		return name
	}
	return utils.PrefixLeadingDigit(name, "X")
}

// NamedType formats a generated type name with Go initialisms
func (r *Resolver) NamedType(name string) string {
	return utils.PrefixLeadingDigit(goName(name), "X")
}

// StringType maps date and time formats to time.Time and uuid to uuid.UUID
func (r *Resolver) StringType(format string) string {
	switch format {
	case "date-time", "time", "date":
		r.session.AddExternal(timeImport)
		return "time.Time"
	case "uuid":
		r.session.AddExternal(uuidImport)
		return "uuid.UUID"
	default:
		return "string"
	}
}

// MapType returns a string-keyed Go map
func (r *Resolver) MapType(valueType string) string {
	return "map[string]" + valueType
}

// ArrayType returns a slice of elemType
func (r *Resolver) ArrayType(elemType string) string {
	return "[]" + elemType
}

// PrimitiveType maps the non-string primitive kinds to Go types
func (r *Resolver) PrimitiveType(t ir.PropType) (string, bool) {
	switch t {
	case ir.TypeBoolean:
		return "bool", true
	case ir.TypeNull:
		return "any", true
	case ir.TypeNumber:
		return "uint64", true
	case ir.TypeInteger:
		return "int64", true
	case ir.TypeFloat:
		return "float64", true
	}
	return "", false
}

// Optional returns t unchanged; optional fields rely on omitempty
func (r *Resolver) Optional(t string) string {
	return t
}

// goName converts any casing to PascalCase with Go initialisms: "user_id" -> "UserID"
func goName(s string) string {
	var b strings.Builder
	for _, w := range utils.Words(s) {
		if upper, ok := initialisms[strings.ToLower(w)]; ok {
			b.WriteString(upper)
			continue
		}
		b.WriteString(utils.ToPascalCase(w))
	}
	return b.String()
}
