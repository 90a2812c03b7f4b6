package python

import (
	"github.com/blimu-dev/jsontyper/pkg/ir"
	"github.com/blimu-dev/jsontyper/pkg/target"
	"github.com/blimu-dev/jsontyper/pkg/utils"
)

// Externals are dotted "module.Name" paths; the template turns each into a
// "from module import Name" line.
const (
	optionalImport = "typing.Optional"
	dictImport     = "typing.Dict"
	listImport     = "typing.List"
	datetimeImport = "datetime.datetime"
	dateImport     = "datetime.date"
	timeImport     = "datetime.time"
	uuidImport     = "uuid.UUID"
)

var keywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
	// soft keywords and names the generated module imports
	"match": {}, "case": {}, "type": {}, "_": {},
	"Enum": {}, "dataclass": {}, "field": {}, "annotations": {},
	"Optional": {}, "Dict": {}, "List": {}, "Any": {},
	"datetime": {}, "date": {}, "time": {}, "UUID": {},
}

// Resolver maps IR properties onto Python type hints
type Resolver struct {
	session *target.Session
}

// ResolveType returns the type hint of a property, Optional-wrapped when not required
func (r *Resolver) ResolveType(prop ir.Property) string {
	return target.ResolveProperty(r.session, r, prop)
}

// ResolveIdentifier uses PEP 8 casing: PascalCase classes, snake_case fields
// and SCREAMING_SNAKE_CASE enum members
func (r *Resolver) ResolveIdentifier(kind target.IdentifierKind, raw string) string {
	var name string
	switch kind {
	case target.PropName:
		name = utils.ToSnakeCase(raw)
	case target.EnumValue:
		name = utils.ToScreamingSnakeCase(raw)
	default:
		name = utils.ToPascalCase(raw)
	}
	if name == "" {
		name = "EMPTY"
		if kind == target.PropName {
			name = "field"
		}
	}
	return escape(utils.PrefixLeadingDigit(name, "_"))
}

// NamedType formats a generated class name
func (r *Resolver) NamedType(name string) string {
	return r.ResolveIdentifier(target.TypeName, name)
}

// StringType maps date and time formats to the datetime module and uuid to UUID
func (r *Resolver) StringType(format string) string {
	switch format {
	case "date-time":
		r.session.AddExternal(datetimeImport)
		return "datetime"
	case "date":
		r.session.AddExternal(dateImport)
		return "date"
	case "time":
		r.session.AddExternal(timeImport)
		return "time"
	case "uuid":
		r.session.AddExternal(uuidImport)
		return "UUID"
	default:
		return "str"
	}
}

// MapType returns typing.Dict keyed by str
func (r *Resolver) MapType(valueType string) string {
	r.session.AddExternal(dictImport)
	return "Dict[str, " + valueType + "]"
}

// ArrayType returns typing.List of elemType
func (r *Resolver) ArrayType(elemType string) string {
	r.session.AddExternal(listImport)
	return "List[" + elemType + "]"
}

// PrimitiveType maps the non-string primitive kinds to Python types
func (r *Resolver) PrimitiveType(t ir.PropType) (string, bool) {
	switch t {
	case ir.TypeBoolean:
		return "bool", true
	case ir.TypeNull:
		return "None", true
	case ir.TypeNumber, ir.TypeInteger:
		return "int", true
	case ir.TypeFloat:
		return "float", true
	}
	return "", false
}

// Optional wraps t in typing.Optional
func (r *Resolver) Optional(t string) string {
	r.session.AddExternal(optionalImport)
	return "Optional[" + t + "]"
}

func escape(name string) string {
	if _, ok := keywords[name]; ok {
		return name + "_"
	}
	return name
}
