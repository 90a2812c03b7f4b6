package generator

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/blimu-dev/jsontyper/pkg/ir"
	"github.com/blimu-dev/jsontyper/pkg/schema"
	"github.com/blimu-dev/jsontyper/pkg/target"
)

// Normalize converts the document definitions into IR structs, in document order.
// Definitions that cannot become a struct are skipped with a warning on the
// session; they never abort the run.
func Normalize(doc *schema.Document, session *target.Session) []ir.Struct {
	var structs []ir.Struct
	for _, name := range doc.DefinitionNames() {
		def := doc.Definitions[name]

		var value *openapi3.Schema
		if def != nil {
			value = def.Value
		}
		if value == nil || !value.Type.Is(openapi3.TypeObject) {
			session.Warn(
				`Unknown type "`+typeString(value)+`" for definition "`+name+`"`,
				zap.String("definition", name),
			)
			continue
		}
		if len(value.Properties) == 0 {
			session.Warn(
				`Definition "`+name+`" has no properties`,
				zap.String("definition", name),
			)
			continue
		}

		structs = append(structs, normalizeStruct(doc, name, value))
	}
	return structs
}

// NormalizeDefinitions runs Normalize on its own session and returns the warnings
func NormalizeDefinitions(doc *schema.Document) ([]ir.Struct, []string) {
	session := target.NewSession(nil)
	structs := Normalize(doc, session)
	return structs, session.Warnings()
}

func normalizeStruct(doc *schema.Document, name string, def *openapi3.Schema) ir.Struct {
	s := ir.Struct{
		Name:        name,
		Description: def.Description,
	}

	required := make(map[string]struct{}, len(def.Required))
	for _, r := range def.Required {
		required[r] = struct{}{}
	}

	for _, propName := range doc.PropertyNames(name, def) {
		pr := def.Properties[propName]
		_, isRequired := required[propName]
		prop := ir.Property{
			Name:       propName,
			IsRequired: isRequired,
		}

		if pr == nil {
			s.Properties = append(s.Properties, prop)
			continue
		}

		if pr.Value != nil {
			v := pr.Value
			prop.Type = ir.PropType(typeString(v))
			prop.Description = v.Description
			prop.Format = v.Format

			if len(v.Enum) > 0 {
				enum := ir.Enum{
					Name:   ir.EnumName(name, propName),
					Values: enumValues(v.Enum),
				}
				prop.Enum = enum.Name
				s.Enums = append(s.Enums, enum)
			}

			if ap := v.AdditionalProperties.Schema; ap != nil {
				prop.AdditionalPropertyType = nestedTypeName(ap)
			}
		}

		// both may be set; resolution prefers Ref
		if pr.Ref != "" {
			prop.Ref = refName(pr.Ref)
		}

		s.Properties = append(s.Properties, prop)
	}

	return s
}

// typeString renders the declared type. A list of types is joined with "|",
// which no backend resolves, so it surfaces as an unresolvable type.
func typeString(s *openapi3.Schema) string {
	if s == nil || s.Type == nil {
		return ""
	}
	return strings.Join(s.Type.Slice(), "|")
}

// nestedTypeName returns the referenced name or the primitive kind of an
// additionalProperties schema
func nestedTypeName(sr *openapi3.SchemaRef) string {
	if sr.Ref != "" {
		return refName(sr.Ref)
	}
	return typeString(sr.Value)
}

// refName keeps the last path segment of a $ref: "#/definitions/Address" -> "Address"
func refName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// enumValues keeps schema order and duplicates; non-string literals are stringified
func enumValues(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, cast.ToString(v))
	}
	return out
}
