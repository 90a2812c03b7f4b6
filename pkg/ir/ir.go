package ir

// PropType is the primitive kind tag of a schema property
type PropType string

const (
	TypeString  PropType = "string"
	TypeNumber  PropType = "number"
	TypeInteger PropType = "integer"
	TypeFloat   PropType = "float"
	TypeObject  PropType = "object"
	TypeArray   PropType = "array"
	TypeBoolean PropType = "boolean"
	TypeNull    PropType = "null"
)

// primitiveTypes lists every kind a backend is expected to map
var primitiveTypes = map[PropType]struct{}{
	TypeString:  {},
	TypeNumber:  {},
	TypeInteger: {},
	TypeFloat:   {},
	TypeObject:  {},
	TypeArray:   {},
	TypeBoolean: {},
	TypeNull:    {},
}

// IsPrimitive reports whether t is one of the known primitive kinds
func (t PropType) IsPrimitive() bool {
	_, ok := primitiveTypes[t]
	return ok
}

// Struct represents one generated type
type Struct struct {
	Name        string
	Description string
	// Properties keep the schema property order; output fields follow it
	Properties []Property
	// Enums synthesized from this struct's properties
	Enums []Enum
}

// Property represents a single field of a Struct
type Property struct {
	Name        string
	Type        PropType
	Description string
	Format      string
	// Ref is the bare name of a referenced definition (last $ref segment)
	Ref string
	// Enum is the name of the enum synthesized for an inline enum list
	Enum string
	// AdditionalPropertyType is the value type of a map, or the element type of an array
	AdditionalPropertyType string
	IsRequired             bool
}

// IsNamed reports whether the property points at a generated type rather than a primitive
func (p Property) IsNamed() bool {
	return p.Ref != "" || p.Enum != ""
}

// Enum represents a synthesized, string-valued enumeration
type Enum struct {
	Name   string
	Values []string
}

// EnumName builds the synthesized enum name for a struct property
func EnumName(structName, propName string) string {
	return structName + "_" + propName
}

// AllEnums flattens the per-struct enums in struct order
func AllEnums(structs []Struct) []Enum {
	var out []Enum
	for _, s := range structs {
		out = append(out, s.Enums...)
	}
	return out
}
