// Package schema loads JSON-Schema style documents holding a "definitions"
// map and keeps the key order the generator needs for stable output.
package schema

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document is a parsed schema document
type Document struct {
	Definitions openapi3.Schemas
	order       *keyOrder
}

// NewDocument wraps definitions built in code. Without recorded key order,
// names are returned sorted.
func NewDocument(defs openapi3.Schemas) *Document {
	return &Document{Definitions: defs}
}

// WithOrder records the definition order and, per definition, the property order
func (d *Document) WithOrder(definitions []string, properties map[string][]string) *Document {
	d.order = &keyOrder{definitions: definitions, properties: properties}
	return d
}

// DefinitionNames returns the definition names in document order
func (d *Document) DefinitionNames() []string {
	var recorded []string
	if d.order != nil {
		recorded = d.order.definitions
	}
	return orderedKeys(recorded, d.Definitions)
}

// PropertyNames returns the property names of a definition in document order
func (d *Document) PropertyNames(defName string, def *openapi3.Schema) []string {
	if def == nil {
		return nil
	}
	var recorded []string
	if d.order != nil {
		recorded = d.order.properties[defName]
	}
	return orderedKeys(recorded, def.Properties)
}

// orderedKeys returns the keys of m following recorded, then any keys missing
// from recorded in sorted order
func orderedKeys(recorded []string, m openapi3.Schemas) []string {
	out := make([]string, 0, len(m))
	seen := make(map[string]struct{}, len(m))
	for _, k := range recorded {
		if _, ok := m[k]; !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}

	var rest []string
	for k := range m {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
