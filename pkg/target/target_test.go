package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/blimu-dev/jsontyper/pkg/ir"
)

// stubMapper renders types in a neutral notation so dispatch can be checked in isolation
type stubMapper struct {
	s *Session
}

func (m stubMapper) NamedType(name string) string { return "named:" + name }

func (m stubMapper) StringType(format string) string {
	if format == "uuid" {
		m.s.AddExternal("uuid")
		return "uuid"
	}
	return "str"
}

func (m stubMapper) MapType(v string) string   { return "map<" + v + ">" }
func (m stubMapper) ArrayType(e string) string { return "list<" + e + ">" }

func (m stubMapper) PrimitiveType(t ir.PropType) (string, bool) {
	switch t {
	case ir.TypeBoolean, ir.TypeNull, ir.TypeNumber, ir.TypeInteger, ir.TypeFloat:
		return "prim:" + string(t), true
	}
	return "", false
}

func (m stubMapper) Optional(t string) string { return "opt<" + t + ">" }

func TestResolveProperty(t *testing.T) {
	tests := []struct {
		name     string
		prop     ir.Property
		expected string
	}{
		{"ref wins over type", ir.Property{Type: ir.TypeString, Ref: "Address", IsRequired: true}, "named:Address"},
		{"enum wins over type", ir.Property{Type: ir.TypeString, Enum: "User_role", IsRequired: true}, "named:User_role"},
		{"plain string", ir.Property{Type: ir.TypeString, IsRequired: true}, "str"},
		{"optional string", ir.Property{Type: ir.TypeString}, "opt<str>"},
		{"object default value", ir.Property{Type: ir.TypeObject, IsRequired: true}, "map<str>"},
		{"object primitive value", ir.Property{Type: ir.TypeObject, AdditionalPropertyType: "integer", IsRequired: true}, "map<prim:integer>"},
		{"object named value", ir.Property{Type: ir.TypeObject, AdditionalPropertyType: "Address", IsRequired: true}, "map<named:Address>"},
		{"array default element", ir.Property{Type: ir.TypeArray}, "opt<list<str>>"},
		{"array primitive element", ir.Property{Type: ir.TypeArray, AdditionalPropertyType: "boolean", IsRequired: true}, "list<prim:boolean>"},
		{"array of objects", ir.Property{Type: ir.TypeArray, AdditionalPropertyType: "object", IsRequired: true}, "list<map<str>>"},
		{"float", ir.Property{Type: ir.TypeFloat, IsRequired: true}, "prim:float"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := NewSession(zaptest.NewLogger(t))
			got := ResolveProperty(s, stubMapper{s: s}, test.prop)
			assert.Equal(t, test.expected, got)
			assert.Empty(t, s.Warnings())
		})
	}
}

func TestResolvePropertyUnresolvableIsLenient(t *testing.T) {
	s := NewSession(zaptest.NewLogger(t))

	got := ResolveProperty(s, stubMapper{s: s}, ir.Property{Name: "amount", Type: "decimal", IsRequired: true})
	assert.Equal(t, "", got)

	got = ResolveProperty(s, stubMapper{s: s}, ir.Property{Name: "note", Type: ""})
	assert.Equal(t, "opt<>", got)

	require.Len(t, s.Warnings(), 2)
	assert.Equal(t, `Could not resolve prop type: "decimal"`, s.Warnings()[0])
	assert.Equal(t, `Could not resolve prop type: ""`, s.Warnings()[1])
}

func TestSessionExternalsAreIdempotent(t *testing.T) {
	s := NewSession(nil)
	m := stubMapper{s: s}

	ResolveProperty(s, m, ir.Property{Type: ir.TypeString, Format: "uuid"})
	ResolveProperty(s, m, ir.Property{Type: ir.TypeString, Format: "uuid"})
	s.AddExternal("other")

	assert.Equal(t, []string{"uuid", "other"}, s.Externals.List())
}

func TestSessionWarnings(t *testing.T) {
	s := NewSession(nil)
	s.Warnf("Definition %q has no properties", "Empty")
	s.Warn("second")

	w := s.Warnings()
	assert.Equal(t, []string{`Definition "Empty" has no properties`, "second"}, w)

	w[0] = "mutated"
	assert.Equal(t, `Definition "Empty" has no properties`, s.Warnings()[0])
}

func TestResolvePropertyWarningNamesDefinition(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := NewSession(zap.New(core))
	prop := ir.Property{Name: "x", Type: "decimal", IsRequired: true}

	s.SetDefinition("Price")
	ResolveProperty(s, stubMapper{s: s}, prop)
	s.SetDefinition("")
	ResolveProperty(s, stubMapper{s: s}, prop)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Price", entries[0].ContextMap()["definition"])
	assert.NotContains(t, entries[1].ContextMap(), "definition")
	assert.Equal(t, 2, s.Unresolved())
}
