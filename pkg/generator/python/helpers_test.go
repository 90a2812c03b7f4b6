package python

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blimu-dev/jsontyper/pkg/ir"
	"github.com/blimu-dev/jsontyper/pkg/target"
)

func newTestResolver() (*Resolver, *target.Session) {
	s := target.NewSession(nil)
	return NewBackend().NewResolver(s).(*Resolver), s
}

func TestResolveType(t *testing.T) {
	tests := []struct {
		prop      ir.Property
		expected  string
		externals []string
	}{
		{ir.Property{Type: ir.TypeString, IsRequired: true}, "str", nil},
		{ir.Property{Type: ir.TypeString}, "Optional[str]", []string{"typing.Optional"}},
		{ir.Property{Type: ir.TypeNumber, IsRequired: true}, "int", nil},
		{ir.Property{Type: ir.TypeInteger, IsRequired: true}, "int", nil},
		{ir.Property{Type: ir.TypeFloat, IsRequired: true}, "float", nil},
		{ir.Property{Type: ir.TypeBoolean, IsRequired: true}, "bool", nil},
		{ir.Property{Type: ir.TypeNull, IsRequired: true}, "None", nil},
		{ir.Property{Type: ir.TypeString, Format: "date-time", IsRequired: true}, "datetime", []string{"datetime.datetime"}},
		{ir.Property{Type: ir.TypeString, Format: "date", IsRequired: true}, "date", []string{"datetime.date"}},
		{ir.Property{Type: ir.TypeString, Format: "uuid", IsRequired: true}, "UUID", []string{"uuid.UUID"}},
		{ir.Property{Type: ir.TypeObject, IsRequired: true}, "Dict[str, str]", []string{"typing.Dict"}},
		{ir.Property{Type: ir.TypeArray, AdditionalPropertyType: "Address"}, "Optional[List[Address]]", []string{"typing.List", "typing.Optional"}},
		{ir.Property{Type: ir.TypeString, Enum: "User_role", IsRequired: true}, "UserRole", nil},
		{ir.Property{Type: ir.TypeString, Ref: "user_profile", IsRequired: true}, "UserProfile", nil},
	}

	for _, test := range tests {
		r, s := newTestResolver()
		assert.Equal(t, test.expected, r.ResolveType(test.prop), "%+v", test.prop)
		if test.externals == nil {
			assert.Empty(t, s.Externals.List(), "%+v", test.prop)
		} else {
			assert.Equal(t, test.externals, s.Externals.List(), "%+v", test.prop)
		}
	}
}

func TestResolveTypeUnresolvable(t *testing.T) {
	r, s := newTestResolver()

	assert.Equal(t, "Optional[]", r.ResolveType(ir.Property{Name: "blob", Type: "binary"}))
	assert.Equal(t, []string{`Could not resolve prop type: "binary"`}, s.Warnings())
}

func TestResolveIdentifier(t *testing.T) {
	tests := []struct {
		kind     target.IdentifierKind
		input    string
		expected string
	}{
		{target.TypeName, "user_profile", "UserProfile"},
		{target.EnumName, "User_role", "UserRole"},
		{target.PropName, "createdAt", "created_at"},
		{target.PropName, "class", "class_"},
		{target.PropName, "from", "from_"},
		{target.PropName, "2fa", "_2fa"},
		{target.PropName, "", "field"},
		{target.EnumValue, "admin", "ADMIN"},
		{target.EnumValue, "in-progress", "IN_PROGRESS"},
		{target.EnumValue, "2xx", "_2XX"},
		{target.EnumValue, "None", "NONE"},
		{target.TypeName, "none", "None_"},
	}

	r, _ := newTestResolver()
	for _, test := range tests {
		result := r.ResolveIdentifier(test.kind, test.input)
		if result != test.expected {
			t.Errorf("ResolveIdentifier(%s, %q) = %q, expected %q", test.kind, test.input, result, test.expected)
		}
	}
}
