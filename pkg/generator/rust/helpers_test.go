package rust

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
		prop     ir.Property
		expected string
	}{
		{ir.Property{Type: ir.TypeString, IsRequired: true}, "String"},
		{ir.Property{Type: ir.TypeString}, "Option<String>"},
		{ir.Property{Type: ir.TypeBoolean, IsRequired: true}, "bool"},
		{ir.Property{Type: ir.TypeNull, IsRequired: true}, "()"},
		{ir.Property{Type: ir.TypeNumber, IsRequired: true}, "u64"},
		{ir.Property{Type: ir.TypeInteger}, "Option<i64>"},
		{ir.Property{Type: ir.TypeFloat, IsRequired: true}, "f64"},
		{ir.Property{Type: ir.TypeArray, IsRequired: true}, "Vec<String>"},
		{ir.Property{Type: ir.TypeArray, AdditionalPropertyType: "float", IsRequired: true}, "Vec<f64>"},
		{ir.Property{Type: ir.TypeString, Ref: "address", IsRequired: true}, "Address"},
		{ir.Property{Type: ir.TypeString, Enum: "User_role"}, "Option<UserRole>"},
	}

	for _, test := range tests {
		r, _ := newTestResolver()
		result := r.ResolveType(test.prop)
		if result != test.expected {
			t.Errorf("ResolveType(%+v) = %q, expected %q", test.prop, result, test.expected)
		}
	}
}

func TestResolveTypeRegistersExternals(t *testing.T) {
	r, s := newTestResolver()

	assert.Equal(t, "Uuid", r.ResolveType(ir.Property{Type: ir.TypeString, Format: "uuid", IsRequired: true}))
	assert.Equal(t, "Option<DateTime<Utc>>", r.ResolveType(ir.Property{Type: ir.TypeString, Format: "date-time"}))
	assert.Equal(t, "HashMap<String, String>", r.ResolveType(ir.Property{Type: ir.TypeObject, IsRequired: true}))
	assert.Equal(t, "HashMap<String, Address>", r.ResolveType(ir.Property{Type: ir.TypeObject, AdditionalPropertyType: "Address", IsRequired: true}))

	assert.Equal(t, []string{"uuid::Uuid", "chrono::{DateTime, Utc}", "std::collections::HashMap"}, s.Externals.List())
}

func TestDateTimeDoesNotRegisterUuid(t *testing.T) {
	r, s := newTestResolver()
	r.ResolveType(ir.Property{Type: ir.TypeString, Format: "date"})
	assert.Equal(t, []string{"chrono::{DateTime, Utc}"}, s.Externals.List())
}

func TestResolveTypeUnresolvable(t *testing.T) {
	r, s := newTestResolver()

	assert.Equal(t, "Option<>", r.ResolveType(ir.Property{Name: "blob", Type: "binary"}))
	assert.Equal(t, "", r.ResolveType(ir.Property{Name: "blob", Type: "string|null", IsRequired: true}))
	assert.Len(t, s.Warnings(), 2)
	assert.Equal(t, 2, s.Unresolved())
}

func TestResolveIdentifier(t *testing.T) {
	tests := []struct {
		kind     target.IdentifierKind
		input    string
		expected string
	}{
		{target.TypeName, "user_profile", "UserProfile"},
		{target.EnumName, "User_role", "UserRole"},
		{target.EnumValue, "admin", "Admin"},
		{target.EnumValue, "in-progress", "InProgress"},
		{target.EnumValue, "2xx", "X2xx"},
		{target.EnumValue, "self", "Self_"},
		{target.PropName, "createdAt", "created_at"},
		{target.PropName, "id", "id"},
		{target.PropName, "type", "r#type"},
		{target.PropName, "match", "r#match"},
		{target.PropName, "self", "self_"},
		{target.PropName, "crate", "crate_"},
		{target.PropName, "Self", "self_"},
		{target.PropName, "2fa", "_2fa"},
		{target.PropName, "", "_field"},
	}

	r, _ := newTestResolver()
	for _, test := range tests {
		result := r.ResolveIdentifier(test.kind, test.input)
		if result != test.expected {
			t.Errorf("ResolveIdentifier(%s, %q) = %q, expected %q", test.kind, test.input, result, test.expected)
		}
	}
}
