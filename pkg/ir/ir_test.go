package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExternalsDeduplicatesInFirstSeenOrder(t *testing.T) {
	ext := NewExternals()

	assert.True(t, ext.Add("time"))
	assert.True(t, ext.Add("github.com/google/uuid"))
	assert.False(t, ext.Add("time"))
	assert.False(t, ext.Add("github.com/google/uuid"))

	assert.Equal(t, []string{"time", "github.com/google/uuid"}, ext.List())
	assert.Equal(t, 2, ext.Len())
	assert.True(t, ext.Has("time"))
	assert.False(t, ext.Has("fmt"))
}

func TestExternalsZeroValueIsUsable(t *testing.T) {
	var ext Externals
	assert.True(t, ext.Add("uuid::Uuid"))
	assert.False(t, ext.Add("uuid::Uuid"))
	assert.Equal(t, []string{"uuid::Uuid"}, ext.List())
}

func TestExternalsListIsACopy(t *testing.T) {
	ext := NewExternals()
	ext.Add("a")
	list := ext.List()
	list[0] = "b"
	assert.Equal(t, []string{"a"}, ext.List())
}

func TestPropTypeIsPrimitive(t *testing.T) {
	tests := []struct {
		input    PropType
		expected bool
	}{
		{TypeString, true},
		{TypeFloat, true},
		{TypeNull, true},
		{"", false},
		{"decimal", false},
		{"string|null", false},
	}

	for _, test := range tests {
		if got := test.input.IsPrimitive(); got != test.expected {
			t.Errorf("PropType(%q).IsPrimitive() = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestAllEnumsKeepsStructOrder(t *testing.T) {
	structs := []Struct{
		{Name: "User", Enums: []Enum{{Name: "User_role"}, {Name: "User_status"}}},
		{Name: "Empty"},
		{Name: "Order", Enums: []Enum{{Name: "Order_state"}}},
	}

	enums := AllEnums(structs)
	names := make([]string, 0, len(enums))
	for _, e := range enums {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"User_role", "User_status", "Order_state"}, names)
	assert.Equal(t, "User_role", EnumName("User", "role"))
}
