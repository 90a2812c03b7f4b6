package schema

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
)

func TestDocumentWithoutOrderSortsNames(t *testing.T) {
	def := openapi3.NewObjectSchema().
		WithProperty("zeta", openapi3.NewStringSchema()).
		WithProperty("alpha", openapi3.NewStringSchema())
	doc := NewDocument(openapi3.Schemas{
		"B": def.NewRef(),
		"A": def.NewRef(),
	})

	assert.Equal(t, []string{"A", "B"}, doc.DefinitionNames())
	assert.Equal(t, []string{"alpha", "zeta"}, doc.PropertyNames("A", def))
	assert.Nil(t, doc.PropertyNames("A", nil))
}

func TestDocumentWithOrderAppendsUnrecordedKeys(t *testing.T) {
	def := openapi3.NewObjectSchema().
		WithProperty("c", openapi3.NewStringSchema()).
		WithProperty("b", openapi3.NewStringSchema()).
		WithProperty("a", openapi3.NewStringSchema())
	doc := NewDocument(openapi3.Schemas{
		"Second": def.NewRef(),
		"First":  def.NewRef(),
		"Extra":  def.NewRef(),
	}).WithOrder(
		[]string{"Second", "Ghost", "First", "Second"},
		map[string][]string{"First": {"c", "a"}},
	)

	assert.Equal(t, []string{"Second", "First", "Extra"}, doc.DefinitionNames())
	assert.Equal(t, []string{"c", "a", "b"}, doc.PropertyNames("First", def))
	assert.Equal(t, []string{"a", "b", "c"}, doc.PropertyNames("Second", def))
}
