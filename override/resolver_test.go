package override

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	resolver := NewResolver()

	t.Run("pricing vocabulary forces the pricing document", func(t *testing.T) {
		for _, query := range []string{
			"what is the price?",
			"how much does it cost",
			"do you offer a subscription",
			"which plan should I pick",
		} {
			docId, ok := resolver.Resolve(query)
			assert.True(t, ok, query)
			assert.Equal(t, "pricing", docId, query)
		}
	})

	t.Run("feature name forces its document", func(t *testing.T) {
		docId, ok := resolver.Resolve("tell me about the elefantgotchi")

		assert.True(t, ok)
		assert.Equal(t, "elefantgotchi", docId)
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		docId, ok := resolver.Resolve("WHAT DOES THE SUBSCRIPTION COST?")

		assert.True(t, ok)
		assert.Equal(t, "pricing", docId)
	})

	t.Run("last evaluated trigger wins", func(t *testing.T) {
		// both triggers match; pricing is evaluated later in the table
		docId, ok := resolver.Resolve("how much does the elefantgotchi cost?")

		assert.True(t, ok)
		assert.Equal(t, "pricing", docId)
	})

	t.Run("no trigger no override", func(t *testing.T) {
		docId, ok := resolver.Resolve("tell me a joke")

		assert.False(t, ok)
		assert.Empty(t, docId)
	})

	t.Run("custom table preserves declaration order", func(t *testing.T) {
		r := NewResolver(
			Trigger{Phrases: []string{"alpha"}, DocId: "a"},
			Trigger{Phrases: []string{"beta"}, DocId: "b"},
		)

		docId, ok := r.Resolve("alpha and beta")

		assert.True(t, ok)
		assert.Equal(t, "b", docId)
	})
}
