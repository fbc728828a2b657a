package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllEntities(t *testing.T) {
	s := AllEntities()

	assert.True(t, s.IsAll())
	assert.False(t, s.IsEmpty())
	assert.True(t, s.Contains("qualquer"))
	assert.Nil(t, s.IDs())
}

func TestEntities(t *testing.T) {
	s := Entities("doc-2", "doc-1", "doc-2", "")

	require.False(t, s.IsAll())
	require.False(t, s.IsEmpty())
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("doc-1"))
	assert.True(t, s.Contains("doc-2"))
	assert.False(t, s.Contains("doc-3"))
	assert.Equal(t, []string{"doc-1", "doc-2"}, s.IDs())
}

func TestEntitiesEmpty(t *testing.T) {
	assert.True(t, Entities().IsEmpty())
	assert.True(t, Entities("").IsEmpty())
	assert.Equal(t, 0, Entities().Len())
}

func TestScopeWithout(t *testing.T) {
	covered := map[string]struct{}{"doc-1": {}, "doc-2": {}}

	reduced := Entities("doc-1", "doc-2", "doc-3").without(covered)
	require.False(t, reduced.IsEmpty())
	assert.Equal(t, []string{"doc-3"}, reduced.IDs())

	emptied := Entities("doc-1", "doc-2").without(covered)
	assert.True(t, emptied.IsEmpty())

	// ALL nunca é reduzido por cobertura parcial.
	all := AllEntities().without(covered)
	assert.True(t, all.IsAll())
}
