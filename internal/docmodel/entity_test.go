package docmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntity_TagLookup(t *testing.T) {
	first := &Tag{Kind: TagParam, Name: "a", Text: "first"}
	second := &Tag{Kind: TagParam, Name: "a", Text: "second"}
	ret := &Tag{Kind: "return", Name: "a"}

	e := &Entity{Tags: []*Tag{ret, first, second}}

	assert.Equal(t, []*Tag{first, second}, e.TagsOf(TagParam))
	assert.Same(t, first, e.FindTag(TagParam, "a"))
	assert.Same(t, ret, e.FindTag("return", "a"))
	assert.Nil(t, e.FindTag(TagParam, "A"))

	added := &Tag{Kind: TagParam, Name: "b"}
	e.AddTag(added)
	assert.Same(t, added, e.FindTag(TagParam, "b"))
}

func TestEntity_Parameter(t *testing.T) {
	e := &Entity{Parameters: []Parameter{{Name: "x", Type: "String"}, {Name: "y"}}}

	p, ok := e.Parameter("x")
	require.True(t, ok)
	assert.True(t, p.HasType())

	p, ok = e.Parameter("y")
	require.True(t, ok)
	assert.False(t, p.HasType())

	_, ok = e.Parameter("z")
	assert.False(t, ok)
}

func TestEntity_HasDocstring(t *testing.T) {
	assert.False(t, (&Entity{}).HasDocstring())
	assert.False(t, (&Entity{Docstring: " \n\t"}).HasDocstring())
	assert.True(t, (&Entity{Docstring: "Does a thing."}).HasDocstring())
}

func TestTag_Types(t *testing.T) {
	unset := &Tag{}
	assert.False(t, unset.TypesSet())
	assert.False(t, unset.HasTypes())

	empty := &Tag{Types: []string{}}
	assert.True(t, empty.TypesSet())
	assert.False(t, empty.HasTypes())

	typed := &Tag{Types: []string{FallbackType}}
	assert.True(t, typed.HasTypes())
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "init.pp:3", Location{File: "init.pp", Line: 3}.String())
	assert.Equal(t, "unknown:0", Location{}.String())
}

func TestEntityKind(t *testing.T) {
	tests := []struct {
		in   string
		want EntityKind
	}{
		{"func", EntityKindFunc},
		{"function", EntityKindFunc},
		{"method", EntityKindMethod},
		{"class", EntityKindDefined},
		{"", EntityKindDefined},
		{"gadget", EntityKindUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseEntityKind(tt.in), "kind %q", tt.in)
	}

	for _, k := range []EntityKind{EntityKindFunc, EntityKindMethod, EntityKindDefined} {
		assert.Equal(t, k, ParseEntityKind(k.String()))
	}
	assert.Equal(t, "unknown", EntityKindUnknown.String())
}
