package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"hello", "hello", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive
		{"ABC", "abc", 3},

		// Multi-byte runes count once
		{"größe", "grösse", 2},

		// Parameter names
		{"docroot", "doc_root", 1},
		{"servers", "server", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "servicename", Normalize("service_name"))
	assert.Equal(t, "servicename", Normalize("serviceName"))
	assert.Equal(t, "servicename", Normalize("Service-Name"))
	assert.Equal(t, "port", Normalize("$port"))
	assert.Empty(t, Normalize(""))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("doc_root", "docroot"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", "_"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("port", "pert"), 1e-9)
}

func TestSuggest(t *testing.T) {
	params := []string{"ensure", "docroot", "port", "servername", "ports"}

	tests := []struct {
		name string
		want []string
	}{
		{name: "doc_root", want: []string{"docroot"}},
		{name: "porta", want: []string{"port", "ports"}},
		{name: "server_name", want: []string{"servername"}},
		{name: "ghost", want: []string{}},
		{name: "port", want: []string{"ports"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.name, params, DefaultThreshold))
		})
	}
}

func TestSuggest_Limit(t *testing.T) {
	got := Suggest("ab", []string{"abc", "abd", "abe", "abf"}, 0.5)
	assert.Equal(t, []string{"abc", "abd", "abe"}, got)
}
