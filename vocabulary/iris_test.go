package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalName(t *testing.T) {
	tests := []struct {
		name     string
		iri      string
		expected string
	}{
		{"fragment", "https://sinople.org/ontology#time", "time"},
		{"path segment", "https://example.org/constructs/space", "space"},
		{"fragment wins over path", "https://example.org/a/b#frag", "frag"},
		{"no separator", "urn:isbn:0451450523", "urn:isbn:0451450523"},
		{"trailing hash", "https://example.org/thing#", "https://example.org/thing#"},
		{"trailing slash", "https://example.org/thing/", "https://example.org/thing/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LocalName(tt.iri))
		})
	}
}

func TestExpandCURIE(t *testing.T) {
	prefixes := map[string]string{
		"sn": "https://sinople.org/ontology#",
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"registered prefix", "sn:time", "https://sinople.org/ontology#time"},
		{"unregistered prefix passes through", "ex:thing", "ex:thing"},
		{"full IRI passes through", "https://sinople.org/ontology#time", "https://sinople.org/ontology#time"},
		{"no colon passes through", "time", "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandCURIE(tt.input, prefixes))
		})
	}
}

func TestIsReservedPredicate(t *testing.T) {
	assert.True(t, IsReservedPredicate(RdfType))
	assert.True(t, IsReservedPredicate(RdfsLabel))
	assert.True(t, IsReservedPredicate(RdfsComment))
	assert.True(t, IsReservedPredicate(SinopleHasGloss))

	assert.False(t, IsReservedPredicate(SinopleHasSource))
	assert.False(t, IsReservedPredicate(SinopleHasConstruct))
	assert.False(t, IsReservedPredicate("https://example.org/custom"))
}
