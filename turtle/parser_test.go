package turtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperpolymath/semgraph/errors"
	"github.com/hyperpolymath/semgraph/rdf"
)

func parse(t *testing.T, input string) []*rdf.Triple {
	t.Helper()
	triples, err := NewParser(input).Parse()
	require.NoError(t, err)
	return triples
}

func TestParseEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"whitespace only", "  \n\t\r\n  "},
		{"comments only", "# just a comment\n# another\n"},
		{"prefix only", "@prefix sn: <https://sinople.org/ontology#> .\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triples := parse(t, tt.input)
			assert.Empty(t, triples)
		})
	}
}

func TestParseSimpleTriple(t *testing.T) {
	triples := parse(t, `<https://example.org/s> <https://example.org/p> <https://example.org/o> .`)

	require.Len(t, triples, 1)
	assert.Equal(t, rdf.NewIRI("https://example.org/s"), triples[0].Subject)
	assert.Equal(t, rdf.NewIRI("https://example.org/p"), triples[0].Predicate)
	assert.Equal(t, rdf.NewIRI("https://example.org/o"), triples[0].Object)
}

func TestParsePrefixedNames(t *testing.T) {
	input := `@prefix sn: <https://sinople.org/ontology#> .
sn:time a sn:Construct .`

	triples := parse(t, input)

	require.Len(t, triples, 1)
	assert.Equal(t, rdf.NewIRI("https://sinople.org/ontology#time"), triples[0].Subject)
	assert.Equal(t, rdf.NewIRI("https://www.w3.org/1999/02/22-rdf-syntax-ns#type"), triples[0].Predicate)
	assert.Equal(t, rdf.NewIRI("https://sinople.org/ontology#Construct"), triples[0].Object)
}

func TestParseSparqlStylePrefix(t *testing.T) {
	input := `PREFIX sn: <https://sinople.org/ontology#>
sn:time a sn:Construct .`

	triples := parse(t, input)
	require.Len(t, triples, 1)
}

func TestParseKeywordNamedPrefixes(t *testing.T) {
	// Prefixes spelling a directive or boolean keyword are ordinary
	// prefixed names, not directives.
	input := `@prefix base: <https://example.org/base#> .
@prefix true: <https://example.org/true#> .
base:x <https://e.org/p> true:y .`

	triples := parse(t, input)

	require.Len(t, triples, 1)
	assert.Equal(t, rdf.NewIRI("https://example.org/base#x"), triples[0].Subject)
	assert.Equal(t, rdf.NewIRI("https://example.org/true#y"), triples[0].Object)
}

func TestParsePrefixNameRejectsTabBeforeColon(t *testing.T) {
	// Whitespace between the prefix name and ':' is invalid; a tab must
	// not fold into the name.
	_, err := NewParser("@prefix sn\t: <https://sinople.org/ontology#> .\nsn:time <https://e.org/p> \"v\" .").Parse()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "':'")
}

func TestParseUndeclaredPrefix(t *testing.T) {
	_, err := NewParser(`sn:time a sn:Construct .`).Parse()

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownPrefix)
}

func TestParsePredicateObjectGrouping(t *testing.T) {
	input := `@prefix sn: <https://sinople.org/ontology#> .
@prefix rdfs: <https://www.w3.org/2000/01/rdf-schema#> .
sn:time a sn:Construct ;
    rdfs:label "Time" ;
    sn:hasGloss "the fourth dimension"@en , "la quatrième dimension"@fr .`

	triples := parse(t, input)

	require.Len(t, triples, 4)
	// All four triples share the subject.
	for _, triple := range triples {
		assert.Equal(t, rdf.NewIRI("https://sinople.org/ontology#time"), triple.Subject)
	}
	// Comma-separated objects preserve statement order.
	assert.Equal(t, rdf.NewLangLiteral("the fourth dimension", "en"), triples[2].Object)
	assert.Equal(t, rdf.NewLangLiteral("la quatrième dimension", "fr"), triples[3].Object)
}

func TestParseTrailingSemicolon(t *testing.T) {
	input := `@prefix rdfs: <https://www.w3.org/2000/01/rdf-schema#> .
<https://example.org/s> rdfs:label "s" ; .`

	triples := parse(t, input)
	require.Len(t, triples, 1)
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected rdf.Term
	}{
		{
			name:     "plain literal",
			input:    `<https://e.org/s> <https://e.org/p> "plain" .`,
			expected: rdf.NewLiteral("plain"),
		},
		{
			name:     "language tag",
			input:    `<https://e.org/s> <https://e.org/p> "tagged"@en-GB .`,
			expected: rdf.NewLangLiteral("tagged", "en-GB"),
		},
		{
			name:     "explicit datatype",
			input:    `<https://e.org/s> <https://e.org/p> "5"^^<https://www.w3.org/2001/XMLSchema#integer> .`,
			expected: rdf.NewTypedLiteral("5", rdf.XSDInteger),
		},
		{
			name:     "integer shorthand",
			input:    `<https://e.org/s> <https://e.org/p> 42 .`,
			expected: rdf.NewTypedLiteral("42", rdf.XSDInteger),
		},
		{
			name:     "negative integer",
			input:    `<https://e.org/s> <https://e.org/p> -7 .`,
			expected: rdf.NewTypedLiteral("-7", rdf.XSDInteger),
		},
		{
			name:     "decimal shorthand",
			input:    `<https://e.org/s> <https://e.org/p> 3.14 .`,
			expected: rdf.NewTypedLiteral("3.14", rdf.XSDDecimal),
		},
		{
			name:     "double shorthand",
			input:    `<https://e.org/s> <https://e.org/p> 1.5e3 .`,
			expected: rdf.NewTypedLiteral("1.5e3", rdf.XSDDouble),
		},
		{
			name:     "boolean shorthand",
			input:    `<https://e.org/s> <https://e.org/p> true .`,
			expected: rdf.NewBooleanLiteral(true),
		},
		{
			name:     "escapes",
			input:    `<https://e.org/s> <https://e.org/p> "line\nbreak \"quoted\"" .`,
			expected: rdf.NewLiteral("line\nbreak \"quoted\""),
		},
		{
			name:     "unicode escape",
			input:    `<https://e.org/s> <https://e.org/p> "grün" .`,
			expected: rdf.NewLiteral("grün"),
		},
		{
			name:     "single quotes",
			input:    `<https://e.org/s> <https://e.org/p> 'single' .`,
			expected: rdf.NewLiteral("single"),
		},
		{
			name:     "long string",
			input:    "<https://e.org/s> <https://e.org/p> \"\"\"multi\nline\"\"\" .",
			expected: rdf.NewLiteral("multi\nline"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triples := parse(t, tt.input)
			require.Len(t, triples, 1)
			assert.Equal(t, tt.expected, triples[0].Object)
		})
	}
}

func TestParseUnterminatedLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing close quote", `<https://e.org/s> <https://e.org/p> "open .`},
		{"newline inside short string", "<https://e.org/s> <https://e.org/p> \"line\nbreak\" ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(tt.input).Parse()
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrUnterminatedLiteral)
		})
	}
}

func TestParseComments(t *testing.T) {
	input := `# leading comment
@prefix sn: <https://sinople.org/ontology#> . # trailing comment
sn:time # mid-statement comment
    a sn:Construct .`

	triples := parse(t, input)
	require.Len(t, triples, 1)
}

func TestParseBlankNodes(t *testing.T) {
	t.Run("labeled blank node subject", func(t *testing.T) {
		triples := parse(t, `_:b1 <https://e.org/p> "v" .`)
		require.Len(t, triples, 1)
		assert.Equal(t, rdf.NewBlankNode("b1"), triples[0].Subject)
	})

	t.Run("anonymous blank node object", func(t *testing.T) {
		triples := parse(t, `<https://e.org/s> <https://e.org/p> [] .`)
		require.Len(t, triples, 1)
		assert.Equal(t, rdf.TermTypeBlankNode, triples[0].Object.Type())
	})

	t.Run("property list object", func(t *testing.T) {
		input := `@prefix rdfs: <https://www.w3.org/2000/01/rdf-schema#> .
<https://e.org/s> <https://e.org/p> [ rdfs:label "inner" ] .`

		triples := parse(t, input)
		require.Len(t, triples, 2)

		// The property triple comes first, then the containing statement.
		inner := triples[0]
		outer := triples[1]
		assert.Equal(t, rdf.NewLiteral("inner"), inner.Object)
		assert.True(t, outer.Object.Equals(inner.Subject))
	})

	t.Run("distinct anonymous nodes", func(t *testing.T) {
		triples := parse(t, `<https://e.org/s> <https://e.org/p> [] , [] .`)
		require.Len(t, triples, 2)
		assert.False(t, triples[0].Object.Equals(triples[1].Object))
	})
}

func TestParseCollectionsRejected(t *testing.T) {
	_, err := NewParser(`<https://e.org/s> <https://e.org/p> ( "a" "b" ) .`).Parse()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "collections are not supported")
}

func TestParseBase(t *testing.T) {
	input := `@base <https://example.org/data/> .
<thing> <https://e.org/p> "v" .`

	triples := parse(t, input)

	require.Len(t, triples, 1)
	assert.Equal(t, rdf.NewIRI("https://example.org/data/thing"), triples[0].Subject)
}

func TestParseRelativeIRIWithoutBase(t *testing.T) {
	_, err := NewParser(`<thing> <https://e.org/p> "v" .`).Parse()

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMalformedIRI)
}

func TestParseMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"literal subject", `"bad" <https://e.org/p> "v" .`},
		{"literal predicate", `<https://e.org/s> "bad" "v" .`},
		{"missing terminator", `<https://e.org/s> <https://e.org/p> "v"`},
		{"unclosed IRI", `<https://e.org/s <https://e.org/p> "v" .`},
		{"truncated statement", `<https://e.org/s> <https://e.org/p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(tt.input).Parse()
			assert.Error(t, err)
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	input := `@prefix sn: <https://sinople.org/ontology#> .
sn:a a sn:Construct .
sn:b <https://e.org/p> [ <https://e.org/q> "v" ] .`

	first := parse(t, input)
	second := parse(t, input)

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Subject.Equals(second[i].Subject))
		assert.True(t, first[i].Predicate.Equals(second[i].Predicate))
		assert.True(t, first[i].Object.Equals(second[i].Object))
	}
}

func TestParseStatementOrder(t *testing.T) {
	input := `@prefix sn: <https://sinople.org/ontology#> .
sn:first a sn:Construct .
sn:second a sn:Construct .
sn:third a sn:Construct .`

	triples := parse(t, input)

	require.Len(t, triples, 3)
	assert.Equal(t, rdf.NewIRI("https://sinople.org/ontology#first"), triples[0].Subject)
	assert.Equal(t, rdf.NewIRI("https://sinople.org/ontology#second"), triples[1].Subject)
	assert.Equal(t, rdf.NewIRI("https://sinople.org/ontology#third"), triples[2].Subject)
}
