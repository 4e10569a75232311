// Package turtle implements a recursive-descent parser for the Turtle
// subset the sinople ontology uses: prefix and base directives, IRIs and
// prefixed names, string literals with language tags or datatypes, numeric
// and boolean shorthand, predicate/object grouping with ';' and ',', and
// blank nodes (labels, anonymous nodes, property lists). RDF collections
// are rejected with a descriptive error.
//
// Parsing is pure: a parser value holds all state, and the same input
// always yields the same triple sequence.
package turtle

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hyperpolymath/semgraph/errors"
	"github.com/hyperpolymath/semgraph/rdf"
)

// Parser parses one Turtle document into an ordered triple sequence.
type Parser struct {
	input            string
	pos              int
	length           int
	prefixes         map[string]string
	base             string
	blankNodeCounter int
	// Triples generated while parsing a term (blank node property lists).
	extraTriples []*rdf.Triple
	// True if the last parsed term was a blank node property list, which
	// may stand alone as a subject with no predicate-object list.
	lastTermWasPropertyList bool
}

// NewParser creates a parser over the given Turtle text.
func NewParser(input string) *Parser {
	return &Parser{
		input:    input,
		length:   len(input),
		prefixes: make(map[string]string),
	}
}

// Parse parses the document and returns its triples in statement order.
// Empty input is valid and yields zero triples.
func (p *Parser) Parse() ([]*rdf.Triple, error) {
	var triples []*rdf.Triple

	for p.pos < p.length {
		p.skipWhitespaceAndComments()
		if p.pos >= p.length {
			break
		}

		// @prefix must be lowercase (case-sensitive), PREFIX is the
		// SPARQL-style form (case-insensitive).
		if p.matchExactKeyword("@prefix") || p.matchKeyword("PREFIX") {
			if err := p.parsePrefix(); err != nil {
				return nil, err
			}
			continue
		}

		isTurtleBase := p.matchExactKeyword("@base")
		if isTurtleBase || p.matchKeyword("BASE") {
			if err := p.parseBase(isTurtleBase); err != nil {
				return nil, err
			}
			continue
		}

		blockTriples, err := p.parseTripleBlock()
		if err != nil {
			return nil, err
		}
		triples = append(triples, blockTriples...)
	}

	return triples, nil
}

// skipWhitespaceAndComments skips whitespace and '#' comments.
func (p *Parser) skipWhitespaceAndComments() {
	for p.pos < p.length {
		ch := p.input[p.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			p.pos++
			continue
		}
		if ch == '#' {
			for p.pos < p.length && p.input[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		break
	}
}

// matchKeyword checks for a keyword at the cursor (case-insensitive) and
// advances past it on a match.
func (p *Parser) matchKeyword(keyword string) bool {
	if p.pos+len(keyword) > p.length {
		return false
	}
	if !strings.EqualFold(p.input[p.pos:p.pos+len(keyword)], keyword) {
		return false
	}
	return p.consumeKeyword(len(keyword))
}

// matchExactKeyword checks for a keyword at the cursor (case-sensitive)
// and advances past it on a match.
func (p *Parser) matchExactKeyword(keyword string) bool {
	if p.pos+len(keyword) > p.length {
		return false
	}
	if p.input[p.pos:p.pos+len(keyword)] != keyword {
		return false
	}
	return p.consumeKeyword(len(keyword))
}

// consumeKeyword advances past a keyword of the given length when it is
// not followed by a name character. A following ':' means the text is a
// prefixed name whose prefix happens to spell a keyword, not a directive.
func (p *Parser) consumeKeyword(n int) bool {
	if p.pos+n < p.length {
		next := p.input[p.pos+n]
		if (next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z') || (next >= '0' && next <= '9') || next == ':' {
			return false
		}
	}
	p.pos += n
	return true
}

// parsePrefix parses a prefix declaration: @prefix sn: <iri> .
func (p *Parser) parsePrefix() error {
	p.skipWhitespaceAndComments()

	prefixStart := p.pos
	for p.pos < p.length && p.input[p.pos] != ':' && p.input[p.pos] != ' ' && p.input[p.pos] != '\t' && p.input[p.pos] != '\n' {
		p.pos++
	}
	prefix := p.input[prefixStart:p.pos]

	if p.pos >= p.length || p.input[p.pos] != ':' {
		return fmt.Errorf("expected ':' after prefix name at position %d", p.pos)
	}
	p.pos++ // skip ':'

	p.skipWhitespaceAndComments()

	iri, err := p.parseIRIRef()
	if err != nil {
		return fmt.Errorf("invalid prefix IRI: %w", err)
	}

	p.prefixes[prefix] = iri

	p.skipWhitespaceAndComments()
	if p.pos < p.length && p.input[p.pos] == '.' {
		p.pos++
	}

	return nil
}

// parseBase parses a base declaration: @base <iri> .
func (p *Parser) parseBase(isTurtleStyle bool) error {
	p.skipWhitespaceAndComments()

	baseIRI, err := p.parseIRIRef()
	if err != nil {
		return fmt.Errorf("invalid base IRI: %w", err)
	}
	p.base = baseIRI

	p.skipWhitespaceAndComments()
	if isTurtleStyle && p.pos < p.length && p.input[p.pos] == '.' {
		p.pos++
	}

	return nil
}

// parseTripleBlock parses one subject with its predicate-object list and
// returns the triples it asserts, including triples produced by blank node
// property lists.
func (p *Parser) parseTripleBlock() ([]*rdf.Triple, error) {
	var triples []*rdf.Triple

	subject, err := p.parseTerm()
	if err != nil {
		return nil, fmt.Errorf("invalid subject: %w", err)
	}
	if _, ok := subject.(*rdf.Literal); ok {
		return nil, fmt.Errorf("literals cannot be used as subjects (position %d)", p.pos)
	}
	triples = append(triples, p.takeExtraTriples()...)

	// A sole blank node property list may stand alone: [ <p> <o> ] .
	p.skipWhitespaceAndComments()
	if p.lastTermWasPropertyList && p.pos < p.length && p.input[p.pos] == '.' {
		p.pos++
		return triples, nil
	}

	for {
		p.skipWhitespaceAndComments()

		predicate, err := p.parseTerm()
		if err != nil {
			return nil, fmt.Errorf("invalid predicate: %w", err)
		}
		if _, ok := predicate.(*rdf.IRI); !ok {
			return nil, fmt.Errorf("predicate must be an IRI (position %d)", p.pos)
		}

		for {
			p.skipWhitespaceAndComments()

			object, err := p.parseTerm()
			if err != nil {
				return nil, fmt.Errorf("invalid object: %w", err)
			}
			triples = append(triples, p.takeExtraTriples()...)
			triples = append(triples, rdf.NewTriple(subject, predicate, object))

			p.skipWhitespaceAndComments()

			// Comma: more objects for the same predicate.
			if p.pos < p.length && p.input[p.pos] == ',' {
				p.pos++
				continue
			}
			break
		}

		p.skipWhitespaceAndComments()

		// Semicolon: more predicates for the same subject. Repeated and
		// trailing semicolons are allowed.
		if p.pos < p.length && p.input[p.pos] == ';' {
			for p.pos < p.length && p.input[p.pos] == ';' {
				p.pos++
				p.skipWhitespaceAndComments()
			}
			if p.pos < p.length && p.input[p.pos] != '.' {
				continue
			}
		}
		break
	}

	if p.pos >= p.length || p.input[p.pos] != '.' {
		return nil, fmt.Errorf("expected '.' at end of statement (position %d)", p.pos)
	}
	p.pos++

	return triples, nil
}

// takeExtraTriples drains triples generated during term parsing.
func (p *Parser) takeExtraTriples() []*rdf.Triple {
	extra := p.extraTriples
	p.extraTriples = nil
	return extra
}

// parseTerm parses one RDF term: IRI, prefixed name, blank node, literal,
// or the 'a' keyword.
func (p *Parser) parseTerm() (rdf.Term, error) {
	p.skipWhitespaceAndComments()

	if p.pos >= p.length {
		return nil, errors.ErrUnexpectedEOF
	}

	p.lastTermWasPropertyList = false

	ch := p.input[p.pos]

	if ch == '<' {
		iri, err := p.parseIRIRef()
		if err != nil {
			return nil, err
		}
		return rdf.NewIRI(iri), nil
	}

	// Labeled blank node: _:label
	if ch == '_' && p.pos+1 < p.length && p.input[p.pos+1] == ':' {
		return p.parseBlankNodeLabel()
	}

	// Anonymous blank node or property list: [ ... ]
	if ch == '[' {
		return p.parseBlankNodePropertyList()
	}

	if ch == '(' {
		return nil, fmt.Errorf("RDF collections are not supported (position %d)", p.pos)
	}

	if ch == '"' || ch == '\'' {
		return p.parseLiteral()
	}

	if p.startsNumber() {
		return p.parseNumber()
	}

	// 'a' keyword: shorthand for rdf:type when not part of a longer name.
	if ch == 'a' {
		nextPos := p.pos + 1
		standalone := true
		if nextPos < p.length {
			r, _ := utf8.DecodeRuneInString(p.input[nextPos:])
			if isPNChars(r) || r == ':' || r == '.' {
				standalone = false
			}
		}
		if standalone {
			p.pos++
			return rdf.NewIRI("https://www.w3.org/1999/02/22-rdf-syntax-ns#type"), nil
		}
	}

	// Boolean shorthand (case-sensitive per Turtle grammar).
	if p.matchExactKeyword("true") {
		return rdf.NewBooleanLiteral(true), nil
	}
	if p.matchExactKeyword("false") {
		return rdf.NewBooleanLiteral(false), nil
	}

	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	if isPNCharsBase(r) || r == ':' {
		return p.parsePrefixedName()
	}

	return nil, fmt.Errorf("unexpected character %q at position %d", ch, p.pos)
}

// parseIRIRef parses an IRI in angle brackets, resolving relative IRIs
// against the document base when one is set.
func (p *Parser) parseIRIRef() (string, error) {
	if p.pos >= p.length || p.input[p.pos] != '<' {
		return "", fmt.Errorf("%w: expected '<' at position %d", errors.ErrMalformedIRI, p.pos)
	}
	p.pos++ // skip '<'

	var result strings.Builder
	for p.pos < p.length && p.input[p.pos] != '>' {
		ch := p.input[p.pos]

		if ch == '\\' {
			escaped, err := p.readUnicodeEscape()
			if err != nil {
				return "", fmt.Errorf("%w: %v", errors.ErrMalformedIRI, err)
			}
			result.WriteString(escaped)
			continue
		}

		// IRIs cannot contain whitespace, quotes, or control characters.
		if ch == ' ' || ch == '<' || ch == '"' || ch <= 0x1F {
			return "", fmt.Errorf("%w: invalid character %q at position %d", errors.ErrMalformedIRI, ch, p.pos)
		}

		result.WriteByte(ch)
		p.pos++
	}

	if p.pos >= p.length {
		return "", fmt.Errorf("%w: unclosed IRI", errors.ErrMalformedIRI)
	}
	p.pos++ // skip '>'

	iri := result.String()
	if !strings.Contains(iri, ":") {
		if p.base == "" {
			return "", fmt.Errorf("%w: relative IRI %q without base", errors.ErrMalformedIRI, iri)
		}
		iri = resolveAgainstBase(p.base, iri)
	}

	return iri, nil
}

// resolveAgainstBase resolves a relative reference against the document
// base. Only the forms the domain data uses are handled: fragments resolve
// against the base with any existing fragment stripped, everything else
// appends to the base directory.
func resolveAgainstBase(base, relative string) string {
	if relative == "" {
		return base
	}
	if strings.HasPrefix(relative, "#") {
		if idx := strings.Index(base, "#"); idx >= 0 {
			base = base[:idx]
		}
		return base + relative
	}
	if lastSlash := strings.LastIndex(base, "/"); lastSlash >= 0 {
		return base[:lastSlash+1] + relative
	}
	return base + "/" + relative
}

// readUnicodeEscape reads \uXXXX or \UXXXXXXXX at the cursor.
func (p *Parser) readUnicodeEscape() (string, error) {
	p.pos++ // skip '\'
	if p.pos >= p.length {
		return "", fmt.Errorf("incomplete escape sequence at position %d", p.pos)
	}

	var hexDigits int
	switch p.input[p.pos] {
	case 'u':
		hexDigits = 4
	case 'U':
		hexDigits = 8
	default:
		return "", fmt.Errorf("invalid escape '\\%c' at position %d", p.input[p.pos], p.pos)
	}
	p.pos++

	if p.pos+hexDigits > p.length {
		return "", fmt.Errorf("incomplete unicode escape at position %d", p.pos)
	}

	var codePoint rune
	for i := 0; i < hexDigits; i++ {
		d := hexValue(p.input[p.pos+i])
		if d < 0 {
			return "", fmt.Errorf("invalid hex digit %q in unicode escape at position %d", p.input[p.pos+i], p.pos+i)
		}
		codePoint = codePoint<<4 | rune(d)
	}
	p.pos += hexDigits

	// Surrogates are invalid in UTF-8 strings.
	if codePoint >= 0xD800 && codePoint <= 0xDFFF {
		return "", fmt.Errorf("surrogate code point U+%04X not allowed", codePoint)
	}
	if codePoint > 0x10FFFF {
		return "", fmt.Errorf("code point U+%X exceeds maximum U+10FFFF", codePoint)
	}

	return string(codePoint), nil
}

func hexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return -1
	}
}

// parseBlankNodeLabel parses _:label.
func (p *Parser) parseBlankNodeLabel() (rdf.Term, error) {
	p.pos += 2 // skip '_:'
	start := p.pos

	if p.pos < p.length {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !isPNCharsU(r) && !(r >= '0' && r <= '9') {
			return nil, fmt.Errorf("invalid blank node label at position %d", p.pos)
		}
		p.pos += size
	}

	lastWasDot := false
	for p.pos < p.length {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !isPNChars(r) && r != '.' {
			break
		}
		lastWasDot = r == '.'
		p.pos += size
	}
	// Labels cannot end with '.' - the dot terminates the statement.
	if lastWasDot {
		p.pos--
	}

	return rdf.NewBlankNode(p.input[start:p.pos]), nil
}

// newBlankNode generates a fresh blank node for anonymous syntax. Labels
// are document-scoped, matching blank node semantics.
func (p *Parser) newBlankNode() *rdf.BlankNode {
	p.blankNodeCounter++
	return rdf.NewBlankNode(fmt.Sprintf("anon%d", p.blankNodeCounter))
}

// parseBlankNodePropertyList parses [] or [ p o ; ... ]. Property triples
// are queued on extraTriples; the blank node itself is returned as the
// term.
func (p *Parser) parseBlankNodePropertyList() (rdf.Term, error) {
	p.pos++ // skip '['
	p.skipWhitespaceAndComments()

	blankNode := p.newBlankNode()

	if p.pos < p.length && p.input[p.pos] == ']' {
		p.pos++
		return blankNode, nil
	}

	for {
		p.skipWhitespaceAndComments()
		if p.pos >= p.length {
			return nil, fmt.Errorf("%w: unterminated blank node property list", errors.ErrUnexpectedEOF)
		}
		if p.input[p.pos] == ']' {
			break
		}

		predicate, err := p.parseTerm()
		if err != nil {
			return nil, fmt.Errorf("invalid predicate in property list: %w", err)
		}
		if _, ok := predicate.(*rdf.IRI); !ok {
			return nil, fmt.Errorf("property list predicate must be an IRI (position %d)", p.pos)
		}

		for {
			p.skipWhitespaceAndComments()

			object, err := p.parseTerm()
			if err != nil {
				return nil, fmt.Errorf("invalid object in property list: %w", err)
			}
			p.extraTriples = append(p.extraTriples, rdf.NewTriple(blankNode, predicate, object))

			p.skipWhitespaceAndComments()
			if p.pos < p.length && p.input[p.pos] == ',' {
				p.pos++
				continue
			}
			break
		}

		p.skipWhitespaceAndComments()
		if p.pos < p.length && p.input[p.pos] == ';' {
			for p.pos < p.length && p.input[p.pos] == ';' {
				p.pos++
				p.skipWhitespaceAndComments()
			}
			continue
		}
		break
	}

	if p.pos >= p.length || p.input[p.pos] != ']' {
		return nil, fmt.Errorf("expected ']' at end of property list (position %d)", p.pos)
	}
	p.pos++

	p.lastTermWasPropertyList = true
	return blankNode, nil
}

// parseLiteral parses a string literal with an optional language tag or
// datatype. Both short ("...") and long ("""...""") forms are accepted,
// with single or double quotes.
func (p *Parser) parseLiteral() (rdf.Term, error) {
	quote := p.input[p.pos]
	long := strings.HasPrefix(p.input[p.pos:], strings.Repeat(string(quote), 3))

	var value string
	var err error
	if long {
		value, err = p.readLongString(quote)
	} else {
		value, err = p.readShortString(quote)
	}
	if err != nil {
		return nil, err
	}

	// Language tag: @lang or @lang-subtag
	if p.pos < p.length && p.input[p.pos] == '@' {
		p.pos++
		start := p.pos
		for p.pos < p.length {
			ch := p.input[p.pos]
			if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' {
				p.pos++
				continue
			}
			break
		}
		if p.pos == start {
			return nil, fmt.Errorf("empty language tag at position %d", p.pos)
		}
		return rdf.NewLangLiteral(value, p.input[start:p.pos]), nil
	}

	// Datatype: ^^<iri> or ^^prefix:local
	if strings.HasPrefix(p.input[p.pos:], "^^") {
		p.pos += 2
		if p.pos < p.length && p.input[p.pos] == '<' {
			iri, err := p.parseIRIRef()
			if err != nil {
				return nil, fmt.Errorf("invalid datatype IRI: %w", err)
			}
			return rdf.NewTypedLiteral(value, rdf.NewIRI(iri)), nil
		}
		datatype, err := p.parsePrefixedName()
		if err != nil {
			return nil, fmt.Errorf("invalid datatype: %w", err)
		}
		return rdf.NewTypedLiteral(value, datatype.(*rdf.IRI)), nil
	}

	return rdf.NewLiteral(value), nil
}

// readShortString reads a single-line quoted string at the cursor.
func (p *Parser) readShortString(quote byte) (string, error) {
	p.pos++ // skip opening quote

	var result strings.Builder
	for p.pos < p.length {
		ch := p.input[p.pos]
		if ch == quote {
			p.pos++
			return result.String(), nil
		}
		if ch == '\n' || ch == '\r' {
			return "", fmt.Errorf("%w at position %d", errors.ErrUnterminatedLiteral, p.pos)
		}
		if ch == '\\' {
			s, err := p.readStringEscape()
			if err != nil {
				return "", err
			}
			result.WriteString(s)
			continue
		}
		result.WriteByte(ch)
		p.pos++
	}

	return "", fmt.Errorf("%w at position %d", errors.ErrUnterminatedLiteral, p.pos)
}

// readLongString reads a triple-quoted string at the cursor. Newlines and
// unescaped quotes are allowed inside.
func (p *Parser) readLongString(quote byte) (string, error) {
	delim := strings.Repeat(string(quote), 3)
	p.pos += 3 // skip opening delimiter

	var result strings.Builder
	for p.pos < p.length {
		if strings.HasPrefix(p.input[p.pos:], delim) {
			p.pos += 3
			return result.String(), nil
		}
		if p.input[p.pos] == '\\' {
			s, err := p.readStringEscape()
			if err != nil {
				return "", err
			}
			result.WriteString(s)
			continue
		}
		result.WriteByte(p.input[p.pos])
		p.pos++
	}

	return "", fmt.Errorf("%w at position %d", errors.ErrUnterminatedLiteral, p.pos)
}

// readStringEscape reads one backslash escape inside a string literal.
func (p *Parser) readStringEscape() (string, error) {
	if p.pos+1 >= p.length {
		return "", fmt.Errorf("%w at position %d", errors.ErrUnterminatedLiteral, p.pos)
	}
	switch p.input[p.pos+1] {
	case 't':
		p.pos += 2
		return "\t", nil
	case 'b':
		p.pos += 2
		return "\b", nil
	case 'n':
		p.pos += 2
		return "\n", nil
	case 'r':
		p.pos += 2
		return "\r", nil
	case 'f':
		p.pos += 2
		return "\f", nil
	case '"':
		p.pos += 2
		return `"`, nil
	case '\'':
		p.pos += 2
		return "'", nil
	case '\\':
		p.pos += 2
		return `\`, nil
	case 'u', 'U':
		return p.readUnicodeEscape()
	default:
		return "", fmt.Errorf("invalid escape '\\%c' at position %d", p.input[p.pos+1], p.pos+1)
	}
}

// startsNumber reports whether the cursor is at a numeric literal.
func (p *Parser) startsNumber() bool {
	ch := p.input[p.pos]
	if ch >= '0' && ch <= '9' {
		return true
	}
	if (ch == '+' || ch == '-') && p.pos+1 < p.length {
		next := p.input[p.pos+1]
		if next >= '0' && next <= '9' {
			return true
		}
		if next == '.' && p.pos+2 < p.length && p.input[p.pos+2] >= '0' && p.input[p.pos+2] <= '9' {
			return true
		}
	}
	if ch == '.' && p.pos+1 < p.length && p.input[p.pos+1] >= '0' && p.input[p.pos+1] <= '9' {
		return true
	}
	return false
}

// parseNumber parses an integer, decimal, or double shorthand literal into
// the matching xsd-typed literal.
func (p *Parser) parseNumber() (rdf.Term, error) {
	start := p.pos

	if p.input[p.pos] == '+' || p.input[p.pos] == '-' {
		p.pos++
	}

	sawDot := false
	sawExp := false
	for p.pos < p.length {
		ch := p.input[p.pos]
		if ch >= '0' && ch <= '9' {
			p.pos++
			continue
		}
		// A '.' is part of the number only when followed by a digit;
		// otherwise it terminates the statement.
		if ch == '.' && !sawDot && !sawExp && p.pos+1 < p.length && p.input[p.pos+1] >= '0' && p.input[p.pos+1] <= '9' {
			sawDot = true
			p.pos++
			continue
		}
		if (ch == 'e' || ch == 'E') && !sawExp {
			sawExp = true
			p.pos++
			if p.pos < p.length && (p.input[p.pos] == '+' || p.input[p.pos] == '-') {
				p.pos++
			}
			continue
		}
		break
	}

	value := p.input[start:p.pos]
	switch {
	case sawExp:
		return rdf.NewTypedLiteral(value, rdf.XSDDouble), nil
	case sawDot:
		return rdf.NewTypedLiteral(value, rdf.XSDDecimal), nil
	default:
		return rdf.NewTypedLiteral(value, rdf.XSDInteger), nil
	}
}

// parsePrefixedName parses prefix:local and expands it against the
// document's declared prefixes. A prefix must be declared before first
// use.
func (p *Parser) parsePrefixedName() (rdf.Term, error) {
	start := p.pos

	// Prefix part (may be empty for the default ':' prefix).
	for p.pos < p.length {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if r == ':' {
			break
		}
		if !isPNChars(r) && r != '.' {
			return nil, fmt.Errorf("unexpected character %q in prefixed name at position %d", r, p.pos)
		}
		p.pos += size
	}

	if p.pos >= p.length || p.input[p.pos] != ':' {
		return nil, fmt.Errorf("expected ':' in prefixed name at position %d", p.pos)
	}
	prefix := p.input[start:p.pos]
	p.pos++ // skip ':'

	base, declared := p.prefixes[prefix]
	if !declared {
		return nil, fmt.Errorf("%w %q at position %d (prefixes must be declared before use)", errors.ErrUnknownPrefix, prefix, start)
	}

	// Local part: PN_CHARS plus interior dots. A trailing dot terminates
	// the statement instead.
	localStart := p.pos
	lastWasDot := false
	for p.pos < p.length {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !isPNChars(r) && r != '.' {
			break
		}
		lastWasDot = r == '.'
		p.pos += size
	}
	if lastWasDot {
		p.pos--
	}
	local := p.input[localStart:p.pos]

	return rdf.NewIRI(base + local), nil
}

// isPNCharsBase checks PN_CHARS_BASE per the Turtle grammar.
func isPNCharsBase(r rune) bool {
	return (r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 0x00C0 && r <= 0x00D6) ||
		(r >= 0x00D8 && r <= 0x00F6) ||
		(r >= 0x00F8 && r <= 0x02FF) ||
		(r >= 0x0370 && r <= 0x037D) ||
		(r >= 0x037F && r <= 0x1FFF) ||
		(r >= 0x200C && r <= 0x200D) ||
		(r >= 0x2070 && r <= 0x218F) ||
		(r >= 0x2C00 && r <= 0x2FEF) ||
		(r >= 0x3001 && r <= 0xD7FF) ||
		(r >= 0xF900 && r <= 0xFDCF) ||
		(r >= 0xFDF0 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0xEFFFF)
}

// isPNCharsU checks PN_CHARS_U: PN_CHARS_BASE plus '_'.
func isPNCharsU(r rune) bool {
	return isPNCharsBase(r) || r == '_'
}

// isPNChars checks PN_CHARS per the Turtle grammar.
func isPNChars(r rune) bool {
	return isPNCharsU(r) ||
		r == '-' ||
		(r >= '0' && r <= '9') ||
		r == 0x00B7 ||
		(r >= 0x0300 && r <= 0x036F) ||
		(r >= 0x203F && r <= 0x2040)
}
