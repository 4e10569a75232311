// Package rdf defines the term and triple model the engine operates on.
//
// The model is deliberately small: the sinople domain only needs IRIs,
// blank nodes, and literals. Literals carry either a language tag or a
// datatype IRI, never both.
package rdf

import "fmt"

// TermType represents the kind of an RDF term.
type TermType byte

const (
	TermTypeIRI TermType = iota + 1
	TermTypeBlankNode
	TermTypeLiteral
)

// Term represents an RDF term (IRI, blank node, or literal).
type Term interface {
	Type() TermType
	// String renders the term in its Turtle surface form. The rendering is
	// unique per distinct term, which the store relies on for dictionary keys.
	String() string
	Equals(other Term) bool
}

// IRI names an entity or predicate.
type IRI struct {
	Value string
}

// NewIRI creates an IRI term.
func NewIRI(value string) *IRI {
	return &IRI{Value: value}
}

func (i *IRI) Type() TermType {
	return TermTypeIRI
}

func (i *IRI) String() string {
	return fmt.Sprintf("<%s>", i.Value)
}

func (i *IRI) Equals(other Term) bool {
	if o, ok := other.(*IRI); ok {
		return i.Value == o.Value
	}
	return false
}

// BlankNode is an opaque, document-scoped identifier. The domain data uses
// only IRI subjects, but blank nodes in input must round-trip without
// being confused with IRIs.
type BlankNode struct {
	ID string
}

// NewBlankNode creates a blank node term with the given label.
func NewBlankNode(id string) *BlankNode {
	return &BlankNode{ID: id}
}

func (b *BlankNode) Type() TermType {
	return TermTypeBlankNode
}

func (b *BlankNode) String() string {
	return fmt.Sprintf("_:%s", b.ID)
}

func (b *BlankNode) Equals(other Term) bool {
	if o, ok := other.(*BlankNode); ok {
		return b.ID == o.ID
	}
	return false
}

// Literal is a string object value with an optional language tag or an
// optional datatype IRI. At most one of the two is set.
type Literal struct {
	Value    string
	Language string // language-tagged strings only
	Datatype *IRI   // typed literals only
}

// NewLiteral creates a plain literal.
func NewLiteral(value string) *Literal {
	return &Literal{Value: value}
}

// NewLangLiteral creates a language-tagged literal.
func NewLangLiteral(value, language string) *Literal {
	return &Literal{Value: value, Language: language}
}

// NewTypedLiteral creates a datatyped literal.
func NewTypedLiteral(value string, datatype *IRI) *Literal {
	return &Literal{Value: value, Datatype: datatype}
}

func (l *Literal) Type() TermType {
	return TermTypeLiteral
}

func (l *Literal) String() string {
	result := fmt.Sprintf("%q", l.Value)
	if l.Language != "" {
		result += "@" + l.Language
	} else if l.Datatype != nil {
		result += "^^" + l.Datatype.String()
	}
	return result
}

func (l *Literal) Equals(other Term) bool {
	o, ok := other.(*Literal)
	if !ok {
		return false
	}
	if l.Value != o.Value || l.Language != o.Language {
		return false
	}
	if l.Datatype == nil && o.Datatype == nil {
		return true
	}
	if l.Datatype != nil && o.Datatype != nil {
		return l.Datatype.Equals(o.Datatype)
	}
	return false
}

// Triple is a subject-predicate-object statement. Triples are immutable
// once created; the store holds them as a multiset.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// NewTriple creates a triple.
func NewTriple(subject, predicate, object Term) *Triple {
	return &Triple{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
	}
}

func (t *Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}

// Common XSD datatypes produced by the parser's shorthand literal forms.
var (
	XSDString  = NewIRI("https://www.w3.org/2001/XMLSchema#string")
	XSDInteger = NewIRI("https://www.w3.org/2001/XMLSchema#integer")
	XSDDecimal = NewIRI("https://www.w3.org/2001/XMLSchema#decimal")
	XSDDouble  = NewIRI("https://www.w3.org/2001/XMLSchema#double")
	XSDBoolean = NewIRI("https://www.w3.org/2001/XMLSchema#boolean")
)

// NewBooleanLiteral creates an xsd:boolean literal.
func NewBooleanLiteral(value bool) *Literal {
	return NewTypedLiteral(fmt.Sprintf("%t", value), XSDBoolean)
}
