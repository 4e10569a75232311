// Package vocabulary provides the IRI vocabulary the engine queries over:
// the sinople ontology plus the W3C standard terms it reads.
package vocabulary

import "strings"

// Namespace base IRIs. The sinople ontology publishes everything under a
// single hash namespace; the W3C bases are the https variants the ontology
// documents declare.
const (
	SinopleBase = "https://sinople.org/ontology#"
	RDFBase     = "https://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSBase    = "https://www.w3.org/2000/01/rdf-schema#"
	OWLBase     = "https://www.w3.org/2002/07/owl#"
	XSDBase     = "https://www.w3.org/2001/XMLSchema#"
)

// Sinople ontology class IRIs
const (
	// SinopleConstruct types a domain entity (a concept in the semantic
	// universe). Constructs carry a label, optional comment, and glosses.
	SinopleConstruct = SinopleBase + "Construct"

	// SinopleEntanglement types a relationship entity linking exactly one
	// source construct to one target construct.
	SinopleEntanglement = SinopleBase + "Entanglement"

	// SinopleCharacter types a character in the semantic universe,
	// associated with zero or more constructs.
	SinopleCharacter = SinopleBase + "Character"
)

// Sinople ontology predicate IRIs
const (
	// SinopleHasGloss attaches a short natural-language annotation to a
	// construct. The object is a literal, usually language-tagged.
	SinopleHasGloss = SinopleBase + "hasGloss"

	// SinopleHasSource names an entanglement's source construct.
	SinopleHasSource = SinopleBase + "hasSource"

	// SinopleHasTarget names an entanglement's target construct.
	SinopleHasTarget = SinopleBase + "hasTarget"

	// SinopleRelationshipType carries an entanglement's relationship label
	// as a literal (e.g. "interdependent").
	SinopleRelationshipType = SinopleBase + "relationshipType"

	// SinopleHasConstruct associates a character with a construct.
	SinopleHasConstruct = SinopleBase + "hasConstruct"
)

// W3C standard IRIs the engine reads
const (
	// RdfType is the rdf:type predicate ("a" in Turtle).
	RdfType = RDFBase + "type"

	// RdfsLabel provides a human-readable name for a resource.
	RdfsLabel = RDFSBase + "label"

	// RdfsComment provides a human-readable description.
	RdfsComment = RDFSBase + "comment"
)

// reservedPredicates are the descriptive predicates excluded when
// collecting an entity's related IRIs: they describe the entity rather
// than relate it to another one.
var reservedPredicates = map[string]bool{
	RdfType:         true,
	RdfsLabel:       true,
	RdfsComment:     true,
	SinopleHasGloss: true,
}

// IsReservedPredicate reports whether the predicate is descriptive rather
// than relational.
func IsReservedPredicate(iri string) bool {
	return reservedPredicates[iri]
}

// LocalName extracts the fragment or last path segment from an IRI for use
// as a display label when no rdfs:label is present.
//
// Examples:
//   - "https://sinople.org/ontology#time" -> "time"
//   - "https://example.org/constructs/space" -> "space"
//
// Returns the input unchanged when it has neither '#' nor '/', or when the
// last separator is trailing and nothing follows it.
func LocalName(iri string) string {
	if strings.HasSuffix(iri, "#") || strings.HasSuffix(iri, "/") {
		return iri
	}
	if idx := strings.LastIndex(iri, "#"); idx >= 0 && idx+1 < len(iri) {
		return iri[idx+1:]
	}
	if idx := strings.LastIndex(iri, "/"); idx >= 0 && idx+1 < len(iri) {
		return iri[idx+1:]
	}
	return iri
}

// ExpandCURIE resolves a compact IRI like "sn:Construct" against a prefix
// table. Inputs that are not compact IRIs, or whose prefix is not in the
// table, are returned unchanged - callers pass through full IRIs freely.
func ExpandCURIE(value string, prefixes map[string]string) string {
	prefix, local, ok := strings.Cut(value, ":")
	if !ok {
		return value
	}
	// A full IRI also contains ':' (scheme separator); only expand when the
	// prefix is actually registered.
	if base, found := prefixes[prefix]; found {
		return base + local
	}
	return value
}
