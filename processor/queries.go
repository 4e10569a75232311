package processor

import (
	"time"

	"github.com/hyperpolymath/semgraph/rdf"
	"github.com/hyperpolymath/semgraph/vocabulary"
)

// Query vocabulary terms, built once. All queries below are read-only
// projections over the current triple set and never mutate the store:
// re-deriving from the same triples always yields the same results.
var (
	termRdfType          = rdf.NewIRI(vocabulary.RdfType)
	termRdfsLabel        = rdf.NewIRI(vocabulary.RdfsLabel)
	termRdfsComment      = rdf.NewIRI(vocabulary.RdfsComment)
	termConstruct        = rdf.NewIRI(vocabulary.SinopleConstruct)
	termEntanglement     = rdf.NewIRI(vocabulary.SinopleEntanglement)
	termCharacter        = rdf.NewIRI(vocabulary.SinopleCharacter)
	termHasGloss         = rdf.NewIRI(vocabulary.SinopleHasGloss)
	termHasSource        = rdf.NewIRI(vocabulary.SinopleHasSource)
	termHasTarget        = rdf.NewIRI(vocabulary.SinopleHasTarget)
	termRelationshipType = rdf.NewIRI(vocabulary.SinopleRelationshipType)
	termHasConstruct     = rdf.NewIRI(vocabulary.SinopleHasConstruct)
)

// defaultRelationshipType labels entanglements that carry no explicit
// sn:relationshipType.
const defaultRelationshipType = "related"

// defaultGlossLanguage labels glosses whose literal has no language tag.
const defaultGlossLanguage = "en"

// QueryConstructs returns every entity typed sn:Construct, in discovery
// order of the typing triples.
func (p *Processor) QueryConstructs() []Construct {
	defer p.observe("constructs", time.Now())

	var constructs []Construct
	for _, subject := range p.store.SubjectsOfType(termRdfType, termConstruct) {
		constructs = append(constructs, Construct{
			ID:            subject.Value,
			Label:         p.labelOf(subject),
			Description:   p.commentOf(subject),
			Glosses:       p.glossesOf(subject),
			Relationships: p.relatedIRIs(subject),
		})
	}
	return constructs
}

// QueryEntanglements returns every entity typed sn:Entanglement whose
// source and target both resolve to constructs present in the store.
// Entanglements with a missing or dangling endpoint are silently
// excluded: the domain data is externally authored and routinely
// incomplete.
func (p *Processor) QueryEntanglements() []Entanglement {
	defer p.observe("entanglements", time.Now())
	return p.resolvedEntanglements()
}

// resolvedEntanglements is the unobserved core of QueryEntanglements,
// shared with the queries that compose over it.
func (p *Processor) resolvedEntanglements() []Entanglement {
	constructs := p.constructIDs()

	var entanglements []Entanglement
	for _, subject := range p.store.SubjectsOfType(termRdfType, termEntanglement) {
		source, ok := p.objectIRI(subject, termHasSource)
		if !ok {
			continue
		}
		target, ok := p.objectIRI(subject, termHasTarget)
		if !ok {
			continue
		}
		if !constructs[source] || !constructs[target] {
			continue
		}

		relType := defaultRelationshipType
		if v, ok := p.objectLiteral(subject, termRelationshipType); ok {
			relType = v
		}

		entanglements = append(entanglements, Entanglement{
			ID:               subject.Value,
			Label:            p.labelOf(subject),
			Source:           source,
			Target:           target,
			RelationshipType: relType,
			Description:      p.commentOf(subject),
		})
	}
	return entanglements
}

// FindRelationships returns the IRIs of entities connected to the given
// construct: the far endpoint of every resolvable entanglement touching
// it, plus the targets of its own non-descriptive triples. The id may be
// a full IRI or a compact one ("sn:time") expanded against the configured
// namespaces. An unknown id yields an empty list, never an error.
func (p *Processor) FindRelationships(constructID string) []string {
	defer p.observe("relationships", time.Now())

	id := vocabulary.ExpandCURIE(constructID, p.namespaces)

	var related []string
	seen := make(map[string]bool)
	add := func(iri string) {
		if !seen[iri] {
			seen[iri] = true
			related = append(related, iri)
		}
	}

	for _, ent := range p.resolvedEntanglements() {
		switch id {
		case ent.Source:
			add(ent.Target)
		case ent.Target:
			add(ent.Source)
		}
	}

	for _, iri := range p.relatedIRIs(rdf.NewIRI(id)) {
		add(iri)
	}

	return related
}

// QueryCharacters returns every entity typed sn:Character, in discovery
// order of the typing triples.
func (p *Processor) QueryCharacters() []Character {
	defer p.observe("characters", time.Now())

	var characters []Character
	for _, subject := range p.store.SubjectsOfType(termRdfType, termCharacter) {
		var constructs []string
		for _, obj := range p.store.Objects(subject, termHasConstruct) {
			if iri, ok := obj.(*rdf.IRI); ok {
				constructs = append(constructs, iri.Value)
			}
		}

		characters = append(characters, Character{
			ID:          subject.Value,
			Name:        p.labelOf(subject),
			Description: p.commentOf(subject),
			Constructs:  constructs,
		})
	}
	return characters
}

// NetworkGraph builds the visualization projection: one node per
// construct and character, one edge per resolvable entanglement. It
// composes the entity queries and adds no parsing or store logic of its
// own.
func (p *Processor) NetworkGraph() Graph {
	defer p.observe("network_graph", time.Now())

	var graph Graph
	for _, c := range p.QueryConstructs() {
		graph.Nodes = append(graph.Nodes, Node{
			ID:       c.ID,
			Label:    displayLabel(c.Label, c.ID),
			NodeType: NodeTypeConstruct,
		})
	}
	for _, ch := range p.QueryCharacters() {
		graph.Nodes = append(graph.Nodes, Node{
			ID:       ch.ID,
			Label:    displayLabel(ch.Name, ch.ID),
			NodeType: NodeTypeCharacter,
		})
	}
	for _, ent := range p.QueryEntanglements() {
		graph.Edges = append(graph.Edges, Edge{
			Source: ent.Source,
			Target: ent.Target,
			Label:  ent.RelationshipType,
		})
	}
	return graph
}

// displayLabel falls back to the IRI local name when an entity carries no
// rdfs:label.
func displayLabel(label, iri string) string {
	if label != "" {
		return label
	}
	return vocabulary.LocalName(iri)
}

// constructIDs returns the set of IRIs typed sn:Construct, used to
// resolve entanglement endpoints.
func (p *Processor) constructIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, subject := range p.store.SubjectsOfType(termRdfType, termConstruct) {
		ids[subject.Value] = true
	}
	return ids
}

// labelOf returns the entity's first rdfs:label value, or "".
func (p *Processor) labelOf(subject *rdf.IRI) string {
	if v, ok := p.objectLiteral(subject, termRdfsLabel); ok {
		return v
	}
	return ""
}

// commentOf returns the entity's first rdfs:comment value, or nil.
func (p *Processor) commentOf(subject *rdf.IRI) *string {
	if v, ok := p.objectLiteral(subject, termRdfsComment); ok {
		return &v
	}
	return nil
}

// glossesOf collects the entity's sn:hasGloss literals in discovery
// order. Each language-tagged value is a distinct gloss; untagged
// literals default to English.
func (p *Processor) glossesOf(subject *rdf.IRI) []Gloss {
	var glosses []Gloss
	for _, obj := range p.store.Objects(subject, termHasGloss) {
		lit, ok := obj.(*rdf.Literal)
		if !ok {
			continue
		}
		language := lit.Language
		if language == "" {
			language = defaultGlossLanguage
		}
		glosses = append(glosses, Gloss{
			Text:     lit.Value,
			Language: language,
		})
	}
	return glosses
}

// relatedIRIs collects the IRI objects of the subject's non-descriptive
// triples, deduplicated in discovery order.
func (p *Processor) relatedIRIs(subject *rdf.IRI) []string {
	var related []string
	seen := make(map[string]bool)
	for _, t := range p.store.Match(subject, nil, nil) {
		pred, ok := t.Predicate.(*rdf.IRI)
		if !ok || vocabulary.IsReservedPredicate(pred.Value) {
			continue
		}
		obj, ok := t.Object.(*rdf.IRI)
		if !ok || seen[obj.Value] {
			continue
		}
		seen[obj.Value] = true
		related = append(related, obj.Value)
	}
	return related
}

// objectIRI returns the first IRI object for a subject-predicate pair.
func (p *Processor) objectIRI(subject *rdf.IRI, predicate rdf.Term) (string, bool) {
	for _, obj := range p.store.Objects(subject, predicate) {
		if iri, ok := obj.(*rdf.IRI); ok {
			return iri.Value, true
		}
	}
	return "", false
}

// objectLiteral returns the first literal object value for a
// subject-predicate pair.
func (p *Processor) objectLiteral(subject *rdf.IRI, predicate rdf.Term) (string, bool) {
	for _, obj := range p.store.Objects(subject, predicate) {
		if lit, ok := obj.(*rdf.Literal); ok {
			return lit.Value, true
		}
	}
	return "", false
}
