// Package store holds parsed triples in memory as a multiset with
// per-position indexes. Terms are dictionary-encoded: each distinct term
// gets an xxh3 id over its surface form, and the indexes map ids to
// ordered triple positions, so lookups touch only the triples that share
// the bound term.
package store

import (
	"github.com/zeebo/xxh3"

	"github.com/hyperpolymath/semgraph/rdf"
)

// TermID is the dictionary id of a term: the xxh3 hash of its surface
// form. Distinct terms render distinctly, so ids collide only if xxh3
// does.
type TermID uint64

// EncodeTerm computes the dictionary id for a term.
func EncodeTerm(t rdf.Term) TermID {
	return TermID(xxh3.HashString(t.String()))
}

// TripleStore is the in-memory triple multiset. It is not safe for
// concurrent mutation; the host serializes calls.
type TripleStore struct {
	triples []*rdf.Triple

	// id -> term dictionary, for decoding index hits
	dict map[TermID]rdf.Term

	// per-position indexes: term id -> triple positions in load order
	bySubject   map[TermID][]int
	byPredicate map[TermID][]int
	byObject    map[TermID][]int
}

// New creates an empty store.
func New() *TripleStore {
	s := &TripleStore{}
	s.reset()
	return s
}

func (s *TripleStore) reset() {
	s.triples = nil
	s.dict = make(map[TermID]rdf.Term)
	s.bySubject = make(map[TermID][]int)
	s.byPredicate = make(map[TermID][]int)
	s.byObject = make(map[TermID][]int)
}

// Load appends triples to the multiset and updates all indexes. Duplicate
// triples are retained: successive documents may restate the same facts
// and the count must reflect every statement loaded.
func (s *TripleStore) Load(triples []*rdf.Triple) {
	for _, t := range triples {
		pos := len(s.triples)
		s.triples = append(s.triples, t)

		sid := s.intern(t.Subject)
		pid := s.intern(t.Predicate)
		oid := s.intern(t.Object)

		s.bySubject[sid] = append(s.bySubject[sid], pos)
		s.byPredicate[pid] = append(s.byPredicate[pid], pos)
		s.byObject[oid] = append(s.byObject[oid], pos)
	}
}

func (s *TripleStore) intern(t rdf.Term) TermID {
	id := EncodeTerm(t)
	if _, ok := s.dict[id]; !ok {
		s.dict[id] = t
	}
	return id
}

// Clear removes all triples and index entries.
func (s *TripleStore) Clear() {
	s.reset()
}

// Count returns the number of triples currently held, duplicates included.
func (s *TripleStore) Count() int {
	return len(s.triples)
}

// Match returns the triples matching the given pattern in load order. A
// nil term is a wildcard. The narrowest bound position's index drives the
// scan; a full scan happens only for the all-wildcard pattern.
func (s *TripleStore) Match(subject, predicate, object rdf.Term) []*rdf.Triple {
	positions := s.selectIndex(subject, predicate, object)

	var result []*rdf.Triple
	for _, pos := range positions {
		t := s.triples[pos]
		// Re-check the full pattern: the index narrows by one position only.
		if matches(t, subject, predicate, object) {
			result = append(result, t)
		}
	}
	return result
}

// selectIndex picks candidate positions for a pattern. Subject binding is
// preferred (entity-centric queries dominate), then predicate, then
// object.
func (s *TripleStore) selectIndex(subject, predicate, object rdf.Term) []int {
	switch {
	case subject != nil:
		return s.bySubject[EncodeTerm(subject)]
	case predicate != nil:
		return s.byPredicate[EncodeTerm(predicate)]
	case object != nil:
		return s.byObject[EncodeTerm(object)]
	default:
		positions := make([]int, len(s.triples))
		for i := range s.triples {
			positions[i] = i
		}
		return positions
	}
}

func matches(t *rdf.Triple, subject, predicate, object rdf.Term) bool {
	if subject != nil && !t.Subject.Equals(subject) {
		return false
	}
	if predicate != nil && !t.Predicate.Equals(predicate) {
		return false
	}
	if object != nil && !t.Object.Equals(object) {
		return false
	}
	return true
}

// Objects returns all object terms for a subject-predicate pair, in load
// order.
func (s *TripleStore) Objects(subject, predicate rdf.Term) []rdf.Term {
	var objects []rdf.Term
	for _, t := range s.Match(subject, predicate, nil) {
		objects = append(objects, t.Object)
	}
	return objects
}

// FirstObject returns the first object term for a subject-predicate pair,
// or nil when none exists.
func (s *TripleStore) FirstObject(subject, predicate rdf.Term) rdf.Term {
	for _, t := range s.Match(subject, predicate, nil) {
		return t.Object
	}
	return nil
}

// SubjectsOfType returns the distinct subject IRIs carrying an rdf:type
// triple with the given type object, in discovery order. Non-IRI subjects
// (blank nodes) are skipped: the domain types only named entities.
func (s *TripleStore) SubjectsOfType(typePredicate, typeObject rdf.Term) []*rdf.IRI {
	var subjects []*rdf.IRI
	seen := make(map[string]bool)
	for _, t := range s.Match(nil, typePredicate, typeObject) {
		iri, ok := t.Subject.(*rdf.IRI)
		if !ok {
			continue
		}
		if seen[iri.Value] {
			continue
		}
		seen[iri.Value] = true
		subjects = append(subjects, iri)
	}
	return subjects
}
