package boundary

import (
	"encoding/json"

	"github.com/hyperpolymath/semgraph/errors"
	"github.com/hyperpolymath/semgraph/processor"
)

// FromGloss maps one engine gloss to its wire shape.
func FromGloss(g processor.Gloss) GlossRecord {
	return GlossRecord{
		Text:     g.Text,
		Language: g.Language,
		Position: g.Position,
	}
}

// FromConstruct maps one engine construct to its wire shape. Empty
// collections serialize as [] rather than null.
func FromConstruct(c processor.Construct) ConstructRecord {
	glosses := make([]GlossRecord, 0, len(c.Glosses))
	for _, g := range c.Glosses {
		glosses = append(glosses, FromGloss(g))
	}

	relationships := c.Relationships
	if relationships == nil {
		relationships = []string{}
	}

	return ConstructRecord{
		ID:            c.ID,
		Label:         c.Label,
		Description:   c.Description,
		Glosses:       glosses,
		Relationships: relationships,
	}
}

// FromConstructs maps a construct list, preserving order.
func FromConstructs(constructs []processor.Construct) []ConstructRecord {
	records := make([]ConstructRecord, 0, len(constructs))
	for _, c := range constructs {
		records = append(records, FromConstruct(c))
	}
	return records
}

// FromEntanglement maps one engine entanglement to its wire shape.
func FromEntanglement(e processor.Entanglement) EntanglementRecord {
	return EntanglementRecord{
		ID:               e.ID,
		Label:            e.Label,
		Source:           e.Source,
		Target:           e.Target,
		RelationshipType: e.RelationshipType,
		Description:      e.Description,
	}
}

// FromEntanglements maps an entanglement list, preserving order.
func FromEntanglements(entanglements []processor.Entanglement) []EntanglementRecord {
	records := make([]EntanglementRecord, 0, len(entanglements))
	for _, e := range entanglements {
		records = append(records, FromEntanglement(e))
	}
	return records
}

// FromCharacter maps one engine character to its wire shape.
func FromCharacter(c processor.Character) CharacterRecord {
	constructs := c.Constructs
	if constructs == nil {
		constructs = []string{}
	}

	return CharacterRecord{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Constructs:  constructs,
	}
}

// FromCharacters maps a character list, preserving order.
func FromCharacters(characters []processor.Character) []CharacterRecord {
	records := make([]CharacterRecord, 0, len(characters))
	for _, c := range characters {
		records = append(records, FromCharacter(c))
	}
	return records
}

// FromGraph maps the graph projection to its wire shape.
func FromGraph(g processor.Graph) NetworkGraphRecord {
	nodes := make([]NodeRecord, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, NodeRecord{
			ID:       n.ID,
			Label:    n.Label,
			NodeType: n.NodeType,
		})
	}

	edges := make([]EdgeRecord, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, EdgeRecord{
			Source: e.Source,
			Target: e.Target,
			Label:  e.Label,
		})
	}

	return NetworkGraphRecord{Nodes: nodes, Edges: edges}
}

// EncodeConstructs serializes a construct list as a JSON array.
func EncodeConstructs(constructs []processor.Construct) ([]byte, error) {
	data, err := json.Marshal(FromConstructs(constructs))
	if err != nil {
		return nil, errors.WrapSerialization(err, "boundary", "EncodeConstructs", "encoding constructs")
	}
	return data, nil
}

// EncodeEntanglements serializes an entanglement list as a JSON array.
func EncodeEntanglements(entanglements []processor.Entanglement) ([]byte, error) {
	data, err := json.Marshal(FromEntanglements(entanglements))
	if err != nil {
		return nil, errors.WrapSerialization(err, "boundary", "EncodeEntanglements", "encoding entanglements")
	}
	return data, nil
}

// EncodeCharacters serializes a character list as a JSON array.
func EncodeCharacters(characters []processor.Character) ([]byte, error) {
	data, err := json.Marshal(FromCharacters(characters))
	if err != nil {
		return nil, errors.WrapSerialization(err, "boundary", "EncodeCharacters", "encoding characters")
	}
	return data, nil
}

// EncodeRelationships serializes a relationship IRI list as a JSON array.
func EncodeRelationships(relationships []string) ([]byte, error) {
	if relationships == nil {
		relationships = []string{}
	}
	data, err := json.Marshal(relationships)
	if err != nil {
		return nil, errors.WrapSerialization(err, "boundary", "EncodeRelationships", "encoding relationships")
	}
	return data, nil
}

// EncodeGraph serializes the graph projection as a JSON object.
func EncodeGraph(g processor.Graph) ([]byte, error) {
	data, err := json.Marshal(FromGraph(g))
	if err != nil {
		return nil, errors.WrapSerialization(err, "boundary", "EncodeGraph", "encoding network graph")
	}
	return data, nil
}
