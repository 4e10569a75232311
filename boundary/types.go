// Package boundary converts the engine's internal records into the JSON
// shapes the host consumes. The engine itself never serializes; hosts that
// want a different wire format write their own adapter against the
// processor types.
package boundary

// GlossRecord is the wire shape of one gloss.
type GlossRecord struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Position *int   `json:"position,omitempty"`
}

// ConstructRecord is the wire shape of one construct.
type ConstructRecord struct {
	ID            string        `json:"id"`
	Label         string        `json:"label"`
	Description   *string       `json:"description,omitempty"`
	Glosses       []GlossRecord `json:"glosses"`
	Relationships []string      `json:"relationships"`
}

// EntanglementRecord is the wire shape of one entanglement.
type EntanglementRecord struct {
	ID               string  `json:"id"`
	Label            string  `json:"label"`
	Source           string  `json:"source"`
	Target           string  `json:"target"`
	RelationshipType string  `json:"relationshipType"`
	Description      *string `json:"description,omitempty"`
}

// CharacterRecord is the wire shape of one character.
type CharacterRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Constructs  []string `json:"constructs"`
}

// NodeRecord is the wire shape of one graph node.
type NodeRecord struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	NodeType string `json:"nodeType"`
}

// EdgeRecord is the wire shape of one graph edge.
type EdgeRecord struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// NetworkGraphRecord is the wire shape of the full graph projection.
type NetworkGraphRecord struct {
	Nodes []NodeRecord `json:"nodes"`
	Edges []EdgeRecord `json:"edges"`
}
