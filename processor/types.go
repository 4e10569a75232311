package processor

// Gloss is a short natural-language annotation attached to a construct.
type Gloss struct {
	Text     string
	Language string
	// Position is an optional ordering hint. Plain literal glosses carry
	// none; the field exists so ordered gloss data survives the mapping.
	Position *int
}

// Construct is a domain entity typed sn:Construct, derived entirely from
// the current triple set.
type Construct struct {
	ID          string
	Label       string
	Description *string
	Glosses     []Gloss
	// Relationships lists the IRIs of entities this construct points at
	// through non-descriptive predicates, in discovery order.
	Relationships []string
}

// Entanglement links exactly one source construct to one target
// construct. Only entanglements whose endpoints resolve to constructs
// present in the store surface in query results.
type Entanglement struct {
	ID               string
	Label            string
	Source           string
	Target           string
	RelationshipType string
	Description      *string
}

// Character is a domain entity typed sn:Character.
type Character struct {
	ID          string
	Name        string
	Description *string
	Constructs  []string
}

// Node is a visualization-only projection of a construct or character.
type Node struct {
	ID       string
	Label    string
	NodeType string
}

// Edge is a visualization-only projection of a resolvable entanglement.
type Edge struct {
	Source string
	Target string
	Label  string
}

// Graph is the full node/edge projection of the current triple set.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Node types used in the graph projection.
const (
	NodeTypeConstruct = "construct"
	NodeTypeCharacter = "character"
)
