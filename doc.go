// Package semgraph is a semantic graph engine for the sinople ontology.
// It parses Turtle documents into an in-memory triple store and answers a
// fixed query surface over the loaded data.
//
// # Architecture
//
// The engine is a pipeline of small packages:
//
//	┌─────────────────────────────────────┐
//	│          Boundary Adapter           │  JSON wire shapes for
//	│        (boundary package)           │  host consumption
//	└─────────────────────────────────────┘
//	           ↑ maps records from
//	┌─────────────────────────────────────┐
//	│          Query Engine               │  Constructs, entanglements,
//	│        (processor package)          │  characters, network graph
//	└─────────────────────────────────────┘
//	           ↑ reads triples from
//	┌─────────────────────────────────────┐
//	│         Triple Store                │  Indexed in-memory
//	│         (store package)             │  triple multiset
//	└─────────────────────────────────────┘
//	           ↑ filled by
//	┌─────────────────────────────────────┐
//	│         Turtle Parser               │  Recursive-descent
//	│        (turtle package)             │  Turtle reader
//	└─────────────────────────────────────┘
//
// The rdf package defines the term and triple model shared by every
// layer; vocabulary holds the sinople and W3C IRIs the queries read;
// errors, config, and metric provide the ambient concerns.
//
// # Usage
//
// Hosts create an explicit engine handle, load Turtle text, and query:
//
//	engine := processor.New(nil, nil, nil)
//	if err := engine.LoadTurtle(doc); err != nil { ... }
//	constructs := engine.QueryConstructs()
//	data, err := boundary.EncodeConstructs(constructs)
//
// The engine performs no I/O and is synchronous; hosts serialize access
// to a handle. Multiple independent handles are cheap.
package semgraph
