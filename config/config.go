// Package config provides configuration loading for the semgraph engine.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds engine configuration. The namespace table feeds query-side
// compact-IRI expansion only - Turtle documents must declare their own
// prefixes.
type Config struct {
	// Namespaces maps prefix names to namespace IRIs for expanding
	// compact ids in query input (e.g. "sn:time").
	Namespaces map[string]string `yaml:"namespaces"`
}

// DefaultConfig returns the engine defaults: the sinople ontology
// namespace plus the W3C namespaces it builds on.
func DefaultConfig() *Config {
	return &Config{
		Namespaces: map[string]string{
			"sn":   "https://sinople.org/ontology#",
			"rdf":  "https://www.w3.org/1999/02/22-rdf-syntax-ns#",
			"rdfs": "https://www.w3.org/2000/01/rdf-schema#",
			"owl":  "https://www.w3.org/2002/07/owl#",
			"xsd":  "https://www.w3.org/2001/XMLSchema#",
		},
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Merge overlays non-empty values from other onto c. Namespace entries
// from other win on prefix conflicts.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if c.Namespaces == nil {
		c.Namespaces = make(map[string]string)
	}
	for prefix, iri := range other.Namespaces {
		c.Namespaces[prefix] = iri
	}
}

// Validate checks namespace entries for well-formedness.
func (c *Config) Validate() error {
	for prefix, iri := range c.Namespaces {
		if strings.ContainsAny(prefix, ": \t\n") {
			return fmt.Errorf("invalid namespace prefix %q", prefix)
		}
		if iri == "" {
			return fmt.Errorf("namespace %q has an empty IRI", prefix)
		}
		if !strings.Contains(iri, ":") {
			return fmt.Errorf("namespace %q IRI %q is not absolute", prefix, iri)
		}
	}
	return nil
}
