// Package main provides the semgraph binary entry point. Semgraph loads
// Turtle documents into an in-memory semantic graph and prints query
// results as JSON.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hyperpolymath/semgraph/boundary"
	"github.com/hyperpolymath/semgraph/config"
	"github.com/hyperpolymath/semgraph/processor"
)

const (
	Version = "0.1.0"
	appName = "semgraph"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "semgraph [command] file.ttl [file.ttl ...]",
		Short: "Semantic graph query engine",
		Long: `Semgraph parses Turtle documents into an in-memory triple store and
answers a fixed set of queries over the sinople ontology: constructs,
entanglements, characters, per-construct relationship lookups, and a
node/edge network-graph projection.

Each command loads the given Turtle files in order and prints the query
result as JSON on stdout.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	newEngine := func(files []string) (*processor.Processor, error) {
		configureLogging(logLevel)

		cfg := config.DefaultConfig()
		if configPath != "" {
			fileCfg, err := config.LoadFromFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("load config: %w", err)
			}
			cfg.Merge(fileCfg)
		}

		engine := processor.New(cfg, slog.Default(), nil)
		for _, path := range files {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			if err := engine.LoadTurtle(string(data)); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
		return engine, nil
	}

	printJSON := func(data []byte, err error) error {
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "constructs file.ttl [file.ttl ...]",
		Short: "List all constructs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(args)
			if err != nil {
				return err
			}
			return printJSON(boundary.EncodeConstructs(engine.QueryConstructs()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "entanglements file.ttl [file.ttl ...]",
		Short: "List all resolvable entanglements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(args)
			if err != nil {
				return err
			}
			return printJSON(boundary.EncodeEntanglements(engine.QueryEntanglements()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "characters file.ttl [file.ttl ...]",
		Short: "List all characters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(args)
			if err != nil {
				return err
			}
			return printJSON(boundary.EncodeCharacters(engine.QueryCharacters()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "relationships <construct-id> file.ttl [file.ttl ...]",
		Short: "List the IRIs related to one construct",
		Long: `Relationships prints the entities connected to the given construct,
through entanglements in either direction and through its own relational
triples. The id may be a full IRI or a compact one like "sn:time".`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(args[1:])
			if err != nil {
				return err
			}
			return printJSON(boundary.EncodeRelationships(engine.FindRelationships(args[0])))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "graph file.ttl [file.ttl ...]",
		Short: "Print the network-graph projection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(args)
			if err != nil {
				return err
			}
			return printJSON(boundary.EncodeGraph(engine.NetworkGraph()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "count file.ttl [file.ttl ...]",
		Short: "Print the number of loaded triples",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(args)
			if err != nil {
				return err
			}
			fmt.Println(engine.TripleCount())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
