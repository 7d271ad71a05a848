// Command wfcgen is a reference driver for the solver engine: it loads a
// tile universe (either a canonical RuleSet or a socket-derivation input),
// runs one solve, and writes the result as JSON and/or Tiled TMJ. It is not
// part of the engine's contract — callers embedding the engine construct
// solver.Model directly.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/wfc/pkg/export"
	"github.com/dshills/wfc/pkg/grid"
	"github.com/dshills/wfc/pkg/report"
	"github.com/dshills/wfc/pkg/ruleset"
	"github.com/dshills/wfc/pkg/socket"
	"github.com/dshills/wfc/pkg/solver"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML run configuration file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "json", "Export format: json, tmj, or all")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	verify     = flag.Bool("verify", false, "Run the post-hoc constraint report and print its summary")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("wfcgen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "tmj": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, tmj, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		var contra *solver.ContradictionError
		if errors.As(err, &contra) {
			fmt.Fprintf(os.Stderr, "Error: contradiction at cell %d; retry with a different seed\n", contra.CellIndex)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *seedFlag != 0 {
		v := *seedFlag
		cfg.Seed = &v
	}

	rs, err := loadRuleSet(cfg)
	if err != nil {
		return fmt.Errorf("failed to load tile universe: %w", err)
	}

	if *verbose {
		fmt.Printf("Tile universe: %d tiles\n", rs.TileCount())
		fmt.Printf("Grid: %dx%d\n", cfg.Width, cfg.Height)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	m, err := solver.New(cfg.Width, cfg.Height, rs, cfg.Seed)
	if err != nil {
		return fmt.Errorf("failed to construct solver: %w", err)
	}

	if *verbose {
		fmt.Println("Solving...")
	}
	start := time.Now()
	g, err := m.Run(ctx)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Solved in %v\n", elapsed)
	}

	if *verify {
		r := report.Verify(g, rs)
		fmt.Print(report.Summary(r))
	}

	baseName := "wfc_output"
	if *format == "json" || *format == "all" {
		if err := exportJSONFile(g, rs, baseName); err != nil {
			return err
		}
	}
	if *format == "tmj" || *format == "all" {
		if err := exportTMJFile(g, rs, cfg, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully solved %dx%d grid in %v\n", cfg.Width, cfg.Height, elapsed)
	return nil
}

// loadRuleSet reads either a canonical RuleSet document or a
// socket-derivation document and returns the resulting RuleSet, depending
// on which of cfg's two source fields is set.
func loadRuleSet(cfg *RunConfig) (*ruleset.RuleSet, error) {
	if cfg.RuleSetPath != "" {
		data, err := os.ReadFile(cfg.RuleSetPath)
		if err != nil {
			return nil, fmt.Errorf("reading ruleset file: %w", err)
		}
		return ruleset.Parse(data)
	}

	data, err := os.ReadFile(cfg.SocketPath)
	if err != nil {
		return nil, fmt.Errorf("reading socket input file: %w", err)
	}
	bases, err := socket.ParseBaseTiles(data)
	if err != nil {
		return nil, err
	}
	return socket.Expand(bases)
}

func exportJSONFile(g *grid.Grid, rs *ruleset.RuleSet, baseName string) error {
	data, err := export.ExportJSON(g, rs)
	if err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	path := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}

func exportTMJFile(g *grid.Grid, rs *ruleset.RuleSet, cfg *RunConfig, baseName string) error {
	m, err := export.ExportTMJ(g, rs, cfg.TileWidth, cfg.TileHeight)
	if err != nil {
		return fmt.Errorf("failed to export TMJ: %w", err)
	}
	path := filepath.Join(*outputDir, baseName+".tmj")
	if *verbose {
		fmt.Printf("Exporting TMJ to %s\n", path)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal TMJ: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write TMJ file: %w", err)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: wfcgen -config <path.yaml> [-output dir] [-format json|tmj|all] [-seed N] [-verbose] [-verify]")
}

func printHelp() {
	fmt.Println("wfcgen - reference driver for the wave-function-collapse tile solver")
	fmt.Println()
	printUsage()
	fmt.Println()
	flag.PrintDefaults()
}
