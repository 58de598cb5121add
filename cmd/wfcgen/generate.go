package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfc/catalog"
	"github.com/katalvlaran/wfc/render"
	"github.com/katalvlaran/wfc/solver"
	"github.com/katalvlaran/wfc/tile"
	"github.com/katalvlaran/wfc/wfcio"
)

// generateOptions holds the resolved flag values for the generate
// subcommand.
type generateOptions struct {
	catalogPath string
	width       int
	height      int
	seed        int64
	silent      bool
}

// newGenerateCmd builds the generate subcommand: load a catalog file, run
// the solver, and print the collapsed grid as ASCII to stdout.
func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a tile map from a catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.catalogPath, "catalog", "", "path to a tile catalog YAML file (required)")
	flags.IntVar(&opts.width, "width", 10, "grid width in cells")
	flags.IntVar(&opts.height, "height", 10, "grid height in cells")
	flags.Int64Var(&opts.seed, "seed", 1, "PRNG seed for deterministic output")
	flags.BoolVar(&opts.silent, "silent", false, "suppress per-cycle diagnostic logging")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	file, err := os.Open(opts.catalogPath)
	if err != nil {
		return fmt.Errorf("wfcgen: opening catalog: %w", err)
	}
	defer func() { _ = file.Close() }()

	cf, err := wfcio.Load(file)
	if err != nil {
		return fmt.Errorf("wfcgen: %w", err)
	}

	registry, err := cf.Registry()
	if err != nil {
		return fmt.Errorf("wfcgen: %w", err)
	}

	precision := len(cf.Tiles[0].Nodes)
	builder := catalog.NewBuilder(precision)
	variants, err := registry.GenerateAll(builder)
	if err != nil {
		return fmt.Errorf("wfcgen: %w", err)
	}

	logger := zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
	gen, err := solver.New(opts.width, opts.height, variants, solver.WithSeed(opts.seed), solver.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("wfcgen: %w", err)
	}

	result, err := gen.Run(context.Background(), opts.silent)
	if err != nil {
		return fmt.Errorf("wfcgen: %w", err)
	}

	return render.WriteASCII(cmd.OutOrStdout(), result, glyphForID)
}

// glyphForID maps a tile's id to a single printable ASCII byte. Ids beyond
// the printable range wrap, so large catalogs may alias two ids to one
// glyph; wfcgen is a demonstration renderer, not the solver's contract.
func glyphForID(v tile.Variant) byte {
	const first, count = '!', '~' - '!' + 1

	return byte(first + v.ID()%count)
}
