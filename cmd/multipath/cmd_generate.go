package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/multipath/builder"
	"github.com/katalvlaran/multipath/loader"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	kind       string
	n          int
	rows, cols int
	p          float64
	parallel   int
	seed       int64
	minWeight  int64
	maxWeight  int64
	ids        string
	endpoints  bool
	format     string
	out        string
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic graph file (grid, path, cycle, complete, random)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := loader.ParseFormat(f.format)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			cons, err := f.constructors()
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			bopts, err := f.builderOptions()
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			g, err := builder.BuildGraph(nil, bopts, cons...)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			a.log.WithField("kind", f.kind).WithField("vertices", g.VertexCount()).WithField("edges", g.EdgeCount()).Debug("generated")

			var w io.Writer = cmd.OutOrStdout()
			if f.out != "" {
				file, err := os.Create(f.out)
				if err != nil {
					return fmt.Errorf("generate: %w", err)
				}
				defer file.Close()
				w = file
			}
			if err = loader.Encode(w, g, format); err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "grid", "Topology: grid|path|cycle|complete|random")
	fl.IntVarP(&f.n, "vertices", "n", 6, "Vertex count for path, cycle, complete and random")
	fl.IntVar(&f.rows, "rows", 3, "Grid rows")
	fl.IntVar(&f.cols, "cols", 3, "Grid columns")
	fl.Float64Var(&f.p, "p", 0.4, "Edge probability for random")
	fl.IntVar(&f.parallel, "parallel", 1, "Edges per adjacent pair")
	fl.Int64Var(&f.seed, "seed", 1, "Random seed")
	fl.Int64Var(&f.minWeight, "min-weight", 1, "Minimum edge weight")
	fl.Int64Var(&f.maxWeight, "max-weight", 1, "Maximum edge weight")
	fl.StringVar(&f.ids, "ids", "default", "Vertex IDs: default|symbol|excel")
	fl.BoolVar(&f.endpoints, "endpoints", true, "Name the first vertex \"s\" and the last \"t\"")
	fl.StringVar(&f.format, "format", "json", "Output encoding: json|yaml|hcl|matrix")
	fl.StringVar(&f.out, "out", "", "Write to this file instead of stdout")
	return cmd
}

func (f generateFlags) constructors() ([]builder.Constructor, error) {
	var cons []builder.Constructor
	switch f.kind {
	case "grid":
		cons = append(cons, builder.Grid(f.rows, f.cols))
	case "path":
		cons = append(cons, builder.Path(f.n))
	case "cycle":
		cons = append(cons, builder.Cycle(f.n))
	case "complete":
		cons = append(cons, builder.Complete(f.n))
	case "random":
		cons = append(cons, builder.RandomSparse(f.n, f.p))
	default:
		return nil, fmt.Errorf("unknown kind %q", f.kind)
	}
	if f.parallel > 1 {
		cons = append(cons, builder.Parallel(f.parallel))
	}
	return cons, nil
}

func (f generateFlags) builderOptions() ([]builder.BuilderOption, error) {
	if f.minWeight < 0 || f.maxWeight < f.minWeight {
		return nil, fmt.Errorf("weights need 0 <= min-weight <= max-weight, got %d..%d", f.minWeight, f.maxWeight)
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithUniformWeight(f.minWeight, f.maxWeight),
	}
	switch f.ids {
	case "default":
		opts = append(opts, builder.WithDefaultIDs())
	case "symbol":
		opts = append(opts, builder.WithSymbolIDs())
	case "excel":
		opts = append(opts, builder.WithExcelColumnIDs())
	default:
		return nil, fmt.Errorf("unknown id scheme %q", f.ids)
	}
	if f.endpoints {
		opts = append(opts, builder.WithEndpointIDs())
	}
	return opts, nil
}
