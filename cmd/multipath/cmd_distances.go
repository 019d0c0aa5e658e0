package main

import (
	"fmt"

	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/katalvlaran/multipath/loader"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type distanceRow struct {
	Vertex       string                 `json:"vertex"`
	Distance     *int64                 `json:"distance"`
	Reachable    bool                   `json:"reachable"`
	Predecessors []dijkstra.Predecessor `json:"predecessors"`
}

func newDistancesCmd(a *app) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "distances <file>",
		Short: "Print every vertex's distance and predecessor set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.solve(args[0], source)
			if err != nil {
				return fmt.Errorf("distances: %w", err)
			}
			return a.printDistances(cmd, res)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "s", "Source vertex ID")
	return cmd
}

// solve loads a graph file and runs the engine from source.
func (a *app) solve(path, source string) (*dijkstra.Result, error) {
	g, err := loader.LoadGraph(path)
	if err != nil {
		return nil, err
	}
	opts, err := a.engineOptions()
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"file": path, "source": source, "vertices": g.VertexCount(), "edges": g.EdgeCount(),
	}).Debug("graph loaded")

	return dijkstra.ShortestPaths(g, source, opts...)
}

func (a *app) printDistances(cmd *cobra.Command, res *dijkstra.Result) error {
	ids := res.Vertices()
	rows := make([]distanceRow, 0, len(ids))
	for _, v := range ids {
		l := res.Labels[v]
		preds := l.Predecessors
		if preds == nil {
			preds = []dijkstra.Predecessor{}
		}
		rows = append(rows, distanceRow{Vertex: v, Distance: finite(l.Distance), Reachable: l.Reachable(), Predecessors: preds})
	}

	out := cmd.OutOrStdout()
	if a.cfg.Output == "json" {
		return formatJSON(out, map[string]any{"source": res.Source, "order": res.Order, "vertices": rows})
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{r.Vertex, formatDistance(res.Labels[r.Vertex].Distance), formatPredecessors(r.Predecessors)})
	}
	formatTable(out, []string{"VERTEX", "DISTANCE", "PREDECESSORS"}, table)
	return nil
}
