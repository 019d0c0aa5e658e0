package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/multipath/paths"
	"github.com/spf13/cobra"
)

func newPathsCmd(a *app) *cobra.Command {
	var (
		source, target, policy string
		maxPaths               int
		countOnly              bool
	)
	cmd := &cobra.Command{
		Use:   "paths <file>",
		Short: "Enumerate every shortest path from source to target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("policy") {
				a.cfg.Policy = policy
			}
			if cmd.Flags().Changed("max-paths") {
				a.cfg.MaxPaths = maxPaths
			}
			pol, err := a.cfg.PathPolicy()
			if err != nil {
				return fmt.Errorf("paths: %w", err)
			}

			res, err := a.solve(args[0], source)
			if err != nil {
				return fmt.Errorf("paths: %w", err)
			}
			total, err := paths.Count(res.Labels, source, target, paths.WithPolicy(pol))
			if err != nil {
				return fmt.Errorf("paths: %w", err)
			}

			out := cmd.OutOrStdout()
			if countOnly {
				fmt.Fprintln(out, total)
				return nil
			}

			ps, err := paths.FromResult(res, target, paths.WithPolicy(pol), paths.WithMaxPaths(a.cfg.MaxPaths))
			if err != nil {
				return fmt.Errorf("paths: %w", err)
			}
			a.log.WithField("paths", len(ps)).WithField("total", total).Debug("enumerated")

			if a.cfg.Output == "json" {
				return formatJSON(out, map[string]any{
					"source": source, "target": target, "policy": pol.String(),
					"distance": finite(res.Distance(target)), "total": total, "paths": ps,
				})
			}
			rows := make([][]string, 0, len(ps))
			for i, p := range ps {
				rows = append(rows, []string{
					strconv.Itoa(i + 1), formatDistance(p.Distance), strconv.Itoa(p.Hops()),
					p.String(), strings.Join(p.Edges, ","),
				})
			}
			formatTable(out, []string{"#", "DISTANCE", "HOPS", "PATH", "EDGES"}, rows)
			if uint64(len(ps)) < total {
				fmt.Fprintf(out, "(%d of %d paths shown)\n", len(ps), total)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "s", "Source vertex ID")
	cmd.Flags().StringVarP(&target, "target", "t", "t", "Target vertex ID")
	cmd.Flags().StringVar(&policy, "policy", "vertices", "Dedupe policy: vertices|edges")
	cmd.Flags().IntVar(&maxPaths, "max-paths", 0, "Stop after this many paths (0 = unlimited)")
	cmd.Flags().BoolVar(&countOnly, "count", false, "Print only the number of paths")
	return cmd
}
