package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/multipath/loader"
	"github.com/katalvlaran/multipath/paths"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type batchResult struct {
	File     string       `json:"file"`
	Distance *int64       `json:"distance"`
	Total    uint64       `json:"total"`
	Paths    []paths.Path `json:"paths,omitempty"`
	Error    string       `json:"error,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		source, target string
		workers        int
	)
	cmd := &cobra.Command{
		Use:   "batch <file|dir>...",
		Short: "Solve source→target on many graph files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.Workers = workers
			}
			if a.cfg.Workers < 1 {
				return fmt.Errorf("batch: workers must be >= 1")
			}
			files, err := collectGraphFiles(args)
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}

			runID := uuid.New().String()
			log := a.log.WithFields(logrus.Fields{"run_id": runID, "files": len(files), "workers": a.cfg.Workers})
			log.Info("batch started")

			results, err := a.runBatch(cmd.Context(), files, source, target)
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}

			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
				}
			}
			log.WithField("failed", failed).Info("batch finished")

			if err = a.printBatch(cmd, runID, results); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("batch: %d of %d files failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "s", "Source vertex ID")
	cmd.Flags().StringVarP(&target, "target", "t", "t", "Target vertex ID")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "Concurrent solves")
	return cmd
}

// runBatch solves every file; per-file failures are recorded, not returned.
// Results keep the order of files.
func (a *app) runBatch(ctx context.Context, files []string, source, target string) ([]batchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	pol, err := a.cfg.PathPolicy()
	if err != nil {
		return nil, err
	}

	results := make([]batchResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.solveOne(f, source, target, pol)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (a *app) solveOne(file, source, target string, pol paths.Policy) batchResult {
	r := batchResult{File: file}
	res, err := a.solve(file, source)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Distance = finite(res.Distance(target))
	if r.Total, err = paths.Count(res.Labels, source, target, paths.WithPolicy(pol)); err != nil {
		r.Error = err.Error()
		return r
	}
	if r.Paths, err = paths.FromResult(res, target, paths.WithPolicy(pol), paths.WithMaxPaths(a.cfg.MaxPaths)); err != nil {
		r.Error = err.Error()
	}
	return r
}

func (a *app) printBatch(cmd *cobra.Command, runID string, results []batchResult) error {
	out := cmd.OutOrStdout()
	if a.cfg.Output == "json" {
		return formatJSON(out, map[string]any{"run_id": runID, "results": results})
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		dist := "inf"
		if r.Distance != nil {
			dist = strconv.FormatInt(*r.Distance, 10)
		}
		first := "-"
		if len(r.Paths) > 0 {
			first = r.Paths[0].String()
		}
		if r.Error != "" {
			dist, first = "-", "error: "+r.Error
		}
		rows = append(rows, []string{filepath.Base(r.File), dist, strconv.FormatUint(r.Total, 10), first})
	}
	formatTable(out, []string{"FILE", "DISTANCE", "PATHS", "FIRST"}, rows)
	return nil
}

// collectGraphFiles expands directories into their graph files, sorted by name.
func collectGraphFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		var found []string
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			if _, err := loader.FormatFromPath(e.Name()); err == nil {
				found = append(found, filepath.Join(arg, e.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no graph files in %v", args)
	}
	return files, nil
}
