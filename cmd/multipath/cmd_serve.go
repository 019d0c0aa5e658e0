package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/katalvlaran/multipath/core"
	"github.com/katalvlaran/multipath/internal/server"
	"github.com/katalvlaran/multipath/loader"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve <file|dir>...",
		Short: "Serve labels and paths for the given graphs over HTTP",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.ListenAddr = addr
			}
			graphs, err := loadGraphs(args)
			if err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			strategy, err := a.cfg.EngineStrategy()
			if err != nil {
				return fmt.Errorf("serve: %w", err)
			}

			handler := server.New(server.Deps{
				Log:         a.log,
				Graphs:      graphs,
				Strategy:    strategy,
				MaxPaths:    a.cfg.MaxPaths,
				CORSOrigins: a.cfg.CORSOrigins,
			})
			srv := &http.Server{
				Addr:              a.cfg.ListenAddr,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				a.log.WithField("addr", srv.Addr).WithField("graphs", len(graphs)).Info("listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				a.log.Info("shutting down")
				return srv.Shutdown(shutdownCtx)
			})
			if err = g.Wait(); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")
	return cmd
}

// loadGraphs names each graph after its file, without extensions.
func loadGraphs(args []string) (map[string]*core.Graph, error) {
	files, err := collectGraphFiles(args)
	if err != nil {
		return nil, err
	}
	graphs := make(map[string]*core.Graph, len(files))
	for _, f := range files {
		name := graphName(f)
		if _, dup := graphs[name]; dup {
			return nil, fmt.Errorf("duplicate graph name %q from %s", name, f)
		}
		g, err := loader.LoadGraph(f)
		if err != nil {
			return nil, err
		}
		graphs[name] = g
	}
	return graphs, nil
}

func graphName(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i > 0 {
		return base[:i]
	}
	return base
}
