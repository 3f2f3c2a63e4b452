// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-formatter/internal/pipeline"
	"github.com/pdiddy/paper-formatter/internal/server"
	"github.com/pdiddy/paper-formatter/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the formatting HTTP service",
	Long: `Serve starts the HTTP service: POST /papers formats an upload and stores
the run, GET /papers/{id}/artifact re-renders it as docx or html, and
GET /health reports service status. Runs persist in a SQLite database
under the store directory.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := formatterConfig()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if dir, _ := cmd.Flags().GetString("store-dir"); dir != "" {
		cfg.Store.Dir = dir
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	papers, err := store.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer papers.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	noCorrect, _ := cmd.Flags().GetBool("no-correct")
	corrector, closeCorrector, err := newCorrector(ctx, cfg, noCorrect)
	if err != nil {
		return err
	}
	defer closeCorrector()
	if corrector == nil {
		logger.Info("grammar correction disabled: no API key configured")
	}

	srv := server.New(cfg.Server, pipeline.New(cfg, corrector), papers, logger)
	return srv.Start(ctx)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().String("store-dir", "", "paper store directory (default papers)")
	serveCmd.Flags().Bool("no-correct", false, "skip grammar correction even when an API key is configured")

	rootCmd.AddCommand(serveCmd)
}
