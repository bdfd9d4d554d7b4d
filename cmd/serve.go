// Package cmd — serve command.
// Runs the HTTP service until interrupted.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/headlink/core/extract"
	"github.com/gaurav-prasanna/headlink/core/fetch"
	"github.com/gaurav-prasanna/headlink/server"
)

const shutdownTimeout = 10 * time.Second

var flagPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve title fetching and segmentation over HTTP",
	Long: `Serve starts an HTTP server with:

  GET  /fetch-title?url=<url>   fetch a page title
  POST /segment                 {"url","title"} -> HTML fragment
  POST /generate                {"links":[{"url","title"}]} -> HTML block
  GET  /healthz                 liveness`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&flagPort, "port", 0, "Listen port (overrides server.port)")
}

func runServe(cmd *cobra.Command, args []string) error {
	serverCfg := cfg.Server
	if flagPort != 0 {
		serverCfg.Port = flagPort
	}

	titles := fetch.NewTitleFetcher(fetch.New(fetch.OptionsFromConfig(cfg.Fetch)), extract.New())
	cached, err := fetch.NewCached(titles, cfg.Cache.Size)
	if err != nil {
		return err
	}

	srv := server.Create(serverCfg, cached)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server running at http://localhost:%d", serverCfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
