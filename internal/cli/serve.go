package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/agilomatrix/racklabel/internal/server"
)

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP upload/progress/download API",
		Long: `Serve starts an HTTP server that accepts spreadsheet uploads, builds label
documents in the background, and reports per-location progress while the
PDF is prepared for download.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := c.newRunner(noCache)
			defer runner.Close()

			srv := server.New(runner, c.Logger)
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case <-cmd.Context().Done():
				c.Logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					return err
				}
				return cmd.Context().Err()
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the rendered-artifact cache")

	return cmd
}
