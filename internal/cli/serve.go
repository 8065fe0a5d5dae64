package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/freeeve/movetree/internal/collection"
	"github.com/freeeve/movetree/internal/httpapi"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr   string
		ecoDir string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the merge and games endpoints over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = c.Config.Addr
			}
			if ecoDir == "" {
				ecoDir = c.Config.EcoDir
			}
			cat, err := c.catalog(ecoDir)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpapi.NewRouter(c.Logger, c.Oracle, collection.PGNParser{}, cat),
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      60 * time.Second,
				IdleTimeout:       120 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				c.Logger.Info().Str("addr", addr).Msg("listening")
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
			}

			c.Logger.Info().Msg("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&ecoDir, "eco", "", "catalog directory (default builtin)")
	return cmd
}
