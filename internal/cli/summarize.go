package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freeeve/movetree/internal/collection"
	"github.com/freeeve/movetree/internal/summary"
)

func (c *CLI) summarizeCommand() *cobra.Command {
	var (
		opts summary.Options
		out  string
	)
	cmd := &cobra.Command{
		Use:   "summarize <file.pgn>...",
		Short: "Count the games sharing each opening prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var recs []*collection.Record
			for _, path := range args {
				r, err := c.readRecords(path)
				if err != nil {
					return err
				}
				recs = append(recs, r...)
			}
			rows := summary.Build(recs, opts)
			c.Logger.Info().Int("games", len(recs)).Int("rows", len(rows)).Msg("summarized")

			w, done, err := output(cmd.OutOrStdout(), out)
			if err != nil {
				return err
			}
			if err := summary.Write(w, rows); err != nil {
				done()
				return fmt.Errorf("write summary: %w", err)
			}
			return done()
		},
	}
	cmd.Flags().IntVar(&opts.Plies, "plies", summary.DefaultPlies, "prefix length in plies")
	cmd.Flags().IntVar(&opts.MinCount, "min", 0, "drop prefixes reached by this many games or fewer")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.zst to compress)")
	return cmd
}
