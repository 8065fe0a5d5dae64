package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) gamesCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "games <file.pgn>",
		Short: "Rebuild the games of a PGN file as variation trees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := c.readRecords(args[0])
			if err != nil {
				return err
			}
			w, done, err := output(cmd.OutOrStdout(), out)
			if err != nil {
				return err
			}
			for i, rec := range recs {
				if i > 0 {
					fmt.Fprintln(w)
				}
				for _, tag := range [][2]string{
					{"Event", rec.Event()},
					{"Site", rec.Site()},
					{"White", rec.White()},
					{"Black", rec.Black()},
					{"Puzzle", rec.Puzzle()},
				} {
					if tag[1] != "" {
						fmt.Fprintf(w, "[%s %q]\n", tag[0], tag[1])
					}
				}
				if fen := rec.Header("FEN"); fen != "" {
					fmt.Fprintf(w, "[FEN %q]\n", fen)
				}
				fmt.Fprintf(w, "\n%s\n", rec.Text())
				if rec.Skipped > 0 {
					c.Logger.Warn().Int("game", i).Int("lines", rec.Skipped).Msg("alternatives to the first move dropped")
				}
			}
			return done()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.zst to compress)")
	return cmd
}
