package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/freeeve/movetree/internal/eval"
)

func (c *CLI) evalCommand() *cobra.Command {
	var (
		file   string
		fen    string
		depth  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "eval [line...]",
		Short: "Score the final position of every line of a merged tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			var lines [][]string
			for _, a := range args {
				lines = append(lines, strings.Fields(a))
			}
			if file != "" {
				fromFile, err := readLinesFile(file)
				if err != nil {
					return err
				}
				lines = append(lines, fromFile...)
			}
			tree, err := mergeLines(c.Oracle, fen, lines)
			if err != nil {
				return err
			}

			cfg := eval.Config{
				StockfishPath: c.Config.Stockfish,
				Logger:        c.Logger,
				Depth:         c.Config.EvalDepth,
				HashMB:        c.Config.EvalHash,
				Threads:       c.Config.EvalThreads,
				Nice:          c.Config.EvalNice,
			}
			if depth > 0 {
				cfg.Depth = depth
			}
			eng, err := eval.NewStockfish(cfg)
			if err != nil {
				return err
			}
			defer eng.Close()

			results, err := eval.NewEvaluator(eng, cfg).Leaves(cmd.Context(), tree)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, r := range results {
				fmt.Fprintf(out, "%s\t%s\n", formatScore(r.Score), r.Line)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file of lines, one per line")
	cmd.Flags().StringVar(&fen, "fen", "", "start position (default standard start)")
	cmd.Flags().IntVar(&depth, "depth", 0, "search depth (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func formatScore(s eval.Score) string {
	if s.IsMate {
		return fmt.Sprintf("#%d", s.Mate)
	}
	return fmt.Sprintf("%+.2f", float64(s.CP)/100)
}
