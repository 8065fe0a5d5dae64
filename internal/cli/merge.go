package cli

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/freeeve/movetree/internal/chapters"
	"github.com/freeeve/movetree/internal/movetree"
	"github.com/freeeve/movetree/internal/oracle"
)

func (c *CLI) mergeCommand() *cobra.Command {
	var (
		file   string
		fen    string
		leaves bool
		trunk  bool
	)
	cmd := &cobra.Command{
		Use:   "merge [line...]",
		Short: "Merge move sequences into one tree and print it",
		Long: heredoc.Doc(`
			merge builds a variation tree from move sequences given as
			arguments (one quoted line each) or read from --file, one per
			line. Lines may be SAN or UCI; every line must start with the
			same first move.`),
		Example: heredoc.Doc(`
			movetree merge "e4 e5 Nf3 Nc6 Bb5 Nf6" "e4 e5 Nf3 Nc6 Bb5 a6"
			movetree merge --file lines.txt --leaves`),
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
			c.Logger.Debug().Int("lines", len(lines)).Int("nodes", tree.Len()).Msg("merged")

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tree.Text())
			if trunk {
				nodes, _ := tree.AllNodesOnPath(tree.PathUntilFirstDivergence())
				fmt.Fprintf(out, "trunk: %s\n", tree.LineText(nodes, false))
			}
			if leaves {
				for _, l := range chapters.Leaves(tree) {
					fmt.Fprintln(out, l.Name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file of lines, one per line")
	cmd.Flags().StringVar(&fen, "fen", "", "start position (default standard start)")
	cmd.Flags().BoolVar(&leaves, "leaves", false, "also print every complete line")
	cmd.Flags().BoolVar(&trunk, "trunk", false, "also print the moves before the first branch")
	return cmd
}

func mergeLines(o oracle.Oracle, fen string, lines [][]string) (*movetree.Tree, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("no lines to merge")
	}
	if fen == "" {
		fen = oracle.StartFEN
	}
	tree, err := movetree.New(o, fen, lines[0])
	if err != nil {
		return nil, fmt.Errorf("line 1: %w", err)
	}
	for i, l := range lines[1:] {
		if err := tree.Append(l); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
	}
	return tree, nil
}
