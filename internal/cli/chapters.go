package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/freeeve/movetree/internal/chapters"
	"github.com/freeeve/movetree/internal/eco"
	"github.com/freeeve/movetree/internal/ingest"
	"github.com/freeeve/movetree/internal/pgnio"
)

func (c *CLI) chaptersCommand() *cobra.Command {
	var (
		trim     string
		out      string
		games    []string
		gamesDir string
	)
	cmd := &cobra.Command{
		Use:   "chapters <summary-file>",
		Short: "Build a study with one variation tree per chapter",
		Long: heredoc.Doc(`
			chapters reads a file of blank-line separated blocks. A block
			holding a single "[Title] moves" line opens a section; any other
			block is a chapter of "count<TAB>moves" rows.

			Each chapter is merged into one tree and titled by the moves its
			lines share, leaving out the --trim moves and the section base.

			With --games, every leaf line is looked up in the given PGN files
			and the matching games are written to --games-dir.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := pgnio.Open(args[0])
			if err != nil {
				return err
			}
			in, err := chapters.Parse(r)
			r.Close()
			if err != nil {
				return err
			}
			chs, err := chapters.Build(in, c.Oracle, len(eco.ParseMoves(trim)))
			if err != nil {
				return err
			}
			c.Logger.Info().Int("chapters", len(chs)).Bool("sectioned", in.Sectioned).Msg("chapters built")

			w, done, err := output(cmd.OutOrStdout(), out)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, chapters.Render(chs, in.Sectioned)); err != nil {
				return err
			}
			if err := done(); err != nil {
				return err
			}

			if len(games) == 0 {
				return nil
			}
			return c.writeChapterGames(cmd, chs, games, gamesDir)
		},
	}
	cmd.Flags().StringVar(&trim, "trim", "", "moves left out of every title, e.g. \"1.e4 e5\"")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.zst to compress)")
	cmd.Flags().StringSliceVar(&games, "games", nil, "PGN files to pull the games of each line from")
	cmd.Flags().StringVar(&gamesDir, "games-dir", "games", "directory for the per-line game files")
	return cmd
}

// writeChapterGames writes, for each leaf line, the indexed games reaching
// it and prints a "line, file" summary.
func (c *CLI) writeChapterGames(cmd *cobra.Command, chs []chapters.Chapter, files []string, dir string) error {
	ix, err := ingest.BuildIndex(cmd.Context(), ingest.Config{
		Files:     files,
		Workers:   c.Config.Workers,
		RatingMin: c.Config.RatingMin,
		Logger:    c.Logger,
	})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	n := 0
	for _, ch := range chs {
		for _, leaf := range chapters.Leaves(ch.Tree) {
			refs, err := ix.Games(strings.Fields(leaf.Moves))
			if err != nil {
				return fmt.Errorf("%s: %w", leaf.Name, err)
			}
			if len(refs) == 0 {
				c.Logger.Debug().Str("line", leaf.Name).Msg("no games")
				continue
			}
			n++
			path := filepath.Join(dir, pgnio.Slug(ch.Title, fmt.Sprint(n))+".pgn")
			if err := writeGames(path, refs, c); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s, %s\n", leaf.Name, path)
		}
	}
	c.Logger.Info().Int("files", n).Str("dir", dir).Msg("games written")
	return nil
}

func writeGames(path string, refs []ingest.GameRef, c *CLI) error {
	f, err := pgnio.Create(path)
	if err != nil {
		return err
	}
	if err := ingest.WritePGN(f, refs, c.Oracle); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

