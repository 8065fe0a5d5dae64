package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/freeeve/movetree/internal/ingest"
	"github.com/freeeve/movetree/internal/pgnio"
)

func (c *CLI) filterCommand() *cobra.Command {
	var (
		dir      string
		ecoDir   string
		maxPlies int
		minGames int
	)
	cmd := &cobra.Command{
		Use:   "filter <file.pgn>...",
		Short: "Split games by the catalog openings they reach",
		Long: heredoc.Doc(`
			filter indexes the given PGN files and, for every opening line of
			the catalog, writes the games reaching its final position to
			<dir>/<name>.pgn. Transpositions count.`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ecoDir == "" {
				ecoDir = c.Config.EcoDir
			}
			cat, err := c.catalog(ecoDir)
			if err != nil {
				return err
			}
			ix, err := ingest.BuildIndex(cmd.Context(), ingest.Config{
				Files:     args,
				Workers:   c.Config.Workers,
				RatingMin: c.Config.RatingMin,
				MaxPlies:  maxPlies,
				Logger:    c.Logger,
			})
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, line := range cat.Lines() {
				refs, err := ix.Games(line.Moves)
				if err != nil {
					return fmt.Errorf("%s: %w", line.Name, err)
				}
				if len(refs) <= minGames {
					continue
				}
				path := filepath.Join(dir, pgnio.Slug(line.Name, fmt.Sprint(i+1))+".pgn")
				if err := writeGames(path, refs, c); err != nil {
					return err
				}
				fmt.Fprintf(out, "%d\t%s\t%s\n", len(refs), line.Name, path)
			}
			c.Logger.Info().Int("games", ix.Len()).Int("skipped", ix.Skipped()).Msg("filter done")
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "openings", "output directory")
	cmd.Flags().StringVar(&ecoDir, "eco", "", "catalog directory (default builtin)")
	cmd.Flags().IntVar(&maxPlies, "max-plies", 40, "index only the first N plies of each game")
	cmd.Flags().IntVar(&minGames, "min", 0, "skip openings with this many games or fewer")
	return cmd
}
