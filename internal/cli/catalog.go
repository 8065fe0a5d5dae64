package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) catalogCommand() *cobra.Command {
	var (
		ecoDir string
		trees  bool
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the opening catalog, or print it as trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ecoDir == "" {
				ecoDir = c.Config.EcoDir
			}
			cat, err := c.catalog(ecoDir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !trees {
				for _, l := range cat.Lines() {
					fmt.Fprintf(out, "%s\t%s\t%s\n", l.ECO, l.Name, l)
				}
				return nil
			}
			ts, err := cat.Trees(c.Oracle)
			if err != nil {
				return err
			}
			for _, t := range ts {
				fmt.Fprintln(out, t.Text())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&ecoDir, "eco", "", "catalog directory (default builtin)")
	cmd.Flags().BoolVar(&trees, "trees", false, "merge the lines into one tree per first move")
	return cmd
}
