// Package cli implements the movetree command-line interface.
package cli

import (
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/freeeve/movetree/internal/config"
	"github.com/freeeve/movetree/internal/eco"
	"github.com/freeeve/movetree/internal/logx"
	"github.com/freeeve/movetree/internal/oracle"
)

// Version is set at build time.
var Version = "dev"

// CLI holds state shared by all commands.
type CLI struct {
	Logger zerolog.Logger
	Config config.Config
	Oracle oracle.Oracle

	logOut     io.Writer
	configPath string
	logLevel   string
	verbose    bool
}

// New creates a CLI logging to logOut.
func New(logOut io.Writer) *CLI {
	return &CLI{
		Logger: logx.NewLogger(logOut, zerolog.InfoLevel),
		Config: config.Default(),
		Oracle: oracle.NewChess(),
		logOut: logOut,
	}
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "movetree",
		Short: "Merge chess lines and games into variation trees",
		Long: heredoc.Doc(`
			movetree merges move sequences into a single variation tree and
			renders it as numbered movetext with nested variations.

			It reads lines typed as SAN or UCI, PGN collections (plain or
			.pgn.zst), and chapter files of grouped lines, and can count,
			filter and evaluate the lines it builds.`),
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/"+config.RelPath+")")
	pf.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.mergeCommand())
	root.AddCommand(c.gamesCommand())
	root.AddCommand(c.chaptersCommand())
	root.AddCommand(c.summarizeCommand())
	root.AddCommand(c.filterCommand())
	root.AddCommand(c.evalCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.catalogCommand())

	return root
}

// setup loads the config and builds the logger before any command runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, used, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	levelName := cfg.LogLevel
	if c.logLevel != "" {
		levelName = c.logLevel
	}
	if c.verbose {
		levelName = "debug"
	}
	level, err := logx.ParseLevel(levelName)
	if err != nil {
		return err
	}
	c.Logger = logx.NewLogger(c.logOut, level)
	if used != "" {
		c.Logger.Debug().Str("path", used).Msg("config loaded")
	}
	return nil
}

// catalog loads the opening catalog from dir, or the builtin one.
func (c *CLI) catalog(dir string) (*eco.Catalog, error) {
	if dir == "" {
		return eco.Builtin(), nil
	}
	cat := eco.NewCatalog()
	if err := cat.LoadDir(dir); err != nil {
		return nil, err
	}
	c.Logger.Info().Int("lines", cat.Len()).Int("invalid", cat.Invalid()).Str("dir", dir).Msg("catalog loaded")
	return cat, nil
}
