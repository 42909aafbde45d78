// Package cli implements the apsp command-line interface.
//
// # Commands
//
//   - solve: compute all-pairs shortest paths for a graph file
//   - path: print one shortest path and its distance
//   - demo: solve the built-in 5-vertex sample graph
//   - gen: write a generated graph file
//   - version: print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, including one
// line per pivot round. Loggers are passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "apsp"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	verbose    bool
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "apsp computes all-pairs shortest paths",
		Long:          `apsp solves all-pairs shortest paths on weighted directed graphs with Floyd-Warshall, reconstructs paths and reports negative cycles.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.SetVersionTemplate(versionTemplate())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.genCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// setup loads the config file, applies the log level and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	if c.configPath != "" {
		cfg, err := LoadConfig(c.configPath)
		if err != nil {
			return err
		}
		c.Config = cfg
	}

	level, err := c.Config.level()
	if err != nil {
		return err
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
