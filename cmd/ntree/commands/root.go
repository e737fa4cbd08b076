// Package commands implements the ntree subcommands. Each command works on
// the positions of a complete tree whose arity and length come from the
// loaded configuration.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-ntree/internal/config"
	"github.com/forestrie/go-ntree/internal/logging"
)

// Version is set at build time with -ldflags.
var Version = "dev"

const (
	rootCmdUse   = "ntree"
	rootCmdShort = "Inspect complete N-ary trees stored in heap order"
	rootCmdLong  = `ntree computes positions, traversal orders and level layouts of
complete N-ary trees stored breadth first in a flat array.

Settings are read from .ntree.yaml in the working directory or $HOME,
NTREE_ environment variables (NTREE_TREE_ARITY, NTREE_TREE_LENGTH, ...)
and flags, in increasing order of precedence.`

	configFlag     = "config"
	verboseFlag    = "verbose"
	verboseShort   = "v"
	logFormatFlag  = "log-format"
	logLevelFlag   = "log-level"
	arityFlag      = "arity"
	arityShort     = "n"
	lenFlag        = "len"
	lenShort       = "l"
	debugLevelName = "debug"
)

// state is shared by the root command and its subcommands. cfg and log are
// populated before any subcommand runs.
type state struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *slog.Logger
}

// NewRootCommand creates the ntree command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	st := &state{log: logging.Discard}

	rootCmd := &cobra.Command{
		Use:           rootCmdUse,
		Short:         rootCmdShort,
		Long:          rootCmdLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&st.configPath, configFlag, "", "config file (default .ntree.yaml in . or $HOME)")
	flags.BoolVarP(&st.verbose, verboseFlag, verboseShort, false, "debug logging, same as --log-level=debug")
	flags.String(logFormatFlag, config.DefaultLogFormat, "log format, text or json")
	flags.String(logLevelFlag, config.DefaultLogLevel, "log level, debug, info, warn or error")
	flags.Uint64P(arityFlag, arityShort, config.DefaultArity, "arity of the tree")
	flags.Uint64P(lenFlag, lenShort, config.DefaultLength, "number of occupied positions")

	rootCmd.AddCommand(newOrderCommand(st))
	rootCmd.AddCommand(newFlattenCommand(st))
	rootCmd.AddCommand(newUnflattenCommand(st))
	rootCmd.AddCommand(newRenderCommand(st))
	rootCmd.AddCommand(newLevelsCommand(st))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (st *state) load(cmd *cobra.Command) error {
	cfg, err := config.Load(st.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if st.verbose {
		cfg.Logging.Level = debugLevelName
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Format, cfg.Logging.Level)
	if err != nil {
		return err
	}

	st.cfg = cfg
	st.log = logger.With("command", cmd.Name())
	st.log.Debug("config loaded",
		"arity", cfg.Tree.Arity,
		"length", cfg.Tree.Length,
		"indent", cfg.Render.Indent,
	)

	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", rootCmdUse, Version)
			return err
		},
	}
}
