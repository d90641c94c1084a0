package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time.
var Version = "0.1.0"

// app carries state shared by all subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newApp() *app {
	return &app{logger: zap.NewNop()}
}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leetcode",
		Short: "Browse and run LeetCode solutions",
		Long: `leetcode lists the solved problems and runs a solution against a
JSON input document, printing the answer as JSON.

Example:
  leetcode solve 300 --input '{"nums":[10,9,2,5,3,7,101,18]}'`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			a.logger = newLogger(cmd, a.verbose)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging on stderr")

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newSolveCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// newLogger builds a JSON logger on the command's stderr: info level by
// default, debug with --verbose.
func newLogger(cmd *cobra.Command, verbose bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()),
		level,
	)

	return zap.New(core)
}
