package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goldencmp/compare"
	"goldencmp/constants"
	"goldencmp/logger"
)

var rootCmd = NewRootCmd()

// NewRootCmd builds the goldencmp command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goldencmp <found-file>",
		Short: "Compare a produced text file against its golden fixture",
		Long: `Compare a file produced by a CLI test run against the expected fixture of the
same name under the results directory.

Before comparing, every occurrence of the placeholder token in either file is
replaced with the current working directory, and trailing whitespace is
stripped from each line. Prints "Files match" and exits 0 when the files are
equal; otherwise prints each differing line and exits 1.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCompare,
	}
	AddCommonFlags(cmd.Flags())
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	config, err := ParseCommandConfig(cmd, args)
	if err != nil {
		return err
	}

	level := logger.LevelInfo
	if config.Verbose {
		level = logger.LevelDebug
	}
	log := logger.NewLoggerWithOutput(cmd.ErrOrStderr(), level)

	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	_, err = NewFixtureChecker(*config, pwd, cmd.OutOrStdout(), log).Check()
	return err
}

// GetRootCmd returns the root command, used for documentation generation
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// Execute runs the root command against os.Args and returns the exit code
func Execute() int {
	return ExecuteCommand(rootCmd)
}

// ExecuteCommand runs cmd and maps its outcome to a process exit code.
// Failures other than a mismatch are logged to the command's stderr.
func ExecuteCommand(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return constants.ExitMatch
	}
	if errors.Is(err, ErrMismatch) {
		return constants.ExitFailure
	}

	log := logger.NewLoggerWithOutput(cmd.ErrOrStderr(), logger.LevelInfo)
	var fileErr *compare.FileError
	if errors.As(err, &fileErr) {
		log.Error("Cannot read file", fileErr.Err, logger.String("path", fileErr.Path))
	} else {
		log.Error("Comparison failed", err)
	}
	return constants.ExitFailure
}
