package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"goldencmp/constants"
)

// CommandConfig holds the configuration for a fixture comparison
type CommandConfig struct {
	FoundPath   string
	ResultsDir  string
	Placeholder string
	Unified     bool
	Context     int
	Verbose     bool
}

// ExpectedPath locates the golden fixture for the found file
func (c CommandConfig) ExpectedPath() string {
	return filepath.Join(c.ResultsDir, c.FoundPath)
}

// ParseCommandConfig extracts and validates command configuration from cobra command
func ParseCommandConfig(cmd *cobra.Command, args []string) (*CommandConfig, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected exactly one found file, got %d arguments", len(args))
	}

	flags := cmd.Flags()
	resultsDir, _ := flags.GetString("results-dir")
	placeholder, _ := flags.GetString("placeholder")
	unified, _ := flags.GetBool("unified")
	contextLines, _ := flags.GetInt("context")
	verbose, _ := flags.GetBool("verbose")

	if placeholder == "" {
		return nil, errors.New("placeholder must not be empty")
	}
	if contextLines < 0 {
		return nil, fmt.Errorf("context must be zero or more, got %d", contextLines)
	}

	return &CommandConfig{
		FoundPath:   args[0],
		ResultsDir:  resultsDir,
		Placeholder: placeholder,
		Unified:     unified,
		Context:     contextLines,
		Verbose:     verbose,
	}, nil
}

// AddCommonFlags adds the comparison flags to a flag set
func AddCommonFlags(flags *pflag.FlagSet) {
	flags.String("results-dir", constants.DefaultResultsDir, "Directory holding expected fixtures, joined with the found file path")
	flags.String("placeholder", constants.DefaultPlaceholder, "Token in fixtures replaced by the current working directory")
	flags.Bool("unified", false, "Also print a unified diff when the files differ")
	flags.Int("context", constants.DefaultUnifiedContext, "Lines of context for --unified")
	flags.BoolP("verbose", "v", false, "Log debug details to stderr")
}
