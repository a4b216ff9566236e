package cmd

import (
	"errors"
	"fmt"
	"io"

	"goldencmp/compare"
	"goldencmp/logger"
)

// ErrMismatch is returned when the found file differs from its fixture.
// The report has already been written by the time it is returned.
var ErrMismatch = errors.New("files differ")

// FixtureChecker compares one found file against its expected fixture
type FixtureChecker struct {
	config     CommandConfig
	normalizer compare.Normalizer
	output     io.Writer
	log        logger.Logger
}

// NewFixtureChecker creates a checker substituting pwd for the placeholder
func NewFixtureChecker(config CommandConfig, pwd string, output io.Writer, log logger.Logger) *FixtureChecker {
	return &FixtureChecker{
		config: config,
		normalizer: compare.Normalizer{
			Placeholder: config.Placeholder,
			Replacement: pwd,
		},
		output: output,
		log: log.WithFields(
			logger.String("found", config.FoundPath),
			logger.String("expected", config.ExpectedPath()),
		),
	}
}

// Check runs the comparison and writes the report. It returns ErrMismatch
// when the files differ and a *compare.FileError when either cannot be read.
func (c *FixtureChecker) Check() (compare.Result, error) {
	c.log.Debug("Comparing files", logger.String("pwd", c.normalizer.Replacement))

	res, err := compare.Files(c.config.FoundPath, c.config.ExpectedPath(), c.normalizer)
	if err != nil {
		return compare.Result{}, err
	}

	c.log.Debug("Comparison finished",
		logger.String("verdict", res.Verdict.String()),
		logger.Int("foundLines", len(res.Found)),
		logger.Int("expectedLines", len(res.Expected)),
		logger.Int("differingLines", len(res.Diffs)),
	)

	if err := res.WriteReport(c.output); err != nil {
		return res, fmt.Errorf("write report: %w", err)
	}
	if res.Verdict == compare.Match {
		return res, nil
	}

	if c.config.Unified {
		if _, err := io.WriteString(c.output, "\n"); err != nil {
			return res, fmt.Errorf("write report: %w", err)
		}
		if err := res.WriteUnified(c.output, c.config.ExpectedPath(), c.config.FoundPath, c.config.Context); err != nil {
			return res, err
		}
	}
	return res, ErrMismatch
}
