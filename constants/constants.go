package constants

// Fixture conventions
const (
	// DefaultPlaceholder stands in for the working directory inside expected fixtures.
	DefaultPlaceholder = "<DJWAVFIXER_PWD_PLACEHOLDER>"
	DefaultResultsDir  = "./resources/cli_results/"
)

// Report rendering
const (
	MissingLineMarker     = "<missing>"
	DefaultUnifiedContext = 3
)

// Process exit codes
const (
	ExitMatch   = 0
	ExitFailure = 1
)
