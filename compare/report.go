package compare

import (
	"fmt"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"goldencmp/constants"
)

// WriteReport renders the result in the fixture-check format:
//
//	Files differ:
//	Line <N>:
//	  expected: <expected line>
//	  got     : <found line>
func (r Result) WriteReport(w io.Writer) error {
	var b strings.Builder
	if r.Verdict == Match {
		b.WriteString("Files match\n")
	} else {
		b.WriteString("Files differ:\n")
		for _, d := range r.Diffs {
			fmt.Fprintf(&b, "Line %d:\n  expected: %s\n  got     : %s\n",
				d.Line, side(d.Expected, d.MissingExpected), side(d.Found, d.MissingFound))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func side(line string, missing bool) string {
	if missing {
		return constants.MissingLineMarker
	}
	return line
}

// WriteUnified writes a unified diff of the normalized sequences, expected
// first. Nothing is written for a match.
func (r Result) WriteUnified(w io.Writer, expectedName, foundName string, context int) error {
	if r.Verdict == Match {
		return nil
	}
	diff := difflib.UnifiedDiff{
		A:        withTerminators(r.Expected),
		B:        withTerminators(r.Found),
		FromFile: expectedName,
		ToFile:   foundName,
		Context:  context,
	}
	if err := difflib.WriteUnifiedDiff(w, diff); err != nil {
		return fmt.Errorf("write unified diff: %w", err)
	}
	return nil
}

func withTerminators(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}
