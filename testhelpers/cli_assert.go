package testhelpers

import (
	"strings"
	"testing"
)

// AssertCLIOutput compares the actual output with the expected lines.
// If they don't match, it fails the test with a detailed message.
func AssertCLIOutput(t testing.TB, actual string, expectedLines []string) {
	t.Helper()
	expectedOutput := strings.Join(expectedLines, "\n") + "\n"
	if actual != expectedOutput {
		t.Fatalf(
			"CLI output mismatch.\n"+
				"===== Start EXPECTED output =====\n%s===== End EXPECTED output =====\n"+
				"===== Start ACTUAL output =====\n%s===== End ACTUAL output =====\n",
			expectedOutput,
			actual,
		)
	}
}

// AssertContainsInOrder checks that output contains every expected string,
// each occurring after the end of the previous one. The strings don't need to
// be consecutive and may share a line.
func AssertContainsInOrder(t testing.TB, output string, expectedStrings []string) {
	t.Helper()

	rest := output
	for i, s := range expectedStrings {
		idx := strings.Index(rest, s)
		if idx < 0 {
			t.Fatalf(
				"Output does not contain all expected strings in order.\n"+
					"Missing strings starting from: %q\n"+
					"Not found: %v\n"+
					"===== Start OUTPUT =====\n%s\n===== End OUTPUT =====\n",
				s,
				expectedStrings[i:],
				output,
			)
		}
		rest = rest[idx+len(s):]
	}
}

// AssertNotContains fails the test if output contains s.
func AssertNotContains(t testing.TB, output, s string) {
	t.Helper()
	if strings.Contains(output, s) {
		t.Fatalf("Output unexpectedly contains %q.\n===== Start OUTPUT =====\n%s\n===== End OUTPUT =====\n", s, output)
	}
}
