package compare

import "fmt"

// Verdict is the outcome of a comparison.
type Verdict int

const (
	Match Verdict = iota
	Mismatch
)

func (v Verdict) String() string {
	switch v {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// LineDiff is one position where the two sequences disagree. When one file
// is shorter, the side with no line at that position is flagged as missing.
type LineDiff struct {
	Line            int // 1-based
	Expected        string
	Found           string
	MissingExpected bool
	MissingFound    bool
}

// Result holds the verdict together with the compared sequences.
type Result struct {
	Verdict  Verdict
	Diffs    []LineDiff
	Expected []string
	Found    []string
}

// Lines compares two normalized sequences. Every differing position is
// reported, including trailing lines present in only one of them.
func Lines(found, expected []string) Result {
	res := Result{Verdict: Match, Expected: expected, Found: found}

	for i := 0; i < max(len(found), len(expected)); i++ {
		d := LineDiff{Line: i + 1}
		if i < len(expected) {
			d.Expected = expected[i]
		} else {
			d.MissingExpected = true
		}
		if i < len(found) {
			d.Found = found[i]
		} else {
			d.MissingFound = true
		}

		if !d.MissingExpected && !d.MissingFound && d.Expected == d.Found {
			continue
		}
		res.Diffs = append(res.Diffs, d)
	}

	if len(res.Diffs) > 0 {
		res.Verdict = Mismatch
	}
	return res
}

// Files reads and normalizes the found file, then the expected one, and
// compares them. The first unreadable file aborts with a *FileError.
func Files(foundPath, expectedPath string, n Normalizer) (Result, error) {
	found, err := ReadLines(foundPath, n)
	if err != nil {
		return Result{}, err
	}
	expected, err := ReadLines(expectedPath, n)
	if err != nil {
		return Result{}, err
	}
	return Lines(found, expected), nil
}
