package compare

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name        string
		found       []string
		expected    []string
		wantVerdict Verdict
		wantDiffs   []LineDiff
	}{
		{
			name:        "exact match",
			found:       []string{"foo", "bar"},
			expected:    []string{"foo", "bar"},
			wantVerdict: Match,
		},
		{
			name:        "both empty",
			wantVerdict: Match,
		},
		{
			name:        "single differing line",
			found:       []string{"a", "b", "c"},
			expected:    []string{"a", "X", "c"},
			wantVerdict: Mismatch,
			wantDiffs:   []LineDiff{{Line: 2, Expected: "X", Found: "b"}},
		},
		{
			name:        "several differing lines",
			found:       []string{"1", "2", "3", "4"},
			expected:    []string{"one", "2", "three", "4"},
			wantVerdict: Mismatch,
			wantDiffs: []LineDiff{
				{Line: 1, Expected: "one", Found: "1"},
				{Line: 3, Expected: "three", Found: "3"},
			},
		},
		{
			name:        "found has extra lines",
			found:       []string{"a", "b", "c"},
			expected:    []string{"a"},
			wantVerdict: Mismatch,
			wantDiffs: []LineDiff{
				{Line: 2, Found: "b", MissingExpected: true},
				{Line: 3, Found: "c", MissingExpected: true},
			},
		},
		{
			name:        "found is truncated",
			found:       []string{"a"},
			expected:    []string{"a", ""},
			wantVerdict: Mismatch,
			wantDiffs:   []LineDiff{{Line: 2, Expected: "", MissingFound: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.found, tt.expected)
			if got.Verdict != tt.wantVerdict {
				t.Errorf("Verdict = %v, want %v", got.Verdict, tt.wantVerdict)
			}
			if diff := cmp.Diff(tt.wantDiffs, got.Diffs); diff != "" {
				t.Errorf("Diffs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinesIdentity(t *testing.T) {
	inputs := [][]string{
		nil,
		{""},
		{"a", "", "  indented", "ünïcödé ✓"},
	}
	for _, in := range inputs {
		if got := Lines(in, in); got.Verdict != Match || len(got.Diffs) != 0 {
			t.Errorf("Lines(%q, %q) = %+v, want match", in, in, got)
		}
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	n := Normalizer{Placeholder: testPlaceholder, Replacement: dir}

	found := filepath.Join(dir, "found.txt")
	expected := filepath.Join(dir, "expected.txt")
	require.NoError(t, os.WriteFile(found, []byte("file: "+dir+"/a.wav\t\nok\n"), 0o644))
	require.NoError(t, os.WriteFile(expected, []byte("file: "+testPlaceholder+"/a.wav\nok   \n"), 0o644))

	res, err := Files(found, expected, n)
	require.NoError(t, err)
	require.Equal(t, Match, res.Verdict)

	same, err := Files(found, found, n)
	require.NoError(t, err)
	require.Equal(t, Match, same.Verdict)
}

func TestFilesMissing(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(present, []byte("x\n"), 0o644))
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name     string
		found    string
		expected string
	}{
		{"found missing", missing, present},
		{"expected missing", present, missing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Files(tt.found, tt.expected, Normalizer{})
			var fileErr *FileError
			require.True(t, errors.As(err, &fileErr), "expected *FileError, got %v", err)
			require.Equal(t, missing, fileErr.Path)
			require.True(t, errors.Is(err, fs.ErrNotExist))
		})
	}
}

func TestVerdictString(t *testing.T) {
	require.Equal(t, "match", Match.String())
	require.Equal(t, "mismatch", Mismatch.String())
	require.Equal(t, "Verdict(7)", Verdict(7).String())
}
