// Package compare checks a produced text file against a golden fixture.
//
// Both files are reduced to line sequences by a Normalizer, which substitutes
// a placeholder token (normally standing in for the working directory) and
// trims trailing whitespace. The sequences are then compared line by line and
// the outcome rendered as a human-readable report.
package compare
