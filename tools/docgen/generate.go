package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func generate(root *cobra.Command, format, dir string) error {
	root.DisableAutoGenTag = true
	switch format {
	case "markdown":
		return doc.GenMarkdownTree(root, dir)
	case "man":
		header := &doc.GenManHeader{
			Title:   "GOLDENCMP",
			Section: "1",
		}
		return doc.GenManTree(root, header, dir)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
