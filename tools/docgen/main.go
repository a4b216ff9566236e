package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"goldencmp/cmd"
)

func main() {
	format := pflag.String("format", "markdown", "Output format: markdown or man")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [--format markdown|man] [output-dir]\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	outputDir := "./docs/"
	if pflag.NArg() > 0 {
		outputDir = pflag.Arg(0)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	if err := generate(cmd.GetRootCmd(), *format, outputDir); err != nil {
		log.Fatalf("Failed to generate documentation: %v", err)
	}

	absPath, err := filepath.Abs(outputDir)
	if err != nil {
		log.Fatalf("Failed to get absolute path: %v", err)
	}

	log.Printf("Documentation successfully generated in %s", absPath)
}
