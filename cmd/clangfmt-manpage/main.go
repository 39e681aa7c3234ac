package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/clangfmt/cmd/clangfmt"
	"github.com/arthur-debert/clangfmt/internal/version"
)

func main() {
	rootCmd := clangfmt.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CLANGFMT",
		Section: "1",
		Source:  "clangfmt " + version.Version,
		Manual:  "clangfmt manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
