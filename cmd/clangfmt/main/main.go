package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sort"
	"syscall"

	"github.com/arthur-debert/clangfmt/cmd/clangfmt"
	"github.com/arthur-debert/clangfmt/pkg/errors"
	"github.com/arthur-debert/clangfmt/pkg/output/styles"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n\n%s", r, debug.Stack())
			code = 1
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := clangfmt.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		printDetails(err)
		return 1
	}
	return 0
}

func printDetails(err error) {
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	muted := styles.GetStyle("Muted")
	for _, k := range keys {
		fmt.Fprintln(os.Stderr, muted.Render(fmt.Sprintf("  %s: %v", k, details[k])))
	}
}
