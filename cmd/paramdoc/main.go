// Package main provides the CLI entrypoint for paramdoc.
//
// paramdoc reconciles declared parameters with their @param documentation:
//   - Loads Go packages or YAML declaration manifests
//   - Fills in @param types from declarations
//   - Reports orphan tags, undocumented parameters and conflicting types
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		os.Exit(1)
	}
}
