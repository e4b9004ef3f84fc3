// Command mstbench generates random connected graphs, computes their minimum
// spanning trees and benchmarks Kruskal against Prim across graph sizes.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/mstbench/cmd/mstbench/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx)
	stop()
	os.Exit(code)
}
