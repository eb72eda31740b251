// Command hampath compares an exhaustive and a greedy Hamiltonian path search
// on random graphs.
//
// Usage:
//
//	hampath analyze graph.txt --algorithm both --trace
//	hampath generate 20 medium -o graph.txt
//	hampath experiment 20 dense -r 10 -o results.csv
//	hampath batch --sizes 10,20,30 --densities sparse,dense -o results.csv
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
