// Package main is the entry point for the ojaledger CLI.
//
// Usage:
//
//	ojaledger [flags] <command> [args]
//
// Commands:
//
//	serve    - Run the voice bookkeeping HTTP server
//	ledger   - Inspect and maintain the transaction ledger
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/ojaledger/ojaledger/cmd/ojaledger/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
