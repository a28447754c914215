// Package main runs the balance ledger: the HTTP API plus its maintenance commands.
package main

import (
	"os"

	"github.com/go-petr/balance-ledger/internal/cli"

	_ "github.com/lib/pq"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
