// Package main defines the entry point of the execution CLI.
package main

import (
	"log"
	"os"

	"github.com/axonweb3/axon-exec/cmd/exec-cli/exec"
	"github.com/urfave/cli/v2"
)

// ExecApp data structure
var ExecApp = cli.App{
	Name:      "Axon Executor",
	HelpName:  "axon-exec",
	Usage:     "executes account-model transaction batches and resolves cell-model transactions",
	Copyright: "(c) 2022 Axon",
	Commands: []*cli.Command{
		&exec.ExecCommand,
		&exec.CallCommand,
		&exec.AccountCommand,
		&exec.ResolveCommand,
		&exec.ImportCellsCommand,
	},
	UseShortOptionHandling: true,
}

// main implements the execution CLI functions
func main() {
	if err := ExecApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
