// Package main provides a cli to build the membership tree of a whitelist,
// to publish its root and to generate and check membership proofs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashgarden/merkle/cli"
	"github.com/hashgarden/merkle/cli/ucli"
	"github.com/hashgarden/merkle/tree/binpair/command"
)

var builder cli.Builder = ucli.NewBuilder("whitelist", nil)
var printer io.Writer = os.Stderr

func main() {
	err := run(os.Args, command.Initializer{})
	if err != nil {
		fmt.Fprintf(printer, "%+v\n", err)
	}
}

func run(args []string, inits ...cli.Initializer) error {
	for _, init := range inits {
		init.SetCommands(builder)
	}

	app := builder.Build()

	err := app.Run(args)
	if err != nil {
		return err
	}

	return nil
}
