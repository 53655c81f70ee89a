// Package command defines the cli commands of the membership tree: one to
// print the root of a whitelist, one to generate the proof of an item and
// one to check a proof against a trusted root.
package command

import (
	"os"

	"github.com/hashgarden/merkle/cli"
	"github.com/hashgarden/merkle/whitelist"
)

// Initializer provides the commands of the membership tree.
//
// - implements cli.Initializer
type Initializer struct {
}

// SetCommands implements cli.Initializer.
func (i Initializer) SetCommands(provider cli.Provider) {
	action := action{
		printer: os.Stdout,

		load:     loadWhitelist,
		readFile: os.ReadFile,
		saveFile: saveToFile,
	}

	root := provider.SetCommand("root")
	root.SetDescription("build the tree of a whitelist and print its root")
	root.SetFlags(buildFlags()...)
	root.SetAction(action.rootAction)

	prove := provider.SetCommand("prove")
	prove.SetDescription("generate the proof of membership of an item")
	prove.SetFlags(append(buildFlags(),
		cli.StringFlag{
			Name:     "item",
			Usage:    "the item to prove the membership of",
			Required: true,
		},
		cli.PathFlag{
			Name:  "save",
			Usage: "if provided, save the proof to that file",
		},
		cli.BoolFlag{
			Name:  "force",
			Usage: "in the case it saves the proof, will overwrite if needed",
		},
	)...)
	prove.SetAction(action.proveAction)

	verify := provider.SetCommand("verify")
	verify.SetDescription("check a proof against a trusted root")
	verify.SetFlags(
		cli.PathFlag{
			Name:     "proof",
			Usage:    "path to the serialized proof",
			Required: true,
		},
		cli.StringFlag{
			Name:     "item",
			Usage:    "the item the proof stands for",
			Required: true,
		},
		cli.StringFlag{
			Name:     "root",
			Usage:    "trusted root in hexadecimal",
			Required: true,
		},
		cli.StringFlag{
			Name:  "hash",
			Usage: "hash algorithm: [sha256 | sha3-256]",
			Value: "sha256",
		},
		cli.StringFlag{
			Name:  "mode",
			Usage: "pairing mode the root was built with, defaults to the mode of the proof",
		},
	)
	verify.SetAction(action.verifyAction)
}

// buildFlags returns the flags shared by the commands that build a tree.
func buildFlags() []cli.Flag {
	return []cli.Flag{
		cli.PathFlag{
			Name:     "whitelist",
			Usage:    "path to the whitelist file (txt, json or yaml)",
			Required: true,
		},
		cli.StringFlag{
			Name:  "mode",
			Usage: "pairing mode: [positional | sorted]",
			Value: "positional",
		},
		cli.StringFlag{
			Name:  "hash",
			Usage: "hash algorithm: [sha256 | sha3-256]",
			Value: "sha256",
		},
		cli.BoolFlag{
			Name:  "dedup",
			Usage: "drop duplicated entries of the whitelist",
		},
	}
}

func loadWhitelist(path string, dedup bool) ([][]byte, error) {
	opts := []whitelist.LoaderOption{}
	if dedup {
		opts = append(opts, whitelist.WithDeduplication())
	}

	return whitelist.NewFileLoader(path, opts...).Load()
}
