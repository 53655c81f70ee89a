package ucli

import (
	"testing"

	"github.com/hashgarden/merkle/cli"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Run(t *testing.T) {
	var observed string

	builder := NewBuilder("test", nil)

	cmd := builder.SetCommand("greet")
	cmd.SetDescription("say hello")
	cmd.SetFlags(cli.StringFlag{
		Name:  "dude",
		Usage: "who to greet",
		Value: "you",
	})
	cmd.SetAction(func(flags cli.Flags) error {
		observed = flags.String("dude")
		return nil
	})

	app := builder.Build()

	err := app.Run([]string{"test", "greet", "--dude", "them"})
	require.NoError(t, err)
	require.Equal(t, "them", observed)
}

func TestBuilder_SubCommand(t *testing.T) {
	called := false

	builder := NewBuilder("test", nil)

	cmd := builder.SetCommand("parent")
	sub := cmd.SetSubCommand("child")
	sub.SetAction(func(cli.Flags) error {
		called = true
		return nil
	})

	err := builder.Build().Run([]string{"test", "parent", "child"})
	require.NoError(t, err)
	require.True(t, called)
}

func TestBuilder_GlobalAction(t *testing.T) {
	called := false

	builder := NewBuilder("test", func(cli.Flags) error {
		called = true
		return nil
	})

	err := builder.Build().Run([]string{"test"})
	require.NoError(t, err)
	require.True(t, called)
}

func TestBuildFlags(t *testing.T) {
	flags := buildFlags([]cli.Flag{
		cli.StringFlag{Name: "a"},
		cli.PathFlag{Name: "b"},
		cli.IntFlag{Name: "c"},
		cli.BoolFlag{Name: "d"},
	})
	require.Len(t, flags, 4)

	require.Panics(t, func() {
		buildFlags([]cli.Flag{fakeFlag{}})
	})
}

// -----------------------------------------------------------------------------
// Utility functions

type fakeFlag struct{}

func (fakeFlag) Flag() {}
