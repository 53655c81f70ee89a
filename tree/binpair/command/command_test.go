package command

import (
	"testing"

	"github.com/hashgarden/merkle/cli"
	"github.com/hashgarden/merkle/internal/testing/fake"
	"github.com/stretchr/testify/require"
)

func TestInitializer_SetCommands(t *testing.T) {
	init := Initializer{}

	call := &fake.Call{}
	init.SetCommands(fakeProvider{call: call})

	require.Equal(t, 12, call.Len())
}

func TestLoadWhitelist(t *testing.T) {
	_, err := loadWhitelist("/does/not/exist.txt", true)
	require.Error(t, err)

	// The option list must stay valid without deduplication.
	_, err = loadWhitelist("/does/not/exist.txt", false)
	require.Error(t, err)
}

// -----------------------------------------------------------------------------
// Utility functions

type fakeProvider struct {
	call *fake.Call
}

func (p fakeProvider) SetCommand(name string) cli.CommandBuilder {
	p.call.Add(name)
	return fakeCommandBuilder(p)
}

type fakeCommandBuilder struct {
	call *fake.Call
}

func (b fakeCommandBuilder) SetDescription(value string) {
	b.call.Add(value)
}

func (b fakeCommandBuilder) SetFlags(flags ...cli.Flag) {
	b.call.Add(flags)
}

func (b fakeCommandBuilder) SetAction(a cli.Action) {
	b.call.Add(a)
}

func (b fakeCommandBuilder) SetSubCommand(name string) cli.CommandBuilder {
	b.call.Add(name)
	return b
}
