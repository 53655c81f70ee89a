package registry

import (
	"testing"

	"github.com/hashgarden/merkle/serde"
	"github.com/stretchr/testify/require"
)

func TestSimpleRegistry_Register(t *testing.T) {
	registry := NewSimpleRegistry()

	registry.Register(serde.FormatJSON, fakeFormat{})
	require.Len(t, registry.store, 1)

	registry.Register(serde.FormatJSON, fakeFormat{})
	require.Len(t, registry.store, 1)
}

func TestSimpleRegistry_Get(t *testing.T) {
	registry := NewSimpleRegistry()
	registry.Register(serde.FormatJSON, fakeFormat{})

	require.Equal(t, fakeFormat{}, registry.Get(serde.FormatJSON))
	require.Equal(t, emptyFormat{name: "unknown"}, registry.Get("unknown"))
}

func TestEmptyFormat_Encode(t *testing.T) {
	format := emptyFormat{name: "FAKE"}

	_, err := format.Encode(serde.Context{}, nil)
	require.EqualError(t, err, "format 'FAKE' is not implemented")
}

func TestEmptyFormat_Decode(t *testing.T) {
	format := emptyFormat{name: "FAKE"}

	_, err := format.Decode(serde.Context{}, nil)
	require.EqualError(t, err, "format 'FAKE' is not implemented")
}

// -----------------------------------------------------------------------------
// Utility functions

type fakeFormat struct {
	serde.FormatEngine
}
