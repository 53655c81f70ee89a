package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMode_String(t *testing.T) {
	require.Equal(t, "positional", Positional.String())
	require.Equal(t, "sorted", Sorted.String())
	require.Equal(t, "unknown", Mode(99).String())
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("positional")
	require.NoError(t, err)
	require.Equal(t, Positional, mode)

	mode, err = ParseMode("sorted")
	require.NoError(t, err)
	require.Equal(t, Sorted, mode)

	_, err = ParseMode("oops")
	require.EqualError(t, err, "unknown mode 'oops'")
}
