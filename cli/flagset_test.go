package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagSet_String(t *testing.T) {
	fset := FlagSet{"a": "ping", "b": 1}

	require.Equal(t, "ping", fset.String("a"))
	require.Equal(t, "", fset.String("b"))
	require.Equal(t, "", fset.String("c"))
}

func TestFlagSet_Path(t *testing.T) {
	fset := FlagSet{"a": "/tmp/ping", "b": 1}

	require.Equal(t, "/tmp/ping", fset.Path("a"))
	require.Equal(t, "", fset.Path("b"))
}

func TestFlagSet_Int(t *testing.T) {
	fset := FlagSet{"a": 42, "b": "ping"}

	require.Equal(t, 42, fset.Int("a"))
	require.Equal(t, 0, fset.Int("b"))
}

func TestFlagSet_Bool(t *testing.T) {
	fset := FlagSet{"a": true, "b": "ping"}

	require.True(t, fset.Bool("a"))
	require.False(t, fset.Bool("b"))
}
