package whitelist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashgarden/merkle/tree"
	"github.com/stretchr/testify/require"
)

func TestFileLoader_LoadText(t *testing.T) {
	path := writeFile(t, "list.txt", "0xaaaa\n\n# a comment\n  0xbbbb  \n0xaaaa\n")

	items, err := NewFileLoader(path).Load()
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("0xaaaa"), []byte("0xbbbb"), []byte("0xaaaa")}, items)
}

func TestFileLoader_LoadTextDedup(t *testing.T) {
	path := writeFile(t, "list.txt", "0xaaaa\n0xbbbb\n0xaaaa\n")

	items, err := NewFileLoader(path, WithDeduplication()).Load()
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("0xaaaa"), []byte("0xbbbb")}, items)
}

func TestFileLoader_LoadJSON(t *testing.T) {
	path := writeFile(t, "list.json", `["0xaaaa","0xbbbb"]`)

	items, err := NewFileLoader(path).Load()
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("0xaaaa"), []byte("0xbbbb")}, items)

	path = writeFile(t, "bad.json", `{"oops":1}`)

	_, err = NewFileLoader(path).Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "while decoding json")
}

func TestFileLoader_LoadYAML(t *testing.T) {
	path := writeFile(t, "list.yaml", "- 0xaaaa\n- 0xbbbb\n")

	items, err := NewFileLoader(path).Load()
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("0xaaaa"), []byte("0xbbbb")}, items)

	path = writeFile(t, "bad.yml", "{")

	_, err = NewFileLoader(path).Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "while decoding yaml")
}

func TestFileLoader_LoadEmpty(t *testing.T) {
	path := writeFile(t, "list.txt", "# only comments\n\n")

	_, err := NewFileLoader(path).Load()
	require.ErrorIs(t, err, tree.ErrEmptyLeaves)
}

func TestFileLoader_LoadMissingFile(t *testing.T) {
	_, err := NewFileLoader(filepath.Join(t.TempDir(), "nope.txt")).Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "while reading file")
}

// -----------------------------------------------------------------------------
// Utility functions

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)

	return path
}
