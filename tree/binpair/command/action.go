package command

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/hashgarden/merkle/cli"
	"github.com/hashgarden/merkle/crypto"
	"github.com/hashgarden/merkle/serde/json"
	"github.com/hashgarden/merkle/tree"
	"github.com/hashgarden/merkle/tree/binpair"
	"golang.org/x/xerrors"
)

// action defines the different cli actions of the membership tree
// commands. Defining the functions and the printer helps in testing the
// commands.
type action struct {
	printer io.Writer

	load     func(path string, dedup bool) ([][]byte, error)
	readFile func(path string) ([]byte, error)
	saveFile func(path string, force bool, data []byte) error
}

func (a action) rootAction(flags cli.Flags) error {
	trie, err := a.makeTree(flags)
	if err != nil {
		return xerrors.Errorf("failed to build tree: %v", err)
	}

	fmt.Fprintln(a.printer, hex.EncodeToString(trie.GetRoot()))

	return nil
}

func (a action) proveAction(flags cli.Flags) error {
	trie, err := a.makeTree(flags)
	if err != nil {
		return xerrors.Errorf("failed to build tree: %v", err)
	}

	proof, err := trie.GetProof([]byte(flags.String("item")))
	if err != nil {
		return xerrors.Errorf("failed to generate proof: %v", err)
	}

	data, err := proof.Serialize(json.NewContext())
	if err != nil {
		return xerrors.Errorf("failed to serialize proof: %v", err)
	}

	switch flags.Path("save") {
	case "":
		fmt.Fprintln(a.printer, string(data))
	default:
		err := a.saveFile(flags.Path("save"), flags.Bool("force"), data)
		if err != nil {
			return xerrors.Errorf("failed to save proof: %v", err)
		}
	}

	return nil
}

func (a action) verifyAction(flags cli.Flags) error {
	data, err := a.readFile(flags.Path("proof"))
	if err != nil {
		return xerrors.Errorf("failed to read proof: %v", err)
	}

	msg, err := binpair.ProofFactory{}.Deserialize(json.NewContext(), data)
	if err != nil {
		return xerrors.Errorf("failed to deserialize proof: %v", err)
	}

	proof, ok := msg.(tree.Proof)
	if !ok {
		return xerrors.Errorf("invalid proof of type '%T'", msg)
	}

	root, err := hex.DecodeString(flags.String("root"))
	if err != nil {
		return xerrors.Errorf("failed to decode root: %v", err)
	}

	fac, err := hashFactory(flags.String("hash"))
	if err != nil {
		return xerrors.Errorf("failed to make hash factory: %v", err)
	}

	mode := proof.GetMode()
	if flags.String("mode") != "" {
		mode, err = tree.ParseMode(flags.String("mode"))
		if err != nil {
			return xerrors.Errorf("failed to parse mode: %v", err)
		}
	}

	h := fac.New()

	_, err = h.Write([]byte(flags.String("item")))
	if err != nil {
		return xerrors.Errorf("failed to hash item: %v", err)
	}

	ok, err = binpair.Verify(h.Sum(nil), proof, root, mode, fac)
	if err != nil {
		return xerrors.Errorf("failed to verify proof: %v", err)
	}

	if !ok {
		return xerrors.Errorf("proof does not match root '%s'", flags.String("root"))
	}

	fmt.Fprintln(a.printer, "proof is valid")

	return nil
}

// makeTree loads the whitelist and builds the tree according to the flags.
func (a action) makeTree(flags cli.Flags) (tree.Tree, error) {
	items, err := a.load(flags.Path("whitelist"), flags.Bool("dedup"))
	if err != nil {
		return nil, xerrors.Errorf("couldn't load whitelist: %v", err)
	}

	mode, err := tree.ParseMode(flags.String("mode"))
	if err != nil {
		return nil, xerrors.Errorf("couldn't parse mode: %v", err)
	}

	fac, err := hashFactory(flags.String("hash"))
	if err != nil {
		return nil, xerrors.Errorf("couldn't make hash factory: %v", err)
	}

	trie, err := binpair.NewTree(items, binpair.WithMode(mode), binpair.WithHashFactory(fac))
	if err != nil {
		return nil, xerrors.Errorf("couldn't build tree: %v", err)
	}

	return trie, nil
}

func hashFactory(name string) (crypto.HashFactory, error) {
	switch name {
	case "", "sha256":
		return crypto.NewSha256Factory(), nil
	case "sha3-256":
		return crypto.NewHashFactory(crypto.Sha3_256), nil
	default:
		return nil, xerrors.Errorf("unknown hash algorithm '%s'", name)
	}
}

func saveToFile(path string, force bool, data []byte) error {
	if !force && fileExist(path) {
		return xerrors.Errorf("file '%s' already exists, use --force if you "+
			"want to overwrite", path)
	}

	err := os.WriteFile(path, data, 0600)
	if err != nil {
		return xerrors.Errorf("while writing: %v", err)
	}

	return nil
}

func fileExist(path string) bool {
	stat, err := os.Stat(path)

	return err == nil && !stat.IsDir()
}
