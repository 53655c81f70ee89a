// Package binpair implements the membership tree as a binary Merkle tree
// built by hashing adjacent pairs of digests, layer by layer, until a
// single root digest remains.
//
// When a layer has an odd number of digests, the trailing digest is carried
// up unchanged into the next layer. The same rule is applied when a proof
// is replayed, so the carried layers do not contribute a proof step.
package binpair

import (
	"bytes"
	"sort"

	"github.com/hashgarden/merkle"
	"github.com/hashgarden/merkle/crypto"
	"github.com/hashgarden/merkle/serde"
	"github.com/hashgarden/merkle/serde/registry"
	"github.com/hashgarden/merkle/tree"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

func init() {
	proofFormats.Register(serde.FormatJSON, proofFormat{})
}

var proofFormats = registry.NewSimpleRegistry()

// hashChunkSize is the number of items a single worker hashes when the
// leaf layer is computed.
const hashChunkSize = 1024

// TreeOption is the type of options to create a tree.
type TreeOption func(*template)

type template struct {
	mode    tree.Mode
	factory crypto.HashFactory
}

// WithMode is an option to set the pairing mode of the tree.
func WithMode(mode tree.Mode) TreeOption {
	return func(tmpl *template) {
		tmpl.mode = mode
	}
}

// WithHashFactory is an option to set the hash factory of the tree.
func WithHashFactory(factory crypto.HashFactory) TreeOption {
	return func(tmpl *template) {
		tmpl.factory = factory
	}
}

// Tree is a binary Merkle tree that keeps every layer of digests in memory
// so that a proof for any leaf can be generated without hashing again. It
// is immutable after construction; a change of membership requires a new
// tree.
//
// - implements tree.Tree
type Tree struct {
	layers  [][][]byte
	mode    tree.Mode
	factory crypto.HashFactory
}

// NewTree builds the tree from the ordered sequence of raw items. Each
// item is hashed to make the leaf layer, then the layers are folded
// bottom-up until a single digest remains.
func NewTree(items [][]byte, opts ...TreeOption) (*Tree, error) {
	tmpl := template{
		mode:    tree.Positional,
		factory: crypto.NewSha256Factory(),
	}

	for _, opt := range opts {
		opt(&tmpl)
	}

	if len(items) == 0 {
		return nil, xerrors.Errorf("couldn't make leaf layer: %w", tree.ErrEmptyLeaves)
	}

	leaves, err := hashLeaves(items, tmpl.factory)
	if err != nil {
		return nil, xerrors.Errorf("couldn't make leaf layer: %v", err)
	}

	if tmpl.mode == tree.Sorted {
		sort.Slice(leaves, func(i, j int) bool {
			return bytes.Compare(leaves[i], leaves[j]) < 0
		})
	}

	layers := [][][]byte{leaves}

	for curr := leaves; len(curr) > 1; {
		next, err := foldLayer(curr, tmpl.mode, tmpl.factory)
		if err != nil {
			return nil, xerrors.Errorf("couldn't fold layer %d: %v", len(layers), err)
		}

		layers = append(layers, next)
		curr = next
	}

	merkle.Logger.Trace().
		Int("leaves", len(leaves)).
		Int("layers", len(layers)).
		Stringer("mode", tmpl.mode).
		Msg("membership tree built")

	return &Tree{
		layers:  layers,
		mode:    tmpl.mode,
		factory: tmpl.factory,
	}, nil
}

// GetRoot implements tree.Tree. It returns a copy of the root digest.
func (t *Tree) GetRoot() []byte {
	root := t.layers[len(t.layers)-1][0]

	return append([]byte{}, root...)
}

// Len implements tree.Tree. It returns the number of leaves.
func (t *Tree) Len() int {
	return len(t.layers[0])
}

// GetMode implements tree.Tree. It returns the mode the tree was built
// with.
func (t *Tree) GetMode() tree.Mode {
	return t.mode
}

// GetProof implements tree.Tree. It looks the item up by its digest in the
// leaf layer and returns the proof of its membership.
func (t *Tree) GetProof(item []byte) (tree.Proof, error) {
	digest, err := hashItem(item, t.factory)
	if err != nil {
		return nil, xerrors.Errorf("couldn't hash item: %v", err)
	}

	for i, leaf := range t.layers[0] {
		if bytes.Equal(leaf, digest) {
			return t.makeProof(i), nil
		}
	}

	return nil, xerrors.Errorf("no leaf matching digest '%#x': %w",
		digest[:4], tree.ErrLeafNotFound)
}

// GetProofAtIndex implements tree.Tree. It returns the proof of membership
// of the leaf at the index in the leaf layer.
func (t *Tree) GetProofAtIndex(index int) (tree.Proof, error) {
	if index < 0 || index >= t.Len() {
		return nil, xerrors.Errorf("index %d not in range [0, %d): %w",
			index, t.Len(), tree.ErrLeafNotFound)
	}

	return t.makeProof(index), nil
}

// makeProof walks from the leaf at the index up to the root, recording the
// sibling digest and its side at every layer where the element is paired.
func (t *Tree) makeProof(index int) Proof {
	steps := make([]Step, 0, len(t.layers)-1)

	i := index
	for _, layer := range t.layers[:len(t.layers)-1] {
		if i == len(layer)-1 && len(layer)%2 == 1 {
			// The element is carried up unchanged so there is no step to
			// record for this layer.
			i /= 2
			continue
		}

		sibling := i ^ 1

		side := Right
		if sibling < i {
			side = Left
		}

		steps = append(steps, newStep(layer[sibling], side))

		i /= 2
	}

	return Proof{
		leaf:  append([]byte{}, t.layers[0][index]...),
		steps: steps,
		mode:  t.mode,
	}
}

func hashLeaves(items [][]byte, fac crypto.HashFactory) ([][]byte, error) {
	leaves := make([][]byte, len(items))

	g := new(errgroup.Group)

	for begin := 0; begin < len(items); begin += hashChunkSize {
		begin := begin

		end := begin + hashChunkSize
		if end > len(items) {
			end = len(items)
		}

		g.Go(func() error {
			for i := begin; i < end; i++ {
				digest, err := hashItem(items[i], fac)
				if err != nil {
					return xerrors.Errorf("leaf %d: %v", i, err)
				}

				leaves[i] = digest
			}

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return leaves, nil
}

func hashItem(item []byte, fac crypto.HashFactory) ([]byte, error) {
	h := fac.New()

	_, err := h.Write(item)
	if err != nil {
		return nil, xerrors.Errorf("couldn't write item: %v", err)
	}

	return h.Sum(nil), nil
}

func foldLayer(layer [][]byte, mode tree.Mode, fac crypto.HashFactory) ([][]byte, error) {
	next := make([][]byte, 0, (len(layer)+1)/2)

	for i := 0; i+1 < len(layer); i += 2 {
		digest, err := hashPair(layer[i], layer[i+1], mode, fac)
		if err != nil {
			return nil, xerrors.Errorf("pair %d: %v", i/2, err)
		}

		next = append(next, digest)
	}

	if len(layer)%2 == 1 {
		next = append(next, layer[len(layer)-1])
	}

	return next, nil
}

func hashPair(left, right []byte, mode tree.Mode, fac crypto.HashFactory) ([]byte, error) {
	if mode == tree.Sorted && bytes.Compare(right, left) < 0 {
		left, right = right, left
	}

	h := fac.New()

	_, err := h.Write(left)
	if err != nil {
		return nil, xerrors.Errorf("couldn't write left digest: %v", err)
	}

	_, err = h.Write(right)
	if err != nil {
		return nil, xerrors.Errorf("couldn't write right digest: %v", err)
	}

	return h.Sum(nil), nil
}
