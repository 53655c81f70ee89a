// Package tree defines the abstraction of a Merkle membership tree. It
// allows a party holding a set of items to publish a single root digest,
// and to hand out proofs that a given item belongs to the committed set.
// Anyone holding the root can then check such a proof without access to
// the set itself.
package tree

import (
	"github.com/hashgarden/merkle/crypto"
	"github.com/hashgarden/merkle/serde"
	"golang.org/x/xerrors"
)

var (
	// ErrEmptyLeaves is returned when a tree is requested for zero items.
	ErrEmptyLeaves = xerrors.New("tree needs at least one leaf")

	// ErrLeafNotFound is returned when a proof is requested for an item
	// that is not in the tree.
	ErrLeafNotFound = xerrors.New("leaf not found")

	// ErrMalformedProof is returned when a proof does not have the expected
	// structure, as opposed to a proof that simply does not match the root.
	ErrMalformedProof = xerrors.New("malformed proof")
)

// Mode defines how the digests of a pair are ordered before they are
// hashed. It is fixed when the tree is built and the verification must use
// the same mode, otherwise the recomputed roots cannot match.
type Mode byte

const (
	// Positional keeps the insertion order of the leaves, which makes the
	// root sensitive to the order of the input.
	Positional Mode = iota

	// Sorted orders the leaf layer and every pair canonically by a
	// byte-lexicographic comparison, which makes the root independent of
	// the order of the input.
	Sorted
)

// String implements fmt.Stringer. It returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Positional:
		return "positional"
	case Sorted:
		return "sorted"
	default:
		return "unknown"
	}
}

// ParseMode returns the mode matching the given name.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "positional":
		return Positional, nil
	case "sorted":
		return Sorted, nil
	default:
		return 0, xerrors.Errorf("unknown mode '%s'", name)
	}
}

// Proof is the minimal information needed to recompute the root from one
// leaf digest, so that a party that never sees the tree can check the
// membership of an item.
type Proof interface {
	serde.Message

	// GetLeaf returns the digest of the item the proof stands for.
	GetLeaf() []byte

	// GetMode returns the mode the tree was built with.
	GetMode() Mode

	// ComputeRoot replays the proof from the leaf digest and returns the
	// recomputed root. It should match the trusted root for the proof to
	// be valid.
	ComputeRoot(fac crypto.HashFactory) ([]byte, error)
}

// Tree is a Merkle tree built once from an ordered sequence of items. It
// is immutable after construction, therefore proofs can be generated
// concurrently.
type Tree interface {
	// GetRoot returns the root digest of the tree.
	GetRoot() []byte

	// Len returns the number of leaves in the tree.
	Len() int

	// GetMode returns the mode the tree was built with.
	GetMode() Mode

	// GetProof returns a proof of membership for the given item, or an
	// error if the item is not in the tree.
	GetProof(item []byte) (Proof, error)

	// GetProofAtIndex returns a proof of membership for the leaf at the
	// given index in the leaf layer.
	GetProofAtIndex(index int) (Proof, error)
}
