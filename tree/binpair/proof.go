package binpair

import (
	"bytes"

	"github.com/hashgarden/merkle/crypto"
	"github.com/hashgarden/merkle/serde"
	"github.com/hashgarden/merkle/tree"
	"golang.org/x/xerrors"
)

// MaxSteps is the maximum number of steps a proof can have. It is
// equivalent to a tree of 2^64 leaves and prevents a hostile proof from
// wasting resources.
const MaxSteps = 64

// Side tells on which side of the pair a sibling digest sits.
type Side byte

const (
	// Left means the sibling digest is hashed before the current one.
	Left Side = iota

	// Right means the sibling digest is hashed after the current one.
	Right
)

// String implements fmt.Stringer. It returns the name of the side.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

func parseSide(name string) (Side, error) {
	switch name {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, xerrors.Errorf("unknown side '%s'", name)
	}
}

// Step is one element of the path from a leaf to the root: the digest of
// the sibling the element was paired with at that layer, and the side the
// sibling sits on.
type Step struct {
	digest []byte
	side   Side
}

// NewStep creates a step from the sibling digest and its side.
func NewStep(digest []byte, side Side) Step {
	return newStep(digest, side)
}

func newStep(digest []byte, side Side) Step {
	return Step{
		digest: append([]byte{}, digest...),
		side:   side,
	}
}

// GetDigest returns a copy of the sibling digest of the step.
func (s Step) GetDigest() []byte {
	return append([]byte{}, s.digest...)
}

// GetSide returns the side of the step.
func (s Step) GetSide() Side {
	return s.side
}

// Proof is a proof of membership of one leaf, from the leaf layer up to,
// but not including, the root. It carries no reference to the tree so it
// can be checked by a party that only knows the trusted root.
//
// - implements tree.Proof
type Proof struct {
	leaf  []byte
	steps []Step
	mode  tree.Mode
}

// NewProof creates a proof from its raw parts.
func NewProof(leaf []byte, steps []Step, mode tree.Mode) Proof {
	return Proof{
		leaf:  append([]byte{}, leaf...),
		steps: steps,
		mode:  mode,
	}
}

// GetLeaf implements tree.Proof. It returns a copy of the leaf digest.
func (p Proof) GetLeaf() []byte {
	return append([]byte{}, p.leaf...)
}

// GetMode implements tree.Proof. It returns the mode the tree was built
// with.
func (p Proof) GetMode() tree.Mode {
	return p.mode
}

// GetSteps returns a copy of the steps of the proof in leaf-to-root order.
func (p Proof) GetSteps() []Step {
	return append([]Step{}, p.steps...)
}

// ComputeRoot implements tree.Proof. It replays the proof from the leaf
// digest and returns the recomputed root.
func (p Proof) ComputeRoot(fac crypto.HashFactory) ([]byte, error) {
	err := p.validate(fac)
	if err != nil {
		return nil, err
	}

	curr := p.leaf

	for _, step := range p.steps {
		left, right := curr, step.digest

		// In sorted mode the recorded side is ignored as the pairs are
		// hashed in canonical order anyway.
		if p.mode != tree.Sorted && step.side == Left {
			left, right = step.digest, curr
		}

		curr, err = hashPair(left, right, p.mode, fac)
		if err != nil {
			return nil, xerrors.Errorf("step: %v", err)
		}
	}

	return curr, nil
}

// Serialize implements serde.Message. It returns the serialized form of
// the proof.
func (p Proof) Serialize(ctx serde.Context) ([]byte, error) {
	format := proofFormats.Get(ctx.GetFormat())

	data, err := format.Encode(ctx, p)
	if err != nil {
		return nil, xerrors.Errorf("couldn't encode proof: %v", err)
	}

	return data, nil
}

func (p Proof) validate(fac crypto.HashFactory) error {
	size := fac.New().Size()

	if len(p.leaf) != size {
		return xerrors.Errorf("leaf digest is %d bytes, expected %d: %w",
			len(p.leaf), size, tree.ErrMalformedProof)
	}

	if len(p.steps) > MaxSteps {
		return xerrors.Errorf("too many steps (%d > %d): %w",
			len(p.steps), MaxSteps, tree.ErrMalformedProof)
	}

	for i, step := range p.steps {
		if len(step.digest) != size {
			return xerrors.Errorf("step %d digest is %d bytes, expected %d: %w",
				i, len(step.digest), size, tree.ErrMalformedProof)
		}

		if step.side > Right {
			return xerrors.Errorf("step %d has unknown side %d: %w",
				i, step.side, tree.ErrMalformedProof)
		}
	}

	return nil
}

// ProofFactory instantiates proofs from their serialized form.
//
// - implements serde.Factory
type ProofFactory struct{}

// Deserialize implements serde.Factory. It returns the proof deserialized
// from the data.
func (f ProofFactory) Deserialize(ctx serde.Context, data []byte) (serde.Message, error) {
	format := proofFormats.Get(ctx.GetFormat())

	msg, err := format.Decode(ctx, data)
	if err != nil {
		return nil, xerrors.Errorf("couldn't decode proof: %w", err)
	}

	return msg, nil
}

// Verify replays the proof against the trusted root. It returns true when
// the recomputed root matches byte for byte, and false otherwise. An error
// is returned only when the proof is malformed or was generated in a
// different mode, never for a simple mismatch.
func Verify(leaf []byte, proof tree.Proof, root []byte, mode tree.Mode, fac crypto.HashFactory) (bool, error) {
	if proof.GetMode() != mode {
		return false, xerrors.Errorf("proof was generated in %v mode, expected %v: %w",
			proof.GetMode(), mode, tree.ErrMalformedProof)
	}

	computed, err := proof.ComputeRoot(fac)
	if err != nil {
		return false, xerrors.Errorf("couldn't compute root: %w", err)
	}

	if !bytes.Equal(leaf, proof.GetLeaf()) {
		return false, nil
	}

	return bytes.Equal(computed, root), nil
}
