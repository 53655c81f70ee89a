package binpair

import (
	"github.com/hashgarden/merkle/serde"
	"github.com/hashgarden/merkle/tree"
	"golang.org/x/xerrors"
)

// StepJSON is the JSON representation of a proof step.
type StepJSON struct {
	Digest []byte
	Side   string
}

// ProofJSON is the JSON representation of a membership proof.
type ProofJSON struct {
	Mode  string
	Leaf  []byte
	Steps []StepJSON
}

// proofFormat is the JSON engine of the membership proofs.
//
// - implements serde.FormatEngine
type proofFormat struct{}

// Encode implements serde.FormatEngine. It returns the JSON bytes of the
// proof.
func (f proofFormat) Encode(ctx serde.Context, msg serde.Message) ([]byte, error) {
	proof, ok := msg.(Proof)
	if !ok {
		return nil, xerrors.Errorf("unsupported message '%T'", msg)
	}

	steps := make([]StepJSON, len(proof.steps))
	for i, step := range proof.steps {
		steps[i] = StepJSON{
			Digest: step.GetDigest(),
			Side:   step.side.String(),
		}
	}

	m := ProofJSON{
		Mode:  proof.mode.String(),
		Leaf:  proof.GetLeaf(),
		Steps: steps,
	}

	data, err := ctx.Marshal(m)
	if err != nil {
		return nil, xerrors.Errorf("couldn't marshal: %v", err)
	}

	return data, nil
}

// Decode implements serde.FormatEngine. It returns the proof from its JSON
// bytes. A structural defect is reported as a malformed proof.
func (f proofFormat) Decode(ctx serde.Context, data []byte) (serde.Message, error) {
	m := ProofJSON{}

	err := ctx.Unmarshal(data, &m)
	if err != nil {
		return nil, xerrors.Errorf("couldn't unmarshal: %v: %w", err, tree.ErrMalformedProof)
	}

	mode, err := tree.ParseMode(m.Mode)
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, tree.ErrMalformedProof)
	}

	steps := make([]Step, len(m.Steps))
	for i, step := range m.Steps {
		side, err := parseSide(step.Side)
		if err != nil {
			return nil, xerrors.Errorf("step %d: %v: %w", i, err, tree.ErrMalformedProof)
		}

		steps[i] = newStep(step.Digest, side)
	}

	return NewProof(m.Leaf, steps, mode), nil
}
