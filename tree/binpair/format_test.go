package binpair

import (
	"testing"

	"github.com/hashgarden/merkle/serde"
	"github.com/hashgarden/merkle/serde/json"
	"github.com/hashgarden/merkle/tree"
	"github.com/stretchr/testify/require"
)

func TestProofFormat_Encode(t *testing.T) {
	format := proofFormat{}

	_, err := format.Encode(json.NewContext(), fakeMessage{})
	require.EqualError(t, err, "unsupported message 'binpair.fakeMessage'")
}

func TestProofFormat_Decode(t *testing.T) {
	format := proofFormat{}
	ctx := json.NewContext()

	_, err := format.Decode(ctx, []byte(`{"Mode":"diagonal"}`))
	require.ErrorIs(t, err, tree.ErrMalformedProof)

	_, err = format.Decode(ctx, []byte(`{"Mode":"sorted","Steps":[{"Side":"middle"}]}`))
	require.ErrorIs(t, err, tree.ErrMalformedProof)

	msg, err := format.Decode(ctx, []byte(`{"Mode":"sorted","Leaf":"AQI=","Steps":[]}`))
	require.NoError(t, err)

	proof, ok := msg.(Proof)
	require.True(t, ok)
	require.Equal(t, tree.Sorted, proof.GetMode())
	require.Equal(t, []byte{1, 2}, proof.GetLeaf())
}

// -----------------------------------------------------------------------------
// Utility functions

type fakeMessage struct {
	serde.Message
}
