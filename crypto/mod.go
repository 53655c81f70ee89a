// Package crypto defines the cryptographic primitives the module relies on.
//
// The only capability the membership tree needs is a one-way digest
// function with a fixed output length. It is abstracted by a factory so
// that any implementation of the standard hash.Hash interface can be
// plugged in.
package crypto

import (
	"hash"
)

// HashFactory is an interface to produce a hash digest.
type HashFactory interface {
	New() hash.Hash
}
