// Package fake provides fake implementations of the interfaces of the
// module, to be used to test error paths.
package fake

import (
	"hash"

	"github.com/hashgarden/merkle/serde"
	"golang.org/x/xerrors"
)

var fakeErr = xerrors.New("fake error")

// GetError returns the fake error.
func GetError() error {
	return fakeErr
}

// Err returns the message formatted as if the fake error had been wrapped
// by the caller.
func Err(msg string) string {
	return msg + ": fake error"
}

// Call is a tool to keep track of a function calls.
type Call struct {
	calls [][]interface{}
}

// Get returns the nth call ith parameter.
func (c *Call) Get(n, i int) interface{} {
	return c.calls[n][i]
}

// Len returns the number of calls.
func (c *Call) Len() int {
	return len(c.calls)
}

// Add adds a call to the list.
func (c *Call) Add(args ...interface{}) {
	c.calls = append(c.calls, args)
}

// Hash is a fake implementation of hash.Hash. It returns a constant digest
// and can be set to fail after a given number of writes.
//
// - implements hash.Hash
type Hash struct {
	delay int
	err   error
}

// NewBadHash returns a hash that fails at the first write.
func NewBadHash() *Hash {
	return &Hash{err: fakeErr}
}

// NewBadHashWithDelay returns a hash that fails after delay writes.
func NewBadHashWithDelay(delay int) *Hash {
	return &Hash{err: fakeErr, delay: delay}
}

// Write implements io.Writer.
func (h *Hash) Write(p []byte) (int, error) {
	if h.err != nil {
		if h.delay == 0 {
			return 0, h.err
		}

		h.delay--
	}

	return len(p), nil
}

// Sum implements hash.Hash.
func (h *Hash) Sum(b []byte) []byte {
	return append(b, make([]byte, h.Size())...)
}

// Reset implements hash.Hash.
func (h *Hash) Reset() {}

// Size implements hash.Hash.
func (h *Hash) Size() int {
	return 32
}

// BlockSize implements hash.Hash.
func (h *Hash) BlockSize() int {
	return 64
}

// HashFactory is a fake implementation of crypto.HashFactory.
//
// - implements crypto.HashFactory
type HashFactory struct {
	hash *Hash
}

// NewHashFactory returns a factory that always returns the given hash.
func NewHashFactory(h *Hash) HashFactory {
	return HashFactory{hash: h}
}

// New implements crypto.HashFactory.
func (f HashFactory) New() hash.Hash {
	return f.hash
}

// badEngine is a context engine that fails to marshal and unmarshal.
//
// - implements serde.ContextEngine
type badEngine struct {
	format serde.Format
}

// NewBadContext returns a context that always fails, with a format that is
// not registered anywhere.
func NewBadContext() serde.Context {
	return serde.NewContext(badEngine{format: "FAKE"})
}

// NewBadContextWithFormat returns a context that always fails, but
// pretending to be of the given format.
func NewBadContextWithFormat(f serde.Format) serde.Context {
	return serde.NewContext(badEngine{format: f})
}

// GetFormat implements serde.ContextEngine.
func (e badEngine) GetFormat() serde.Format {
	return e.format
}

// Marshal implements serde.ContextEngine. It always returns an error.
func (e badEngine) Marshal(interface{}) ([]byte, error) {
	return nil, fakeErr
}

// Unmarshal implements serde.ContextEngine. It always returns an error.
func (e badEngine) Unmarshal([]byte, interface{}) error {
	return fakeErr
}
