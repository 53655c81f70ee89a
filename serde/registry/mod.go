// Package registry defines the format registry mechanism.
//
// A message kind registers one format engine per supported format, usually
// from an init function, and looks the engine up at serialization time. The
// default registry implementation never returns a nil engine so that the
// caller can fail with a meaningful error without checking the existence of
// the format.
package registry

import (
	"github.com/hashgarden/merkle/serde"
)

// Registry is an interface to register and get format engines for a
// specific format.
type Registry interface {
	// Register takes a format and its engine and it registers them so that
	// the engine can be looked up later.
	Register(serde.Format, serde.FormatEngine)

	// Get returns the engine associated with the format.
	Get(serde.Format) serde.FormatEngine
}
