// Package serde defines the primitives to serialize and deserialize the
// messages of the module, so far only the membership proofs.
//
// A message implementation serializes itself by looking up the format
// engine matching the context it is given, which makes the wire encoding a
// property of the caller and not of the message.
package serde

// Message is the interface a data model should implement to be serialized
// and deserialized.
type Message interface {
	// Serialize returns the bytes of the message according to the context.
	Serialize(ctx Context) ([]byte, error)
}

// Factory is the interface to implement to instantiate a data model from
// its serialized form.
type Factory interface {
	// Deserialize returns the message instantiated from the data.
	Deserialize(ctx Context, data []byte) (Message, error)
}

// Format is the identifier of a serialization format.
type Format string

const (
	// FormatJSON identifies the JSON format.
	FormatJSON Format = "JSON"
)

// FormatEngine is the interface to implement to encode and decode a
// specific message kind in a specific format.
type FormatEngine interface {
	// Encode returns the bytes of the message in the engine format.
	Encode(ctx Context, message Message) ([]byte, error)

	// Decode returns the message instantiated from the data.
	Decode(ctx Context, data []byte) (Message, error)
}
