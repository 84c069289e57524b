package cqlbind

import "errors"

var (
	// ErrValueCountMismatch indicates that the number of bind values does not
	// match the number of bind markers declared by the prepared statement.
	// The encoder never truncates or pads a value list to fit.
	ErrValueCountMismatch = errors.New("cqlbind: bind value count does not match statement bind markers")

	// ErrTypeMismatch indicates that a Go value cannot be encoded as the
	// column type expected by the corresponding bind marker.
	ErrTypeMismatch = errors.New("cqlbind: value type does not match column type")

	// ErrValueOutOfRange indicates a numeric value that does not fit the
	// target column type (e.g. an int64 bound to a 32-bit int column).
	ErrValueOutOfRange = errors.New("cqlbind: numeric value out of range for column type")

	// ErrTooManyValues indicates that more values were appended than the
	// native protocol can represent in a single execution (65535).
	ErrTooManyValues = errors.New("cqlbind: too many serialized values")

	// ErrNoSuchColumn indicates that struct binding found no field for a
	// bind marker of the statement.
	ErrNoSuchColumn = errors.New("cqlbind: no bound field for column")

	// ErrNotAStruct indicates that StructValues was given something other
	// than a struct or pointer to struct.
	ErrNotAStruct = errors.New("cqlbind: struct binding requires a struct value")

	// ErrSupplierConsumed indicates that a supplier was used again after its
	// consuming path was taken. A consumed supplier no longer holds its
	// values; any further use is a caller error.
	ErrSupplierConsumed = errors.New("cqlbind: supplier already consumed")

	// ErrSerializerConsumed indicates that TakeSerialized was called twice
	// on the same owned serializer.
	ErrSerializerConsumed = errors.New("cqlbind: owned serializer already consumed")

	// ErrValueTooLarge indicates a single value whose encoded form exceeds
	// the protocol's int32 length prefix.
	ErrValueTooLarge = errors.New("cqlbind: serialized value exceeds maximum length")

	// ErrMalformedValues indicates that iterating stored serialized values
	// found a length prefix pointing past the end of the buffer.
	ErrMalformedValues = errors.New("cqlbind: malformed serialized values buffer")
)
