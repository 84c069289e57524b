package cqlbind

import (
	"encoding/binary"
	"math"

	"golang.org/x/exp/constraints"
)

// Order is the byte order of the CQL native protocol (big-endian).
var Order = binary.BigEndian

// inInt32Range reports whether v survives narrowing to the protocol's
// 32-bit int column representation.
func inInt32Range[T constraints.Signed](v T) bool {
	return int64(v) >= math.MinInt32 && int64(v) <= math.MaxInt32
}

// inInt64Range reports whether an unsigned v fits the signed 64-bit
// bigint column representation.
func inInt64Range[T constraints.Unsigned](v T) bool {
	return uint64(v) <= math.MaxInt64
}
