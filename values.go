package cqlbind

import (
	"io"
	"math"
)

// maxValues is the native protocol's cap on bind values per execution:
// the value count is framed as an unsigned 16-bit integer.
const maxValues = math.MaxUint16

// nullValueLen is the length prefix marking a NULL value on the wire.
const nullValueLen = -1

// SerializedValues is the ordered wire representation of all bind values for
// one statement execution. Each value is framed as a big-endian int32 length
// prefix followed by the raw bytes; NULL is a length of -1 with no bytes.
//
// The append API is for use while encoding. Once a SerializedValues has been
// handed to a serializer it must be treated as immutable.
type SerializedValues struct {
	buf []byte
	n   int
}

// NewSerializedValues returns an empty buffer ready for appending.
func NewSerializedValues() *SerializedValues { return &SerializedValues{} }

// ElementCount returns the number of values appended so far.
func (sv *SerializedValues) ElementCount() int { return sv.n }

// IsEmpty reports whether no values have been appended.
func (sv *SerializedValues) IsEmpty() bool { return sv.n == 0 }

// Buf returns the raw length-prefixed payload without the leading value
// count. The returned slice aliases the internal buffer; callers must not
// modify it.
func (sv *SerializedValues) Buf() []byte { return sv.buf }

// Size returns the framed size in bytes: the 2-byte value count plus payload.
func (sv *SerializedValues) Size() int { return 2 + len(sv.buf) }

// AppendBytes appends one value.
func (sv *SerializedValues) AppendBytes(b []byte) error {
	if sv.n >= maxValues {
		return ErrTooManyValues
	}
	if int64(len(b)) > math.MaxInt32 {
		return ErrValueTooLarge
	}
	sv.buf = Order.AppendUint32(sv.buf, uint32(int32(len(b))))
	sv.buf = append(sv.buf, b...)
	sv.n++
	return nil
}

// AppendNull appends a NULL value.
func (sv *SerializedValues) AppendNull() error {
	if sv.n >= maxValues {
		return ErrTooManyValues
	}
	nullLen := int32(nullValueLen)
	sv.buf = Order.AppendUint32(sv.buf, uint32(nullLen))
	sv.n++
	return nil
}

// WriteTo frames the values the way an EXECUTE request body carries them:
// the uint16 value count followed by the length-prefixed payload.
func (sv *SerializedValues) WriteTo(w io.Writer) (int64, error) {
	var hdr [2]byte
	Order.PutUint16(hdr[:], uint16(sv.n))
	n, err := w.Write(hdr[:])
	written := int64(n)
	if err != nil {
		return written, err
	}
	n, err = w.Write(sv.buf)
	return written + int64(n), err
}

// Iter returns an iterator over the stored values in append order.
func (sv *SerializedValues) Iter() *ValuesIter {
	return &ValuesIter{buf: sv.buf}
}

// ValuesIter walks the length-prefixed values of a SerializedValues buffer.
// It borrows the buffer; the SerializedValues must outlive the iterator.
type ValuesIter struct {
	buf   []byte
	pos   int
	value []byte
	null  bool
	err   error
}

// Next advances to the next value. It returns false when the buffer is
// exhausted or malformed; use Err to distinguish the two.
func (it *ValuesIter) Next() bool {
	if it.err != nil || it.pos >= len(it.buf) {
		return false
	}
	if it.pos+4 > len(it.buf) {
		it.err = ErrMalformedValues
		return false
	}
	length := int32(Order.Uint32(it.buf[it.pos : it.pos+4]))
	it.pos += 4
	if length == nullValueLen {
		it.value, it.null = nil, true
		return true
	}
	if length < 0 || it.pos+int(length) > len(it.buf) {
		it.err = ErrMalformedValues
		return false
	}
	it.value, it.null = it.buf[it.pos:it.pos+int(length)], false
	it.pos += int(length)
	return true
}

// Value returns the current value's bytes. The slice aliases the underlying
// buffer. It is nil when the current value is NULL; use IsNull to tell a
// NULL apart from an empty value.
func (it *ValuesIter) Value() []byte { return it.value }

// IsNull reports whether the current value is NULL.
func (it *ValuesIter) IsNull() bool { return it.null }

// Err returns the error that stopped iteration, if any.
func (it *ValuesIter) Err() error { return it.err }
