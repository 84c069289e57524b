package cqlbind

// BorrowedSerializer exposes a borrowed view of serialized values. Any
// serialization work was already done when the serializer was created, so
// the accessor has no error path.
//
// A borrowed serializer is scoped to the supplier invocation that produced
// it: use the view, build a request from it, and let it go. It must not be
// retained past the lifetime of its supplier.
type BorrowedSerializer interface {
	// Serialized returns the encoded buffer. Pure accessor.
	Serialized() *SerializedValues
}

// OwnedSerializer can be consumed exactly once to yield an owned encoded
// buffer. For raw-value origin this is where encoding actually happens; for
// pre-serialized origin it is a plain hand-over that cannot fail.
type OwnedSerializer interface {
	// TakeSerialized consumes the serializer and returns the encoded
	// buffer. A second call fails with ErrSerializerConsumed.
	TakeSerialized() (*SerializedValues, error)
}

// BorrowedValueSerializer is the borrowed serializer for raw values. It owns
// a buffer that was encoded when the serializer was constructed.
type BorrowedValueSerializer struct {
	values *SerializedValues
}

var _ BorrowedSerializer = (*BorrowedValueSerializer)(nil)

// NewBorrowedValueSerializer wraps an already-encoded buffer.
func NewBorrowedValueSerializer(values *SerializedValues) *BorrowedValueSerializer {
	return &BorrowedValueSerializer{values: values}
}

func (s *BorrowedValueSerializer) Serialized() *SerializedValues { return s.values }

// BorrowedPreSerializedSerializer is the borrowed serializer for
// pre-serialized values. It aliases the buffer still owned by its supplier;
// no copy is made.
type BorrowedPreSerializedSerializer struct {
	values *SerializedValues
}

var _ BorrowedSerializer = (*BorrowedPreSerializedSerializer)(nil)

// NewBorrowedPreSerializedSerializer wraps a reference to an existing buffer.
func NewBorrowedPreSerializedSerializer(values *SerializedValues) *BorrowedPreSerializedSerializer {
	return &BorrowedPreSerializedSerializer{values: values}
}

func (s *BorrowedPreSerializedSerializer) Serialized() *SerializedValues { return s.values }

// OwnedValueSerializer is the owned serializer for raw values. It holds the
// values and the statement they will be encoded against; encoding is
// deferred to TakeSerialized, so a serializer that is abandoned before being
// finalized never pays for an encode.
type OwnedValueSerializer[T BindValues] struct {
	prepared *PreparedStatement
	values   T
	consumed bool
}

var _ OwnedSerializer = (*OwnedValueSerializer[PositionalValues])(nil)

// NewOwnedValueSerializer packages values with the statement they will be
// encoded against.
func NewOwnedValueSerializer[T BindValues](prepared *PreparedStatement, values T) *OwnedValueSerializer[T] {
	return &OwnedValueSerializer[T]{prepared: prepared, values: values}
}

func (s *OwnedValueSerializer[T]) TakeSerialized() (*SerializedValues, error) {
	if s.consumed {
		return nil, ErrSerializerConsumed
	}
	s.consumed = true
	return s.prepared.SerializeValues(s.values)
}

// OwnedPreSerializedSerializer is the owned serializer for pre-serialized
// values. TakeSerialized moves the stored buffer out without copying; the
// error return exists only for signature uniformity with the raw-value
// origin and the first call always succeeds.
type OwnedPreSerializedSerializer struct {
	values *SerializedValues
}

var _ OwnedSerializer = (*OwnedPreSerializedSerializer)(nil)

// NewOwnedPreSerializedSerializer takes ownership of an encoded buffer.
func NewOwnedPreSerializedSerializer(values *SerializedValues) *OwnedPreSerializedSerializer {
	return &OwnedPreSerializedSerializer{values: values}
}

func (s *OwnedPreSerializedSerializer) TakeSerialized() (*SerializedValues, error) {
	if s.values == nil {
		return nil, ErrSerializerConsumed
	}
	values := s.values
	s.values = nil
	return values, nil
}
