package cqlbind

// NonConsumingSupplier produces borrowed serializers for prepared
// statements, repeatedly and without being destroyed. Each BorrowFor call is
// independent: the supplier keeps no state between calls, so two calls
// against the same statement yield identical encoded content.
//
// This is the path for retrying callers, which may re-serialize the same
// values against a different prepared statement instance on each attempt.
type NonConsumingSupplier interface {
	// IsEmpty reports the emptiness of the underlying value source: for raw
	// values, whether the bind-value collection is empty; for pre-serialized
	// values, whether the stored buffer is empty.
	IsEmpty() bool

	// BorrowFor returns a fresh borrowed serializer for stmt. The result is
	// scoped to this call and to the supplier's lifetime.
	BorrowFor(stmt *PreparedStatement) (BorrowedSerializer, error)
}

// ConsumingSupplier is used up exactly once to produce an owned serializer.
// Go cannot make reuse unrepresentable the way a move would, so a consumed
// supplier fails fast with ErrSupplierConsumed on any later production call.
//
// This is the path for one-shot callers: consumption itself does not encode,
// so an execution that is abandoned before finalizing the owned serializer
// never pays for an encode.
type ConsumingSupplier interface {
	IsEmpty() bool

	// ConsumeFor transfers the supplier's value source into an owned
	// serializer for stmt.
	ConsumeFor(stmt *PreparedStatement) (OwnedSerializer, error)
}

// ValuesSupplier holds raw bind values and implements both supplier roles.
//
// Non-consuming use re-encodes against the given statement on every
// BorrowFor call; different statements may require different encodings, so
// nothing is cached. Consuming use moves the values into an
// OwnedValueSerializer, deferring the encode to its finalization.
type ValuesSupplier[T BindValues] struct {
	values   T
	consumed bool
}

var (
	_ NonConsumingSupplier = (*ValuesSupplier[PositionalValues])(nil)
	_ ConsumingSupplier    = (*ValuesSupplier[PositionalValues])(nil)
)

// NewValuesSupplier wraps raw bind values.
func NewValuesSupplier[T BindValues](values T) *ValuesSupplier[T] {
	return &ValuesSupplier[T]{values: values}
}

func (s *ValuesSupplier[T]) IsEmpty() bool { return s.values.IsEmpty() }

func (s *ValuesSupplier[T]) BorrowFor(stmt *PreparedStatement) (BorrowedSerializer, error) {
	if s.consumed {
		return nil, ErrSupplierConsumed
	}
	// Encode now, for this statement.
	values, err := stmt.SerializeValues(s.values)
	if err != nil {
		return nil, err
	}
	return NewBorrowedValueSerializer(values), nil
}

func (s *ValuesSupplier[T]) ConsumeFor(stmt *PreparedStatement) (OwnedSerializer, error) {
	if s.consumed {
		return nil, ErrSupplierConsumed
	}
	s.consumed = true
	values := s.values
	var zero T
	s.values = zero
	// No encoding here; the owned serializer encodes if it is finalized.
	return NewOwnedValueSerializer(stmt, values), nil
}

// PreSerializedSupplier holds an already-encoded buffer and implements both
// supplier roles without ever re-running the encoder or copying the buffer.
// The statement argument is ignored on both paths: the bytes were produced
// against some statement already, and pairing them with a different one is a
// caller error this layer does not detect.
type PreSerializedSupplier struct {
	values *SerializedValues
}

var (
	_ NonConsumingSupplier = (*PreSerializedSupplier)(nil)
	_ ConsumingSupplier    = (*PreSerializedSupplier)(nil)
)

// NewPreSerializedSupplier wraps an existing encoded buffer, typically one
// captured from a prior successful encode.
func NewPreSerializedSupplier(values *SerializedValues) *PreSerializedSupplier {
	return &PreSerializedSupplier{values: values}
}

// IsEmpty reflects the stored buffer's own emptiness, never the statement's.
func (s *PreSerializedSupplier) IsEmpty() bool {
	return s.values == nil || s.values.IsEmpty()
}

func (s *PreSerializedSupplier) BorrowFor(_ *PreparedStatement) (BorrowedSerializer, error) {
	if s.values == nil {
		return nil, ErrSupplierConsumed
	}
	return NewBorrowedPreSerializedSerializer(s.values), nil
}

func (s *PreSerializedSupplier) ConsumeFor(_ *PreparedStatement) (OwnedSerializer, error) {
	if s.values == nil {
		return nil, ErrSupplierConsumed
	}
	values := s.values
	s.values = nil
	return NewOwnedPreSerializedSerializer(values), nil
}
