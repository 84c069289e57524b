package cqlbind

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// appendValue encodes a single Go value as the column type spec expects and
// appends it to sv. A nil value always encodes as NULL.
func appendValue(sv *SerializedValues, spec *ColumnSpec, v any) error {
	if v == nil {
		return sv.AppendNull()
	}
	switch spec.Type {
	case TypeBoolean:
		b, ok := v.(bool)
		if !ok {
			return typeMismatch(spec, v)
		}
		if b {
			return sv.AppendBytes([]byte{1})
		}
		return sv.AppendBytes([]byte{0})

	case TypeInt:
		n, ok := asInt64(v)
		if !ok {
			return typeMismatch(spec, v)
		}
		if !inInt32Range(n) {
			return fmt.Errorf("%w: column %q: %d", ErrValueOutOfRange, spec.Name, n)
		}
		return sv.AppendBytes(Order.AppendUint32(nil, uint32(int32(n))))

	case TypeBigInt:
		n, ok := asInt64(v)
		if !ok {
			return typeMismatch(spec, v)
		}
		return sv.AppendBytes(Order.AppendUint64(nil, uint64(n)))

	case TypeDouble:
		var f float64
		switch x := v.(type) {
		case float64:
			f = x
		case float32:
			f = float64(x)
		default:
			return typeMismatch(spec, v)
		}
		return sv.AppendBytes(Order.AppendUint64(nil, math.Float64bits(f)))

	case TypeText:
		switch x := v.(type) {
		case string:
			return sv.AppendBytes([]byte(x))
		case []byte:
			return sv.AppendBytes(x)
		}
		return typeMismatch(spec, v)

	case TypeBlob:
		switch x := v.(type) {
		case []byte:
			return sv.AppendBytes(x)
		case string:
			return sv.AppendBytes([]byte(x))
		}
		return typeMismatch(spec, v)

	case TypeTimestamp:
		// Milliseconds since the Unix epoch, signed 64-bit.
		var ms int64
		switch x := v.(type) {
		case time.Time:
			ms = x.UnixMilli()
		case int64:
			ms = x
		default:
			return typeMismatch(spec, v)
		}
		return sv.AppendBytes(Order.AppendUint64(nil, uint64(ms)))

	case TypeUUID:
		switch x := v.(type) {
		case uuid.UUID:
			return sv.AppendBytes(x[:])
		case string:
			u, err := uuid.Parse(x)
			if err != nil {
				return fmt.Errorf("%w: column %q: %v", ErrTypeMismatch, spec.Name, err)
			}
			return sv.AppendBytes(u[:])
		case [16]byte:
			return sv.AppendBytes(x[:])
		}
		return typeMismatch(spec, v)
	}
	return fmt.Errorf("%w: column %q has unsupported type %v", ErrTypeMismatch, spec.Name, spec.Type)
}

func typeMismatch(spec *ColumnSpec, v any) error {
	return fmt.Errorf("%w: column %q expects %s, got %T", ErrTypeMismatch, spec.Name, spec.Type, v)
}

// asInt64 widens any builtin integer to int64. It refuses unsigned values
// that do not fit the signed representation.
func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint:
		if !inInt64Range(x) {
			return 0, false
		}
		return int64(x), true
	case uint64:
		if !inInt64Range(x) {
			return 0, false
		}
		return int64(x), true
	}
	return 0, false
}
