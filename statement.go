package cqlbind

// ColumnType identifies the CQL type a bind marker expects.
type ColumnType int

const (
	TypeBoolean ColumnType = iota
	TypeInt
	TypeBigInt
	TypeDouble
	TypeText
	TypeBlob
	TypeTimestamp
	TypeUUID
)

var columnTypeNames = map[ColumnType]string{
	TypeBoolean:   "boolean",
	TypeInt:       "int",
	TypeBigInt:    "bigint",
	TypeDouble:    "double",
	TypeText:      "text",
	TypeBlob:      "blob",
	TypeTimestamp: "timestamp",
	TypeUUID:      "uuid",
}

func (t ColumnType) String() string {
	if s, ok := columnTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// ColumnSpec describes one bind marker of a prepared statement: where the
// column lives, what it is called, and what type the server expects.
type ColumnSpec struct {
	Keyspace string
	Table    string
	Name     string
	Type     ColumnType
}

// PreparedStatement carries the metadata a server returned for a prepared
// query: its ID, the query text, and one ColumnSpec per bind marker in
// declared order. This layer only ever borrows it; preparation and ownership
// live with the session driving the queries.
type PreparedStatement struct {
	ID        []byte
	Statement string
	Params    []ColumnSpec
}

// SerializeValues encodes v against this statement's bind markers and
// returns the resulting buffer. Serialized output is only valid for the
// statement it was encoded against; pairing it with a different statement
// is a caller error this layer does not detect.
func (p *PreparedStatement) SerializeValues(v BindValues) (*SerializedValues, error) {
	sv := NewSerializedValues()
	if err := v.EncodeTo(p.Params, sv); err != nil {
		return nil, err
	}
	return sv, nil
}
