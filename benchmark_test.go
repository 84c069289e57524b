package cqlbind

import (
	"testing"
)

func benchStatement() *PreparedStatement {
	return &PreparedStatement{
		Statement: "INSERT INTO ks.users (id, name) VALUES (?, ?)",
		Params: []ColumnSpec{
			{Keyspace: "ks", Table: "users", Name: "id", Type: TypeInt},
			{Keyspace: "ks", Table: "users", Name: "name", Type: TypeText},
		},
	}
}

func BenchmarkBorrowForReencode(b *testing.B) {
	stmt := benchStatement()
	supplier := NewValuesSupplier(Values(5, "Alice"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = supplier.BorrowFor(stmt)
	}
}

func BenchmarkPreSerializedBorrow(b *testing.B) {
	stmt := benchStatement()
	captured, _ := stmt.SerializeValues(Values(5, "Alice"))
	supplier := NewPreSerializedSupplier(captured)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = supplier.BorrowFor(stmt)
	}
}

func BenchmarkStructValuesEncode(b *testing.B) {
	type user struct {
		ID   int
		Name string
	}
	stmt := benchStatement()
	values := StructValues(user{ID: 5, Name: "Alice"})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stmt.SerializeValues(values)
	}
}

// Baseline: encoding without the supplier/serializer wrappers, to see the
// overhead of the dispatch layer.
func BenchmarkDirectSerializeValues(b *testing.B) {
	stmt := benchStatement()
	values := Values(5, "Alice")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stmt.SerializeValues(values)
	}
}
