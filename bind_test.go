package cqlbind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructValues(t *testing.T) {
	type user struct {
		ID   int
		Name string
	}

	stmt := usersStatement()
	direct, err := stmt.SerializeValues(Values(5, "Alice"))
	require.NoError(t, err)

	sv, err := stmt.SerializeValues(StructValues(user{ID: 5, Name: "Alice"}))
	require.NoError(t, err)
	assert.Equal(t, direct.Buf(), sv.Buf())

	// Pointer to struct binds the same way.
	sv, err = stmt.SerializeValues(StructValues(&user{ID: 5, Name: "Alice"}))
	require.NoError(t, err)
	assert.Equal(t, direct.Buf(), sv.Buf())
}

func TestStructValuesTagOverride(t *testing.T) {
	type row struct {
		UserName string `cql:"name"`
		Ignored  string `cql:"-"`
		ID       int
	}

	sv, err := usersStatement().SerializeValues(StructValues(row{UserName: "Alice", ID: 5}))
	require.NoError(t, err)

	direct, err := usersStatement().SerializeValues(Values(5, "Alice"))
	require.NoError(t, err)
	assert.Equal(t, direct.Buf(), sv.Buf())
}

func TestStructValuesNilPointerIsNull(t *testing.T) {
	type user struct {
		ID   int
		Name *string
	}

	sv, err := usersStatement().SerializeValues(StructValues(user{ID: 5}))
	require.NoError(t, err)

	it := sv.Iter()
	require.True(t, it.Next())
	require.True(t, it.Next())
	assert.True(t, it.IsNull())
}

func TestStructValuesErrors(t *testing.T) {
	t.Run("MissingColumn", func(t *testing.T) {
		type row struct{ ID int }
		_, err := usersStatement().SerializeValues(StructValues(row{ID: 5}))
		assert.ErrorIs(t, err, ErrNoSuchColumn)
	})

	t.Run("NotAStruct", func(t *testing.T) {
		_, err := usersStatement().SerializeValues(StructValues(42))
		assert.ErrorIs(t, err, ErrNotAStruct)
	})
}

func TestStructValuesWithSupplier(t *testing.T) {
	type user struct {
		ID   int
		Name string
	}
	supplier := NewValuesSupplier(StructValues(user{ID: 5, Name: "Alice"}))
	assert.False(t, supplier.IsEmpty())

	borrowed, err := supplier.BorrowFor(usersStatement())
	require.NoError(t, err)

	direct, err := usersStatement().SerializeValues(Values(5, "Alice"))
	require.NoError(t, err)
	assert.Equal(t, direct.Buf(), borrowed.Serialized().Buf())
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"ID":        "id",
		"Name":      "name",
		"UserID":    "user_id",
		"FirstName": "first_name",
		"HTTPCode":  "http_code",
		"A":         "a",
	}
	for in, want := range cases {
		assert.Equal(t, want, snakeCase(in), "snakeCase(%q)", in)
	}
}
