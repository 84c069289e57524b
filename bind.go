package cqlbind

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/puzpuzpuz/xsync/v4"
)

// BindValues is the capability required of raw bind values: they can report
// emptiness and encode themselves against a statement's bind markers.
type BindValues interface {
	// EncodeTo appends one serialized value per ColumnSpec to dst, in
	// declared order. It must fail rather than truncate or pad when the
	// value count disagrees with cols.
	EncodeTo(cols []ColumnSpec, dst *SerializedValues) error

	// IsEmpty reports whether there are no values to encode.
	IsEmpty() bool
}

// PositionalValues binds values to markers by position.
type PositionalValues []any

// Values is shorthand for constructing PositionalValues.
func Values(vs ...any) PositionalValues { return PositionalValues(vs) }

var _ BindValues = (PositionalValues)(nil)

func (p PositionalValues) IsEmpty() bool { return len(p) == 0 }

func (p PositionalValues) EncodeTo(cols []ColumnSpec, dst *SerializedValues) error {
	if len(p) != len(cols) {
		return fmt.Errorf("%w: statement takes %d values, got %d",
			ErrValueCountMismatch, len(cols), len(p))
	}
	for i := range cols {
		if err := appendValue(dst, &cols[i], p[i]); err != nil {
			return err
		}
	}
	return nil
}

// structPlan maps column names to struct field indices, computed once per
// struct type via reflection.
type structPlan struct {
	fields map[string]int
}

// planCache avoids re-walking struct fields with reflection on every encode.
var planCache = xsync.NewMap[reflect.Type, *structPlan]()

// StructValues binds the exported fields of a struct to bind markers by
// name: a field matches the marker whose column name equals its snake-cased
// field name, or the name given in a `cql:"name"` tag. Fields tagged
// `cql:"-"` are ignored. v may be a struct or a pointer to one.
func StructValues(v any) BindValues { return structValues{v: v} }

type structValues struct {
	v any
}

var _ BindValues = structValues{}

func (s structValues) IsEmpty() bool {
	rv, err := s.structOf()
	if err != nil {
		return false
	}
	return rv.NumField() == 0
}

func (s structValues) EncodeTo(cols []ColumnSpec, dst *SerializedValues) error {
	rv, err := s.structOf()
	if err != nil {
		return err
	}
	plan := planFor(rv.Type())
	for i := range cols {
		idx, ok := plan.fields[cols[i].Name]
		if !ok {
			return fmt.Errorf("%w: %q in %s", ErrNoSuchColumn, cols[i].Name, rv.Type())
		}
		fv := rv.Field(idx)
		// A nil pointer field binds as NULL.
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				if err := dst.AppendNull(); err != nil {
					return err
				}
				continue
			}
			fv = fv.Elem()
		}
		if err := appendValue(dst, &cols[i], fv.Interface()); err != nil {
			return err
		}
	}
	return nil
}

func (s structValues) structOf() (reflect.Value, error) {
	rv := reflect.ValueOf(s.v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: got %T", ErrNotAStruct, s.v)
	}
	return rv, nil
}

func planFor(t reflect.Type) *structPlan {
	if plan, ok := planCache.Load(t); ok {
		return plan
	}
	plan := &structPlan{fields: make(map[string]int, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := snakeCase(f.Name)
		if tag, ok := f.Tag.Lookup("cql"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		plan.fields[name] = i
	}
	planCache.Store(t, plan)
	return plan
}

// snakeCase converts an exported Go field name to the column naming
// convention: UserID -> user_id, FirstName -> first_name.
func snakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Break before an upper rune that starts a new word, keeping
			// acronym runs like "ID" together.
			if i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
