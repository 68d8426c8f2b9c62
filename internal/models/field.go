package models

import (
	"encoding/json"
	"reflect"
)

// Optional is an update field for a non-nullable column. Absent keys leave
// the stored value unchanged; an explicit null is rejected.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf(o.Value)}
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

// Apply copies the value into dst when present.
func (o Optional[T]) Apply(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

// Underlying exposes the value to the validator: nil when absent.
func (o Optional[T]) Underlying() any {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// Nullable is a tri-state update field for a nullable column:
// absent, present with null, or present with a value.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Null returns a Nullable that clears the column.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// Value returns a Nullable carrying v.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

// UnmarshalJSON implements json.Unmarshaler. It only runs when the key is
// present, which is what separates absent from null.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		var zero T
		n.Valid, n.Value = false, zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns a fresh pointer to the value, or nil for null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// Apply replaces *dst when the field was supplied.
func (n Nullable[T]) Apply(dst **T) {
	if n.Set {
		*dst = n.Ptr()
	}
}

// Underlying exposes the value to the validator: nil when absent or null.
func (n Nullable[T]) Underlying() any {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
