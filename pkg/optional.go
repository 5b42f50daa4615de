package pkg

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state PATCH field: absent, explicitly null, or a value.
//
// encoding/json calls UnmarshalJSON only when the key is present (null included),
// so a zero Optional means "not sent".
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: v} }

func Null[T any]() Optional[T] { return Optional[T]{Set: true, Null: true} }

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(b, &o.Value)
}

// HasValue reports whether a non-null value was sent.
func (o Optional[T]) HasValue() bool { return o.Set && !o.Null }

// ApplyTo writes the field into dst: absent keeps dst, null clears it.
func (o Optional[T]) ApplyTo(dst **T) {
	if !o.Set {
		return
	}
	if o.Null {
		*dst = nil
		return
	}
	v := o.Value
	*dst = &v
}
