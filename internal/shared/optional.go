package shared

import "encoding/json"

// Optional is a JSON field that distinguishes absent, explicit null, and a
// value. Partial-update requests need all three states: absent leaves the
// column unchanged, null clears it, a value replaces it.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Present reports whether the field carries a usable value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Some builds a set Optional, mostly for tests.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null builds an explicitly-null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}
