package controllers

import "encoding/json"

// Optional distinguishes a field that was absent from a request body from
// one that was explicitly supplied, including an explicit null. Absent
// fields leave the stored value untouched; explicit nulls clear it.
type Optional[T any] struct {
	Set   bool
	Value T
}

// UnmarshalJSON marks the field as supplied. A JSON null leaves Value at
// its zero value, which for pointer types means "clear the column".
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// nullable converts a pointer into a column value for a sparse update map:
// nil becomes SQL NULL, anything else is dereferenced.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
