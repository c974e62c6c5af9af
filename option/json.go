package option

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

var (
	_ json.Marshaler   = Option[int]{}
	_ json.Unmarshaler = &Option[int]{}
)

// MarshalJSON implements json.Marshaler. None marshals to null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	val, exists := o.Get()
	if !exists {
		return []byte("null"), nil
	}

	return json.Marshal(val)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Option[T]) UnmarshalJSON(raw []byte) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		o.val = nil
		return nil
	}

	valPtr := new(T)

	if err := json.Unmarshal(raw, valPtr); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %T", *o)
	}

	o.val = valPtr

	return nil
}
