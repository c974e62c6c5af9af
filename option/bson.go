package option

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var (
	_ bsoncodec.ValueMarshaler   = Option[int]{}
	_ bsoncodec.ValueUnmarshaler = &Option[int]{}
	_ bsoncodec.Zeroer           = Option[int]{}
)

// MarshalBSONValue implements bsoncodec.ValueMarshaler. None marshals
// to BSON null.
func (o Option[T]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	val, exists := o.Get()
	if !exists {
		return bsontype.Null, nil, nil
	}

	return bson.MarshalValue(val)
}

// UnmarshalBSONValue implements bsoncodec.ValueUnmarshaler.
func (o *Option[T]) UnmarshalBSONValue(bType bsontype.Type, raw []byte) error {
	switch bType {
	case bsontype.Null:
		o.val = nil

	default:
		valPtr := new(T)

		err := bson.RawValue{Type: bType, Value: raw}.Unmarshal(valPtr)
		if err != nil {
			return errors.Wrapf(err, "failed to unmarshal %T", *o)
		}

		if isNil(*valPtr) {
			return errors.Errorf("refuse to unmarshal nil %T value", *o)
		}

		o.val = valPtr
	}

	return nil
}

// IsZero implements bsoncodec.Zeroer.
func (o Option[T]) IsZero() bool {
	return o.IsNone()
}
