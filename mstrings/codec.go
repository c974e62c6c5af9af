package mstrings

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

var (
	_ bsoncodec.ValueMarshaler   = &Factory{}
	_ bsoncodec.ValueUnmarshaler = &Factory{}
)

// MarshalBSONValue implements bsoncodec.ValueMarshaler. A Factory is
// stored as a BSON string.
func (f *Factory) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.String, bsoncore.AppendString(nil, f.str), nil
}

// UnmarshalBSONValue implements bsoncodec.ValueUnmarshaler.
func (f *Factory) UnmarshalBSONValue(bsonType bsontype.Type, data []byte) error {
	if bsonType != bsontype.String {
		return errors.Errorf("cannot decode BSON %s as %T", bsonType, *f)
	}

	str, rem, ok := bsoncore.ReadString(data)
	if !ok || len(rem) != 0 {
		return errors.Errorf("failed to parse BSON value %v as a string", data)
	}

	f.str = sanitize(str)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f *Factory) MarshalText() ([]byte, error) {
	return []byte(f.str), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Factory) UnmarshalText(text []byte) error {
	f.str = sanitize(string(text))
	return nil
}
