package mstrings

import "github.com/rs/zerolog"

var _ zerolog.LogObjectMarshaler = &Factory{}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (f *Factory) MarshalZerologObject(event *zerolog.Event) {
	event.
		Str("contents", f.str).
		Int("length", f.Len())
}
