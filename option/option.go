// Package option implements optional values. An Option either holds a
// value (“some”) or holds nothing (“none”). This is more type-safe than
// reusing a pointer or a sentinel value like -1 to indicate absence.
//
// The zero value is none.
package option

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Option represents a possibly-empty value.
type Option[T any] struct {
	val *T
}

// Some creates an Option that contains the given value. It panics if
// the value is nil (e.g., a nil pointer, map, or slice).
func Some[T any](value T) Option[T] {
	if isNil(value) {
		panic(fmt.Sprintf("Option.Some() requires a non-nil %T; use None() instead", value))
	}

	return Option[T]{&value}
}

// None creates an Option that contains nothing.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IfNotZero returns “none” for the type’s zero value and “some”
// otherwise.
func IfNotZero[T any](value T) Option[T] {
	if reflect.ValueOf(&value).Elem().IsZero() {
		return None[T]()
	}

	return Some(value)
}

// Map applies the callback to the Option’s value if there is one.
func Map[T, U any](o Option[T], cb func(T) U) Option[U] {
	val, has := o.Get()
	if !has {
		return None[U]()
	}

	return Some(cb(val))
}

// Get is the “comma-ok” getter.
func (o Option[T]) Get() (T, bool) {
	if o.IsNone() {
		return *new(T), false
	}

	return *o.val, true
}

// MustGet returns the Option’s value or panics if there is none.
func (o Option[T]) MustGet() T {
	return o.MustGetf("MustGet() called on empty %T", o)
}

// MustGetf is like MustGet but panics with the given message.
func (o Option[T]) MustGetf(pattern string, args ...any) T {
	val, has := o.Get()
	if !has {
		panic(errors.Errorf(pattern, args...))
	}

	return val
}

// OrZero returns the Option’s value or, if none, the type’s zero value.
func (o Option[T]) OrZero() T {
	val, _ := o.Get()

	return val
}

// OrElse returns the Option’s value or, if none, the given fallback.
func (o Option[T]) OrElse(fallback T) T {
	if val, has := o.Get(); has {
		return val
	}

	return fallback
}

// IsSome returns true if the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.val != nil
}

// IsNone returns true if the Option holds nothing.
func (o Option[T]) IsNone() bool {
	return !o.IsSome()
}

// ToPointer returns a pointer to a copy of the value, or nil if there
// is none.
func (o Option[T]) ToPointer() *T {
	val, has := o.Get()
	if !has {
		return nil
	}

	return &val
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if val, has := o.Get(); has {
		return fmt.Sprintf("Some(%v)", val)
	}

	return fmt.Sprintf("None[%T]", *new(T))
}

func isNil(val any) bool {
	if val == nil {
		return true
	}

	switch reflect.TypeOf(val).Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return reflect.ValueOf(val).IsNil()
	}

	return false
}
