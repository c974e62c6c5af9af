package mstrings

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// A Factory appends either of two renderings of a value. The display
// rendering is meant for users; the debug rendering exposes structure and
// may differ. Types control each one independently: fmt.Stringer for
// display, fmt.GoStringer for debug.
//
// NB: rune is an alias for int32, so a rune renders as its code point
// under both strategies. Convert it with string(r) first to append the
// character.

// RenderDisplay returns val’s display rendering, the same text
// fmt.Sprint would produce.
func RenderDisplay(val any) string {
	return fmt.Sprint(val)
}

// RenderDebug returns val’s debug rendering:
//   - a fmt.GoStringer renders via GoString()
//   - a string renders Go-quoted
//   - a slice or array renders its elements’ debug renderings,
//     comma-separated, so []int{1, 2} becomes "[1, 2]"
//   - anything else renders as with fmt’s %+v verb, so structs show
//     field names.
//
// NB: %+v still honours fmt.Stringer, so a Stringer without GoString
// renders the same both ways.
func RenderDebug(val any) string {
	switch v := val.(type) {
	case nil:
		return fmt.Sprint(val)
	case fmt.GoStringer:
		return v.GoString()
	case string:
		return strconv.Quote(v)
	}

	rv := reflect.ValueOf(val)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]string, rv.Len())
		for i := range elems {
			elems[i] = RenderDebug(rv.Index(i).Interface())
		}

		return "[" + strings.Join(elems, ", ") + "]"
	default:
		return fmt.Sprintf("%+v", val)
	}
}
