package mstrings

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/10gen/string-factory/mseq"
	"github.com/10gen/string-factory/mslices"
	"github.com/10gen/string-factory/option"
)

// Factory is a mutable string that grows at either end and supports
// rune-indexed lookup and single-rune replacement.
//
// Indexes are rune positions, not byte offsets. Contents are always valid
// UTF-8; invalid input sequences become U+FFFD on the way in.
//
// A Factory is not race-safe. To share one across goroutines, wrap it in
// an msync.DataGuard. The zero value is an empty Factory.
type Factory struct {
	str string
}

// NewFactory returns an empty Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// FactoryFromString returns a Factory whose contents are a copy of s.
func FactoryFromString(s string) *Factory {
	return &Factory{str: strings.Clone(sanitize(s))}
}

// WrapString returns a Factory that adopts s as its contents without
// copying it.
func WrapString(s string) *Factory {
	return &Factory{str: sanitize(s)}
}

// Append adds val’s display rendering (see RenderDisplay) to the end.
// A rune renders as its code point: Append('a') adds "97".
func (f *Factory) Append(val any) {
	f.str += RenderDisplay(val)
}

// AppendDebug adds val’s debug rendering (see RenderDebug) to the end.
func (f *Factory) AppendDebug(val any) {
	f.str += RenderDebug(val)
}

// AppendFront is like Append but writes at the start.
func (f *Factory) AppendFront(val any) {
	f.str = RenderDisplay(val) + f.str
}

// AppendDebugFront is like AppendDebug but writes at the start.
func (f *Factory) AppendDebugFront(val any) {
	f.str = RenderDebug(val) + f.str
}

// Runes returns a new slice of the Factory’s characters, in order.
func (f *Factory) Runes() []rune {
	return []rune(f.str)
}

// Chars returns a sequence over a snapshot of the Factory’s characters.
// Later mutations do not affect the returned sequence.
func (f *Factory) Chars() iter.Seq[rune] {
	return mseq.FromSlice(f.Runes())
}

// Len returns the number of characters (not bytes) in the Factory.
func (f *Factory) Len() int {
	return utf8.RuneCountInString(f.str)
}

// IndexOf returns the position of the first character equal to r.
// Comparison is exact: no case folding or normalization.
func (f *Factory) IndexOf(r rune) option.Option[int] {
	idx := 0

	for _, c := range f.str {
		if c == r {
			return option.Some(idx)
		}

		idx++
	}

	return option.None[int]()
}

// IndexesOf returns, in ascending order, every position where the
// character equals r. The result is empty (not nil) if there are none.
func (f *Factory) IndexesOf(r rune) []int {
	return mslices.Indexes(f.Runes(), r)
}

// Replace changes every occurrence of `from` into `to`. Characters written
// by the replacement are never themselves replaced, so Replace('o', '0')
// on "Book" yields "B00k".
func (f *Factory) Replace(from, to rune) {
	chars := f.Runes()

	indexes := mslices.Indexes(chars, from)
	if len(indexes) == 0 {
		return
	}

	for _, idx := range indexes {
		chars[idx] = to
	}

	f.str = string(chars)
}

// Clone returns an independent copy of the Factory.
func (f *Factory) Clone() *Factory {
	return &Factory{str: f.str}
}

// String returns the Factory’s current contents.
func (f *Factory) String() string {
	return f.str
}

// contents is for tests.
func (f *Factory) contents() string {
	return f.str
}

func sanitize(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	return strings.ToValidUTF8(s, string(utf8.RuneError))
}
