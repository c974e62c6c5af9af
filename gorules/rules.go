//go:build ruleguard
// +build ruleguard

package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

func NoRawInterface(m dsl.Matcher) {
	m.Match("interface{}").
		Report("Avoid $$; prefer `any`.").
		Suggest("any")
}

func NoZerologInterface(m dsl.Matcher) {
	m.Import("github.com/rs/zerolog")

	m.Match("$v.Interface($*_)").
		Where(m["v"].Type.Is("*zerolog.Event")).
		Report("Avoid Interface(); use Any() or Object() instead.")
}

// Byte-indexing a Factory’s text breaks on multi-byte characters.
func NoFactoryByteIndex(m dsl.Matcher) {
	m.Import("github.com/10gen/string-factory/mstrings")

	m.Match("strings.IndexRune($f.String(), $r)").
		Where(m["f"].Type.Is("*mstrings.Factory")).
		Report("strings.IndexRune returns a byte offset; use $f.IndexOf($r) for a character index.").
		Suggest("$f.IndexOf($r)")
}

func SprintVerb(m dsl.Matcher) {
	m.Match(`fmt.Sprintf("%v", $x)`).
		Report("use fmt.Sprint($x)").
		Suggest("fmt.Sprint($x)")
}
