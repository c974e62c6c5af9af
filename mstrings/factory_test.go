package mstrings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/10gen/string-factory/mslices"
	"github.com/10gen/string-factory/option"
	"github.com/cespare/permute/v2"
)

func (s *UnitTestSuite) Test_Creation() {
	s.Assert().Equal("", NewFactory().contents())
	s.Assert().Equal(0, NewFactory().Len())
	s.Assert().Equal("", (&Factory{}).contents(), "zero value")
	s.Assert().Equal("Test", FactoryFromString("Test").contents())
	s.Assert().Equal("Test", WrapString("Test").contents())
	s.Assert().Equal("", FactoryFromString("").contents())
}

func (s *UnitTestSuite) Test_InvalidUTF8() {
	s.Assert().Equal("a�b", FactoryFromString("a\xffb").contents())
	s.Assert().Equal("a�b", WrapString("a\xffb").contents())

	f := NewFactory()
	s.Require().NoError(f.UnmarshalText([]byte("\xc3")))
	s.Assert().Equal("�", f.contents())
}

func (s *UnitTestSuite) Test_Append() {
	f := NewFactory()

	f.Append(5)
	s.Assert().Equal("5", f.contents())
	f.AppendFront(20)
	s.Assert().Equal("205", f.contents())

	f = NewFactory()

	f.AppendDebug([]int{0})
	s.Assert().Equal("[0]", f.contents())
	s.Assert().Equal(fmt.Sprintf("%+v", []int{0}), f.contents())
	f.AppendDebugFront([]int{5})
	s.Assert().Equal("[5][0]", f.contents())
}

func (s *UnitTestSuite) Test_AppendOrdering() {
	f := FactoryFromString("mid")

	f.AppendFront("<")
	f.Append(">")
	f.AppendFront("(")
	f.Append(")")

	s.Assert().Equal("(<mid>)", f.contents())
}

func (s *UnitTestSuite) Test_Runes() {
	f := FactoryFromString("héllo, 世界")

	chars := f.Runes()
	s.Assert().Equal(
		mslices.Of('h', 'é', 'l', 'l', 'o', ',', ' ', '世', '界'),
		chars,
	)
	s.Assert().Equal(9, f.Len())

	chars[0] = 'H'
	s.Assert().Equal("héllo, 世界", f.contents(), "Runes returns a copy")

	s.Assert().Equal(f.Runes(), slices.Collect(f.Chars()))

	seq := f.Chars()
	f.Append("!")
	s.Assert().Len(slices.Collect(seq), 9, "Chars is a snapshot")

	s.Assert().Empty(NewFactory().Runes())
}

func (s *UnitTestSuite) Test_RoundTrip() {
	pieces := []string{"a", "é", "世", " ", "\U0001F600"}

	perm := permute.Slice(pieces)
	for perm.Permute() {
		text := strings.Join(pieces, "")
		f := FactoryFromString(text)

		s.Assert().Equal(text, string(f.Runes()), "round trip %q", text)
		s.Assert().Equal(text, f.String())
	}
}

func (s *UnitTestSuite) Test_IndexOf() {
	s.Assert().Equal(option.Some(1), FactoryFromString("ABC").IndexOf('B'))
	s.Assert().Equal(option.None[int](), FactoryFromString("ABC").IndexOf('b'))
	s.Assert().Equal(option.Some(4), FactoryFromString("Hello").IndexOf('o'))
	s.Assert().Equal(option.None[int](), NewFactory().IndexOf('a'))

	s.Assert().Equal(
		option.Some(2),
		FactoryFromString("héllo").IndexOf('l'),
		"indexes count runes, not bytes",
	)
}

func (s *UnitTestSuite) Test_IndexesOf() {
	s.Assert().Equal([]int{0, 2}, FactoryFromString("bob").IndexesOf('b'))
	s.Assert().Equal([]int{3, 4}, FactoryFromString("Tatoo").IndexesOf('o'))
	s.Assert().NotEqual([]int{0}, FactoryFromString("Test").IndexesOf('e'))
	s.Assert().Equal([]int{1}, FactoryFromString("Test").IndexesOf('e'))
	s.Assert().Equal([]int{1, 3}, FactoryFromString("世界世界").IndexesOf('界'))

	none := FactoryFromString("Test").IndexesOf('x')
	s.Assert().NotNil(none)
	s.Assert().Empty(none)
}

func (s *UnitTestSuite) Test_Replace() {
	f := FactoryFromString("Bob")
	f.Replace('o', '0')
	s.Assert().Equal("B0b", f.contents())

	f = FactoryFromString("Book")
	f.Replace('o', '0')
	s.Assert().Equal("B00k", f.contents())

	f = FactoryFromString("aab")
	f.Replace('a', 'b')
	s.Assert().Equal("bbb", f.contents(), "existing targets are untouched")

	f = FactoryFromString("naïve")
	f.Replace('ï', 'i')
	s.Assert().Equal("naive", f.contents())
}

func (s *UnitTestSuite) Test_ReplaceAbsent() {
	pieces := []string{"B", "o", "o", "k", "é"}

	perm := permute.Slice(pieces)
	for perm.Permute() {
		text := strings.Join(pieces, "")
		f := FactoryFromString(text)

		f.Replace('z', 'y')
		s.Assert().Equal(text, f.contents(), "replace absent in %q", text)
	}

	f := NewFactory()
	f.Replace('a', 'b')
	s.Assert().Equal("", f.contents())
}

func (s *UnitTestSuite) Test_Clone() {
	orig := FactoryFromString("abc")
	dupe := orig.Clone()

	dupe.Append("d")
	orig.Replace('a', 'A')

	s.Assert().Equal("Abc", orig.contents())
	s.Assert().Equal("abcd", dupe.contents())
}

func (s *UnitTestSuite) Test_Stringer() {
	f := FactoryFromString("shown")

	s.Assert().Equal("shown", fmt.Sprint(f))
	s.Assert().Equal("[shown]", fmt.Sprintf("[%s]", f))
}
