// Package script parses textual Factory operations, as given on the
// command line, and applies them in order.
package script

import (
	"strings"
	"unicode/utf8"

	"github.com/10gen/string-factory/internal/logger"
	"github.com/10gen/string-factory/mstrings"
	"github.com/10gen/string-factory/msync"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Kind identifies an operation.
type Kind string

const (
	Append       Kind = "append"
	AppendDebug  Kind = "appendDebug"
	Prepend      Kind = "prepend"
	PrependDebug Kind = "prependDebug"
	Replace      Kind = "replace"
)

var kinds = []Kind{Append, AppendDebug, Prepend, PrependDebug, Replace}

// Op is a single parsed operation. Value is the text to append or prepend;
// From and To are set only for Replace.
type Op struct {
	Kind  Kind
	Value string
	From  rune
	To    rune
}

// Parse parses each argument as one Op. An argument looks like
// `append=VALUE` or `replace=F:T`, where F and T are single characters.
func Parse(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))

	for _, arg := range args {
		op, err := parseOne(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid operation %#q", arg)
		}

		ops = append(ops, op)
	}

	return ops, nil
}

func parseOne(arg string) (Op, error) {
	kindStr, value, found := strings.Cut(arg, "=")
	if !found {
		return Op{}, errors.Errorf("missing “=”")
	}

	kind := Kind(kindStr)
	if !lo.Contains(kinds, kind) {
		return Op{}, errors.Errorf(
			"unknown kind %#q (expected one of: %s)",
			kindStr,
			strings.Join(lo.Map(kinds, func(k Kind, _ int) string { return string(k) }), ", "),
		)
	}

	if kind != Replace {
		return Op{Kind: kind, Value: value}, nil
	}

	fromStr, toStr, found := strings.Cut(value, ":")
	if !found {
		return Op{}, errors.Errorf("replace needs “FROM:TO”")
	}

	from, err := ParseRune(fromStr)
	if err != nil {
		return Op{}, errors.Wrap(err, "FROM")
	}

	to, err := ParseRune(toStr)
	if err != nil {
		return Op{}, errors.Wrap(err, "TO")
	}

	return Op{Kind: Replace, From: from, To: to}, nil
}

// ParseRune parses s as exactly one valid UTF-8 character.
func ParseRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Errorf("%#q must be exactly one character", s)
	}

	if !utf8.ValidString(s) {
		return 0, errors.Errorf("%#q is not valid UTF-8", s)
	}

	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Apply runs the given operations, in order, against the guarded Factory.
// Each operation holds the guard’s write lock only for its own duration, so
// other goroutines may read the Factory between steps.
func Apply(parent *logger.Logger, guard *msync.DataGuard[*mstrings.Factory], ops []Op) {
	l := logger.NewSubLogger(parent, "component", "script")

	for i, op := range ops {
		guard.Store(func(f *mstrings.Factory) *mstrings.Factory {
			applyOne(f, op)
			return f
		})

		guard.Load(func(f *mstrings.Factory) {
			l.Debug().
				Int("step", i).
				Str("op", string(op.Kind)).
				Object("factory", f).
				Msg("Applied operation.")
		})
	}
}

func applyOne(f *mstrings.Factory, op Op) {
	switch op.Kind {
	case Append:
		f.Append(op.Value)
	case AppendDebug:
		f.AppendDebug(op.Value)
	case Prepend:
		f.AppendFront(op.Value)
	case PrependDebug:
		f.AppendDebugFront(op.Value)
	case Replace:
		f.Replace(op.From, op.To)
	default:
		panic("unknown op kind: " + string(op.Kind))
	}
}
