/*
Package text defines a parser family for character sources.

Source elements are runes, so every code point is matched as a whole
and all positions reported in errors are rune indexes.
*/
package text

import (
	"github.com/ava12/parsekit"
	"github.com/ava12/parsekit/parser"
	"github.com/ava12/parsekit/source"
)

// Config defines how raw matched text is turned into tokens.
type Config[R any] struct {
	// Token converts matched text to a token, required.
	Token func(raw string) R

	// Concat merges tokens emitted by Cat, nil means no merging.
	Concat func(tokens []R) []R
}

// Parsers is a character parser family bound to context type C and token type R.
// All combinators of parser.Family are available.
type Parsers[C, R any] struct {
	parser.Family[rune, C, R]
	config  Config[R]
	Classes Classes[C, R]
	Numbers Numbers[C, R]
}

// New creates a parser family; Token must not be nil.
func New[C, R any](conf Config[R]) *Parsers[C, R] {
	ps := &Parsers[C, R]{
		Family: parser.Family[rune, C, R]{Concat: conf.Concat},
		config: conf,
	}
	ps.Classes = newClasses(ps)
	ps.Numbers = newNumbers(ps)
	return ps
}

func (ps *Parsers[C, R]) token(rs []rune) R {
	return ps.config.Token(string(rs))
}

// Seq matches string s.
func (ps *Parsers[C, R]) Seq(s string) parser.Parser[rune, C, R] {
	return parser.Literal[rune, C, R](equal, ps.token, []rune(s))
}

// Class matches the first of listed strings found at the current position.
func (ps *Parsers[C, R]) Class(alts ...string) parser.Parser[rune, C, R] {
	return parser.ClassOf[rune, C, R](equal, ps.token, needles(alts)...)
}

// NotClass matches a single character if none of listed strings is found at the current position.
func (ps *Parsers[C, R]) NotClass(alts ...string) parser.Parser[rune, C, R] {
	return parser.NoneOf[rune, C, R](equal, ps.token, needles(alts)...)
}

// ClassFn matches width(window) characters, see parser.ByPredicate.
func (ps *Parsers[C, R]) ClassFn(width func(window []rune) int) parser.Parser[rune, C, R] {
	return parser.ByPredicate[rune, C, R](ps.token, width)
}

// RuneFn matches a single character satisfying pred.
func (ps *Parsers[C, R]) RuneFn(pred func(r rune) bool) parser.Parser[rune, C, R] {
	return ps.ClassFn(func(w []rune) int {
		if len(w) == 0 || !pred(w[0]) {
			return parser.NoMatch
		}
		return 1
	})
}

// Run applies p to the whole src. src name is used in error messages only.
// The returned error, if any, is *parsekit.Error containing line and column of the failure
// and a source excerpt marking the failure position.
func (ps *Parsers[C, R]) Run(p parser.Parser[rune, C, R], name, src string, ctx C) ([]R, error) {
	s := source.New(name, src)
	return run(p, s, parser.NewCursor(s.Content(), ctx))
}

// RunTemplate applies p to template parts joined by placeholders, see TemplateCursor.
func (ps *Parsers[C, R]) RunTemplate(p parser.Parser[rune, C, R], name string, parts []string, values []any, ctx C) ([]R, error) {
	c := TemplateCursor(parts, values, ctx)
	return run(p, source.NewRunes(name, c.Src), c)
}

func run[C, R any](p parser.Parser[rune, C, R], s *source.Source, c parser.Cursor[rune, C]) ([]R, error) {
	tokens, _, e := parser.RunCursor(p, c)
	if e == nil {
		return tokens, nil
	}

	pe := e.(*parsekit.Error)
	res := parsekit.FormatErrorPos(s.SourcePos(pe.Pos), pe.Code, pe.Message)
	res.Pos = pe.Pos
	res.Message += "\n" + s.Excerpt(pe.Pos)
	return nil, res
}

func equal(a, b rune) bool {
	return a == b
}

func needles(alts []string) [][]rune {
	res := make([][]rune, len(alts))
	for i, a := range alts {
		res[i] = []rune(a)
	}
	return res
}
