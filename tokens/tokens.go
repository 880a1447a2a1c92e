// Package tokens defines a parser family for pre-tokenized sources, e.g. production rule patterns
// matching tokens emitted by a lexer.
package tokens

import (
	"github.com/ava12/parsekit/parser"
)

// Config defines element comparison and conversion of matched elements to tokens.
type Config[E, R any] struct {
	// Token converts a matched element to a token, required.
	Token func(e E) R

	// Concat merges tokens emitted by Cat, nil means no merging.
	Concat func(tokens []R) []R

	// Equal compares a source element with a needle, required by Seq, Class, and NotClass.
	Equal func(a, b E) bool
}

// Parsers is a token parser family. All combinators of parser.Family are available.
type Parsers[E, C, R any] struct {
	parser.Family[E, C, R]
	config Config[E, R]
	equal  parser.Equal[E]
}

// New creates a parser family; Token must not be nil.
func New[E, C, R any](conf Config[E, R]) *Parsers[E, C, R] {
	return &Parsers[E, C, R]{
		Family: parser.Family[E, C, R]{Concat: conf.Concat},
		config: conf,
		equal:  conf.Equal,
	}
}

func (ps *Parsers[E, C, R]) token(es []E) R {
	return ps.config.Token(es[0])
}

// Seq matches listed elements in order, each one emitted as a separate token
// since Config.Token derives a token from a single element.
// Wrap it with Cat to get a single token through Config.Concat.
func (ps *Parsers[E, C, R]) Seq(needle ...E) parser.Parser[E, C, R] {
	items := make([]parser.Parser[E, C, R], len(needle))
	for i := range needle {
		items[i] = ps.Class(needle[i])
	}
	return parser.Combine(items...)
}

// Class matches a single element equal to one of needles.
func (ps *Parsers[E, C, R]) Class(needles ...E) parser.Parser[E, C, R] {
	return parser.ClassOf[E, C, R](ps.equal, ps.token, singles(needles)...)
}

// NotClass matches a single element equal to none of needles.
func (ps *Parsers[E, C, R]) NotClass(needles ...E) parser.Parser[E, C, R] {
	return parser.NoneOf[E, C, R](ps.equal, ps.token, singles(needles)...)
}

// ClassFn matches a single element satisfying pred.
func (ps *Parsers[E, C, R]) ClassFn(pred func(e E) bool) parser.Parser[E, C, R] {
	return parser.ByPredicate[E, C, R](ps.token, func(w []E) int {
		if len(w) == 0 || !pred(w[0]) {
			return parser.NoMatch
		}
		return 1
	})
}

// Any matches any single element.
func (ps *Parsers[E, C, R]) Any() parser.Parser[E, C, R] {
	return ps.ClassFn(func(E) bool { return true })
}

func singles[E any](needles []E) [][]E {
	res := make([][]E, len(needles))
	for i := range needles {
		res[i] = needles[i : i+1]
	}
	return res
}

// Run applies p to the whole src, see parser.Run.
func (ps *Parsers[E, C, R]) Run(p parser.Parser[E, C, R], src []E, ctx C) ([]R, error) {
	return parser.Run(p, src, ctx)
}
