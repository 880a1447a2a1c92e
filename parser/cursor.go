/*
Package parser defines parser combinators working over any indexable sequence.

A Parser is a pure function from Cursor to Result. Cursor describes a window [Start, End)
in an immutable source slice; End is a hard right boundary for every parser.
Result is either a success carrying the next cursor and emitted tokens,
or a Failure. Non-fatal failures are backtracked by choice and repetition combinators,
fatal ones (produced by Cut, Abort, unresolved Ref, and the reduction engine) are never backtracked.

Reduce turns a lexer and an ordered production rule table into a parser that iteratively
rewrites the lexer's token sequence until the completion predicate holds.

Parsers and rule tables hold no per-call state and may be shared between goroutines.
*/
package parser

// TemplateArgs is the side table of template placeholders:
// Values[i] is substituted at source position Pos[i].
type TemplateArgs struct {
	Values []any
	Pos    []int
}

// Value returns the template argument placed at pos.
func (ta *TemplateArgs) Value(pos int) (value any, found bool) {
	if ta == nil {
		return nil, false
	}
	for i, p := range ta.Pos {
		if p == pos && i < len(ta.Values) {
			return ta.Values[i], true
		}
	}
	return nil, false
}

// Cursor is a parser input: source, window bounds, and user context.
type Cursor[E, C any] struct {
	Src     []E
	Start   int
	End     int
	Context C
	Args    *TemplateArgs
}

// NewCursor creates a cursor covering the whole source.
func NewCursor[E, C any](src []E, ctx C) Cursor[E, C] {
	return Cursor[E, C]{Src: src, End: len(src), Context: ctx}
}

// Window returns source elements between Start and End.
func (c Cursor[E, C]) Window() []E {
	if c.Start >= c.End {
		return nil
	}
	return c.Src[c.Start:c.End]
}

// Len returns the number of elements left in the window.
func (c Cursor[E, C]) Len() int {
	if c.End <= c.Start {
		return 0
	}
	return c.End - c.Start
}

func (c Cursor[E, C]) AtEnd() bool {
	return c.Start >= c.End
}

// Advance returns a copy of cursor moved n elements forward.
func (c Cursor[E, C]) Advance(n int) Cursor[E, C] {
	c.Start += n
	return c
}

// At returns a copy of cursor starting at pos.
func (c Cursor[E, C]) At(pos int) Cursor[E, C] {
	c.Start = pos
	return c
}

func (c Cursor[E, C]) WithContext(ctx C) Cursor[E, C] {
	c.Context = ctx
	return c
}

// Result is the outcome of a parser call. Failure is nil for successful matches.
type Result[E, C, R any] struct {
	Next    Cursor[E, C]
	Tokens  []R
	Failure *Failure
}

func (r Result[E, C, R]) OK() bool {
	return r.Failure == nil
}

// Fatal reports whether the result is a committed failure.
func (r Result[E, C, R]) Fatal() bool {
	return r.Failure != nil && r.Failure.Fatal
}

// Parser is a pure function of Cursor.
type Parser[E, C, R any] func(c Cursor[E, C]) Result[E, C, R]

func succeed[E, C, R any](next Cursor[E, C], tokens []R) Result[E, C, R] {
	return Result[E, C, R]{Next: next, Tokens: tokens}
}

func fail[E, C, R any](f *Failure) Result[E, C, R] {
	return Result[E, C, R]{Failure: f}
}
