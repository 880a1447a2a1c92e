package parser

// Rule is a production rule: a pattern over a token sequence and the direction anchors are scanned in.
// Tokens emitted by the pattern replace the matched part of the sequence.
type Rule[C, R any] struct {
	Pattern     Parser[R, C, R]
	RightToLeft bool
}

// LeftToRight creates a rule reducing the leftmost match first (left associative operators).
func LeftToRight[C, R any](p Parser[R, C, R]) Rule[C, R] {
	return Rule[C, R]{Pattern: p}
}

// RightToLeft creates a rule reducing the rightmost match first (right associative operators).
func RightToLeft[C, R any](p Parser[R, C, R]) Rule[C, R] {
	return Rule[C, R]{Pattern: p, RightToLeft: true}
}

// Step describes a single rewrite made by the reduction engine.
type Step[R any] struct {
	// Pass contains 0-based rewrite number.
	Pass int

	// Rule contains index of applied rule in the table.
	Rule int

	// Anchor and End delimit the replaced part of the previous sequence.
	Anchor, End int

	// Tokens contains the sequence after the rewrite.
	Tokens []R
}

// RuleTable is an immutable reduction configuration. Rule order encodes precedence:
// earlier rules are tried, and hence reduced, first.
type RuleTable[C, R any] struct {
	Rules []Rule[C, R]

	// Completion is a parser over the whole sequence telling whether reduction is complete.
	// nil means "exactly one token is left".
	Completion Parser[R, C, R]

	// MaxPasses limits the number of rewrites, zero or negative for unlimited.
	MaxPasses int

	// Trace is called after every rewrite if not nil.
	Trace func(Step[R])
}

func (t *RuleTable[C, R]) completed(c Cursor[R, C]) bool {
	if t.Completion == nil {
		return len(c.Src) == 1
	}
	return t.Completion(c).OK()
}

// match finds the first (rule, anchor) pair in table order and returns the rule index and its result.
// Returns a negative index if no rule matched; a fatal failure of any pattern is returned as is.
func (t *RuleTable[C, R]) match(seq Cursor[R, C]) (int, int, Result[R, C, R]) {
	l := len(seq.Src)
	for i, rule := range t.Rules {
		for s := 0; s <= l; s++ {
			anchor := s
			if rule.RightToLeft {
				anchor = l - s
			}
			x := rule.Pattern(seq.At(anchor))
			if x.OK() || x.Failure.Fatal {
				return i, anchor, x
			}
		}
	}
	return -1, 0, Result[R, C, R]{}
}

func splice[R any](src []R, from, to int, tokens []R) []R {
	res := make([]R, 0, len(src)-(to-from)+len(tokens))
	res = append(res, src[:from]...)
	res = append(res, tokens...)
	return append(res, src[to:]...)
}

// Reduce creates a parser that runs lexer and rewrites its tokens by rules of the table.
// After every rewrite rules are scanned again from the first one.
// The parser fails fatally if no rule matches before completion or the pass budget is exhausted.
// A fatal failure of a rule pattern is reported at c.Start since token positions mean nothing to the caller.
// The resulting cursor is the lexer's one with the context left by the last rewrite.
func Reduce[E, C, R any](t RuleTable[C, R], lexer Parser[E, C, R]) Parser[E, C, R] {
	return func(c Cursor[E, C]) Result[E, C, R] {
		lexed := lexer(c)
		if !lexed.OK() {
			return lexed
		}

		seq := NewCursor(lexed.Tokens, lexed.Next.Context)
		if t.completed(seq) {
			return lexed
		}

		for pass := 0; t.MaxPasses <= 0 || pass < t.MaxPasses; pass++ {
			i, anchor, x := t.match(seq)
			if i < 0 {
				return fail[E, C, R](commitment(c.Start, StuckError, "derivation stuck"))
			}
			if !x.OK() {
				f := *x.Failure
				f.Pos = c.Start
				return fail[E, C, R](&f)
			}

			end := x.Next.Start
			if end < anchor {
				end = anchor
			}
			src := splice(seq.Src, anchor, end, x.Tokens)
			seq = NewCursor(src, x.Next.Context)
			if t.Trace != nil {
				t.Trace(Step[R]{Pass: pass, Rule: i, Anchor: anchor, End: end, Tokens: src})
			}
			if t.completed(seq) {
				return succeed(lexed.Next.WithContext(seq.Context), seq.Src)
			}
		}

		return fail[E, C, R](commitment(c.Start, PassLimitError, "pass budget exhausted"))
	}
}
