package parser

// Repeat applies p greedily up to max times (max <= 0 means no limit) and succeeds
// if p matched at least min times. Tokens of all matches are concatenated.
// A fatal failure of p is returned as is.
// A match consuming no input stops repetition as soon as min is reached.
func Repeat[E, C, R any](min, max int, p Parser[E, C, R]) Parser[E, C, R] {
	if min < 0 {
		min = 0
	}
	return func(c Cursor[E, C]) Result[E, C, R] {
		next := c
		var tokens []R
		count := 0

		for max <= 0 || count < max {
			x := p(next)
			if !x.OK() {
				if x.Failure.Fatal {
					return x
				}
				if count < min {
					return fail[E, C, R](rejection(next.Start, "repeat"))
				}
				break
			}

			count++
			tokens = append(tokens, x.Tokens...)
			advanced := x.Next.Start != next.Start
			next = x.Next
			if !advanced && count >= min {
				break
			}
		}

		return succeed(next, tokens)
	}
}

// Many matches p zero or more times.
func Many[E, C, R any](p Parser[E, C, R]) Parser[E, C, R] {
	return Repeat(0, 0, p)
}

// Optional matches p zero or one time.
func Optional[E, C, R any](p Parser[E, C, R]) Parser[E, C, R] {
	return Repeat(0, 1, p)
}

// First returns the result of the first successful parser.
// If all parsers fail, the farthest failure is returned.
// A fatal failure is returned immediately without trying remaining parsers.
func First[E, C, R any](ps ...Parser[E, C, R]) Parser[E, C, R] {
	return func(c Cursor[E, C]) Result[E, C, R] {
		var last *Failure
		for _, p := range ps {
			x := p(c)
			if x.OK() || x.Failure.Fatal {
				return x
			}
			last = farther(last, x.Failure)
		}

		if last == nil {
			last = rejection(c.Start, "first")
		}
		return fail[E, C, R](last)
	}
}

// Longest tries all parsers and returns the successful result that advanced farthest,
// the earliest one wins a tie. Failures are reported as by First.
func Longest[E, C, R any](ps ...Parser[E, C, R]) Parser[E, C, R] {
	return func(c Cursor[E, C]) Result[E, C, R] {
		var last *Failure
		var best *Result[E, C, R]
		for _, p := range ps {
			x := p(c)
			if x.OK() {
				if best == nil || x.Next.Start > best.Next.Start {
					best = &x
				}
				continue
			}

			if x.Failure.Fatal {
				return x
			}
			last = farther(last, x.Failure)
		}

		if best != nil {
			return *best
		}
		if last == nil {
			last = rejection(c.Start, "or")
		}
		return fail[E, C, R](last)
	}
}

// TokenFunc transforms tokens emitted by a sequence; c is the cursor the sequence started at.
type TokenFunc[E, C, R any] func(tokens []R, c Cursor[E, C]) []R

// Transform runs parsers one after another on the advancing cursor.
// Any failure fails the whole sequence. On success f (if not nil) is applied to concatenated tokens
// and ctxF (if not nil) is applied to the context of the resulting cursor.
// Abort called by f or ctxF produces a fatal failure at the start of the sequence.
func Transform[E, C, R any](f TokenFunc[E, C, R], ctxF func(C) C, ps ...Parser[E, C, R]) Parser[E, C, R] {
	return func(c Cursor[E, C]) Result[E, C, R] {
		next := c
		var tokens []R
		for _, p := range ps {
			x := p(next)
			if !x.OK() {
				return x
			}
			next = x.Next
			tokens = append(tokens, x.Tokens...)
		}

		if f == nil && ctxF == nil {
			return succeed(next, tokens)
		}

		var abort *Failure
		func() {
			defer recoverAbort(c.Start, &abort)
			if f != nil {
				tokens = f(tokens, c)
			}
			if ctxF != nil {
				next.Context = ctxF(next.Context)
			}
		}()
		if abort != nil {
			return fail[E, C, R](abort)
		}
		return succeed(next, tokens)
	}
}

// Combine is a sequence emitting concatenated tokens.
func Combine[E, C, R any](ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Transform[E, C, R](nil, nil, ps...)
}

// Erase is a sequence emitting nothing.
func Erase[E, C, R any](ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Transform[E, C, R](func([]R, Cursor[E, C]) []R { return nil }, nil, ps...)
}

// Map is a sequence emitting f(tokens).
func Map[E, C, R any](f func(tokens []R) []R, ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Transform[E, C, R](func(tokens []R, _ Cursor[E, C]) []R { return f(tokens) }, nil, ps...)
}

func emitted[R any](emit func() R) []R {
	if emit == nil {
		return nil
	}
	return []R{emit()}
}

// ZeroWidth always succeeds consuming nothing, it emits emit() if emit is not nil.
func ZeroWidth[E, C, R any](emit func() R) Parser[E, C, R] {
	return func(c Cursor[E, C]) Result[E, C, R] {
		return succeed(c, emitted(emit))
	}
}

// Cut always fails fatally at the current position.
func Cut[E, C, R any](msg string) Parser[E, C, R] {
	return func(c Cursor[E, C]) Result[E, C, R] {
		return fail[E, C, R](commitment(c.Start, CutError, msg))
	}
}

// Beginning matches at absolute source position 0.
func Beginning[E, C, R any](emit func() R) Parser[E, C, R] {
	return func(c Cursor[E, C]) Result[E, C, R] {
		if c.Start != 0 {
			return fail[E, C, R](rejection(c.Start, "beginning"))
		}
		return succeed(c, emitted(emit))
	}
}

// End matches at the end of the current window.
func End[E, C, R any](emit func() R) Parser[E, C, R] {
	return func(c Cursor[E, C]) Result[E, C, R] {
		if c.Start != c.End {
			return fail[E, C, R](rejection(c.Start, "end"))
		}
		return succeed(c, emitted(emit))
	}
}

// Lookahead succeeds at the current position with no tokens if the sequence of parsers matches.
func Lookahead[E, C, R any](ps ...Parser[E, C, R]) Parser[E, C, R] {
	seq := Combine(ps...)
	return func(c Cursor[E, C]) Result[E, C, R] {
		x := seq(c)
		if !x.OK() {
			return x
		}
		return succeed[E, C, R](c, nil)
	}
}

// Lookbehind runs the sequence of parsers from n elements before the current position.
// On success it succeeds at the current position emitting emit() (if not nil) instead of matched tokens.
func Lookbehind[E, C, R any](n int, emit func() R, ps ...Parser[E, C, R]) Parser[E, C, R] {
	seq := Combine(ps...)
	return func(c Cursor[E, C]) Result[E, C, R] {
		if c.Start-n < 0 {
			return fail[E, C, R](rejection(c.Start, "lookbehind"))
		}
		x := seq(c.At(c.Start - n))
		if !x.OK() {
			return x
		}
		return succeed(c, emitted(emit))
	}
}

// Ref is a parser reference resolved after all mutually recursive parsers are declared.
type Ref[E, C, R any] struct {
	p Parser[E, C, R]
}

func NewRef[E, C, R any]() *Ref[E, C, R] {
	return &Ref[E, C, R]{}
}

// Set resolves the reference.
func (r *Ref[E, C, R]) Set(p Parser[E, C, R]) {
	r.p = p
}

// Parser returns a parser delegating to the resolved one.
// Calling it before Set produces a fatal failure.
func (r *Ref[E, C, R]) Parser() Parser[E, C, R] {
	return func(c Cursor[E, C]) Result[E, C, R] {
		if r.p == nil {
			return fail[E, C, R](commitment(c.Start, UndefinedRefError, "undefined parser reference"))
		}
		return r.p(c)
	}
}

// Lazy creates a parser calling f on every use.
func Lazy[E, C, R any](f func() Parser[E, C, R]) Parser[E, C, R] {
	return func(c Cursor[E, C]) Result[E, C, R] {
		return f()(c)
	}
}
