package parser

// Family is a set of combinators bound to fixed element, context, and token types.
// It is embedded by parser families for particular source kinds.
type Family[E, C, R any] struct {
	// Concat merges tokens emitted by Cat; nil leaves tokens as is.
	Concat func(tokens []R) []R
}

// Cat is a sequence emitting Concat(tokens).
func (f Family[E, C, R]) Cat(ps ...Parser[E, C, R]) Parser[E, C, R] {
	if f.Concat == nil {
		return Combine(ps...)
	}
	return Map(f.Concat, ps...)
}

// Once is a sequence that must match exactly one time.
func (f Family[E, C, R]) Once(ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Repeat(1, 1, Combine(ps...))
}

// Repeat matches a sequence zero or more times.
func (f Family[E, C, R]) Repeat(ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Many(Combine(ps...))
}

// Qty matches a sequence from min to max times, max <= 0 means no limit.
func (f Family[E, C, R]) Qty(min, max int, ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Repeat(min, max, Combine(ps...))
}

func (f Family[E, C, R]) First(ps ...Parser[E, C, R]) Parser[E, C, R] {
	return First(ps...)
}

// Or returns the longest match.
func (f Family[E, C, R]) Or(ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Longest(ps...)
}

func (f Family[E, C, R]) Combine(ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Combine(ps...)
}

func (f Family[E, C, R]) Erase(ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Erase(ps...)
}

func (f Family[E, C, R]) Trans(tf func(tokens []R) []R, ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Map(tf, ps...)
}

// TransCtx is a sequence transforming both tokens and context, see Transform.
func (f Family[E, C, R]) TransCtx(tf TokenFunc[E, C, R], ctxF func(C) C, ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Transform(tf, ctxF, ps...)
}

func (f Family[E, C, R]) ZeroWidth(emit func() R) Parser[E, C, R] {
	return ZeroWidth[E, C, R](emit)
}

// Err is a committed error with message msg.
func (f Family[E, C, R]) Err(msg string) Parser[E, C, R] {
	return Cut[E, C, R](msg)
}

func (f Family[E, C, R]) Beginning(emit func() R) Parser[E, C, R] {
	return Beginning[E, C, R](emit)
}

func (f Family[E, C, R]) End(emit func() R) Parser[E, C, R] {
	return End[E, C, R](emit)
}

func (f Family[E, C, R]) Ahead(ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Lookahead(ps...)
}

func (f Family[E, C, R]) Behind(n int, emit func() R, ps ...Parser[E, C, R]) Parser[E, C, R] {
	return Lookbehind(n, emit, ps...)
}

// Rules creates a reduction parser, see Reduce.
func (f Family[E, C, R]) Rules(t RuleTable[C, R], lexer Parser[E, C, R]) Parser[E, C, R] {
	return Reduce(t, lexer)
}

func (f Family[E, C, R]) Ref() *Ref[E, C, R] {
	return NewRef[E, C, R]()
}

// Arg matches a template placeholder, see Placeholder.
func (f Family[E, C, R]) Arg(emit func(value any) R) Parser[E, C, R] {
	return Placeholder[E, C, R](emit)
}
