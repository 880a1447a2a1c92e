package parser

import (
	"github.com/ava12/parsekit"
)

// Error codes used by program runners:
const (
	// EscapedAbortError indicates an Abort raised outside of any Transform, e.g. in a width callback.
	EscapedAbortError = parsekit.ProgramErrors + iota
)

// RunCursor runs p and converts any failure, including an escaped Abort, to *parsekit.Error.
// Returns emitted tokens and the resulting cursor on success.
func RunCursor[E, C, R any](p Parser[E, C, R], c Cursor[E, C]) (tokens []R, next Cursor[E, C], e error) {
	var f *Failure
	var x Result[E, C, R]
	func() {
		defer recoverAbort(c.Start, &f)
		x = p(c)
	}()
	if f != nil {
		f.Code = EscapedAbortError
	} else {
		f = x.Failure
	}
	if f != nil {
		return nil, c, failureError(f)
	}
	return x.Tokens, x.Next, nil
}

// Run runs p over the whole src with context ctx.
// The returned error, if any, is *parsekit.Error with Pos set to the failure position.
func Run[E, C, R any](p Parser[E, C, R], src []E, ctx C) ([]R, error) {
	tokens, _, e := RunCursor(p, NewCursor(src, ctx))
	return tokens, e
}

func failureError(f *Failure) *parsekit.Error {
	e := parsekit.FormatError(f.Code, f.Error())
	e.Pos = f.Pos
	return e
}
