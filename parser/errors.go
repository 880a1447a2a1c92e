package parser

import (
	"fmt"

	"github.com/ava12/parsekit"
)

// Error codes used by parser:
const (
	// RejectedError indicates a recoverable rejection, backtracked by choice combinators.
	RejectedError = parsekit.MatchErrors + iota
)

const (
	// CutError indicates a committed syntax error raised by Cut or Abort.
	CutError = parsekit.CommitErrors + iota

	// StuckError indicates that no production rule matched and the completion predicate does not hold.
	StuckError

	// PassLimitError indicates that the reduction engine exhausted its pass budget.
	PassLimitError

	// UndefinedRefError indicates that a Ref was used before Set.
	UndefinedRefError
)

// Failure describes a failed match.
type Failure struct {
	// Pos contains element index in the source where the match failed.
	Pos int

	// Code contains one of the error codes defined in this package.
	Code int

	// Message contains operator-specific message without position information.
	Message string

	// Fatal is set for committed failures that suppress backtracking.
	Fatal bool
}

func (f *Failure) Error() string {
	if f.Fatal {
		return fmt.Sprintf("parse error occurred at position %d: %s", f.Pos, f.Message)
	}
	return fmt.Sprintf("parse failed at position %d: %s", f.Pos, f.Message)
}

func operatorMessage(name string) string {
	return fmt.Sprintf("operator %q", name)
}

func rejection(pos int, name string) *Failure {
	return &Failure{Pos: pos, Code: RejectedError, Message: operatorMessage(name)}
}

func commitment(pos, code int, msg string) *Failure {
	return &Failure{Pos: pos, Code: code, Message: msg, Fatal: true}
}

// farther selects the failure to report from two attempts:
// the one at greater position wins, a fatal one wins at equal position, the earlier one wins otherwise.
func farther(last, f *Failure) *Failure {
	if last == nil {
		return f
	}
	if f.Pos > last.Pos || (f.Pos == last.Pos && f.Fatal && !last.Fatal) {
		return f
	}
	return last
}

type abortSignal struct {
	msg string
}

// Abort raises a committed failure from inside a transform function or a width/predicate callback.
// Transform reports it as a fatal failure at the start of the transformed match,
// Run reports it at the start of the source with EscapedAbortError code if it escapes any Transform.
// params will be added to message using fmt.Sprintf function.
func Abort(msg string, params ...any) {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	panic(abortSignal{msg})
}

// recoverAbort converts a pending Abort into a fatal failure at pos, other panics are passed through.
func recoverAbort(pos int, f **Failure) {
	x := recover()
	if x == nil {
		return
	}
	if a, ok := x.(abortSignal); ok {
		*f = commitment(pos, CutError, a.msg)
		return
	}
	panic(x)
}
