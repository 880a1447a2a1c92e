/*
Package parsekit is a parser combinator toolkit working over any indexable sequence:
character strings or slices of tokens produced by a previous parsing stage.

Consists of subpackages:
  - parser: cursor and result model, primitive matchers, combinators, production rule reduction engine;
  - text: parser family for character sources (elements are runes), character classes and numeric literals;
  - tokens: parser family for pre-tokenized sources (elements are arbitrary values);
  - source: character source with line and column lookup;
  - examples/csv, examples/json, examples/formula: grammars built with the toolkit;
  - cmd/parsekit: console utility running example grammars.

Typical usage is:

1. Build a lexer from text matchers and combinators.

2. Describe operator precedence as an ordered list of production rules over lexer tokens,
each one built with tokens matchers.

3. Feed the lexer and the rules to the reduction engine, the result is an ordinary parser
that can be nested into a larger grammar.

4. Run the resulting parser with text.Parsers.Run or parser.Run.
*/
package parsekit

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	MatchErrors   = 101 // recoverable rejections, used by parser
	CommitErrors  = 201 // committed failures, used by parser
	ProgramErrors = 301 // used by program runners
	ExampleErrors = 401 // used by example grammars
)

// Error is the error type returned by parser runners and example grammars.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int

	// Pos contains element index in source sequence where the error occurred.
	Pos int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{Code: code, Message: msg, SourceName: name, Line: line, Col: col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
