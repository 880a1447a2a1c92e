package parser

import (
	"fmt"
	"strings"
)

// Equal compares a source element with a needle element.
type Equal[E any] func(a, b E) bool

// describe renders needles for failure messages, rune needles are shown as text.
func describe[E any](needles ...[]E) string {
	parts := make([]string, len(needles))
	for i, n := range needles {
		if rs, ok := any(n).([]rune); ok {
			parts[i] = string(rs)
		} else if len(n) == 1 {
			parts[i] = fmt.Sprint(n[0])
		} else {
			parts[i] = fmt.Sprint(n)
		}
	}
	return strings.Join(parts, ",")
}

func hasPrefix[E any](eq Equal[E], window, needle []E) bool {
	if len(window) < len(needle) {
		return false
	}
	for i, e := range needle {
		if !eq(window[i], e) {
			return false
		}
	}
	return true
}

// Literal matches needle at the window start and emits token(needle).
func Literal[E, C, R any](eq Equal[E], token func([]E) R, needle []E) Parser[E, C, R] {
	name := "literal(" + describe(needle) + ")"
	return func(c Cursor[E, C]) Result[E, C, R] {
		if !hasPrefix(eq, c.Window(), needle) {
			return fail[E, C, R](rejection(c.Start, name))
		}
		return succeed(c.Advance(len(needle)), []R{token(needle)})
	}
}

// ClassOf matches the first listed needle found at the window start and emits token(needle).
// Order matters when one needle is a prefix of another.
func ClassOf[E, C, R any](eq Equal[E], token func([]E) R, needles ...[]E) Parser[E, C, R] {
	name := "classOf(" + describe(needles...) + ")"
	return func(c Cursor[E, C]) Result[E, C, R] {
		w := c.Window()
		for _, n := range needles {
			if hasPrefix(eq, w, n) {
				return succeed(c.Advance(len(n)), []R{token(n)})
			}
		}
		return fail[E, C, R](rejection(c.Start, name))
	}
}

// NoneOf matches exactly one element if none of needles is found at the window start.
// The consumed element is passed to token.
func NoneOf[E, C, R any](eq Equal[E], token func([]E) R, needles ...[]E) Parser[E, C, R] {
	name := "noneOf(" + describe(needles...) + ")"
	return func(c Cursor[E, C]) Result[E, C, R] {
		w := c.Window()
		if len(w) == 0 {
			return fail[E, C, R](rejection(c.Start, name))
		}
		for _, n := range needles {
			if hasPrefix(eq, w, n) {
				return fail[E, C, R](rejection(c.Start, name))
			}
		}
		return succeed(c.Advance(1), []R{token(w[:1])})
	}
}

// NoMatch is returned by width functions that do not accept the window.
const NoMatch = -1

// ByPredicate calls width with the window; a non-negative result is the number of consumed elements,
// these elements are passed to token.
func ByPredicate[E, C, R any](token func([]E) R, width func(window []E) int) Parser[E, C, R] {
	return func(c Cursor[E, C]) Result[E, C, R] {
		w := c.Window()
		n := width(w)
		if n < 0 || n > len(w) {
			return fail[E, C, R](rejection(c.Start, "byPredicate"))
		}
		return succeed(c.Advance(n), []R{token(w[:n])})
	}
}
