package text

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ava12/parsekit/parser"
)

// Numbers contains numeric literal matchers. Digits may be separated with "_",
// separators are kept in emitted tokens, see StripSeparators.
type Numbers[C, R any] struct {
	ps *Parsers[C, R]

	// Int matches an unsigned decimal integer without leading zeros.
	Int parser.Parser[rune, C, R]

	// Float matches an unsigned decimal number having a fraction part, an exponent, or both.
	Float parser.Parser[rune, C, R]
}

func newNumbers[C, R any](ps *Parsers[C, R]) Numbers[C, R] {
	sign := parser.Optional(ps.Class("+", "-"))
	digits := ps.digits(ps.Classes.Num)
	exp := ps.Combine(ps.Class("e", "E"), sign, digits)
	optExp := parser.Optional(exp)

	return Numbers[C, R]{
		ps: ps,
		Int: ps.Cat(ps.First(
			ps.Combine(ps.Classes.NonZero, parser.Many(ps.Combine(parser.Optional(ps.Seq("_")), ps.Classes.Num))),
			ps.Seq("0"),
		)),
		Float: ps.Cat(ps.First(
			ps.Combine(digits, ps.Seq("."), parser.Optional(digits), optExp),
			ps.Combine(ps.Seq("."), digits, optExp),
			ps.Combine(digits, exp),
		)),
	}
}

// Signed matches p optionally preceded with a sign.
func (n Numbers[C, R]) Signed(p parser.Parser[rune, C, R]) parser.Parser[rune, C, R] {
	return n.ps.Cat(parser.Optional(n.ps.Class("+", "-")), p)
}

// digits matches one or more digits optionally separated with "_".
func (ps *Parsers[C, R]) digits(digit parser.Parser[rune, C, R]) parser.Parser[rune, C, R] {
	return ps.Combine(digit, parser.Many(ps.Combine(parser.Optional(ps.Seq("_")), digit)))
}

func (n Numbers[C, R]) prefixed(digit parser.Parser[rune, C, R], prefixes []parser.Parser[rune, C, R]) parser.Parser[rune, C, R] {
	ps := n.ps
	if len(prefixes) == 0 {
		return ps.Cat(ps.digits(digit))
	}
	return ps.Cat(ps.Erase(ps.First(prefixes...)), ps.digits(digit))
}

// Bin matches binary digits following one of prefixes (no prefix required if none given).
// The prefix is not included in the emitted token.
func (n Numbers[C, R]) Bin(prefixes ...parser.Parser[rune, C, R]) parser.Parser[rune, C, R] {
	return n.prefixed(n.ps.Classes.Bin, prefixes)
}

// Oct matches octal digits following one of prefixes, see Bin.
func (n Numbers[C, R]) Oct(prefixes ...parser.Parser[rune, C, R]) parser.Parser[rune, C, R] {
	return n.prefixed(n.ps.Classes.Oct, prefixes)
}

// Hex matches hexadecimal digits following one of prefixes, see Bin.
func (n Numbers[C, R]) Hex(prefixes ...parser.Parser[rune, C, R]) parser.Parser[rune, C, R] {
	return n.prefixed(n.ps.Classes.Hex, prefixes)
}

// StripSeparators removes digit separators from a matched number.
func StripSeparators(s string) string {
	return strings.ReplaceAll(s, "_", "")
}

// NumberValue converts a matched unsigned number to float64, separators are allowed.
// Base 10 accepts Int and Float syntax, other bases accept digits only.
// Out of range values are not errors: they become +Inf, 0 for decimal underflow,
// or the nearest float64 for long integers in any base.
func NumberValue(s string, base int) (float64, error) {
	s = StripSeparators(s)
	if base == 10 {
		f, e := strconv.ParseFloat(s, 64)
		if errors.Is(e, strconv.ErrRange) {
			e = nil
		}
		return f, e
	}

	n, e := strconv.ParseUint(s, base, 64)
	if e == nil {
		return float64(n), nil
	}
	if !errors.Is(e, strconv.ErrRange) {
		return 0, e
	}

	var f float64
	for _, c := range s {
		d, e := strconv.ParseUint(string(c), base, 8)
		if e != nil {
			return 0, e
		}
		f = f*float64(base) + float64(d)
	}
	return f, nil
}
