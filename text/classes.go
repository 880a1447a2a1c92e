package text

import (
	"strings"

	"github.com/ava12/parsekit/parser"
)

// Classes contains single character matchers, Newline matches a line break sequence.
type Classes[C, R any] struct {
	Alpha, Upper, Lower                   parser.Parser[rune, C, R]
	Num, NonZero, Bin, Oct, Hex, AlNum    parser.Parser[rune, C, R]
	Space, SpaceWithinSingleLine, Newline parser.Parser[rune, C, R]
	Ctrl, Word, Any                       parser.Parser[rune, C, R]
}

const (
	lineBreaks = "\n\r\u2028\u2029"
	spaces     = " \f\t\v\u00a0\u1680\u180e\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200a" +
		"\u200b\u202f\u205f\u3000\ufeff" + lineBreaks
)

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isAlpha(r rune) bool {
	return isUpper(r) || isLower(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHex(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isSpace(r rune) bool {
	return strings.ContainsRune(spaces, r)
}

func isCtrl(r rune) bool {
	return (r >= 0 && r <= 0x1f) || (r >= 0x7f && r <= 0x9f)
}

func newClasses[C, R any](ps *Parsers[C, R]) Classes[C, R] {
	return Classes[C, R]{
		Alpha:   ps.RuneFn(isAlpha),
		Upper:   ps.RuneFn(isUpper),
		Lower:   ps.RuneFn(isLower),
		Num:     ps.RuneFn(isDigit),
		NonZero: ps.RuneFn(func(r rune) bool { return r >= '1' && r <= '9' }),
		Bin:     ps.RuneFn(func(r rune) bool { return r == '0' || r == '1' }),
		Oct:     ps.RuneFn(func(r rune) bool { return r >= '0' && r <= '7' }),
		Hex:     ps.RuneFn(isHex),
		AlNum:   ps.RuneFn(func(r rune) bool { return isAlpha(r) || isDigit(r) }),
		Space:   ps.RuneFn(isSpace),
		SpaceWithinSingleLine: ps.RuneFn(func(r rune) bool {
			return isSpace(r) && !strings.ContainsRune(lineBreaks, r)
		}),
		Newline: ps.Class("\r\n", "\n", "\r"),
		Ctrl:    ps.RuneFn(isCtrl),
		Word:    ps.RuneFn(func(r rune) bool { return !isSpace(r) && !isCtrl(r) }),
		Any:     ps.RuneFn(func(rune) bool { return true }),
	}
}
