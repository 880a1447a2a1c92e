package text

import (
	"io"
	"regexp"
	"unicode/utf8"

	"github.com/ava12/parsekit/parser"
)

// runeReader feeds a window to regexp engine, sizes are UTF-8 lengths.
type runeReader struct {
	rs  []rune
	pos int
}

func runeSize(r rune) int {
	size := utf8.RuneLen(r)
	if size < 0 {
		size = utf8.RuneLen(utf8.RuneError)
	}
	return size
}

func (r *runeReader) ReadRune() (rune, int, error) {
	if r.pos >= len(r.rs) {
		return 0, 0, io.EOF
	}
	c := r.rs[r.pos]
	r.pos++
	return c, runeSize(c), nil
}

// Regexp matches a non-empty string matching re at the current position.
// re is anchored automatically, the emitted token contains the whole match.
func (ps *Parsers[C, R]) Regexp(re *regexp.Regexp) parser.Parser[rune, C, R] {
	anchored := regexp.MustCompile(`\A(?:` + re.String() + `)`)
	return ps.ClassFn(func(w []rune) int {
		match := anchored.FindReaderIndex(&runeReader{rs: w})
		if len(match) == 0 || match[1] <= 0 {
			return parser.NoMatch
		}

		n, size := 0, 0
		for size < match[1] {
			size += runeSize(w[n])
			n++
		}
		return n
	})
}
