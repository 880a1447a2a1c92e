package text

import (
	"strings"
	"unicode/utf8"

	"github.com/ava12/parsekit/parser"
)

// Placeholder is the character standing for a template argument in a joined template source.
const Placeholder = '\x00'

// TemplateCursor joins template parts with placeholders and creates a cursor over the result.
// values[i] is substituted between parts[i] and parts[i+1]; a template without values gets no placeholder positions.
func TemplateCursor[C any](parts []string, values []any, ctx C) parser.Cursor[rune, C] {
	args := &parser.TemplateArgs{Values: values}
	if len(values) > 0 {
		pos := 0
		for i, part := range parts {
			if i >= len(values) || i == len(parts)-1 {
				break
			}
			pos += utf8.RuneCountInString(part)
			args.Pos = append(args.Pos, pos)
			pos++
		}
	}

	src := []rune(strings.Join(parts, string(Placeholder)))
	return parser.NewCursor(src, ctx).WithArgs(args)
}
