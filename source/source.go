// Package source defines character source with line and column lookup used in error reporting.
package source

import (
	"sort"
	"strings"
)

// Source is an immutable named character source.
// Positions are rune indexes, the same indexes text parsers work with.
type Source struct {
	name       string
	content    []rune
	lineStarts []int
}

// New creates a source from string content.
func New(name, content string) *Source {
	return NewRunes(name, []rune(content))
}

// NewRunes creates a source from already decoded content. The slice must not be modified afterwards.
func NewRunes(name string, content []rune) *Source {
	s := &Source{name: name, content: content, lineStarts: []int{0}}
	for i, r := range content {
		if r == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []rune {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol returns 1-based line and column for rune index pos.
// Out of range positions are clamped to the source bounds.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := s.findLineIndex(pos)
	return lineIndex + 1, pos - s.lineStarts[lineIndex] + 1
}

// Pos converts 1-based line and column to rune index.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.content)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1] + col - 1
	if res > l {
		return l
	}
	return res
}

// SourcePos returns position descriptor for rune index pos.
func (s *Source) SourcePos(pos int) Pos {
	line, col := s.LineCol(pos)
	return Pos{s, pos, line, col}
}

func (s *Source) findLineIndex(pos int) int {
	return sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
}

const (
	excerptBefore = 5
	excerptAfter  = 55
	excerptMarker = "^~~~~~~~"
)

// Excerpt returns a fragment of source around pos followed by a marker line,
// the marker caret is placed under the rune at pos.
// The fragment starts no earlier than the line containing pos,
// lines following the first one are placed after the marker.
func (s *Source) Excerpt(pos int) string {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	from := pos - excerptBefore
	if lineStart := s.lineStarts[s.findLineIndex(pos)]; from < lineStart {
		from = lineStart
	}
	to := pos + excerptAfter
	if to > len(s.content) {
		to = len(s.content)
	}

	lines := splitLines(string(s.content[from:to]))
	parts := make([]string, 0, len(lines)+1)
	parts = append(parts, lines[0], strings.Repeat(" ", pos-from)+excerptMarker)
	parts = append(parts, lines[1:]...)
	return strings.Join(parts, "\n")
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Pos describes a position in a Source. It implements parsekit.SourcePos.
type Pos struct {
	src            *Source
	pos, line, col int
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
