package source

import (
	"strings"
	"testing"
)

type result struct {
	pos, line, col int
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{100, 1, 1},
			{-1, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{1, 2, 1},
			{100, 2, 1},
		},
		"0\n2\n4\n6789abcde\ng\ni\n": {
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{7, 4, 2},
			{8, 4, 3},
			{9, 4, 4},
			{14, 4, 9},
			{19, 6, 2},
			{20, 7, 1},
			{9, 4, 4},
			{5, 3, 2},
		},
		"été\n\U0001F608x": {
			{2, 1, 3},
			{4, 2, 1},
			{5, 2, 2},
		},
	}

	for text, results := range samples {
		source := New("", text)
		for _, res := range results {
			l, c := source.LineCol(res.pos)
			if l != res.line || c != res.col {
				t.Errorf("sample %q: expected %v, got line: %d, col: %d", text, res, l, c)
			}
		}
	}
}

func TestSourcePos(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 0, 1},
			{0, 1, 0},
			{0, 1, 1},
			{0, 1, 2},
			{0, 2, 1},
		},
		" ": {
			{0, 0, 1},
			{0, 1, 1},
			{1, 1, 2},
			{1, 2, 1},
		},
		"hello\nworld\n": {
			{0, 1, 1},
			{1, 1, 2},
			{6, 2, 1},
			{7, 2, 2},
			{12, 2, 10},
			{12, 3, 1},
			{12, 3, 2},
			{12, 4, 1},
		},
	}

	for text, results := range samples {
		source := New("", text)
		for _, res := range results {
			p := source.Pos(res.line, res.col)
			if p != res.pos {
				t.Errorf("sample %q: expected %v, got pos: %d", text, res, p)
			}
		}
	}
}

func TestSourcePosDescriptor(t *testing.T) {
	sp := New("input.txt", "ab\ncd").SourcePos(4)
	if sp.SourceName() != "input.txt" || sp.Line() != 2 || sp.Col() != 2 || sp.Pos() != 4 {
		t.Fatalf("unexpected position %s:%d:%d (%d)", sp.SourceName(), sp.Line(), sp.Col(), sp.Pos())
	}

	var empty Pos
	if empty.SourceName() != "" {
		t.Fatal("expecting empty name for zero position")
	}
}

func TestExcerpt(t *testing.T) {
	samples := []struct {
		content       string
		pos           int
		line, marker  string
		rest          []string
	}{
		{"first line here\nsecond", 8, "st line here", "     ^~~~~~~~", []string{"second"}},
		{"2+", 2, "2+", "  ^~~~~~~~", nil},
		{"{a 1}", 3, "{a 1}", "   ^~~~~~~~", nil},
		{"ab\ncd", 4, "cd", " ^~~~~~~~", nil},
		{"", 10, "", "^~~~~~~~", nil},
	}

	for i, s := range samples {
		lines := strings.Split(New("", s.content).Excerpt(s.pos), "\n")
		if len(lines) != 2+len(s.rest) {
			t.Fatalf("sample #%d: expecting %d lines, got %q", i, 2+len(s.rest), lines)
		}
		if lines[0] != s.line || lines[1] != s.marker {
			t.Fatalf("sample #%d: unexpected excerpt %q", i, lines)
		}
		for j, l := range s.rest {
			if lines[2+j] != l {
				t.Fatalf("sample #%d: unexpected line %q", i, lines[2+j])
			}
		}
		if caret := strings.IndexRune(lines[1], '^'); s.pos < len(s.content) && caret < len(lines[0]) && []rune(lines[0])[caret] != []rune(s.content)[s.pos] {
			t.Fatalf("sample #%d: caret is not under rune #%d", i, s.pos)
		}
	}
}
