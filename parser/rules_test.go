package parser

import (
	"strconv"
	"testing"

	"github.com/ava12/parsekit/internal/test"
)

type sp = Parser[string, int, string]

func eqString(a, b string) bool {
	return a == b
}

func op(ops ...string) sp {
	needles := make([][]string, len(ops))
	for i, o := range ops {
		needles[i] = []string{o}
	}
	return ClassOf[string, int, string](eqString, func(n []string) string { return n[0] }, needles...)
}

var number = ByPredicate[string, int, string](
	func(w []string) string { return w[0] },
	func(w []string) int {
		if len(w) == 0 {
			return NoMatch
		}
		if _, e := strconv.Atoi(w[0]); e != nil {
			return NoMatch
		}
		return 1
	},
)

func binary(pattern sp) sp {
	return Map(func(t []string) []string {
		a, _ := strconv.Atoi(t[0])
		b, _ := strconv.Atoi(t[2])
		res := 0
		switch t[1] {
		case "+":
			res = a + b
		case "-":
			res = a - b
		case "*":
			res = a * b
		case "^":
			res = 1
			for ; b > 0; b-- {
				res *= a
			}
		}
		return []string{strconv.Itoa(res)}
	}, pattern)
}

func binaryOp(ops ...string) sp {
	return binary(Combine(number, op(ops...), number))
}

var (
	addRule   = LeftToRight(binaryOp("+", "-"))
	subRTL    = RightToLeft(binaryOp("+", "-"))
	mulRule   = LeftToRight(binaryOp("*"))
	powRule   = RightToLeft(binaryOp("^"))
	groupRule = LeftToRight(Map(func(t []string) []string { return t[1:2] }, op("("), number, op(")")))
)

var arithLexer = Combine(Many(First(digits, class("+", "-", "*", "^", "(", ")", ","))), End[rune, int, string](nil))

func reduce(t *testing.T, table RuleTable[int, string], src string) ([]string, error) {
	t.Helper()
	return Run(Reduce(table, arithLexer), []rune(src), 0)
}

func TestReduce(t *testing.T) {
	type sample struct {
		rules    []Rule[int, string]
		src      string
		expected string
	}
	samples := []sample{
		{[]Rule[int, string]{mulRule, addRule}, "2+3*4", "14"},
		{[]Rule[int, string]{addRule, mulRule}, "1+2*3", "9"},
		{[]Rule[int, string]{addRule}, "8-3-2", "3"},
		{[]Rule[int, string]{subRTL}, "8-3-2", "7"},
		{[]Rule[int, string]{powRule}, "2^3^2", "512"},
		{[]Rule[int, string]{groupRule, mulRule, addRule}, "(1+2)*3", "9"},
		{[]Rule[int, string]{groupRule, powRule, mulRule, addRule}, "2*3^2+1", "19"},
		{nil, "5", "5"},
	}

	for i, s := range samples {
		tokens, e := reduce(t, RuleTable[int, string]{Rules: s.rules}, s.src)
		if e != nil {
			t.Fatalf("sample #%d: unexpected error: %v", i, e)
		}
		test.ExpectEqual(t, []string{s.expected}, tokens)
	}
}

func TestReduceStuck(t *testing.T) {
	table := RuleTable[int, string]{Rules: []Rule[int, string]{addRule}}
	_, e := reduce(t, table, "2+")
	ee := test.ExpectErrorAt(t, StuckError, 0, e)
	test.Assert(t, ee.Message != "", "empty message")

	c := NewCursor([]rune("x2+"), 0).At(1)
	x := Reduce(table, arithLexer)(c)
	expectFailure(t, x, 1, true)
	test.ExpectInt(t, StuckError, x.Failure.Code)
}

func TestReducePassBudget(t *testing.T) {
	table := RuleTable[int, string]{Rules: []Rule[int, string]{addRule}, MaxPasses: 1}
	_, e := reduce(t, table, "1+2+3")
	test.ExpectErrorAt(t, PassLimitError, 0, e)

	table.MaxPasses = 2
	tokens, e := reduce(t, table, "1+2+3")
	test.ExpectNoError(t, e)
	test.ExpectEqual(t, []string{"6"}, tokens)

	table.MaxPasses = -1
	tokens, e = reduce(t, table, "1+1+1+1+1+1+1+1")
	test.ExpectNoError(t, e)
	test.ExpectEqual(t, []string{"8"}, tokens)
}

func TestReduceTrace(t *testing.T) {
	var steps []Step[string]
	table := RuleTable[int, string]{
		Rules: []Rule[int, string]{mulRule, powRule},
		Trace: func(s Step[string]) { steps = append(steps, s) },
	}
	_, e := reduce(t, table, "2^3^2")
	test.ExpectNoError(t, e)

	expected := []Step[string]{
		{Pass: 0, Rule: 1, Anchor: 2, End: 5, Tokens: []string{"2", "^", "9"}},
		{Pass: 1, Rule: 1, Anchor: 0, End: 3, Tokens: []string{"512"}},
	}
	test.ExpectEqual(t, expected, steps)

	steps = nil
	_, e = reduce(t, table, "7")
	test.ExpectNoError(t, e)
	test.ExpectInt(t, 0, len(steps))
}

func TestReduceCompletion(t *testing.T) {
	list := Combine(number, Many(Combine(op(","), number)), End[string, int, string](nil))
	table := RuleTable[int, string]{
		Rules:      []Rule[int, string]{mulRule, addRule},
		Completion: list,
	}
	tokens, e := reduce(t, table, "1+2,3*4,5")
	test.ExpectNoError(t, e)
	test.ExpectEqual(t, []string{"3", ",", "12", ",", "5"}, tokens)
}

func TestReduceFatalRule(t *testing.T) {
	noGroups := LeftToRight(Combine(op("("), Cut[string, int, string]("groups are not supported")))
	table := RuleTable[int, string]{Rules: []Rule[int, string]{noGroups, addRule}}
	x := Reduce(table, arithLexer)(NewCursor([]rune("x1+(2)"), 0).At(1))
	expectFailure(t, x, 1, true)
	test.ExpectInt(t, CutError, x.Failure.Code)
	test.ExpectString(t, "groups are not supported", x.Failure.Message)
}

func TestReduceContext(t *testing.T) {
	counted := LeftToRight(Transform[string, int, string](
		func(tokens []string, _ Cursor[string, int]) []string { return tokens },
		func(n int) int { return n + 1 },
		binaryOp("+"),
	))
	table := RuleTable[int, string]{Rules: []Rule[int, string]{counted}}
	c := NewCursor([]rune("1+2+3+4"), 10)
	x := Reduce(table, arithLexer)(c)
	expectMatch(t, x, 7, "10")
	test.ExpectInt(t, 13, x.Next.Context)
}
