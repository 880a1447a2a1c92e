package tokens

import (
	"strconv"
	"testing"

	"github.com/ava12/parsekit/internal/test"
	"github.com/ava12/parsekit/parser"
)

type item struct {
	Kind  string
	Text  string
	Value int
}

func op(text string) item {
	return item{Kind: "op", Text: text}
}

func num(v int) item {
	return item{Kind: "num", Text: strconv.Itoa(v), Value: v}
}

func newParsers() *Parsers[item, struct{}, item] {
	return New[item, struct{}, item](Config[item, item]{
		Token: func(e item) item { return e },
		Equal: func(a, b item) bool { return a.Kind == b.Kind && a.Text == b.Text },
	})
}

func run(ps *Parsers[item, struct{}, item], p parser.Parser[item, struct{}, item], src ...item) ([]item, error) {
	return ps.Run(ps.Combine(p, ps.End(nil)), src, struct{}{})
}

func TestMatchers(t *testing.T) {
	ps := newParsers()

	res, e := run(ps, ps.Seq(op("("), op(")")), op("("), op(")"))
	test.ExpectNoError(t, e)
	test.ExpectEqual(t, []item{op("("), op(")")}, res)

	_, e = run(ps, ps.Seq(op("("), op(")")), op("("), op("]"))
	test.ExpectErrorAt(t, parser.RejectedError, 1, e)

	res, e = run(ps, ps.Repeat(ps.Class(op("+"), op("-"))), op("-"), op("+"), op("-"))
	test.ExpectNoError(t, e)
	test.ExpectInt(t, 3, len(res))

	res, e = run(ps, ps.Repeat(ps.NotClass(op(";"))), num(1), op("+"), num(2))
	test.ExpectNoError(t, e)
	test.ExpectEqual(t, []item{num(1), op("+"), num(2)}, res)

	_, e = run(ps, ps.Repeat(ps.NotClass(op(";"))), num(1), op(";"))
	test.ExpectErrorAt(t, parser.RejectedError, 1, e)

	isNum := ps.ClassFn(func(e item) bool { return e.Kind == "num" })
	_, e = run(ps, ps.Combine(isNum, ps.Any(), isNum), num(1), op("?"), num(2))
	test.ExpectNoError(t, e)
	_, e = run(ps, ps.Combine(isNum, ps.Any(), isNum), num(1), op("?"), op("?"))
	test.ExpectErrorAt(t, parser.RejectedError, 2, e)
	_, e = run(ps, ps.Any())
	test.ExpectErrorAt(t, parser.RejectedError, 0, e)
}

func TestRules(t *testing.T) {
	ps := newParsers()
	isNum := ps.ClassFn(func(e item) bool { return e.Kind == "num" })
	binary := func(ops ...item) parser.Parser[item, struct{}, item] {
		return ps.Trans(func(t []item) []item {
			a, b := t[0].Value, t[2].Value
			switch t[1].Text {
			case "+":
				return []item{num(a + b)}
			case "-":
				return []item{num(a - b)}
			default:
				return []item{num(a * b)}
			}
		}, isNum, ps.Class(ops...), isNum)
	}

	table := parser.RuleTable[struct{}, item]{Rules: []parser.Rule[struct{}, item]{
		parser.LeftToRight(ps.Trans(func(t []item) []item { return t[1:2] }, ps.Seq(op("(")), isNum, ps.Seq(op(")")))),
		parser.LeftToRight(binary(op("*"))),
		parser.LeftToRight(binary(op("+"), op("-"))),
	}}
	lexer := ps.Repeat(ps.Any())

	res, e := run(ps, ps.Rules(table, lexer), num(10), op("-"), op("("), num(2), op("+"), num(1), op(")"), op("*"), num(3))
	test.ExpectNoError(t, e)
	test.ExpectEqual(t, []item{num(1)}, res)

	_, e = run(ps, ps.Rules(table, lexer), num(1), op("+"))
	test.ExpectErrorAt(t, parser.StuckError, 0, e)
}
