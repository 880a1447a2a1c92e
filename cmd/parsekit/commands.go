package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ava12/parsekit/examples/csv"
	"github.com/ava12/parsekit/examples/formula"
	jsonex "github.com/ava12/parsekit/examples/json"
	"github.com/ava12/parsekit/parser"
)

func (a *app) csvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "csv [<file>]",
		Short: "Parse comma separated values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name, src, e := a.readInput(args)
			if e != nil {
				return e
			}
			rows, e := csv.Parse(src)
			if e != nil {
				return a.failed(name, e)
			}
			a.log.WithField("rows", len(rows)).Info("parsed")
			return a.write(rows)
		},
	}
}

func (a *app) jsonCommand() *cobra.Command {
	var opts jsonex.Options
	cmd := &cobra.Command{
		Use:   "json [<file>]",
		Short: "Parse relaxed object notation with constant expressions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name, src, e := a.readInput(args)
			if e != nil {
				return e
			}
			v, e := jsonex.ParseWith(src, opts)
			if e != nil {
				return a.failed(name, e)
			}
			return a.write(v)
		},
	}
	cmd.Flags().IntVar(&opts.MaxPasses, "max-passes", 0, "rewrite limit for every expression, 0 means no limit")
	return cmd
}

func (a *app) formulaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formula",
		Short: "Parse or evaluate arithmetic formulas",
	}
	cmd.AddCommand(a.formulaParseCommand(), a.formulaEvalCommand())
	return cmd
}

// traceStep logs rewrite steps if debug logging is enabled.
func (a *app) traceStep() func(parser.Step[formula.Node]) {
	if !a.log.IsLevelEnabled(logrus.DebugLevel) {
		return nil
	}
	return func(s parser.Step[formula.Node]) {
		parts := make([]string, len(s.Tokens))
		for i, t := range s.Tokens {
			parts[i] = t.String()
		}
		a.log.WithFields(logrus.Fields{
			"pass":   s.Pass,
			"rule":   s.Rule,
			"anchor": s.Anchor,
			"end":    s.End,
		}).Debug(strings.Join(parts, " "))
	}
}

func (a *app) parseFormula(args []string, maxPasses int) (string, formula.Node, error) {
	name, src, e := a.readInput(args)
	if e != nil {
		return name, nil, e
	}
	n, e := formula.ParseWith(src, formula.Options{MaxPasses: maxPasses, Trace: a.traceStep()})
	if e != nil {
		return name, nil, a.failed(name, e)
	}
	return name, n, nil
}

func (a *app) formulaParseCommand() *cobra.Command {
	var (
		maxPasses int
		outline   bool
	)
	cmd := &cobra.Command{
		Use:   "parse [<file>]",
		Short: "Print formula syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, n, e := a.parseFormula(args, maxPasses)
			if e != nil {
				return e
			}
			if outline {
				return a.writeOutline(n)
			}
			return a.write(nodeValue(n))
		},
	}
	cmd.Flags().IntVar(&maxPasses, "max-passes", 0, "rewrite limit for every operator sequence, 0 means no limit")
	cmd.Flags().BoolVar(&outline, "outline", false, "print indented node outline instead of structured output")
	return cmd
}

func (a *app) formulaEvalCommand() *cobra.Command {
	var (
		maxPasses int
		vars      []string
	)
	cmd := &cobra.Command{
		Use:   "eval [<file>]",
		Short: "Evaluate formula",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			env, e := newEnv(vars)
			if e != nil {
				return e
			}
			name, n, e := a.parseFormula(args, maxPasses)
			if e != nil {
				return e
			}
			v, e := formula.Evaluate(n, env)
			if e != nil {
				return a.failed(name, e)
			}
			return a.write(v)
		},
	}
	cmd.Flags().IntVar(&maxPasses, "max-passes", 0, "rewrite limit for every operator sequence, 0 means no limit")
	cmd.Flags().StringArrayVar(&vars, "var", nil, "variable definition <name>=<value>, may be repeated")
	return cmd
}

// newEnv creates evaluation environment containing builtin functions and variable definitions.
func newEnv(vars []string) (formula.Env, error) {
	env := builtins()
	for _, def := range vars {
		name, text, found := strings.Cut(def, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("invalid variable definition %q", def)
		}
		v, e := jsonex.Parse(text)
		if e != nil {
			v = text
		}
		env[name] = v
	}
	return env, nil
}

func outlineLabel(n formula.Node) string {
	switch n := n.(type) {
	case formula.Unary:
		return "unary " + n.Op
	case formula.Binary:
		return n.Op
	case formula.Call:
		return "call"
	case formula.Cond:
		return "?:"
	case formula.Sequence:
		return ","
	case formula.List:
		return "[]"
	case formula.Object:
		return "{" + strings.Join(n.Keys, ", ") + "}"
	default:
		return n.String()
	}
}

func (a *app) writeOutline(n formula.Node) error {
	var sb strings.Builder
	formula.Walk(n, formula.WalkLtr, func(n formula.Node, level int) (bool, bool) {
		sb.WriteString(strings.Repeat("  ", level))
		sb.WriteString(outlineLabel(n))
		sb.WriteByte('\n')
		return true, true
	})
	_, e := fmt.Fprint(a.out, sb.String())
	return e
}

func nodeValues(nodes []formula.Node) []any {
	res := make([]any, len(nodes))
	for i, n := range nodes {
		res[i] = nodeValue(n)
	}
	return res
}

// nodeValue converts a syntax tree to a structure suitable for encoding.
func nodeValue(n formula.Node) any {
	switch n := n.(type) {
	case formula.Number:
		return n.Value
	case formula.String:
		return n.Value
	case formula.Bool:
		return n.Value
	case formula.Null:
		return nil
	case formula.Symbol:
		return map[string]any{"symbol": n.Name}
	case formula.List:
		return map[string]any{"list": nodeValues(n.Items)}
	case formula.Object:
		obj := make(map[string]any, len(n.Keys))
		for i, k := range n.Keys {
			obj[k] = nodeValue(n.Values[i])
		}
		return map[string]any{"object": obj}
	case formula.Call:
		return map[string]any{"call": nodeValue(n.Func), "args": nodeValues(n.Args)}
	case formula.Unary:
		return map[string]any{"op": n.Op, "x": nodeValue(n.X)}
	case formula.Binary:
		return map[string]any{"op": n.Op, "x": nodeValue(n.X), "y": nodeValue(n.Y)}
	case formula.Cond:
		return map[string]any{"if": nodeValue(n.If), "then": nodeValue(n.Then), "else": nodeValue(n.Else)}
	case formula.Sequence:
		return map[string]any{"sequence": nodeValues(n.Items)}
	default:
		return n.String()
	}
}
