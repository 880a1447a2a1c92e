package parsekit_test

import (
	"fmt"
	"strings"

	"github.com/ava12/parsekit/text"
)

func Example() {
	input := `
foo = hello
bar = world
[sec]
baz =
[sec.subsec]
qux = !
`
	ps := text.New[struct{}, string](text.Config[string]{
		Token:  func(s string) string { return s },
		Concat: func(ts []string) []string { return []string{strings.Join(ts, "")} },
	})

	space := ps.Erase(ps.Repeat(ps.Classes.SpaceWithinSingleLine))
	nl := ps.Erase(space, ps.Classes.Newline)
	name := ps.Cat(ps.Qty(1, 0, ps.Classes.Lower))
	section := ps.Trans(
		func(ts []string) []string { return []string{"[" + ts[0]} },
		space, ps.Erase(ps.Seq("[")), ps.Cat(name, ps.Repeat(ps.Seq("."), name)), ps.Erase(ps.Seq("]")), nl,
	)
	value := ps.Trans(
		func(ts []string) []string { return []string{ts[0] + "=" + ts[1]} },
		space, name, space, ps.Erase(ps.Seq("=")), space, ps.Cat(ps.Repeat(ps.NotClass("\n"))), nl,
	)
	config := ps.Combine(ps.Repeat(ps.First(section, value, nl)), ps.End(nil))

	tokens, e := ps.Run(config, "input", input, struct{}{})
	if e != nil {
		fmt.Println(e)
		return
	}

	result := make(map[string]string)
	prefix := ""
	for _, t := range tokens {
		if strings.HasPrefix(t, "[") {
			prefix = t[1:] + "."
			continue
		}
		name, value, _ := strings.Cut(t, "=")
		result[prefix+name] = value
	}
	fmt.Println(result)
	// Output:
	// map[bar:world foo:hello sec.baz: sec.subsec.qux:!]
}
