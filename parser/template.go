package parser

// Placeholder matches a single source element standing for a template argument,
// i.e. an element whose position is listed in Cursor.Args. It emits emit(argument value).
func Placeholder[E, C, R any](emit func(value any) R) Parser[E, C, R] {
	return func(c Cursor[E, C]) Result[E, C, R] {
		if c.AtEnd() {
			return fail[E, C, R](rejection(c.Start, "placeholder"))
		}
		v, found := c.Args.Value(c.Start)
		if !found {
			return fail[E, C, R](rejection(c.Start, "placeholder"))
		}
		return succeed(c.Advance(1), []R{emit(v)})
	}
}

// WithArgs returns a copy of cursor carrying template arguments.
func (c Cursor[E, C]) WithArgs(args *TemplateArgs) Cursor[E, C] {
	c.Args = args
	return c
}
