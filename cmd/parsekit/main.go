/*
parsekit is a console utility running example grammars built with the toolkit.
Usage is

	parsekit [<global flags>] csv [<file>]
	parsekit [<global flags>] json [--max-passes <n>] [<file>]
	parsekit [<global flags>] formula parse [--max-passes <n>] [--outline] [<file>]
	parsekit [<global flags>] formula eval [--max-passes <n>] [--var <name>=<value>]... [<file>]

Input is read from <file>, or from standard input if <file> is missing or "-".
Parsed values are written to standard output, errors and log records to standard error.

Global flags are:

--format json|yaml defines output format, default is json;

--log-level <level> defines logging level, rewrite steps of formula rules are logged at debug level;

--log-format text|json defines log record format;

--config <name> defines YAML file containing flag values, e.g. "format: yaml".

Any flag may also be set with PARSEKIT_<COMMAND>_<FLAG> environment variable,
e.g. PARSEKIT_FORMULA_EVAL_MAX_PASSES=100. Explicit flags override environment variables,
environment variables override the config file.

--var value is parsed as json example notation, a value that cannot be parsed is used as a string.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if e := cmd.Execute(); e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}
}
