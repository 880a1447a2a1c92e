package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ava12/parsekit"
)

type globalParams struct {
	format    string
	logLevel  string
	logFormat string
	config    string
}

// app contains state shared by all commands of a single run.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	params globalParams
	log    *logrus.Logger
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, log: logrus.New()}

	root := &cobra.Command{
		Use:           "parsekit",
		Short:         "Run example grammars",
		Long:          "Parse CSV, object notation, or formulas and print parsed values as JSON or YAML.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if e := applyEnvironment(cmd, a.params.config); e != nil {
				return e
			}
			return a.setup()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.params.format, "format", "json", "output format: json or yaml")
	flags.StringVar(&a.params.logLevel, "log-level", "warning", "logging level: panic, fatal, error, warning, info, debug, or trace")
	flags.StringVar(&a.params.logFormat, "log-format", "text", "log record format: text or json")
	flags.StringVar(&a.params.config, "config", "", "YAML file containing flag values")

	root.AddCommand(a.csvCommand(), a.jsonCommand(), a.formulaCommand())
	return root
}

func (a *app) setup() error {
	switch a.params.format {
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", a.params.format)
	}

	level, e := logrus.ParseLevel(a.params.logLevel)
	if e != nil {
		return fmt.Errorf("invalid --log-level: %w", e)
	}
	a.log.SetLevel(level)
	a.log.SetOutput(a.errOut)

	switch a.params.logFormat {
	case "text":
		a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", a.params.logFormat)
	}
	return nil
}

// readInput reads the file named by the first argument or standard input.
func (a *app) readInput(args []string) (name, content string, e error) {
	var src []byte
	if len(args) == 0 || args[0] == "-" {
		name = "stdin"
		src, e = io.ReadAll(a.in)
	} else {
		name = args[0]
		src, e = os.ReadFile(name)
	}
	if e != nil {
		return name, "", fmt.Errorf("error reading %s: %w", name, e)
	}

	a.log.WithFields(logrus.Fields{"source": name, "size": len(src)}).Info("input read")
	return name, string(src), nil
}

func (a *app) write(v any) error {
	if a.params.format == "yaml" {
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if e := enc.Encode(v); e != nil {
			return fmt.Errorf("error encoding YAML: %w", e)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if e := enc.Encode(v); e != nil {
		return fmt.Errorf("error encoding JSON: %w", e)
	}
	return nil
}

// failed logs a parse or evaluation error and wraps it with the source name.
func (a *app) failed(name string, e error) error {
	fields := logrus.Fields{"source": name}
	var pe *parsekit.Error
	if errors.As(e, &pe) {
		fields["code"] = pe.Code
		fields["pos"] = pe.Pos
	}
	a.log.WithFields(fields).Debug("failed")
	return fmt.Errorf("%s: %w", name, e)
}
