package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// commandPrefix returns environment variable prefix for the command, e.g. parsekit_formula_eval.
func commandPrefix(command *cobra.Command) string {
	return strings.ReplaceAll(command.CommandPath(), " ", "_")
}

func flagValues(val any) []string {
	switch x := val.(type) {
	case []string:
		return x
	case []any:
		res := make([]string, len(x))
		for i, item := range x {
			res[i] = fmt.Sprintf("%v", item)
		}
		return res
	default:
		return []string{fmt.Sprintf("%v", val)}
	}
}

// applyEnvironment sets flags not given on the command line from environment variables
// and from the config file if configName is not empty.
func applyEnvironment(command *cobra.Command, configName string) error {
	v := viper.New()
	v.SetEnvPrefix(commandPrefix(command))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if configName != "" {
		v.SetConfigFile(configName)
		v.SetConfigType("yaml")
		if e := v.ReadInConfig(); e != nil {
			return fmt.Errorf("error reading config file %s: %w", configName, e)
		}
	}

	var errs []string
	command.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		for _, val := range flagValues(v.Get(f.Name)) {
			if e := command.Flags().Set(f.Name, val); e != nil {
				errs = append(errs, e.Error())
			}
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("error mapping environment variables to command flags: %s", strings.Join(errs, "; "))
}
