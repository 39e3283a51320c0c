package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// tracer traces with key 'cfgrec.cli'.
func tracer() tracing.Trace {
	return tracing.Select("cfgrec.cli")
}

// tracing keys of the packages driven by the commands
var traceKeys = []string{"cfgrec.cli", "cfgrec.grammar", "cfgrec.earley", "cfgrec.scanner"}

var rootFlags = struct {
	trace *string
}{}

var rootCmd = &cobra.Command{
	Use:   "cfgrec",
	Short: "Decide membership of words in context-free languages",
	Long: `cfgrec reads a context-free grammar and decides for words whether they
are derivable from the grammar's start symbol, using Earley's algorithm.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setTraceLevel(*rootFlags.trace)
	},
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Debugf("trace level is %s", l)
}

// Execute runs the root command and reports errors on stderr.
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
