package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/cfgrec/textfmt"
	"github.com/spf13/cobra"
)

var checkFlags = struct {
	file     *string
	parallel *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Answer YES or NO for every word of a problem",
		Long: `check reads a grammar followed by a list of words and prints one line
per word: YES if the word is derivable from the start symbol, NO otherwise.`,
		Example: `  cat problem.txt | cfgrec check
  cfgrec check --file problem.txt --parallel 4`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
	checkFlags.file = cmd.Flags().StringP("file", "f", "", "problem file path (default stdin)")
	checkFlags.parallel = cmd.Flags().IntP("parallel", "p", 1, "number of words to recognize concurrently")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if *checkFlags.file != "" {
		f, err := os.Open(*checkFlags.file)
		if err != nil {
			return fmt.Errorf("cannot open the problem file %s: %w", *checkFlags.file, err)
		}
		defer f.Close()
		in = f
	}
	problem, err := textfmt.ReadProblem(in)
	if err != nil {
		return fmt.Errorf("cannot read problem: %w", err)
	}
	tracer().Infof("grammar has %d rules, %d words to check", problem.Grammar.Size(), len(problem.Words))
	answers, err := problem.Answers(cmd.Context(), *checkFlags.parallel)
	if err != nil {
		return err
	}
	return textfmt.WriteAnswers(cmd.OutOrStdout(), answers)
}
