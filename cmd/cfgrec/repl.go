package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cfgrec/earley"
	"github.com/npillmayer/cfgrec/grammar"
	"github.com/npillmayer/cfgrec/textfmt"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file path>",
		Short: "Recognize words interactively",
		Long: `repl reads a grammar and then answers for every line entered whether it is
a word of the grammar's language. If the file contains words after the grammar,
these are answered first.

Commands:
  :grammar  print the rules of the grammar as a tree
  :hash     print the fingerprint of the grammar
  :quit     leave (as does <ctrl>D)`,
		Args: cobra.ExactArgs(1),
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	input, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read the grammar file %s: %w", args[0], err)
	}
	g, err := textfmt.ReadGrammar(bytes.NewReader(input))
	if err != nil {
		return fmt.Errorf("cannot read grammar: %w", err)
	}
	initDisplay()
	pterm.Info.Println("Welcome to the cfgrec REPL") // colored welcome message
	intp := newIntp(g)
	if problem, err := textfmt.ReadProblem(bytes.NewReader(input)); err == nil {
		for _, w := range problem.Words {
			intp.answer(w)
		}
	} else {
		tracer().Debugf("no words to answer in %s: %v", args[0], err)
	}
	repl, err := readline.New("cfgrec> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Success.Prefix = pterm.Prefix{
		Text:  " YES",
		Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  NO",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object.
type Intp struct {
	grammar    *grammar.Grammar
	recognizer *earley.Recognizer
	repl       *readline.Instance
}

func newIntp(g *grammar.Grammar) *Intp {
	return &Intp{
		grammar:    g,
		recognizer: earley.NewRecognizer(g),
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input, which is either a command or a word.
// It returns true if the user wants to quit.
func (intp *Intp) Eval(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":grammar":
		pterm.Println(intp.grammar.Name)
		pterm.DefaultTree.WithRoot(grammarTree(intp.grammar)).Render()
	case ":hash":
		pterm.Info.Println(intp.grammar.Fingerprint())
	default:
		if strings.HasPrefix(line, ":") {
			pterm.Warning.Printf("unknown command %s\n", line)
			return false
		}
		intp.answer(line)
	}
	return false
}

func (intp *Intp) answer(word string) bool {
	accept := intp.recognizer.RecognizeString(word)
	if accept {
		pterm.Success.Println(word)
	} else {
		pterm.Error.Println(word)
	}
	return accept
}

// grammarTree lists every non-terminal with its right hand sides as children.
func grammarTree(g *grammar.Grammar) pterm.TreeNode {
	ll := leveledRules(g)
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledRules(g *grammar.Grammar) pterm.LeveledList {
	var ll pterm.LeveledList
	g.EachNonTerminal(func(name string, N grammar.Symbol) {
		text := name
		if N == g.Start() {
			text += " (start)"
		}
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: text})
		for _, r := range g.Rules() {
			if r.LHS != N {
				continue
			}
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: rhsString(g, r)})
		}
	})
	return ll
}

func rhsString(g *grammar.Grammar, r *grammar.Rule) string {
	if r.IsEpsilon() {
		return "ε"
	}
	names := make([]string, r.Len())
	for i, sym := range r.RHS() {
		names[i] = g.Symbols().Name(sym)
	}
	return strings.Join(names, " ")
}
