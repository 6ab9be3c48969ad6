package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/mattn/sheetcalc"
	"github.com/spf13/cobra"
)

var (
	detectCycles bool
	corrected    bool
	trace        bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetcalc [file]",
	Short: "Evaluate cell formulas",
	Long: `Store integer cells and formulas and evaluate them.

Script commands:
  set <id> <value>  store an integer, a formula (=A1+A2) or text
  get <id>          print the evaluated value
  print <id>        print "<id> = <value>"
  raw <id>          print the stored value
  cells             list stored cells
  refs <id>         list the cells a formula mentions

Without a file, a terminal stdin starts an interactive prompt and a piped
stdin is run as a script.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := newEnv(cmd)
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return env.Eval(f)
		}
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return repl(env)
		}
		return env.Eval(os.Stdin)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the embedded demo sheet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sheetcalc.LoadDemo(newEnv(cmd))
	},
}

var refsCmd = &cobra.Command{
	Use:   "refs <formula>",
	Short: "List the cell identifiers evaluating a formula reads",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eval := newEnv(cmd).Sheet().Evaluator()
		refs, err := eval.References(sheetcalc.ParseValue(args[0]))
		if err != nil {
			return err
		}
		for _, ref := range refs {
			fmt.Fprintln(cmd.OutOrStdout(), ref)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&detectCycles, "detect-cycles", false, "fail on cyclic references instead of exhausting the stack")
	rootCmd.PersistentFlags().BoolVar(&corrected, "corrected", false, "evaluate with standard operator precedence")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "log every cell resolution to stderr")
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(refsCmd)
}

func newEnv(cmd *cobra.Command) *sheetcalc.Env {
	opts := []sheetcalc.Option{
		sheetcalc.WithCycleDetection(detectCycles),
	}
	if corrected {
		opts = append(opts, sheetcalc.WithMode(sheetcalc.ModeCorrected))
	}
	if trace {
		opts = append(opts, sheetcalc.WithTrace(log.New(os.Stderr, "trace: ", 0)))
	}
	env := sheetcalc.NewEnv(sheetcalc.NewSheet(opts...))
	env.SetOutput(cmd.OutOrStdout())
	return env
}

func repl(env *sheetcalc.Env) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for n := 1; ; n++ {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		c := sheetcalc.ParseLine(line)
		if c == nil {
			continue
		}
		c.Line = n
		if err := env.Exec(c); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
