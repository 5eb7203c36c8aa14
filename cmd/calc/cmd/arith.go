package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/log"
	"github.com/pengelbrecht/calc/internal/repl"
)

var arithJSON bool

var arithCommands = []struct {
	use     string
	aliases []string
	op      calculator.Operator
	short   string
}{
	{"add", []string{"sum"}, calculator.Add, "Add two numbers"},
	{"sub", []string{"subtract"}, calculator.Subtract, "Subtract b from a"},
	{"mul", []string{"multiply"}, calculator.Multiply, "Multiply two numbers"},
	{"div", []string{"divide"}, calculator.Divide, "Divide a by b"},
}

func init() {
	for _, def := range arithCommands {
		op := def.op
		c := &cobra.Command{
			Use:     def.use + " <a> <b>",
			Aliases: def.aliases,
			Short:   def.short,
			Long: fmt.Sprintf(`%s and print the recorded history entry.

Operands are parsed as floating-point numbers. Put -- before negative
operands so they are not read as flags.

Examples:
  calc %s 8 2
  calc %s --json 8 2
  calc %s -- -8 2`, def.short, def.use, def.use, def.use),
			Args: usageArgs(cobra.ExactArgs(2)),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runArith(cmd, op, args)
			},
		}
		c.Flags().BoolVar(&arithJSON, "json", false, "output as JSON")
		rootCmd.AddCommand(c)
	}
}

func runArith(cmd *cobra.Command, op calculator.Operator, args []string) error {
	a, err := repl.ParseOperand(args[0])
	if err != nil {
		return usageError{err}
	}
	b, err := repl.ParseOperand(args[1])
	if err != nil {
		return usageError{err}
	}

	eval := newEvaluator()
	if _, err := eval.Apply(op, a, b); err != nil {
		log.Debug("operation rejected", "op", op.String(), "a", a, "b", b)
		return err
	}
	entry, _ := eval.Last()

	out := cmd.OutOrStdout()
	if arithJSON {
		data, err := settings.render.JSON(entry)
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, settings.render.Line(entry))
	return nil
}
