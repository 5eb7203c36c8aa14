package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/fibonacci"
)

var fibCmd = &cobra.Command{
	Use:   "fib <n>",
	Short: "Compute Fibonacci numbers",
	Long: `Compute the n-th Fibonacci number, or the whole sequence up to it.

F(0) = 0, F(1) = 1. n must be between 0 and 93 so the value fits in 64 bits.

Examples:
  calc fib 50
  calc fib 10 --sequence
  calc fib 90 --method memo`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: runFib,
}

var (
	fibMethod   string
	fibSequence bool
	fibJSON     bool
)

func init() {
	fibCmd.Flags().StringVarP(&fibMethod, "method", "m", "fast", "algorithm: iterative, fast, memo")
	fibCmd.Flags().BoolVarP(&fibSequence, "sequence", "s", false, "print F(0) through F(n)")
	fibCmd.Flags().BoolVar(&fibJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(fibCmd)
}

func runFib(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return usageError{fmt.Errorf("invalid n %q: must be an integer", args[0])}
	}

	var fn func(int) (uint64, error)
	switch strings.ToLower(fibMethod) {
	case "iterative":
		fn = fibonacci.Iterative
	case "fast":
		fn = fibonacci.Fast
	case "memo":
		fn = fibonacci.NewMemo().Get
	default:
		return usageError{fmt.Errorf("unknown method %q (want iterative, fast or memo)", fibMethod)}
	}

	out := cmd.OutOrStdout()

	if fibSequence {
		seq, err := fibonacci.Sequence(n)
		if err != nil {
			return usageError{err}
		}
		if fibJSON {
			return json.NewEncoder(out).Encode(map[string]any{"n": n, "sequence": seq})
		}
		parts := make([]string, len(seq))
		for i, v := range seq {
			parts[i] = strconv.FormatUint(v, 10)
		}
		fmt.Fprintln(out, strings.Join(parts, ", "))
		return nil
	}

	v, err := fn(n)
	if err != nil {
		return usageError{err}
	}
	if fibJSON {
		return json.NewEncoder(out).Encode(map[string]any{"n": n, "value": v, "method": fibMethod})
	}
	fmt.Fprintf(out, "F(%d) = %d\n", n, v)
	return nil
}
