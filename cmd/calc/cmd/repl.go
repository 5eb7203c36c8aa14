package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the line-based menu",
	Long: `Start the line-based menu.

Pick an operation by number or symbol, enter two numbers, and the result is
printed and added to the session history. Option 5 (or h) prints the history,
option 6 (or q) exits. The history lives only as long as the session.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	session := &repl.Session{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Eval:   newEvaluator(),
		Render: settings.render,
	}
	return session.Run(ctx)
}
