package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen interactive calculator",
	Long: `Start the full-screen interactive calculator.

Keys:
  ↑/↓ or k/j   select an item
  enter        confirm
  + - * /      jump straight to an operation
  tab          switch operand field
  h            show history
  esc          back
  q, ctrl+c    quit`,
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(newEvaluator(), settings.render)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
