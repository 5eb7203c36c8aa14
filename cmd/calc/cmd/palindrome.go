package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/palindrome"
)

var palindromeCmd = &cobra.Command{
	Use:   "palindrome <text...>",
	Short: "Check whether text is a palindrome",
	Long: `Check whether text reads the same backwards.

By default case, accents, spaces and punctuation are ignored. Use --strict
to compare the text exactly as given.

Examples:
  calc palindrome "Anita lava la tina"
  calc palindrome --strict ana`,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: runPalindrome,
}

var (
	palindromeStrict bool
	palindromeJSON   bool
)

func init() {
	palindromeCmd.Flags().BoolVar(&palindromeStrict, "strict", false, "compare exactly, without normalization")
	palindromeCmd.Flags().BoolVar(&palindromeJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(palindromeCmd)
}

func runPalindrome(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	var ok bool
	if palindromeStrict {
		ok = palindrome.IsBasic(text)
	} else {
		ok = palindrome.Is(text)
	}

	out := cmd.OutOrStdout()
	if palindromeJSON {
		return json.NewEncoder(out).Encode(map[string]any{"text": text, "palindrome": ok, "strict": palindromeStrict})
	}
	if ok {
		fmt.Fprintf(out, "%q is a palindrome\n", text)
	} else {
		fmt.Fprintf(out, "%q is not a palindrome\n", text)
	}
	return nil
}
