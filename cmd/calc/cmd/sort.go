package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/sorting"
)

var sortCmd = &cobra.Command{
	Use:   "sort <ints...>",
	Short: "Sort integers",
	Long: `Sort integers in ascending order with merge sort or quicksort.

Examples:
  calc sort 7 3 9 1 5
  calc sort --algo quick 7 3 9 1 5`,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: runSort,
}

var searchCmd = &cobra.Command{
	Use:   "search <target> <ints...>",
	Short: "Find an integer in a list",
	Long: `Find the index of target in a list of integers.

Linear search reports the index in the list as given. With --binary the list
is sorted first and the index refers to the sorted list.

Examples:
  calc search 20 10 50 20
  calc search --binary 8 7 3 9 1 5 8 2`,
	Args: usageArgs(cobra.MinimumNArgs(2)),
	RunE: runSearch,
}

var (
	sortAlgo     string
	sortJSON     bool
	searchBinary bool
	searchJSON   bool
)

func init() {
	sortCmd.Flags().StringVarP(&sortAlgo, "algo", "a", "merge", "algorithm: merge, quick")
	sortCmd.Flags().BoolVar(&sortJSON, "json", false, "output as JSON")
	searchCmd.Flags().BoolVarP(&searchBinary, "binary", "b", false, "sort, then binary search")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(searchCmd)
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, usageError{fmt.Errorf("invalid integer %q", a)}
		}
		out = append(out, v)
	}
	return out, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func runSort(cmd *cobra.Command, args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}

	var sorted []int
	switch strings.ToLower(sortAlgo) {
	case "merge":
		sorted = sorting.MergeSort(values)
	case "quick":
		sorted = values
		sorting.QuickSort(sorted)
	default:
		return usageError{fmt.Errorf("unknown algorithm %q (want merge or quick)", sortAlgo)}
	}

	out := cmd.OutOrStdout()
	if sortJSON {
		return json.NewEncoder(out).Encode(map[string]any{"algo": sortAlgo, "sorted": sorted})
	}
	fmt.Fprintln(out, joinInts(sorted))
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	target, list := values[0], values[1:]

	var idx int
	if searchBinary {
		list = sorting.MergeSort(list)
		idx = sorting.BinarySearch(list, target)
	} else {
		idx = sorting.LinearSearch(list, target)
	}

	out := cmd.OutOrStdout()
	if searchJSON {
		return json.NewEncoder(out).Encode(map[string]any{"target": target, "index": idx, "list": list})
	}
	if idx < 0 {
		fmt.Fprintf(out, "%d not found\n", target)
		return nil
	}
	fmt.Fprintf(out, "%d found at index %d\n", target, idx)
	return nil
}
