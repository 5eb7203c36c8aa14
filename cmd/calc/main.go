package main

import (
	"io"
	"os"

	"github.com/pengelbrecht/calc/cmd/calc/cmd"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	return cmd.Execute(args, in, out, errOut)
}
