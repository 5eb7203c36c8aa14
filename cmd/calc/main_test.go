package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pengelbrecht/calc/cmd/calc/cmd"
)

// isolate points config lookups at a temp dir so the user's files are never read.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("CALC_CONFIG", filepath.Join(dir, "config.json"))
	t.Setenv("CALC_LOG_LEVEL", "")
	t.Setenv("CALC_TIMESTAMPS", "")
	return dir
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestArithmeticCommands(t *testing.T) {
	isolate(t)

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"add", "2", "3"}, "2 + 3 = 5"},
		{[]string{"sub", "10", "4"}, "10 - 4 = 6"},
		{[]string{"mul", "1.5", "4"}, "1.5 * 4 = 6"},
		{[]string{"div", "8", "2"}, "8 / 2 = 4"},
		{[]string{"subtract", "--", "-3", "4"}, "-3 - 4 = -7"},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, errOut, code := runCLI(t, "", append([]string{"--no-color"}, tc.args...)...)
			if code != cmd.ExitSuccess {
				t.Fatalf("exit %d, stderr: %s", code, errOut)
			}
			if strings.TrimSpace(out) != tc.want {
				t.Fatalf("got %q, want %q", strings.TrimSpace(out), tc.want)
			}
		})
	}
}

func TestDivideByZeroExitCode(t *testing.T) {
	isolate(t)

	out, errOut, code := runCLI(t, "", "--no-color", "div", "8", "0")
	if code != cmd.ExitError {
		t.Fatalf("expected exit %d, got %d", cmd.ExitError, code)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
	if !strings.Contains(errOut, "error: division by zero") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestUsageErrors(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{
		{"add", "1"},
		{"add", "one", "2"},
		{"fib", "x"},
		{"fib", "-m", "slow", "3"},
		{"add", "--bogus", "1", "2"},
		{"nope"},
	} {
		_, _, code := runCLI(t, "", args...)
		if code != cmd.ExitUsage {
			t.Errorf("%v: expected exit %d, got %d", args, cmd.ExitUsage, code)
		}
	}
}

func TestArithmeticJSON(t *testing.T) {
	isolate(t)

	out, errOut, code := runCLI(t, "", "--timestamps", "mul", "--json", "6", "7")
	if code != cmd.ExitSuccess {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("parse json: %v (%q)", err, out)
	}
	if payload["operator"] != "multiply" || payload["result"] != float64(42) {
		t.Fatalf("unexpected payload %v", payload)
	}
	if _, ok := payload["timestamp"]; !ok {
		t.Fatalf("expected timestamp with --timestamps")
	}

	// Flags must not leak into the next invocation.
	out, _, _ = runCLI(t, "", "--no-color", "mul", "6", "7")
	if strings.TrimSpace(out) != "6 * 7 = 42" {
		t.Fatalf("expected plain output after json run, got %q", out)
	}
}

func TestArithmeticJSONOverflow(t *testing.T) {
	isolate(t)

	out, errOut, code := runCLI(t, "", "mul", "--json", "1e308", "10")
	if code != cmd.ExitSuccess {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("parse json: %v (%q)", err, out)
	}
	if payload["result"] != "+Inf" || payload["expression"] != "1e+308 * 10 = +Inf" {
		t.Fatalf("unexpected payload %v", payload)
	}

	out, _, code = runCLI(t, "", "--no-color", "mul", "1000", "1000")
	if code != cmd.ExitSuccess || strings.TrimSpace(out) != "1000 * 1000 = 1000000" {
		t.Fatalf("unexpected plain output %q (code %d)", out, code)
	}
}

func TestReplSession(t *testing.T) {
	isolate(t)

	input := "1\n2\n3\n4\n8\n0\nh\nq\n"
	out, errOut, code := runCLI(t, input, "--no-color", "repl")
	if code != cmd.ExitSuccess {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	for _, want := range []string{"Result: 5", "error: division by zero", "History:\n2 + 3 = 5\n", "Goodbye!"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "8 / 0") {
		t.Errorf("failed division must not appear in history:\n%s", out)
	}

	// The bare command starts the same menu.
	out, _, code = runCLI(t, "q\n", "--no-color")
	if code != cmd.ExitSuccess || !strings.Contains(out, "Goodbye!") {
		t.Fatalf("bare calc should run the menu, code=%d out=%q", code, out)
	}
}

func TestExerciseCommands(t *testing.T) {
	isolate(t)

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"fib", "50"}, "F(50) = 12586269025"},
		{[]string{"fib", "--method", "iterative", "10"}, "F(10) = 55"},
		{[]string{"fib", "-s", "6"}, "0, 1, 1, 2, 3, 5, 8"},
		{[]string{"palindrome", "Ánita", "lava", "la", "tina"}, `"Ánita lava la tina" is a palindrome`},
		{[]string{"palindrome", "--strict", "Ana"}, `"Ana" is not a palindrome`},
		{[]string{"sort", "7", "3", "9", "1"}, "1 3 7 9"},
		{[]string{"sort", "--algo", "quick", "5", "2", "2"}, "2 2 5"},
		{[]string{"search", "20", "10", "50", "20"}, "20 found at index 2"},
		{[]string{"search", "--binary", "8", "7", "3", "9", "1", "5", "8", "2"}, "8 found at index 5"},
		{[]string{"search", "4", "1", "2"}, "4 not found"},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, errOut, code := runCLI(t, "", tc.args...)
			if code != cmd.ExitSuccess {
				t.Fatalf("exit %d: %s", code, errOut)
			}
			if strings.TrimSpace(out) != tc.want {
				t.Fatalf("got %q, want %q", strings.TrimSpace(out), tc.want)
			}
		})
	}

	if _, _, code := runCLI(t, "", "fib", "94"); code != cmd.ExitUsage {
		t.Fatalf("expected usage exit for overflow, got %d", code)
	}
}

func TestConfigWorkflow(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.json")

	out, errOut, code := runCLI(t, "", "config", "init")
	if code != cmd.ExitSuccess {
		t.Fatalf("config init exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("expected path in output, got %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if _, _, code := runCLI(t, "", "config", "init"); code != cmd.ExitError {
		t.Fatalf("expected second init to fail without --force, got %d", code)
	}
	if _, _, code := runCLI(t, "", "config", "init", "--force"); code != cmd.ExitSuccess {
		t.Fatalf("expected init --force to succeed, got %d", code)
	}

	if err := os.WriteFile(path, []byte(`{"display":{"precision":2,"color":false}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, _, code = runCLI(t, "", "div", "1", "3")
	if code != cmd.ExitSuccess || strings.TrimSpace(out) != "1.00 / 3.00 = 0.33" {
		t.Fatalf("precision not applied, code=%d out=%q", code, out)
	}

	out, _, code = runCLI(t, "", "config", "show")
	if code != cmd.ExitSuccess {
		t.Fatalf("config show exit %d", code)
	}
	var shown map[string]any
	if err := json.Unmarshal([]byte(out), &shown); err != nil {
		t.Fatalf("parse config show: %v", err)
	}
	if shown["precision"] != float64(2) || shown["color"] != false {
		t.Fatalf("unexpected config show output %v", shown)
	}

	if err := os.WriteFile(path, []byte(`{"version":9}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, code := runCLI(t, "", "add", "1", "1"); code != cmd.ExitError {
		t.Fatalf("expected invalid config to fail, got %d", code)
	}
	if _, _, code := runCLI(t, "", "config", "init", "--force"); code != cmd.ExitSuccess {
		t.Fatalf("config init must work with a broken config, got %d", code)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, _, code := runCLI(t, "", "version")
	if code != cmd.ExitSuccess || strings.TrimSpace(out) != "calc "+cmd.Version {
		t.Fatalf("unexpected version output %q (code %d)", out, code)
	}
}
