package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/pengelbrecht/calc/internal/calculator"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		v         float64
		precision int
		want      string
	}{
		{5, -1, "5"},
		{0.1 + 0.2, -1, "0.30000000000000004"},
		{2.5, -1, "2.5"},
		{2.5, 0, "2"},
		{1.0 / 3.0, 2, "0.33"},
		{-4, 1, "-4.0"},
		{1e6, -1, "1000000"},
		{123456789.25, -1, "123456789.25"},
		{0.000125, -1, "0.000125"},
		{1e21, -1, "1e+21"},
		{1.5e-7, -1, "1.5e-07"},
		{math.Inf(1), -1, "+Inf"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.v, tc.precision); got != tc.want {
			t.Errorf("FormatNumber(%v, %d) = %q, want %q", tc.v, tc.precision, got, tc.want)
		}
	}
}

func TestLine(t *testing.T) {
	r := New(DefaultOptions())
	e := calculator.Entry{Operator: calculator.Add, A: 2, B: 3, Result: 5}
	if got := r.Line(e); got != "2 + 3 = 5" {
		t.Fatalf("Line = %q", got)
	}

	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	e.Timestamp = &ts
	if got := r.Line(e); got != "[2024-05-06 07:08:09] 2 + 3 = 5" {
		t.Fatalf("stamped Line = %q", got)
	}

	short := New(Options{Precision: -1, TimestampFormat: "15:04"})
	if got := short.Line(e); got != "[07:08] 2 + 3 = 5" {
		t.Fatalf("custom format Line = %q", got)
	}
}

func TestHistory(t *testing.T) {
	r := New(DefaultOptions())
	if got := r.History(nil); got != EmptyHistory {
		t.Fatalf("empty history = %q", got)
	}

	e := calculator.New()
	e.Add(2, 3)
	e.Subtract(10, 4)
	e.Multiply(1.5, 100)
	_, _ = e.Divide(8, 2)

	got := r.History(e.History())
	want := strings.Join([]string{
		"2 + 3 = 5",
		"10 - 4 = 6",
		"1.5 * 100 = 150",
		"8 / 2 = 4",
	}, "\n")
	if got != want {
		t.Fatalf("History =\n%s\nwant\n%s", got, want)
	}

	got = r.Table(e.History())
	want = strings.Join([]string{
		"1. 2 + 3     = 5",
		"2. 10 - 4    = 6",
		"3. 1.5 * 100 = 150",
		"4. 8 / 2     = 4",
	}, "\n")
	if got != want {
		t.Fatalf("Table =\n%s\nwant\n%s", got, want)
	}
	if r.Table(nil) != EmptyHistory {
		t.Fatalf("empty table = %q", r.Table(nil))
	}
}

func TestHistoryStampedLines(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	e := calculator.New(calculator.WithClock(func() time.Time { return ts }))
	e.Multiply(1000, 1000)

	got := New(DefaultOptions()).HistoryBlock(e.History())
	want := "History:\n[2024-05-06 07:08:09] 1000 * 1000 = 1000000"
	if got != want {
		t.Fatalf("HistoryBlock = %q, want %q", got, want)
	}
}

func TestTableWideIndex(t *testing.T) {
	e := calculator.New()
	for i := 0; i < 10; i++ {
		e.Add(float64(i), 1)
	}
	lines := strings.Split(New(DefaultOptions()).Table(e.History()), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], " 1. ") || !strings.HasPrefix(lines[9], "10. ") {
		t.Fatalf("index column not aligned: %q / %q", lines[0], lines[9])
	}
}

func TestColorOutputStripsToPlain(t *testing.T) {
	colored := New(Options{Precision: -1, Color: true})
	plain := New(DefaultOptions())

	e := calculator.New()
	e.Add(2, 3)
	e.Multiply(12, 12)

	if got, want := ansi.Strip(colored.History(e.History())), plain.History(e.History()); got != want {
		t.Fatalf("stripped colored history %q != plain %q", got, want)
	}
	if got, want := ansi.Strip(colored.Table(e.History())), plain.Table(e.History()); got != want {
		t.Fatalf("stripped colored table %q != plain %q", got, want)
	}
}

func TestError(t *testing.T) {
	r := New(DefaultOptions())
	wrapped := fmt.Errorf("divide: %w", calculator.ErrDivisionByZero)
	if got := r.Error(wrapped); got != "error: division by zero" {
		t.Fatalf("Error = %q", got)
	}
	if got := r.Error(errors.New("bad input")); got != "error: bad input" {
		t.Fatalf("Error = %q", got)
	}
}

func TestJSON(t *testing.T) {
	r := New(Options{Precision: 2, Color: true})
	data, err := r.JSON(calculator.Entry{Operator: calculator.Divide, A: 1, B: 3, Result: 1.0 / 3.0})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload["operator"] != "divide" {
		t.Fatalf("expected operator divide, got %v", payload["operator"])
	}
	if payload["expression"] != "1.00 / 3.00 = 0.33" {
		t.Fatalf("unexpected expression %v", payload["expression"])
	}
	if _, ok := payload["timestamp"]; ok {
		t.Fatalf("timestamp should be omitted when unset")
	}
}

func TestJSONNonFiniteResult(t *testing.T) {
	e := calculator.New()
	e.Multiply(1e308, 10)
	entry, _ := e.Last()

	data, err := New(DefaultOptions()).JSON(entry)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload["result"] != "+Inf" {
		t.Fatalf("expected result \"+Inf\", got %v", payload["result"])
	}
	if payload["a"] != 1e308 {
		t.Fatalf("expected finite operand kept as a number, got %v", payload["a"])
	}
	if payload["expression"] != "1e+308 * 10 = +Inf" {
		t.Fatalf("unexpected expression %v", payload["expression"])
	}
}
