// Package render formats evaluator results and history for display.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/styles"
)

// EmptyHistory is printed when no operation has been recorded.
const EmptyHistory = "no operations recorded"

// Options control number formatting and styling.
type Options struct {
	// Precision is the number of decimals; -1 prints the shortest exact form.
	Precision int
	// TimestampFormat is the layout used for stamped entries.
	TimestampFormat string
	// Color enables lipgloss styling.
	Color bool
}

// DefaultOptions returns plain output with shortest number formatting.
func DefaultOptions() Options {
	return Options{Precision: -1, TimestampFormat: "2006-01-02 15:04:05"}
}

// Renderer turns entries into display strings.
type Renderer struct {
	opts Options
}

// New creates a renderer.
func New(opts Options) *Renderer {
	if opts.TimestampFormat == "" {
		opts.TimestampFormat = DefaultOptions().TimestampFormat
	}
	return &Renderer{opts: opts}
}

// FormatNumber prints v with the given number of decimals, or in its
// shortest exact form when precision is negative.
func FormatNumber(v float64, precision int) string {
	if precision < 0 {
		return calculator.FormatFloat(v)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Number formats v using the renderer's precision.
func (r *Renderer) Number(v float64) string {
	return FormatNumber(v, r.opts.Precision)
}

// Expression renders "<a> <symbol> <b>".
func (r *Renderer) Expression(e calculator.Entry) string {
	sym := e.Operator.Symbol()
	if r.opts.Color {
		sym = styles.RenderOperator(sym)
	}
	return fmt.Sprintf("%s %s %s", r.Number(e.A), sym, r.Number(e.B))
}

// Line renders one entry as "[<timestamp>] <a> <symbol> <b> = <result>".
// The timestamp prefix is present only for stamped entries.
func (r *Renderer) Line(e calculator.Entry) string {
	return r.prefix(e) + r.Expression(e) + " = " + r.result(e.Result)
}

// Result renders the outcome of a single operation.
func (r *Renderer) Result(v float64) string {
	return "Result: " + r.result(v)
}

// Error renders err for the user. Division by zero gets a fixed message.
func (r *Renderer) Error(err error) string {
	msg := "error: " + err.Error()
	if errors.Is(err, calculator.ErrDivisionByZero) {
		msg = "error: division by zero"
	}
	if r.opts.Color {
		return styles.RenderError(msg)
	}
	return msg
}

// History renders entries one per line in insertion order, each in the
// same form as Line.
func (r *Renderer) History(entries []calculator.Entry) string {
	if len(entries) == 0 {
		return r.empty()
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = r.Line(e)
	}
	return strings.Join(lines, "\n")
}

// Table renders entries numbered from 1 with the "=" signs aligned, for
// full-screen views.
func (r *Renderer) Table(entries []calculator.Entry) string {
	if len(entries) == 0 {
		return r.empty()
	}

	indexWidth := len(strconv.Itoa(len(entries)))
	exprs := make([]string, len(entries))
	exprWidth := 0
	for i, e := range entries {
		exprs[i] = r.prefix(e) + r.Expression(e)
		if w := ansi.StringWidth(exprs[i]); w > exprWidth {
			exprWidth = w
		}
	}

	var b strings.Builder
	for i, e := range entries {
		pad := exprWidth - ansi.StringWidth(exprs[i])
		fmt.Fprintf(&b, "%*d. %s%s = %s\n", indexWidth, i+1, exprs[i], strings.Repeat(" ", pad), r.result(e.Result))
	}
	return strings.TrimRight(b.String(), "\n")
}

// HistoryBlock renders the history under a header, boxed when color is on.
func (r *Renderer) HistoryBlock(entries []calculator.Entry) string {
	return r.block(r.History(entries))
}

// TableBlock is HistoryBlock with the numbered, aligned layout of Table.
func (r *Renderer) TableBlock(entries []calculator.Entry) string {
	return r.block(r.Table(entries))
}

func (r *Renderer) block(body string) string {
	header := "History:"
	if r.opts.Color {
		return styles.Box(styles.RenderHeader(header) + "\n" + body)
	}
	return header + "\n" + body
}

func (r *Renderer) empty() string {
	if r.opts.Color {
		return styles.RenderDim(EmptyHistory)
	}
	return EmptyHistory
}

// JSON encodes an entry with its plain-text rendering added as "expression".
func (r *Renderer) JSON(e calculator.Entry) ([]byte, error) {
	plain := *r
	plain.opts.Color = false

	var fields map[string]json.RawMessage
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	expr, err := json.Marshal(plain.Line(e))
	if err != nil {
		return nil, err
	}
	fields["expression"] = expr
	return json.Marshal(fields)
}

func (r *Renderer) result(v float64) string {
	s := r.Number(v)
	if r.opts.Color {
		return styles.RenderResult(s)
	}
	return s
}

func (r *Renderer) prefix(e calculator.Entry) string {
	if e.Timestamp == nil {
		return ""
	}
	ts := "[" + e.Timestamp.Format(r.opts.TimestampFormat) + "] "
	if r.opts.Color {
		return styles.RenderDim(ts)
	}
	return ts
}
