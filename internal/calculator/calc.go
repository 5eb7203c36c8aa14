// Package calculator provides basic arithmetic operations and an
// append-only history of the operations performed.
package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrUnknownOperator is returned when an operator name cannot be resolved.
var ErrUnknownOperator = errors.New("unknown operator")

// Operator identifies one of the four binary operations.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

// Operators lists all operators in menu order.
var Operators = []Operator{Add, Subtract, Multiply, Divide}

// String returns the operator name.
func (o Operator) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "unknown"
	}
}

// Symbol returns the infix symbol used when rendering history.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// Valid reports whether o is one of the four known operators.
func (o Operator) Valid() bool {
	return o >= Add && o <= Divide
}

// MarshalText encodes the operator by name.
func (o Operator) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperator, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText decodes an operator from any form ParseOperator accepts.
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// ParseOperator resolves names, symbols and short aliases.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "sum", "plus", "+":
		return Add, nil
	case "subtract", "sub", "minus", "-":
		return Subtract, nil
	case "multiply", "mul", "times", "x", "*":
		return Multiply, nil
	case "divide", "div", "/":
		return Divide, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
}

// Entry records one successfully completed operation.
// Timestamp is nil unless the evaluator was built with a clock.
type Entry struct {
	Operator  Operator   `json:"operator"`
	A         float64    `json:"a"`
	B         float64    `json:"b"`
	Result    float64    `json:"result"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// String renders the entry as "<a> <symbol> <b> = <result>".
func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s = %s",
		FormatFloat(e.A), e.Operator.Symbol(), FormatFloat(e.B), FormatFloat(e.Result))
}

// FormatFloat prints v in plain decimal notation, switching to exponent
// form only for magnitudes outside [1e-6, 1e21) and for non-finite values.
func FormatFloat(v float64) string {
	if abs := math.Abs(v); v == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// entryJSON is the wire form of Entry.
type entryJSON struct {
	Operator  Operator   `json:"operator"`
	A         jsonFloat  `json:"a"`
	B         jsonFloat  `json:"b"`
	Result    jsonFloat  `json:"result"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// MarshalJSON encodes the entry. Infinite or NaN values, which JSON numbers
// cannot hold, are written as the strings "+Inf", "-Inf" and "NaN".
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		Operator:  e.Operator,
		A:         jsonFloat(e.A),
		B:         jsonFloat(e.B),
		Result:    jsonFloat(e.Result),
		Timestamp: e.Timestamp,
	})
}

// UnmarshalJSON accepts what MarshalJSON produces.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var w entryJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = Entry{
		Operator:  w.Operator,
		A:         float64(w.A),
		B:         float64(w.B),
		Result:    float64(w.Result),
		Timestamp: w.Timestamp,
	}
	return nil
}

type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return json.Marshal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return json.Marshal(v)
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", s, err)
		}
		*f = jsonFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = jsonFloat(v)
	return nil
}
