// Package repl implements the menu-driven line front-end for the evaluator.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/log"
	"github.com/pengelbrecht/calc/internal/render"
)

// Menu is printed before every prompt.
const Menu = "1) add  2) subtract  3) multiply  4) divide  5) history  6) exit"

// ErrInvalidNumber is returned by ParseOperand for text that is not a
// finite number.
var ErrInvalidNumber = errors.New("invalid number")

// Session runs one interactive loop over a single evaluator.
type Session struct {
	In     io.Reader
	Out    io.Writer
	Eval   *calculator.Evaluator
	Render *render.Renderer

	input *lineReader
}

// lineReader carries lines scanned from the session input. err is set
// before lines is closed.
type lineReader struct {
	lines chan string
	err   error
}

type action int

const (
	actionInvalid action = iota
	actionOperate
	actionHistory
	actionExit
)

// parseChoice maps a menu answer to an action.
func parseChoice(s string) (action, calculator.Operator) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "1":
		return actionOperate, calculator.Add
	case "2":
		return actionOperate, calculator.Subtract
	case "3":
		return actionOperate, calculator.Multiply
	case "4":
		return actionOperate, calculator.Divide
	case "5", "h", "history":
		return actionHistory, 0
	case "6", "q", "quit", "exit":
		return actionExit, 0
	}
	if op, err := calculator.ParseOperator(s); err == nil {
		return actionOperate, op
	}
	return actionInvalid, 0
}

// ParseOperand parses user text as a finite float64.
func ParseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, strings.TrimSpace(s))
	}
	return v, nil
}

// Run drives the loop until the user exits, input ends, or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	if s.Eval == nil {
		s.Eval = calculator.New()
	}
	if s.Render == nil {
		s.Render = render.New(render.DefaultOptions())
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.startReader(ctx)

	for {
		if ctx.Err() != nil {
			return nil
		}

		s.println("")
		s.println(Menu)
		line, ok := s.prompt(ctx, "Option: ")
		if !ok {
			return s.stopErr(ctx)
		}

		act, op := parseChoice(line)
		switch act {
		case actionExit:
			s.println("Goodbye!")
			return nil
		case actionHistory:
			s.println(s.Render.HistoryBlock(s.Eval.History()))
		case actionOperate:
			if !s.operate(ctx, op) {
				return s.stopErr(ctx)
			}
		default:
			s.println("invalid option")
		}
	}
}

// operate collects two operands and applies op. It returns false when the
// input ended or ctx was cancelled before both operands were read.
func (s *Session) operate(ctx context.Context, op calculator.Operator) bool {
	a, ok := s.readOperand(ctx, "First number: ")
	if !ok {
		return false
	}
	b, ok := s.readOperand(ctx, "Second number: ")
	if !ok {
		return false
	}

	result, err := s.Eval.Apply(op, a, b)
	if err != nil {
		log.Warn("operation rejected", "op", op.String(), "a", a, "b", b, "err", err)
		s.println(s.Render.Error(err))
		return true
	}
	log.Debug("operation recorded", "op", op.String(), "a", a, "b", b, "result", result, "history", s.Eval.Len())
	s.println(s.Render.Result(result))
	return true
}

// readOperand re-prompts until a finite number is entered.
func (s *Session) readOperand(ctx context.Context, label string) (float64, bool) {
	for ctx.Err() == nil {
		line, ok := s.prompt(ctx, label)
		if !ok {
			return 0, false
		}
		v, err := ParseOperand(line)
		if err != nil {
			s.println("invalid number, try again")
			continue
		}
		return v, true
	}
	return 0, false
}

// startReader scans In on its own goroutine so a blocked read never
// delays cancellation. Once ctx is done no further lines are delivered.
func (s *Session) startReader(ctx context.Context) {
	r := &lineReader{lines: make(chan string)}
	s.input = r
	go func() {
		defer close(r.lines)
		scanner := bufio.NewScanner(s.In)
		for scanner.Scan() {
			select {
			case r.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		r.err = scanner.Err()
	}()
}

// prompt prints label and waits for the next line. It returns false when
// input has ended or ctx is cancelled.
func (s *Session) prompt(ctx context.Context, label string) (string, bool) {
	fmt.Fprint(s.Out, label)
	select {
	case line, ok := <-s.input.lines:
		if !ok {
			s.println("")
			return "", false
		}
		return line, true
	case <-ctx.Done():
		s.println("")
		return "", false
	}
}

// stopErr reports why the loop stopped early. Cancellation is a clean exit;
// otherwise lines has been closed and the scan error is safe to read.
func (s *Session) stopErr(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	return s.input.err
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.Out, line)
}
