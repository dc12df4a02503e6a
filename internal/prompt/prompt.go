// Package prompt reads answers to console questions one line at a time.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input ends before a valid answer was read.
var ErrNoInput = errors.New("no more input")

// Validator checks an answer. A non-empty message rejects it and is shown before asking again.
type Validator func(answer string) (message string)

// Prompter asks questions on out and reads trimmed answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line prints msg on its own line, then reads one line of input with surrounding whitespace removed.
// A final line without a newline is still returned; only a read of nothing yields ErrNoInput.
func (p *Prompter) Line(msg string) (string, error) {
	if msg != "" {
		if _, err := fmt.Fprintln(p.out, msg); err != nil {
			return "", err
		}
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrNoInput
	}
	return strings.TrimSpace(line), nil
}

// Until keeps asking msg until validate accepts the answer.
func (p *Prompter) Until(msg string, validate Validator) (string, error) {
	for {
		answer, err := p.Line(msg)
		if err != nil {
			return "", err
		}
		reject := validate(answer)
		if reject == "" {
			return answer, nil
		}
		if _, err := fmt.Fprintln(p.out, reject); err != nil {
			return "", err
		}
	}
}

// Printf writes to the prompter's output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the prompter's output.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// NonEmpty rejects blank answers with message.
func NonEmpty(message string) Validator {
	return func(answer string) string {
		if answer == "" {
			return message
		}
		return ""
	}
}
