package input

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Prompter reads one line per request from in and writes prompts and
// validation messages to out.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	err    error
}

// NewPrompter returns a Prompter over in and out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Err returns the first non-EOF read error, if any.
func (p *Prompter) Err() error {
	return p.err
}

// ReadLine prints prompt (when non-empty) and returns the next line, of any
// length. ok is false once the input is exhausted or a read fails.
func (p *Prompter) ReadLine(prompt string) (line string, ok bool) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	if p.err != nil {
		return "", false
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			p.err = err
		}
		if line == "" || err != io.EOF {
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

// ReadNumber re-prompts until a number in [from, to] is entered. The
// outcome is Pass or EndOfFile.
func (p *Prompter) ReadNumber(prompt string, from, to uint16) (uint16, Outcome) {
	for {
		line, ok := p.ReadLine(prompt)
		if !ok {
			return 0, EndOfFile
		}
		outcome, n := ReadBoundedNumber(line, from, to)
		switch outcome {
		case InvalidInput:
			fmt.Fprintf(p.out, "Please enter a valid number from %d to %d\n\n", from, to)
		case OutOfRange:
			fmt.Fprintf(p.out, "Please enter a number within the range %d to %d\n\n", from, to)
		default:
			return n, outcome
		}
	}
}

// ReadText re-prompts until a non-blank line is entered and returns it trimmed.
func (p *Prompter) ReadText(prompt string) (string, bool) {
	for {
		line, ok := p.ReadLine(prompt)
		if !ok {
			return "", false
		}
		if s := strings.TrimSpace(line); s != "" {
			return s, true
		}
		fmt.Fprintln(p.out, "Value must not be empty.")
	}
}

// ReadFloat re-prompts until a decimal number is entered.
func (p *Prompter) ReadFloat(prompt string) (float64, bool) {
	for {
		line, ok := p.ReadLine(prompt)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, true
		}
		fmt.Fprintln(p.out, "Please enter a valid amount.")
	}
}

// Confirm asks a yes/no question; anything starting with y or Y is yes.
func (p *Prompter) Confirm(prompt string) (yes bool, ok bool) {
	line, ok := p.ReadLine(prompt)
	if !ok {
		return false, false
	}
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, "y") || strings.HasPrefix(line, "Y"), true
}
