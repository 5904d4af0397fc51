// Package input parses bounded numbers and other values out of console lines.
package input

import (
	"strconv"
	"strings"
	"unicode"
)

// Outcome tags the result of one read attempt.
type Outcome int

const (
	InvalidInput Outcome = iota
	OutOfRange
	EndOfFile
	Pass
)

func (o Outcome) String() string {
	switch o {
	case InvalidInput:
		return "invalid input"
	case OutOfRange:
		return "out of range"
	case EndOfFile:
		return "end of file"
	case Pass:
		return "pass"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

// ReadBoundedNumber parses the run of decimal digits at the start of text
// (after leading whitespace) and checks it against [from, to]. Anything
// after the digits is ignored. No digits, a sign, or a value above 65535 is
// InvalidInput. The value is zero unless the outcome is Pass. Callers must
// pass from <= to.
func ReadBoundedNumber(text string, from, to uint16) (Outcome, uint16) {
	n, ok := parseNumber(text)
	if !ok {
		return InvalidInput, 0
	}
	if !InRange(n, from, to) {
		return OutOfRange, 0
	}
	return Pass, n
}

// InRange reports whether from <= n <= to.
func InRange(n, from, to uint16) bool {
	return n >= from && n <= to
}

func parseNumber(text string) (uint16, bool) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	end := strings.IndexFunc(text, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(text)
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseUint(text[:end], 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}
