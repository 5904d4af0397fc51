package records

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/daryltucker/client-data/internal/model"
)

// Field order of one record line.
const (
	fieldAccount = iota
	fieldPin
	fieldName
	fieldPhone
	fieldBalance
	fieldCount
)

var (
	ErrMalformedRecord = errors.New("malformed client record")
	ErrInvalidField    = errors.New("invalid client field")
)

// SplitRecord cuts line at every separator found by FindAll.
func SplitRecord(line, sep string) []string {
	offsets := FindAll(line, sep)
	fields := make([]string, 0, len(offsets)+1)
	start := 0
	for _, off := range offsets {
		fields = append(fields, line[start:off])
		start = off + len(sep)
	}
	return append(fields, line[start:])
}

// ParseRecord decodes one line of the data file.
func ParseRecord(line, sep string) (model.Client, error) {
	fields := SplitRecord(line, sep)
	if len(fields) != fieldCount {
		return model.Client{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, fieldCount, len(fields))
	}
	balance, err := strconv.ParseFloat(strings.TrimSpace(fields[fieldBalance]), 64)
	if err != nil {
		return model.Client{}, fmt.Errorf("%w: balance %q is not a number", ErrMalformedRecord, fields[fieldBalance])
	}
	return model.Client{
		AccountNumber: fields[fieldAccount],
		PinCode:       fields[fieldPin],
		Name:          fields[fieldName],
		Phone:         fields[fieldPhone],
		Balance:       balance,
	}, nil
}

// FormatRecord encodes c as one line of the data file, without terminator.
func FormatRecord(c model.Client, sep string) string {
	fields := make([]string, fieldCount)
	fields[fieldAccount] = c.AccountNumber
	fields[fieldPin] = c.PinCode
	fields[fieldName] = c.Name
	fields[fieldPhone] = c.Phone
	fields[fieldBalance] = strconv.FormatFloat(c.Balance, 'f', -1, 64)
	return strings.Join(fields, sep)
}

// CheckClient rejects values that FormatRecord could not round-trip.
func CheckClient(c model.Client, sep string) error {
	named := []struct{ name, value string }{
		{"account number", c.AccountNumber},
		{"pin code", c.PinCode},
		{"name", c.Name},
		{"phone", c.Phone},
	}
	for _, f := range named {
		switch {
		case strings.TrimSpace(f.value) == "" && f.name == "account number":
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidField, f.name)
		case strings.Contains(f.value, sep):
			return fmt.Errorf("%w: %s must not contain %q", ErrInvalidField, f.name, sep)
		case strings.ContainsAny(f.value, "\r\n"):
			return fmt.Errorf("%w: %s must not contain line breaks", ErrInvalidField, f.name)
		}
	}
	return nil
}
