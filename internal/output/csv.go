/*
PURPOSE:
  Writes client records to a standard comma-separated CSV file.
  Used by the export command; the data file itself uses its own separator.

REQUIREMENTS:
  User-specified:
  - Export clients to a file spreadsheet tools can open.

  Implementation-discovered:
  - Names may contain commas or quotes, so encoding/csv handles quoting.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (export)
  - Consumes: internal/model.Client

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.
  - Balances keep full precision, as in the data file.

USAGE:
  w, err := output.NewCSVWriter("clients_export.csv")
  w.Write(client)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If CSV format changes, update header and record conversion.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Write() mapping when Client struct changes.
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/daryltucker/client-data/internal/model"
)

// CSVHeader is the first row of every exported CSV file.
var CSVHeader = []string{"account_number", "pin_code", "name", "phone", "balance"}

// CSVWriter handles writing clients to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single client to the CSV file.
func (cw *CSVWriter) Write(c model.Client) error {
	record := []string{
		c.AccountNumber,
		c.PinCode,
		c.Name,
		c.Phone,
		strconv.FormatFloat(c.Balance, 'f', -1, 64),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	if err := cw.writer.Error(); err != nil {
		cw.file.Close()
		return err
	}
	return cw.file.Close()
}
