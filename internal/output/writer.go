package output

import (
	"fmt"
	"strings"

	"github.com/daryltucker/client-data/internal/model"
)

// ClientWriter is implemented by CSVWriter and JSONWriter.
type ClientWriter interface {
	Write(c model.Client) error
	Close() error
}

// NewWriter opens a writer for format "csv" or "json" at path.
func NewWriter(format, path string) (ClientWriter, error) {
	switch strings.ToLower(format) {
	case "csv":
		w, err := NewCSVWriter(path)
		if err != nil {
			return nil, err
		}
		return w, nil
	case "json", "jsonl":
		w, err := NewJSONWriter(path)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q (want csv or json)", format)
	}
}
