package output

import (
	"encoding/json"
	"os"

	"github.com/daryltucker/client-data/internal/model"
)

// JSONWriter handles writing clients to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single client as a JSON line.
func (jw *JSONWriter) Write(c model.Client) error {
	return jw.encoder.Encode(c)
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}
