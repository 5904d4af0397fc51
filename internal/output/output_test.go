package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daryltucker/client-data/internal/model"
)

var clients = []model.Client{
	{AccountNumber: "A100", PinCode: "1111", Name: "Smith, Alice", Phone: "0790000001", Balance: 2500.75},
	{AccountNumber: "B200", PinCode: "2222", Name: `Bob "BJ" Jones`, Phone: "0790000002", Balance: 10},
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	for _, c := range clients {
		require.NoError(t, w.Write(c))
	}
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	require.Equal(t, CSVHeader, rows[0])
	require.Equal(t, []string{"A100", "1111", "Smith, Alice", "0790000001", "2500.75"}, rows[1])
	require.Equal(t, []string{"B200", "2222", `Bob "BJ" Jones`, "0790000002", "10"}, rows[2])
}

func TestCSVWriter_KeepsBalancePrecision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(model.Client{AccountNumber: "C300", Balance: 0.125}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "C300,,,,0.125\n")
}

func TestJSONWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.jsonl")
	w, err := NewJSONWriter(path)
	require.NoError(t, err)
	for _, c := range clients {
		require.NoError(t, w.Write(c))
	}
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var got model.Client
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	require.Equal(t, clients[0], got)
	require.Contains(t, lines[1], `"account_number":"B200"`)
}

func TestNewWriter(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWriter("CSV", filepath.Join(dir, "a.csv"))
	require.NoError(t, err)
	require.IsType(t, &CSVWriter{}, w)
	require.NoError(t, w.Close())

	w, err = NewWriter("json", filepath.Join(dir, "a.jsonl"))
	require.NoError(t, err)
	require.IsType(t, &JSONWriter{}, w)
	require.NoError(t, w.Close())

	_, err = NewWriter("xml", filepath.Join(dir, "a.xml"))
	require.ErrorContains(t, err, "unsupported export format")
}

func TestConfigure(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	require.NoError(t, Configure("info", "json", &buf))
	Logger.Debug("hidden")
	Logger.Info("shown", "key", "value")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	require.Error(t, Configure("loud", "text", &buf))
	require.Error(t, Configure("info", "xml", &buf))
}

func TestSetLogger(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger.Info("hello")

	require.Contains(t, buf.String(), "msg=hello")
}
