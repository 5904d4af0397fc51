package cli

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const seed = "A100#//#1111#//#Alice Smith#//#0790000001#//#2500.75\n" +
	"B200#//#2222#//#Bob Jones#//#0790000002#//#10\n"

// execute runs the root command with args and stdin, resetting package
// flag state afterwards.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile, rootDir, logLevel = "", "", ""
		byName = false
		exportFormat, exportPath = "csv", ""
	})

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func seedRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data", "clients.csv"), []byte(seed), 0644))
	return root
}

func TestInit_CreatesDataFile(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "", "init", "--root", root)

	require.NoError(t, err)
	want := filepath.Join(root, "data", "clients.csv")
	require.Equal(t, want+"\n", out)
	require.FileExists(t, want)
}

func TestInit_UsesEnvRoot(t *testing.T) {
	root := t.TempDir()
	t.Setenv("CLIENT_DATA_ROOT", root)

	_, err := execute(t, "", "init")

	require.NoError(t, err)
	require.FileExists(t, filepath.Join(root, "data", "clients.csv"))
}

func TestInit_ConfigFileRenamesData(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "client_data.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("data_dir: records\noriginal_file: people.csv\n"), 0644))

	_, err := execute(t, "", "init", "--root", root, "--config", cfgPath)

	require.NoError(t, err)
	require.FileExists(t, filepath.Join(root, "records", "people.csv"))
}

func TestRoot_InteractiveSession(t *testing.T) {
	root := seedRoot(t)

	out, err := execute(t, "1\n\n6\n", "--root", root)

	require.NoError(t, err)
	require.Contains(t, out, "Client List (2) Client(s).")
	require.Contains(t, out, "Program ends :-)")
}

func TestRoot_PathConflictIsError(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data", "clients.csv"), 0755))

	_, err := execute(t, "6\n", "--root", root)

	require.ErrorContains(t, err, "path is occupied")
}

func TestList(t *testing.T) {
	root := seedRoot(t)

	out, err := execute(t, "", "list", "--root", root)

	require.NoError(t, err)
	require.Contains(t, out, "Alice Smith")
	require.Contains(t, out, "Bob Jones")
}

func TestFind(t *testing.T) {
	root := seedRoot(t)

	out, err := execute(t, "", "find", "A100", "--root", root)
	require.NoError(t, err)
	require.Contains(t, out, "Name          : Alice Smith")

	out, err = execute(t, "", "find", "B20", "--root", root)
	require.NoError(t, err)
	require.Contains(t, out, "Did you mean (B200)?")

	out, err = execute(t, "", "find", "--name", "jones", "--root", root)
	require.NoError(t, err)
	require.Contains(t, out, "Client List (1) Client(s).")
	require.Contains(t, out, "Bob Jones")
}

func TestExport_CSV(t *testing.T) {
	root := seedRoot(t)
	target := filepath.Join(t.TempDir(), "out", "clients.csv")

	out, err := execute(t, "", "export", "--root", root, "-o", target)

	require.NoError(t, err)
	require.Contains(t, out, "Exported 2 client(s)")

	f, err := os.Open(target)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "account_number", rows[0][0])
	require.Equal(t, []string{"A100", "1111", "Alice Smith", "0790000001", "2500.75"}, rows[1])
}

func TestExport_JSONDefaultPath(t *testing.T) {
	root := seedRoot(t)

	_, err := execute(t, "", "export", "--root", root, "--format", "json")

	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(root, "data", "clients_export.json"))
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestExport_UnknownFormat(t *testing.T) {
	root := seedRoot(t)

	_, err := execute(t, "", "export", "--root", root, "--format", "xml", "-o", filepath.Join(t.TempDir(), "x"))

	require.ErrorContains(t, err, "unsupported export format")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "", "init", "--root", t.TempDir(), "--log-level", "chatty")

	require.ErrorContains(t, err, "invalid log level")
}
