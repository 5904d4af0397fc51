package records

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFindAll(t *testing.T) {
	const delim = "#//#"
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     []int
	}{
		{"multiple delimiters", "A#//#B#//#C", delim, []int{1, 6}},
		{"no delimiters", "HelloWorld", delim, nil},
		{"empty string", "", delim, nil},
		{"shorter than needle", "#//", delim, nil},
		{"delimiter at start", "#//#Start", delim, []int{0}},
		{"delimiter at end", "End#//#", delim, []int{3}},
		{"overlapping collapse to one", "#//#//#", delim, []int{0}},
		{"adjacent delimiters", "#//##//#", delim, []int{0, 4}},
		{"empty needle", "abc", "", nil},
		{"single byte needle", "a,b,,c", ",", []int{1, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindAll(tt.haystack, tt.needle)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindAll(%q, %q) mismatch (-want +got):\n%s", tt.haystack, tt.needle, diff)
			}
		})
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clients.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"multiple lines", "Alice\nBob\nCharlie\n", []string{"Alice", "Bob", "Charlie"}},
		{"single line", "Alice\n", []string{"Alice"}},
		{"empty file", "", nil},
		{"no trailing newline", "Alice", []string{"Alice"}},
		{"special characters and blanks", "A!@#\n \nBob\t\nCharlie\n", []string{"A!@#", " ", "Bob\t", "Charlie"}},
		{"crlf endings", "Alice\r\nBob\r\n", []string{"Alice", "Bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadLines(writeFile(t, tt.content))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadLines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadLines_MissingFileIsEmpty(t *testing.T) {
	require.Empty(t, ReadLines(filepath.Join(t.TempDir(), "no_such_file.txt")))
}

func TestReadLines_DirectoryIsEmpty(t *testing.T) {
	require.Empty(t, ReadLines(t.TempDir()))
}

func TestReadLines_LargeFile(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(&b, "Client%d\n", i)
	}

	got := ReadLines(writeFile(t, b.String()))

	require.Len(t, got, 10000)
	require.Equal(t, "Client0", got[0])
	require.Equal(t, "Client9999", got[9999])
}
