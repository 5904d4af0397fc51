// Package records reads, parses and rewrites the client data file.
package records

import (
	"bufio"
	"os"
	"strings"
)

// FindAll returns the byte offsets of the non-overlapping, leftmost
// occurrences of needle in haystack. The scan resumes after each full match,
// so FindAll("#//#//#", "#//#") is [0]. An empty needle matches nothing.
func FindAll(haystack, needle string) []int {
	if needle == "" || len(haystack) < len(needle) {
		return nil
	}
	var offsets []int
	for i := 0; i <= len(haystack)-len(needle); {
		j := strings.Index(haystack[i:], needle)
		if j < 0 {
			break
		}
		offsets = append(offsets, i+j)
		i += j + len(needle)
	}
	return offsets
}

// maxLineSize bounds a single record line.
const maxLineSize = 1 << 20

// ReadLines returns the lines of the file at path without line terminators.
// It never fails: a path that cannot be opened yields no lines, and a read
// error stops the scan and keeps what was read so far.
func ReadLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
