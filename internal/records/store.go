package records

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/daryltucker/client-data/internal/model"
	"github.com/daryltucker/client-data/internal/output"
	"github.com/daryltucker/client-data/internal/paths"
)

var (
	ErrNotFound         = errors.New("client not found")
	ErrDuplicateAccount = errors.New("account number already exists")
)

// maxSuggestDistance is the largest edit distance Suggest will offer.
const maxSuggestDistance = 2

// LineError ties a malformed record to its 1-based line number.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }

// Store reads and rewrites client records in the original data file.
// Rewrites go through the temp file and replace the original by rename.
type Store struct {
	path     string
	tempPath string
	sep      string
}

// NewStore returns a Store over the files of l.
func NewStore(l paths.Layout, sep string) *Store {
	return &Store{
		path:     l.OriginalFile(),
		tempPath: l.TempFile(),
		sep:      sep,
	}
}

// Path returns the data file location.
func (s *Store) Path() string { return s.path }

// List returns every well-formed client in file order. Blank lines are
// ignored; malformed lines are skipped and reported as *LineError. A failure
// to read the file is reported last.
func (s *Store) List() ([]model.Client, []error) {
	clients, errs, err := s.load()
	if err != nil {
		errs = append(errs, err)
	}
	return clients, errs
}

func (s *Store) load() ([]model.Client, []error, error) {
	lines, err := readRecordLines(s.path)
	if err != nil {
		return nil, nil, err
	}
	var (
		clients []model.Client
		errs    []error
	)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseRecord(line, s.sep)
		if err != nil {
			errs = append(errs, &LineError{Line: i + 1, Err: err})
			continue
		}
		clients = append(clients, c)
	}
	return clients, errs, nil
}

// Find returns the client with the given account number.
func (s *Store) Find(account string) (model.Client, error) {
	clients, _, err := s.load()
	if err != nil {
		return model.Client{}, err
	}
	for _, c := range clients {
		if c.AccountNumber == account {
			return c, nil
		}
	}
	return model.Client{}, fmt.Errorf("%w: %s", ErrNotFound, account)
}

// FindByName returns clients whose name contains query, ignoring case.
func (s *Store) FindByName(query string) []model.Client {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	clients, _ := s.List()

	var matches []model.Client
	for _, c := range clients {
		if strings.Contains(fold.String(c.Name), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Suggest returns the existing account number closest to account, if any
// is within a small edit distance.
func (s *Store) Suggest(account string) (string, bool) {
	clients, _ := s.List()
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range clients {
		d := levenshtein.ComputeDistance(account, c.AccountNumber)
		if d < bestDist {
			best, bestDist = c.AccountNumber, d
		}
	}
	return best, best != ""
}

// Exists reports whether account is already taken.
func (s *Store) Exists(account string) bool {
	_, err := s.Find(account)
	return err == nil
}

// Add appends c to the data file.
func (s *Store) Add(c model.Client) error {
	if err := CheckClient(c, s.sep); err != nil {
		return err
	}
	if _, err := s.Find(c.AccountNumber); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateAccount, c.AccountNumber)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open data file %s: %w", s.path, err)
	}
	defer f.Close()

	line := FormatRecord(c, s.sep) + "\n"
	missing, err := missingNewline(f)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", s.path, err)
	}
	if missing {
		line = "\n" + line
	}
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append client %s: %w", c.AccountNumber, err)
	}
	output.Logger.Info("Client added", "account", c.AccountNumber)
	return f.Close()
}

// Update replaces the record with c's account number.
func (s *Store) Update(c model.Client) error {
	if err := CheckClient(c, s.sep); err != nil {
		return err
	}
	found := false
	err := s.rewrite(func(line string, parsed model.Client, ok bool) (string, bool) {
		if ok && parsed.AccountNumber == c.AccountNumber {
			found = true
			return FormatRecord(c, s.sep), true
		}
		return line, true
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, c.AccountNumber)
	}
	output.Logger.Info("Client updated", "account", c.AccountNumber)
	return nil
}

// Delete removes the record with the given account number.
func (s *Store) Delete(account string) error {
	if _, err := s.Find(account); err != nil {
		return err
	}
	err := s.rewrite(func(line string, parsed model.Client, ok bool) (string, bool) {
		return line, !(ok && parsed.AccountNumber == account)
	})
	if err != nil {
		return err
	}
	output.Logger.Info("Client deleted", "account", account)
	return nil
}

// rewrite streams every line through keep into the temp file and renames
// it over the original. Malformed lines reach keep with ok false and are
// preserved unless keep drops them. The original is left untouched when it
// cannot be read in full.
func (s *Store) rewrite(keep func(line string, parsed model.Client, ok bool) (string, bool)) error {
	lines, err := readRecordLines(s.path)
	if err != nil {
		return err
	}

	tmp, err := os.OpenFile(s.tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp file %s: %w", s.tempPath, err)
	}
	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		parsed, perr := ParseRecord(line, s.sep)
		out, ok := keep(line, parsed, perr == nil)
		if !ok {
			continue
		}
		if _, err := w.WriteString(out + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write temp file %s: %w", s.tempPath, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file %s: %w", s.tempPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file %s: %w", s.tempPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file %s: %w", s.tempPath, err)
	}
	if err := os.Rename(s.tempPath, s.path); err != nil {
		return fmt.Errorf("failed to replace data file %s: %w", s.path, err)
	}
	return nil
}

// readRecordLines returns every line of the data file without terminators.
// Unlike ReadLines it has no line length limit and reports read failures.
// A missing file has no lines.
func readRecordLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
		}
	}
}

// missingNewline reports whether a non-empty f does not end in '\n'.
func missingNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && err != io.EOF {
		return false, err
	}
	return last[0] != '\n', nil
}
