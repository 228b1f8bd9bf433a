package keyword

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrResourceUnavailable is returned when the phrase file cannot be opened
// or read. The underlying I/O error is wrapped, so errors.Is also matches
// values such as fs.ErrNotExist.
var ErrResourceUnavailable = errors.New("keyword file unavailable")

// maxLineSize bounds a single phrase line. bufio.Scanner defaults to 64KB,
// which is too small for files that were exported without newlines.
const maxLineSize = 1024 * 1024

// ResourceError describes a phrase file that could not be opened or read.
type ResourceError struct {
	// Path is the file that was being read.
	Path string

	// Err is the underlying I/O error.
	Err error
}

// Error implements error.
func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrResourceUnavailable, e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrResourceUnavailable.
func (e *ResourceError) Is(target error) bool {
	return target == ErrResourceUnavailable
}

// Load reads watch phrases from the file at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided keyword path is intentional
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	defer f.Close()

	phrases, err := Parse(f)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	return phrases, nil
}

// Parse reads watch phrases from r, one per line.
func Parse(r io.Reader) ([]string, error) {
	phrases := make([]string, 0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return phrases, nil
}
