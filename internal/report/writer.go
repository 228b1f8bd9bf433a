package report

import (
	"io"

	"github.com/nao1215/ransomcheck/internal/model"
)

// Writer renders the result section of a run.
type Writer interface {
	// Write outputs the report for run.
	// Returns the number of bytes written and any error encountered.
	Write(run *model.Run) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
