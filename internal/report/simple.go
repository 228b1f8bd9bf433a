package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/ransomcheck/internal/model"
)

// NoMatchesMessage is printed when no phrase matched any entry.
const NoMatchesMessage = "No matches found."

// SimpleWriter prints matches in the plain terminal format:
//
//	Matches found:
//	Keyword: "Acme"  — Date: 2024-01-01, Victim: "Acme Corp Hit", Group: GroupX
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the match section of run.
func (w *SimpleWriter) Write(run *model.Run) (int, error) {
	var sb strings.Builder

	if !run.HasMatches() {
		sb.WriteString(NoMatchesMessage)
		sb.WriteString("\n")
		return io.WriteString(w.output, sb.String())
	}

	sb.WriteString("\nMatches found:\n")
	for _, m := range run.Matches {
		sb.WriteString(FormatMatch(m))
		sb.WriteString("\n")
	}

	return io.WriteString(w.output, sb.String())
}

// FormatMatch renders one match as a single line.
// Keyword and title are wrapped in double quotes verbatim, without escaping.
func FormatMatch(m model.Match) string {
	return fmt.Sprintf("Keyword: \"%s\"  — Date: %s, Victim: \"%s\", Group: %s",
		m.Keyword, m.Date, m.Title, m.Group)
}
