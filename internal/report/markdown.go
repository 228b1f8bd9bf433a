package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/ransomcheck/internal/model"
)

// MarkdownWriter outputs the run as GitHub Flavored Markdown, suitable for
// pasting into a ticket or a triage channel.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the run in Markdown format.
func (w *MarkdownWriter) Write(run *model.Run) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Ransomware Victim Watch")
	md.PlainText("")

	w.writeSummary(md, run)
	w.writeMatches(md, run)

	return len(md.String()), md.Build()
}

// writeSummary writes the counts table and any structural warning.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, run *model.Run) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Keywords", strconv.Itoa(len(run.Keywords))},
			{"Entries", strconv.Itoa(len(run.Entries))},
			{"Matches", strconv.Itoa(len(run.Matches))},
		},
	})
	md.PlainText("")

	if run.TableMissing {
		md.Warningf("The listing page had no table of recent posts. The page structure may have changed.")
		md.PlainText("")
	}
}

// writeMatches writes the matches table or a no-match note.
func (w *MarkdownWriter) writeMatches(md *markdown.Markdown, run *model.Run) {
	md.H2("Matches")
	md.PlainText("")

	if !run.HasMatches() {
		md.Tip(NoMatchesMessage)
		md.PlainText("")
		return
	}

	md.Cautionf("%d watch phrase match(es) found.", len(run.Matches))
	md.PlainText("")

	rows := make([][]string, len(run.Matches))
	for i, m := range run.Matches {
		rows[i] = []string{
			escapeCell(m.Keyword),
			escapeCell(m.Date),
			escapeCell(m.Title),
			escapeCell(m.Group),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Keyword", "Date", "Victim", "Group"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePhraseCounts(md, run)
}

// writePhraseCounts writes how many entries each loaded phrase matched,
// in file order.
func (w *MarkdownWriter) writePhraseCounts(md *markdown.Markdown, run *model.Run) {
	md.H2("Matches per Phrase")
	md.PlainText("")

	rows := make([][]string, len(run.Keywords))
	for i, k := range run.Keywords {
		rows[i] = []string{escapeCell(k), strconv.Itoa(len(run.MatchesFor(k)))}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Keyword", "Matches"},
		Rows:   rows,
	})
	md.PlainText("")
}

// escapeCell keeps pipe characters in listing text from splitting a
// table cell.
func escapeCell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
