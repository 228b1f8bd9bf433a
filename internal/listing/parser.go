package listing

import (
	"io"
	"strings"

	"github.com/nao1215/ransomcheck/internal/model"
	"golang.org/x/net/html"
)

// minCells is the number of <td> cells a row needs to become an entry.
const minCells = 3

// ParseResult is the outcome of parsing a listing page.
type ParseResult struct {
	// Entries are the extracted rows in document order.
	Entries []model.VictimEntry

	// TableFound is false when the document had no <table> element.
	TableFound bool
}

// Parse reads an HTML document and extracts listing entries from its first
// table.
func Parse(r io.Reader) (*ParseResult, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{
		Entries: make([]model.VictimEntry, 0),
	}

	table := findFirst(doc, "table")
	if table == nil {
		return result, nil
	}

	result.TableFound = true
	result.Entries = extractEntries(table)
	return result, nil
}

// extractEntries turns the rows of the listing table into entries.
// The first row is always dropped as a header, whether or not it looks like
// one. Rows with fewer than three <td> cells are skipped and cells past the
// third are ignored.
func extractEntries(table *html.Node) []model.VictimEntry {
	entries := make([]model.VictimEntry, 0)

	rows := findAll(table, "tr")
	if len(rows) < 2 {
		return entries
	}

	for _, row := range rows[1:] {
		cells := findAll(row, "td")
		if len(cells) < minCells {
			continue
		}
		entries = append(entries, model.VictimEntry{
			Date:  cellText(cells[0]),
			Title: cellText(cells[1]),
			Group: cellText(cells[2]),
		})
	}

	return entries
}

// findFirst returns the first element named tag below n in document order,
// or nil if there is none.
func findFirst(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every element named tag below n in document order,
// including elements nested inside other matches.
func findAll(n *html.Node, tag string) []*html.Node {
	result := make([]*html.Node, 0)

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				result = append(result, c)
			}
			walk(c)
		}
	}
	walk(n)

	return result
}

// cellText returns the visible text of a cell: every text node below it is
// trimmed, empty pieces are dropped, and the rest are joined without a
// separator.
func cellText(n *html.Node) string {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				sb.WriteString(strings.TrimSpace(c.Data))
			case html.ElementNode:
				if c.Data == "script" || c.Data == "style" {
					continue
				}
				walk(c)
			}
		}
	}
	walk(n)

	return sb.String()
}
