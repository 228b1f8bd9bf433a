// Package report renders the outcome of a check.
//
// This package contains writers for different output formats:
//   - SimpleWriter: The plain terminal format, one line per match
//   - MarkdownWriter: GitHub Flavored Markdown with summary and match tables
//
// Writers implement the Writer interface.
package report
