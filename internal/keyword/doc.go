// Package keyword loads watch phrases from line-delimited text files.
//
// A phrase file is UTF-8 text with one phrase per line. Surrounding
// whitespace is stripped, blank lines are ignored, and the remaining lines
// are returned in file order without deduplication.
package keyword
