// Package main provides the entry point for the ransomcheck CLI.
//
// ransomcheck fetches the recent victims listing from ransomlook.io and
// reports every entry whose title contains one of the operator's watch
// phrases.
//
// Usage:
//
//	ransomcheck <keywords_file>
//
// See --help for all available options.
package main

// main is the entry point for ransomcheck.
func main() {
	Execute()
}
