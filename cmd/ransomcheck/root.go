package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nao1215/ransomcheck/internal/config"
	"github.com/spf13/cobra"
)

// usageLine is printed to stdout when the argument count is wrong.
const usageLine = "Usage: ransomcheck <keywords_file>"

// errUsage is returned when the command is not given exactly one argument.
var errUsage = errors.New("expected exactly one keywords file argument")

// NewRootCmd creates the ransomcheck command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ransomcheck <keywords_file>",
		Short: "Check recent ransomware leak-site victims against watch phrases",
		Long: `ransomcheck fetches the recent victims listing from ransomlook.io and
reports every entry whose title contains one of your watch phrases.

The keywords file holds one phrase per line. Matching is case-insensitive
and substring based, so "Corp" matches "Corporate Holdings".

Examples:
  # Check the listing against a phrase file
  ransomcheck keywords.txt

  # Fetch through a local Tor daemon
  ransomcheck --proxy 127.0.0.1:9050 keywords.txt

  # Write a Markdown report for a ticket
  ransomcheck --markdown -o reports/today.md keywords.txt

Configuration file example (passed with --config):
  timeout: 90s
  proxy: 127.0.0.1:9050
  markdown: true`,
		Version:       versionString(),
		Args:          exactlyOneArg,
		RunE:          runCheckCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for the listing request")
	cmd.Flags().StringP("proxy", "x", "",
		"Fetch through a SOCKS5 proxy at host:port (e.g., 127.0.0.1:9050 for Tor)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Render the match report as Markdown")
	cmd.Flags().StringP("output", "o", "",
		"Write the match report to the specified file (creates directories if needed)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (no file is read unless given)")

	return cmd
}

// exactlyOneArg rejects any invocation without exactly one keywords file.
func exactlyOneArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	return nil
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command with the given arguments and returns the exit
// status: 0 on success, 1 on any failure.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stdout, usageLine)
			return 1
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
