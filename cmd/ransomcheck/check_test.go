package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/nao1215/ransomcheck/internal/config"
	"github.com/nao1215/ransomcheck/internal/keyword"
	"github.com/nao1215/ransomcheck/internal/listing"
	"github.com/nao1215/ransomcheck/internal/report"
)

const listingPage = `<html><body>
<table>
<tr><td>Date</td><td>Title</td><td>Group</td></tr>
<tr><td>2024-01-01</td><td>Acme Corp Hit</td><td>GroupX</td></tr>
<tr><td>2024-01-02</td><td>Beta LLC</td><td>GroupY</td></tr>
</table>
</body></html>`

// newListingServer starts a server that answers every request with body.
func newListingServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

// writeKeywords writes a keywords file into a temporary directory.
func writeKeywords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keywords.txt")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write keywords file: %v", err)
	}
	return path
}

func newTestConfig(keywordsFile string) *config.Config {
	cfg := config.NewConfig()
	cfg.KeywordsFile = keywordsFile
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestRunCheck tests the full check against a local listing server.
func TestRunCheck(t *testing.T) {
	t.Parallel()

	t.Run("reports matches in the expected format", func(t *testing.T) {
		t.Parallel()

		server := newListingServer(t, http.StatusOK, listingPage)
		var stdout bytes.Buffer
		fetcher := listing.NewFetcher(server.Client(),
			listing.WithURL(server.URL),
			listing.WithNoticeWriter(&stdout),
		)
		cfg := newTestConfig(writeKeywords(t, "Acme\n\nZeta\n"))

		if err := runCheck(context.Background(), cfg, fetcher, &stdout, discardLogger()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "Loaded 2 keywords.\n" +
			"Fetched 2 recent victim entries.\n" +
			"\nMatches found:\n" +
			"Keyword: \"Acme\"  — Date: 2024-01-01, Victim: \"Acme Corp Hit\", Group: GroupX\n"
		if stdout.String() != want {
			t.Errorf("unexpected output:\ngot:  %q\nwant: %q", stdout.String(), want)
		}
	})

	t.Run("reports no matches", func(t *testing.T) {
		t.Parallel()

		server := newListingServer(t, http.StatusOK, listingPage)
		var stdout bytes.Buffer
		fetcher := listing.NewFetcher(server.Client(), listing.WithURL(server.URL))
		cfg := newTestConfig(writeKeywords(t, "Zeta\n"))

		if err := runCheck(context.Background(), cfg, fetcher, &stdout, discardLogger()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.HasSuffix(stdout.String(), "No matches found.\n") {
			t.Errorf("expected no matches message, got %q", stdout.String())
		}
	})

	t.Run("missing table prints diagnostic and continues", func(t *testing.T) {
		t.Parallel()

		server := newListingServer(t, http.StatusOK, "<html><body><p>maintenance</p></body></html>")
		var stdout bytes.Buffer
		fetcher := listing.NewFetcher(server.Client(),
			listing.WithURL(server.URL),
			listing.WithNoticeWriter(&stdout),
			listing.WithLogger(discardLogger()),
		)
		cfg := newTestConfig(writeKeywords(t, "Acme\n"))

		if err := runCheck(context.Background(), cfg, fetcher, &stdout, discardLogger()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := stdout.String()
		if !strings.Contains(out, listing.TableMissingNotice) {
			t.Errorf("expected table missing notice, got %q", out)
		}
		if !strings.Contains(out, "Fetched 0 recent victim entries.") {
			t.Errorf("expected zero entries, got %q", out)
		}
		if !strings.HasSuffix(out, "No matches found.\n") {
			t.Errorf("expected no matches message, got %q", out)
		}
	})

	t.Run("server error is a fetch failure", func(t *testing.T) {
		t.Parallel()

		server := newListingServer(t, http.StatusServiceUnavailable, "down")
		var stdout bytes.Buffer
		fetcher := listing.NewFetcher(server.Client(), listing.WithURL(server.URL))
		cfg := newTestConfig(writeKeywords(t, "Acme\n"))

		err := runCheck(context.Background(), cfg, fetcher, &stdout, discardLogger())
		if !errors.Is(err, listing.ErrFetchFailed) {
			t.Fatalf("expected ErrFetchFailed, got %v", err)
		}
		if strings.Contains(stdout.String(), "Matches found") || strings.Contains(stdout.String(), "No matches found") {
			t.Errorf("expected no report after failure, got %q", stdout.String())
		}
	})

	t.Run("missing keywords file stops before fetching", func(t *testing.T) {
		t.Parallel()

		var requested atomic.Bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requested.Store(true)
			_, _ = io.WriteString(w, listingPage)
		}))
		t.Cleanup(server.Close)

		var stdout bytes.Buffer
		fetcher := listing.NewFetcher(server.Client(), listing.WithURL(server.URL))
		cfg := newTestConfig(filepath.Join(t.TempDir(), "missing.txt"))

		err := runCheck(context.Background(), cfg, fetcher, &stdout, discardLogger())
		if !errors.Is(err, keyword.ErrResourceUnavailable) {
			t.Fatalf("expected ErrResourceUnavailable, got %v", err)
		}
		if requested.Load() {
			t.Error("expected no request to the listing server")
		}
		if stdout.Len() != 0 {
			t.Errorf("expected no output, got %q", stdout.String())
		}
	})

	t.Run("markdown report written to file", func(t *testing.T) {
		t.Parallel()

		server := newListingServer(t, http.StatusOK, listingPage)
		var stdout bytes.Buffer
		fetcher := listing.NewFetcher(server.Client(), listing.WithURL(server.URL))
		cfg := newTestConfig(writeKeywords(t, "acme\n"))
		cfg.MarkdownReport = true
		cfg.ReportFile = filepath.Join(t.TempDir(), "reports", "today.md")

		if err := runCheck(context.Background(), cfg, fetcher, &stdout, discardLogger()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(cfg.ReportFile)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		content := string(data)
		if !strings.Contains(content, "# Ransomware Victim Watch") {
			t.Errorf("expected markdown heading, got %q", content)
		}
		if !strings.Contains(content, "Acme Corp Hit") {
			t.Errorf("expected match in report, got %q", content)
		}

		out := stdout.String()
		if !strings.Contains(out, "Report written to: "+cfg.ReportFile) {
			t.Errorf("expected report path on stdout, got %q", out)
		}
		if strings.Contains(out, "Acme Corp Hit") {
			t.Errorf("expected match section only in file, got %q", out)
		}
	})

	t.Run("canceled context stops the run", func(t *testing.T) {
		t.Parallel()

		server := newListingServer(t, http.StatusOK, listingPage)
		fetcher := listing.NewFetcher(server.Client(), listing.WithURL(server.URL))
		cfg := newTestConfig(writeKeywords(t, "Acme\n"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var stdout bytes.Buffer
		if err := runCheck(ctx, cfg, fetcher, &stdout, discardLogger()); err == nil {
			t.Fatal("expected error for canceled context")
		}
	})
}

// TestNewReportWriter tests report format selection.
func TestNewReportWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := config.NewConfig()

	if _, ok := newReportWriter(cfg, &buf).(*report.SimpleWriter); !ok {
		t.Error("expected SimpleWriter by default")
	}

	cfg.MarkdownReport = true
	if _, ok := newReportWriter(cfg, &buf).(*report.MarkdownWriter); !ok {
		t.Error("expected MarkdownWriter with markdown enabled")
	}
}
