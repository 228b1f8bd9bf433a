package listing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/nao1215/ransomcheck/internal/model"
)

// DefaultURL is the recent victims page of ransomlook.io.
const DefaultURL = "https://www.ransomlook.io/recent"

// DefaultMaxBodySize caps how much of the response body is parsed.
const DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

// TableMissingNotice is written to the notice writer when the fetched page
// has no table.
const TableMissingNotice = "Unable to locate the table of recent posts. The page structure may have changed."

// Fetcher retrieves and parses the recent victims listing.
type Fetcher struct {
	// client performs the GET request.
	client *http.Client

	// url is the listing page address.
	url string

	// maxBodySize limits the bytes read from the response body.
	maxBodySize int64

	// notice receives the operator-facing diagnostic for a missing table.
	notice io.Writer

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithURL overrides the listing address. Used by tests.
func WithURL(url string) Option {
	return func(f *Fetcher) {
		f.url = url
	}
}

// WithMaxBodySize sets the maximum response body size.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = size
	}
}

// WithNoticeWriter sets where the missing-table diagnostic is printed.
func WithNoticeWriter(w io.Writer) Option {
	return func(f *Fetcher) {
		f.notice = w
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a Fetcher that uses client for the request.
func NewFetcher(client *http.Client, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      client,
		url:         DefaultURL,
		maxBodySize: DefaultMaxBodySize,
		notice:      io.Discard,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.maxBodySize <= 0 {
		f.maxBodySize = DefaultMaxBodySize
	}
	return f
}

// URL returns the listing address the fetcher requests.
func (f *Fetcher) URL() string {
	return f.url
}

// FetchEntries performs one GET of the listing page and returns its entries
// in document order.
//
// Any transport error, timeout, or non-2xx status is returned as a
// *FetchError. A page without a table is not an error: the diagnostic is
// written to the notice writer and an empty slice is returned.
func (f *Fetcher) FetchEntries(ctx context.Context) ([]model.VictimEntry, error) {
	result, err := f.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return result.Entries, nil
}

// Fetch is like FetchEntries but also reports whether the table was found.
func (f *Fetcher) Fetch(ctx context.Context) (*ParseResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, &FetchError{URL: f.url, Err: err}
	}

	f.logger.Debug("fetching listing", "url", f.url)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: f.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			URL:        f.url,
			StatusCode: resp.StatusCode,
			Err:        &StatusError{StatusCode: resp.StatusCode, Status: resp.Status},
		}
	}

	result, err := Parse(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, &FetchError{URL: f.url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	if !result.TableFound {
		f.logger.Warn("listing table not found", "url", f.url)
		fmt.Fprintln(f.notice, TableMissingNotice)
		return result, nil
	}

	f.logger.Debug("listing parsed", "url", f.url, "entries", len(result.Entries))
	return result, nil
}
