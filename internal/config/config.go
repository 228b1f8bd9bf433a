package config

import (
	"time"

	"github.com/nao1215/ransomcheck/internal/listing"
	"github.com/nao1215/ransomcheck/internal/transport"
)

// Default configuration values.
const (
	// DefaultTimeout bounds the listing request, including reading the body.
	// The listing page is large and served from behind a CDN that is
	// occasionally slow to respond.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxBodySize limits how much of the listing page is parsed.
	DefaultMaxBodySize = listing.DefaultMaxBodySize

	// AppName is the application name.
	AppName = "ransomcheck"
)

// Config holds all options for one check.
// It is populated from CLI flags, optionally merged with a configuration
// file, and passed down explicitly rather than kept in global state.
type Config struct {
	// KeywordsFile is the path of the watch phrase file.
	KeywordsFile string

	// Timeout is the HTTP timeout for the listing fetch.
	Timeout time.Duration

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" form.
	// Empty means connect directly.
	ProxyAddress string

	// MaxBodySize is the maximum response body size in bytes.
	MaxBodySize int64

	// MarkdownReport renders the match section as Markdown.
	MarkdownReport bool

	// ReportFile, when set, receives the match section instead of stdout.
	ReportFile string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the configuration file given with --config.
	// Empty means no file is read.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		MaxBodySize: DefaultMaxBodySize,
	}
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.KeywordsFile == "" {
		return ErrNoKeywordsFile
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.ProxyAddress != "" {
		if err := transport.ValidateProxyAddress(c.ProxyAddress); err != nil {
			return ErrInvalidProxyAddress
		}
	}

	return nil
}
