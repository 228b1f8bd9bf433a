package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the structure of the optional YAML configuration file.
//
//	timeout: 90s
//	proxy: 127.0.0.1:9050
//	maxBodySize: 20971520
//	markdown: true
//
// Zero values mean "not set" and leave the current setting alone.
type File struct {
	// Timeout is a Go duration string such as "90s" or "2m".
	Timeout string `yaml:"timeout,omitempty"`

	// Proxy is a SOCKS5 proxy address in "host:port" form.
	Proxy string `yaml:"proxy,omitempty"`

	// MaxBodySize is the response body limit in bytes.
	MaxBodySize int64 `yaml:"maxBodySize,omitempty"`

	// Markdown selects the Markdown report.
	Markdown bool `yaml:"markdown,omitempty"`
}

// LoadConfigFile reads the configuration file at path.
// A missing file yields ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("invalid configuration file: %w", err)
	}

	return &cf, nil
}

// Apply copies the values set in the file onto c.
func (cf *File) Apply(c *Config) error {
	if cf.Timeout != "" {
		d, err := time.ParseDuration(cf.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", cf.Timeout, err)
		}
		c.Timeout = d
	}
	if cf.Proxy != "" {
		c.ProxyAddress = cf.Proxy
	}
	if cf.MaxBodySize != 0 {
		c.MaxBodySize = cf.MaxBodySize
	}
	if cf.Markdown {
		c.MarkdownReport = true
	}
	return nil
}
