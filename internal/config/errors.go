package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoKeywordsFile is returned when no watch phrase file is given.
	ErrNoKeywordsFile = errors.New("no keywords file specified")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Zero selects the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidProxyAddress is returned when the proxy is not "host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address: expected host:port")
)
