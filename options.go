package asfmeta

import (
	"log/slog"

	"github.com/simonhull/asfmeta/internal/asf"
)

// Option configures behavior when opening files.
//
// Example:
//
//	file, err := asfmeta.Open("song.wma",
//	    asfmeta.WithStrictParsing(),
//	    asfmeta.WithMaxHeaderSize(1<<20),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
	logger         *slog.Logger
	maxHeaderSize  int64
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		maxHeaderSize: asf.DefaultMaxHeaderSize,
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, asfmeta keeps going when it meets malformed text or objects
// with unknown GUIDs, recording a Warning for each.
//
// Example:
//
//	file, err := asfmeta.Open("song.wma", asfmeta.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Example:
//
//	file, err := asfmeta.Open("song.wma", asfmeta.WithIgnoreWarnings())
//	// file.Warnings will always be empty
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithLogger sends debug records for every header object and decoded
// field to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}

// WithMaxHeaderSize rejects headers that declare more than n bytes.
// The header is read into memory in one piece, so this bounds the
// allocation per file. Default is 64 MiB.
func WithMaxHeaderSize(n int64) Option {
	return func(o *openOptions) {
		o.maxHeaderSize = n
	}
}
