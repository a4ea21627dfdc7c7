package asfmeta

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/asfmeta/internal/asf"
	"github.com/simonhull/asfmeta/internal/types"
)

// File holds the decoded header of an ASF file.
//
// The header bytes are kept in memory, so a File does not hold the
// underlying file open and stays usable after Close.
type File struct {
	// Path to the file
	Path string `json:"path"`

	// Detected format (ASF, WMA or WMV)
	Format Format `json:"format"`

	// File size in bytes
	Size int64 `json:"size"`

	// Technical properties and non-descriptive attributes
	Info Values `json:"info"`

	// Descriptive metadata
	Tags Values `json:"tags"`

	// Header objects by name; a later duplicate replaces an earlier one
	Objects map[string]Object `json:"objects"`

	// The top-level header object
	Root *RootObject `json:"root"`

	// Whether an encryption object is present
	DRM bool `json:"drm"`

	// Stream properties; nil until ParseStream succeeds
	Stream *StreamInfo `json:"stream,omitempty"`

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning `json:"warnings,omitempty"`

	header *types.Header
}

// Open opens an ASF file and decodes its header.
//
// Only the header is read. The file is closed before Open returns.
//
// Example:
//
//	file, err := asfmeta.Open("song.wma")
//	if err != nil {
//		return err
//	}
//	fmt.Println(file.Tags["Title"])
func Open(path string, opts ...Option) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return OpenReader(f, stat.Size(), path, opts...)
}

// OpenContext opens a file after checking ctx for cancellation.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	file, err := asfmeta.OpenContext(ctx, "song.wma")
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenBytes decodes a header held in memory.
func OpenBytes(b []byte, opts ...Option) (*File, error) {
	return OpenReader(bytes.NewReader(b), int64(len(b)), "", opts...)
}

// OpenReader decodes the header at the start of r. path is used only in
// error messages and File.Path.
func OpenReader(r io.ReaderAt, size int64, path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	h, err := asf.Parse(r, size, path, asf.Options{
		Logger:        options.logger,
		MaxHeaderSize: options.maxHeaderSize,
	})
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	if options.strictParsing && len(h.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", h.Warnings[0].Message)
	}

	file := &File{
		Path:     path,
		Format:   asf.Refine(h),
		Size:     size,
		Info:     h.Info,
		Tags:     h.Tags,
		Objects:  h.Objects,
		Root:     h.Root,
		DRM:      h.DRM,
		Warnings: h.Warnings,
		header:   h,
	}

	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

// Close is a no-op; Open does not keep the file open.
func (f *File) Close() error {
	return nil
}

// HasTag reports whether Tags holds a non-empty value under key.
func (f *File) HasTag(key string) bool {
	return f.Tags.Has(key)
}

// HasInfo reports whether Info holds a non-empty value under key.
func (f *File) HasInfo(key string) bool {
	return f.Info.Has(key)
}

// HasDRM reports whether the header carries an encryption object.
func (f *File) HasDRM() bool {
	return f.DRM
}

// ParseStream decodes the stream properties object.
//
// It returns an error matching ErrMissingObject when the header has none,
// leaving Stream nil. On success the result is also stored in Stream.
func (f *File) ParseStream() (*StreamInfo, error) {
	stream, err := asf.ParseStream(f.header, f.Path)
	if err != nil {
		return nil, err
	}
	f.Stream = stream
	return stream, nil
}

// Object returns the catalog entry for name.
func (f *File) Object(name string) (Object, bool) {
	obj, ok := f.Objects[name]
	return obj, ok
}

// ObjectsByOffset returns the catalog sorted by file offset.
func (f *File) ObjectsByOffset() []HeaderObject {
	objs := make([]HeaderObject, 0, len(f.Objects))
	for _, obj := range f.Objects {
		objs = append(objs, obj.Base())
	}
	slices.SortFunc(objs, func(a, b HeaderObject) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	return objs
}

// Duration returns the playable length derived from the file properties,
// or 0 when they are absent.
func (f *File) Duration() time.Duration {
	secs, _ := f.Info["playtime_seconds"].Int()
	return time.Duration(secs) * time.Second
}

// OpenMany opens multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open, OpenMany returns the first error and no files.
//
// Example:
//
//	files, err := asfmeta.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %s\n", f.Format, f.Tags["Title"])
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	return OpenManyWith(ctx, paths, runtime.NumCPU())
}

// OpenManyWith is OpenMany with an explicit concurrency limit and options
// applied to every file.
func OpenManyWith(ctx context.Context, paths []string, limit int, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			file, err := OpenContext(ctx, path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
