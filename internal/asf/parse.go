// Package asf decodes the header section of ASF (WMA/WMV) files.
//
// The header is a top-level object holding a declared number of
// length-prefixed sub-objects, each tagged with a GUID. Parse reads the
// whole header into memory, walks the sub-objects and hands the known ones
// to per-type decoders. Stream properties are decoded separately by
// ParseStream because most callers never need them.
package asf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/simonhull/asfmeta/internal/binary"
	"github.com/simonhull/asfmeta/internal/registry"
	"github.com/simonhull/asfmeta/internal/types"
)

// DefaultMaxHeaderSize bounds the memory a single parse may allocate.
const DefaultMaxHeaderSize = 64 << 20

// Options configures a parse.
type Options struct {
	// Logger receives debug traces of every object and decoded field.
	// nil disables logging.
	Logger *slog.Logger

	// MaxHeaderSize rejects headers declaring a larger size.
	// 0 means DefaultMaxHeaderSize.
	MaxHeaderSize int64
}

// state is the per-parse context handed to decoders.
type state struct {
	header *types.Header
	log    *slog.Logger
	path   string
}

func (s *state) warn(stage string, offset int64, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.log.Debug("warning", "stage", stage, "offset", offset, "message", msg)
	s.header.Warnings = append(s.header.Warnings, types.Warning{
		Stage:   stage,
		Message: msg,
		Offset:  offset,
	})
}

// text decodes a UTF-16LE field, recording a warning when it is malformed.
func (s *state) text(b []byte, field string, offset int64) string {
	str, ok := decodeText(b)
	if !ok {
		s.warn("content", offset, "invalid UTF-16 in %s", field)
	}
	return str
}

// decoderFunc decodes the body of one header object. The cursor is
// bounded to the object body; anything left unread is skipped.
type decoderFunc func(s *state, c *binary.Cursor) error

var decoders = map[string]decoderFunc{
	registry.FileProperties:             decodeFileProperties,
	registry.ContentDescription:         decodeContentDescription,
	registry.ExtendedContentDescription: decodeExtendedContentDescription,
	registry.ContentEncryption:          markDRM,
	registry.ExtendedContentEncryption:  markDRM,
}

// markDRM records the presence of an encryption object.
func markDRM(s *state, _ *binary.Cursor) error {
	s.header.DRM = true
	return nil
}

// Parse reads and decodes the header at the start of r.
//
// On error no partial result is returned. Structural problems are
// reported as *types.FormatError.
func Parse(r io.ReaderAt, size int64, path string, opts Options) (*types.Header, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	maxSize := opts.MaxHeaderSize
	if maxSize <= 0 {
		maxSize = DefaultMaxHeaderSize
	}

	sr := binary.NewSafeReader(r, size, path)

	root, err := ReadRoot(sr)
	if err != nil {
		return nil, err
	}

	log.Debug("header object",
		"guid", root.ID,
		"name", root.Name,
		"size", root.Size,
		"objects", root.ObjectCount,
		"reserved1", root.Reserved1,
		"reserved2", root.Reserved2)

	if root.Size > uint64(maxSize) {
		return nil, &types.FormatError{
			Path:   path,
			Offset: types.GUIDSize,
			Reason: fmt.Sprintf("header size %d exceeds limit %d", root.Size, maxSize),
		}
	}

	payload := make([]byte, root.Size-types.RootHeaderSize)
	if len(payload) > 0 {
		if err := sr.ReadAt(payload, types.RootHeaderSize, "header payload"); err != nil {
			return nil, &types.FormatError{Path: path, Offset: types.RootHeaderSize, Reason: "truncated header", Err: err}
		}
	}

	h := types.NewHeader()
	h.Root = root
	h.Payload = payload
	h.Objects[root.Name] = root

	s := &state{header: h, log: log, path: path}
	if err := s.walk(root.ObjectCount); err != nil {
		return nil, err
	}

	return h, nil
}

// walk visits exactly count sub-objects of the header payload.
func (s *state) walk(count uint32) error {
	c := binary.NewCursor(s.header.Payload, types.RootHeaderSize, s.path)

	for i := uint32(0); i < count; i++ {
		start := c.AbsOffset()

		id, err := c.ReadGUID("object GUID")
		if err != nil {
			return s.fail(start, fmt.Sprintf("object %d of %d", i+1, count), err)
		}
		size, err := binary.Read[uint64](c, "object size")
		if err != nil {
			return s.fail(start, fmt.Sprintf("object %d of %d", i+1, count), err)
		}

		name := registry.NameOrUnknown(id)
		if name == registry.Unknown {
			s.warn("header", start, "skipping object with unknown GUID %s", id)
		}

		s.log.Debug("header sub-object", "guid", id, "name", name, "size", size, "offset", start)

		if size < types.ObjectHeaderSize {
			return &types.FormatError{
				Path:   s.path,
				Offset: start,
				Reason: fmt.Sprintf("%s declares size %d, smaller than its own header", name, size),
			}
		}
		bodyLen := size - types.ObjectHeaderSize
		if bodyLen > uint64(c.Remaining()) {
			return &types.FormatError{
				Path:   s.path,
				Offset: start,
				Reason: fmt.Sprintf("%s of size %d extends past the end of the header", name, size),
			}
		}

		s.header.Objects[name] = &types.HeaderObject{
			Name:   name,
			ID:     id,
			Size:   size,
			Offset: uint64(start),
		}

		// Sub advances c to the declared end of the object whatever the
		// decoder consumes.
		body, err := c.Sub(int(bodyLen), name)
		if err != nil {
			return s.fail(start, name, err)
		}

		if decode, ok := decoders[name]; ok {
			if err := decode(s, body); err != nil {
				return s.fail(start, name, err)
			}
		}
	}

	return nil
}

// fail converts a decoding error into a *types.FormatError.
func (s *state) fail(offset int64, what string, err error) error {
	var ferr *types.FormatError
	if errors.As(err, &ferr) {
		return err
	}
	return &types.FormatError{
		Path:   s.path,
		Offset: offset,
		Reason: "cannot decode " + what,
		Err:    err,
	}
}
