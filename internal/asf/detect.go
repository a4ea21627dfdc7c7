package asf

import (
	"io"

	"github.com/simonhull/asfmeta/internal/binary"
	"github.com/simonhull/asfmeta/internal/registry"
	"github.com/simonhull/asfmeta/internal/types"
)

var headerGUID = registry.MustLookup(registry.HeaderObject)

// DetectFormat reports whether r starts with an ASF header object.
//
// Detection only checks the leading GUID; it does not validate the rest
// of the header. The result is FormatASF; Refine narrows it once the
// header has been parsed.
func DetectFormat(r io.ReaderAt, size int64, path string) (types.Format, error) {
	if size < types.RootHeaderSize {
		return types.FormatUnknown, &types.UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)
	id, err := sr.ReadGUID(0, "header object GUID")
	if err != nil {
		return types.FormatUnknown, &types.UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	if id != headerGUID {
		return types.FormatUnknown, &types.UnsupportedFormatError{
			Path:   path,
			Reason: "missing ASF header object",
		}
	}

	return types.FormatASF, nil
}

// Refine derives WMA or WMV from the stream type of a parsed header.
func Refine(h *types.Header) types.Format {
	name, ok := StreamType(h)
	if !ok {
		return types.FormatASF
	}

	switch name {
	case registry.AudioMedia:
		return types.FormatWMA
	case registry.VideoMedia:
		return types.FormatWMV
	default:
		return types.FormatASF
	}
}
