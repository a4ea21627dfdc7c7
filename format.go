package asfmeta

import (
	"io"

	"github.com/simonhull/asfmeta/internal/asf"
	"github.com/simonhull/asfmeta/internal/types"
)

// Format is an alias to types.Format.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatASF     = types.FormatASF
	FormatWMA     = types.FormatWMA
	FormatWMV     = types.FormatWMV
)

// DetectFormat reports whether r starts with an ASF header object.
// It returns FormatASF; Open narrows the result to WMA or WMV.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return asf.DetectFormat(r, size, path)
}

// HasASFExtension reports whether path ends in .asf, .wma or .wmv.
func HasASFExtension(path string) bool {
	return types.HasASFExtension(path)
}
