package types

import "strings"

// Format represents the detected container flavour.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatASF is an ASF file whose stream type could not be determined.
	FormatASF
	// FormatWMA is an ASF file whose first stream is audio.
	FormatWMA
	// FormatWMV is an ASF file whose first stream is video.
	FormatWMV
)

func (f Format) String() string {
	switch f {
	case FormatASF:
		return "ASF"
	case FormatWMA:
		return "WMA"
	case FormatWMV:
		return "WMV"
	default:
		return "Unknown"
	}
}

// MarshalText encodes f by name.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText decodes a name written by MarshalText. Unrecognized names
// decode to FormatUnknown.
func (f *Format) UnmarshalText(b []byte) error {
	switch string(b) {
	case "ASF":
		*f = FormatASF
	case "WMA":
		*f = FormatWMA
	case "WMV":
		*f = FormatWMV
	default:
		*f = FormatUnknown
	}
	return nil
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatASF:
		return []string{".asf"}
	case FormatWMA:
		return []string{".wma"}
	case FormatWMV:
		return []string{".wmv"}
	default:
		return nil
	}
}

// HasASFExtension reports whether name ends in an extension used by any
// ASF flavour. The comparison is case-insensitive.
func HasASFExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, f := range []Format{FormatASF, FormatWMA, FormatWMV} {
		for _, ext := range f.Extensions() {
			if strings.HasSuffix(lower, ext) {
				return true
			}
		}
	}
	return false
}
