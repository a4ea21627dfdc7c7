package asfmeta

import (
	"github.com/simonhull/asfmeta/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
type UnsupportedFormatError = types.UnsupportedFormatError

// FormatError is an alias to types.FormatError.
type FormatError = types.FormatError

// UnknownTypeError is an alias to types.UnknownTypeError.
type UnknownTypeError = types.UnknownTypeError

// MissingObjectError is an alias to types.MissingObjectError.
type MissingObjectError = types.MissingObjectError

// InvalidGUIDError is an alias to types.InvalidGUIDError.
type InvalidGUIDError = types.InvalidGUIDError

// Warning is an alias to types.Warning.
type Warning = types.Warning

// Sentinels matched by errors.Is.
var (
	ErrFormat        = types.ErrFormat
	ErrMissingObject = types.ErrMissingObject
)
