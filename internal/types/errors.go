package types

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	// ErrFormat matches any *FormatError.
	ErrFormat = errors.New("invalid ASF header")

	// ErrMissingObject matches any *MissingObjectError.
	ErrMissingObject = errors.New("header object not found")
)

// OutOfBoundsError is returned when a read would run past the end of the
// available data.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// UnsupportedFormatError is returned when the input is not an ASF file.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// FormatError is returned when the header structure is invalid.
//
// A FormatError is always fatal: no partial result accompanies it.
// Err holds the underlying cause (for example an *OutOfBoundsError or
// an *UnknownTypeError) when there is one.
type FormatError struct {
	Err    error
	Path   string
	Reason string
	Offset int64
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("invalid ASF header at offset %d: %s", e.Offset, e.Reason)
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// UnknownTypeError reports a GUID that is not in the object registry.
type UnknownTypeError struct {
	GUID GUID
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown GUID: %s", e.GUID)
}

// MissingObjectError is returned when an operation needs a header object
// that the file does not contain.
type MissingObjectError struct {
	Name string
}

func (e *MissingObjectError) Error() string {
	return fmt.Sprintf("no %s found", e.Name)
}

// Is reports whether target is ErrMissingObject.
func (e *MissingObjectError) Is(target error) bool { return target == ErrMissingObject }

// InvalidGUIDError is returned when a GUID is built from the wrong number of bytes.
type InvalidGUIDError struct {
	Length int
}

func (e *InvalidGUIDError) Error() string {
	return fmt.Sprintf("invalid GUID byte string length: %d", e.Length)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Examples include sub-objects with an unregistered GUID and text fields
// that are not valid UTF-16.
type Warning struct {
	// Stage where the warning occurred ("header", "content", "stream")
	Stage string

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
