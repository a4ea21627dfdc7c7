// Package types provides core data structures for ASF header metadata.
//
// This package defines the GUID, Value, header object, stream and error
// types shared by the parser packages and re-exported by package asfmeta.
package types

// RootHeaderSize is the size of the fixed preamble of the top-level
// header object: GUID, size, object count and two reserved bytes.
const RootHeaderSize = 30

// ObjectHeaderSize is the size of the GUID and size fields that start
// every header sub-object.
const ObjectHeaderSize = 24

// Object is an entry in the header object catalog.
type Object interface {
	// Base returns the fields common to every header object.
	Base() HeaderObject
}

// HeaderObject describes one object found in the header.
type HeaderObject struct {
	Name   string `json:"name"`
	ID     GUID   `json:"guid"`
	Size   uint64 `json:"size"`
	Offset uint64 `json:"offset"`
}

// Base implements Object.
func (o HeaderObject) Base() HeaderObject { return o }

// RootObject is the top-level header object. It is the only object that
// carries a sub-object count and the two reserved bytes.
type RootObject struct {
	HeaderObject
	ObjectCount uint32 `json:"object_count"`
	Reserved1   uint8  `json:"reserved1"`
	Reserved2   uint8  `json:"reserved2"`
}

// Header is the result of decoding a header.
//
// It is built once by a single parse and is read-only afterwards.
type Header struct {
	// Info holds file properties and extended attributes that are not tags.
	Info Values

	// Tags holds descriptive metadata (title, author, album, genre, ...).
	Tags Values

	// Objects is the header object catalog keyed by object name. When an
	// object type repeats, the last one wins.
	Objects map[string]Object

	// Root is the top-level header object, also present in Objects.
	Root *RootObject

	// Warnings collects non-fatal issues.
	Warnings []Warning

	// Payload is the header body following the 30-byte preamble. It is
	// kept so stream properties can be decoded on demand.
	Payload []byte

	// DRM is set when an encryption object is present.
	DRM bool
}

// NewHeader returns an empty Header with initialized maps.
func NewHeader() *Header {
	return &Header{
		Info:    Values{},
		Tags:    Values{},
		Objects: map[string]Object{},
	}
}
