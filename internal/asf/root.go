package asf

import (
	"fmt"

	"github.com/simonhull/asfmeta/internal/binary"
	"github.com/simonhull/asfmeta/internal/registry"
	"github.com/simonhull/asfmeta/internal/types"
)

// ReadRoot reads and validates the 30-byte preamble of the top-level
// header object.
//
// It fails with *types.FormatError when the GUID is not the header GUID,
// when the declared size exceeds the input, or when the declared size is
// too small to hold the preamble itself.
func ReadRoot(sr *binary.SafeReader) (*types.RootObject, error) {
	path := sr.Path()

	id, err := sr.ReadGUID(0, "header object GUID")
	if err != nil {
		return nil, &types.FormatError{Path: path, Reason: "doesn't appear to have a valid ASF header", Err: err}
	}

	name, ok := registry.Name(id)
	if !ok {
		return nil, &types.FormatError{Path: path, Reason: "doesn't appear to have a valid ASF header", Err: &types.UnknownTypeError{GUID: id}}
	}
	if name != registry.HeaderObject {
		return nil, &types.FormatError{Path: path, Reason: fmt.Sprintf("file starts with %s instead of %s", name, registry.HeaderObject)}
	}

	preamble := make([]byte, types.RootHeaderSize-types.GUIDSize)
	if err := sr.ReadAt(preamble, types.GUIDSize, "header preamble"); err != nil {
		return nil, &types.FormatError{Path: path, Offset: types.GUIDSize, Reason: "truncated header preamble", Err: err}
	}

	ch := binary.NewChain(binary.NewCursor(preamble, types.GUIDSize, path))
	size := binary.ReadChained[uint64](ch, "header object size")
	count := binary.ReadChained[uint32](ch, "header object count")
	reserved1 := binary.ReadChained[uint8](ch, "reserved1")
	reserved2 := binary.ReadChained[uint8](ch, "reserved2")
	if err := ch.Error(); err != nil {
		return nil, &types.FormatError{Path: path, Offset: types.GUIDSize, Reason: "truncated header preamble", Err: err}
	}

	if size > uint64(sr.Size()) {
		return nil, &types.FormatError{
			Path:   path,
			Offset: types.GUIDSize,
			Reason: fmt.Sprintf("header size %d reported larger than file size %d", size, sr.Size()),
		}
	}
	if size < types.RootHeaderSize {
		return nil, &types.FormatError{
			Path:   path,
			Offset: types.GUIDSize,
			Reason: fmt.Sprintf("header size %d smaller than the %d-byte preamble", size, types.RootHeaderSize),
		}
	}

	return &types.RootObject{
		HeaderObject: types.HeaderObject{
			Name:   name,
			ID:     id,
			Size:   size,
			Offset: 0,
		},
		ObjectCount: count,
		Reserved1:   reserved1,
		Reserved2:   reserved2,
	}, nil
}
