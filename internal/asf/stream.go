package asf

import (
	"fmt"
	"slices"

	"github.com/simonhull/asfmeta/internal/binary"
	"github.com/simonhull/asfmeta/internal/registry"
	"github.com/simonhull/asfmeta/internal/types"
)

// Stream properties flag bits.
const (
	streamNumberMask = 0x007F
	streamEncrypted  = 0x8000
)

// audioMediaSize is the fixed part of the audio format header.
const audioMediaSize = 16

// ParseStream decodes the Stream Properties object listed in h's catalog.
//
// It fails with *types.MissingObjectError when the header has none. It
// reads only h.Payload, so repeated calls return equal results.
func ParseStream(h *types.Header, path string) (*types.StreamInfo, error) {
	body, err := objectBody(h, registry.StreamProperties, path)
	if err != nil {
		return nil, err
	}

	ch := binary.NewChain(body)
	typeID := ch.GUID("stream type")
	ecID := ch.GUID("error correction type")
	timeOffset := binary.ReadChained[uint64](ch, "time offset")
	typeLen := binary.ReadChained[uint32](ch, "type-specific data length")
	ecLen := binary.ReadChained[uint32](ch, "error correction data length")
	flags := binary.ReadChained[uint16](ch, "flags")
	ch.Skip(4, "reserved")
	if err := ch.Error(); err != nil {
		return nil, streamError(path, body, err)
	}

	if uint64(typeLen)+uint64(ecLen) > uint64(body.Remaining()) {
		return nil, &types.FormatError{
			Path:   path,
			Offset: body.AbsOffset(),
			Reason: fmt.Sprintf("stream data lengths %d+%d exceed the %d bytes left in %s",
				typeLen, ecLen, body.Remaining(), registry.StreamProperties),
		}
	}

	typeData := ch.Bytes(int(typeLen), "type-specific data")
	ecData := ch.Bytes(int(ecLen), "error correction data")
	if err := ch.Error(); err != nil {
		return nil, streamError(path, body, err)
	}

	info := &types.StreamInfo{
		TypeID:              typeID,
		TypeName:            registry.NameOrUnknown(typeID),
		ErrorCorrectionID:   ecID,
		ErrorCorrectionName: registry.NameOrUnknown(ecID),
		TimeOffset:          timeOffset,
		TypeDataLength:      typeLen,
		ErrorDataLength:     ecLen,
		StreamNumber:        uint8(flags & streamNumberMask),
		Encrypted:           flags&streamEncrypted != 0,
		TypeSpecificData:    slices.Clone(typeData),
		ErrorCorrectionData: slices.Clone(ecData),
	}

	if info.TypeName == registry.AudioMedia {
		info.Audio = DecodeAudioMedia(info.TypeSpecificData)
	}

	return info, nil
}

// DecodeAudioMedia decodes the start of an audio stream's type-specific
// data. It returns nil when fewer than 16 bytes are available.
func DecodeAudioMedia(data []byte) *types.AudioMedia {
	if len(data) < audioMediaSize {
		return nil
	}

	return &types.AudioMedia{
		CodecID:       binary.DecodeLE[uint16](data[0:2]),
		Channels:      binary.DecodeLE[uint16](data[2:4]),
		SampleRate:    binary.DecodeLE[uint32](data[4:8]),
		Bitrate:       uint64(binary.DecodeLE[uint32](data[8:12])) * 8,
		BlockAlign:    binary.DecodeLE[uint16](data[12:14]),
		BitsPerSample: binary.DecodeLE[uint16](data[14:16]),
	}
}

// StreamType returns the name of the stream type declared by the Stream
// Properties object, without decoding the rest of it.
func StreamType(h *types.Header) (string, bool) {
	body, err := objectBody(h, registry.StreamProperties, "")
	if err != nil {
		return "", false
	}
	id, err := body.ReadGUID("stream type")
	if err != nil {
		return "", false
	}
	return registry.NameOrUnknown(id), true
}

// objectBody returns a cursor over the body of the catalog entry name,
// located through its recorded file offset.
func objectBody(h *types.Header, name, path string) (*binary.Cursor, error) {
	obj, ok := h.Objects[name]
	if !ok {
		return nil, &types.MissingObjectError{Name: name}
	}
	base := obj.Base()

	c := binary.NewCursor(h.Payload, types.RootHeaderSize, path)
	start := int64(base.Offset) - types.RootHeaderSize + types.ObjectHeaderSize
	if base.Offset < types.RootHeaderSize || start > int64(c.Len()) {
		return nil, &types.FormatError{
			Path:   path,
			Offset: int64(base.Offset),
			Reason: fmt.Sprintf("%s offset %d is outside the header", name, base.Offset),
		}
	}
	if err := c.Seek(int(start), name); err != nil {
		return nil, streamError(path, c, err)
	}

	body, err := c.Sub(int(base.Size-types.ObjectHeaderSize), name)
	if err != nil {
		return nil, streamError(path, c, err)
	}
	return body, nil
}

func streamError(path string, c *binary.Cursor, err error) error {
	return &types.FormatError{
		Path:   path,
		Offset: c.AbsOffset(),
		Reason: "cannot parse " + registry.StreamProperties,
		Err:    err,
	}
}
