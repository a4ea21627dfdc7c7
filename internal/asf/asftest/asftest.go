// Package asftest synthesizes ASF headers for tests and examples.
//
// Builders return raw object bytes that can be concatenated in any order
// and wrapped with Header. Nothing here validates its input, so malformed
// headers are as easy to build as well-formed ones.
package asftest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"github.com/simonhull/asfmeta/internal/binary"
	"github.com/simonhull/asfmeta/internal/registry"
	"github.com/simonhull/asfmeta/internal/types"
)

// Descriptor value types.
const (
	TypeUnicode = 0
	TypeBytes   = 1
	TypeBool    = 2
	TypeDWORD   = 3
	TypeQWORD   = 4
	TypeWORD    = 5
)

// writer wraps SafeWriter over a bytes.Buffer, which never fails.
type writer struct {
	buf bytes.Buffer
	sw  *binary.SafeWriter
}

func newWriter() *writer {
	w := &writer{}
	w.sw = binary.NewSafeWriter(&w.buf)
	return w
}

func (w *writer) bytes(b []byte)    { must(w.sw.WriteBytes(b)) }
func (w *writer) guid(g types.GUID) { must(w.sw.WriteGUID(g)) }
func (w *writer) u8(v uint8)        { must(binary.WriteLE(w.sw, v)) }
func (w *writer) u16(v uint16)      { must(binary.WriteLE(w.sw, v)) }
func (w *writer) u32(v uint32)      { must(binary.WriteLE(w.sw, v)) }
func (w *writer) u64(v uint64)      { must(binary.WriteLE(w.sw, v)) }
func (w *writer) result() []byte    { return w.buf.Bytes() }

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Header wraps objects in a header object whose count and size match them.
func Header(objects ...[]byte) []byte {
	return HeaderWithCount(uint32(len(objects)), objects...)
}

// HeaderWithCount is Header with an explicit object count.
func HeaderWithCount(count uint32, objects ...[]byte) []byte {
	size := uint64(types.RootHeaderSize)
	for _, o := range objects {
		size += uint64(len(o))
	}
	return RawHeader(registry.MustLookup(registry.HeaderObject), size, count, objects...)
}

// RawHeader writes a header preamble with arbitrary fields followed by
// objects.
func RawHeader(id types.GUID, size uint64, count uint32, objects ...[]byte) []byte {
	w := newWriter()
	w.guid(id)
	w.u64(size)
	w.u32(count)
	w.u8(1)
	w.u8(2)
	for _, o := range objects {
		w.bytes(o)
	}
	return w.result()
}

// Object frames body as the object registered under name.
func Object(name string, body []byte) []byte {
	return ObjectGUID(registry.MustLookup(name), body)
}

// ObjectGUID frames body with an arbitrary GUID.
func ObjectGUID(id types.GUID, body []byte) []byte {
	return ObjectSized(id, uint64(types.ObjectHeaderSize+len(body)), body)
}

// ObjectSized frames body with an explicit declared size.
func ObjectSized(id types.GUID, size uint64, body []byte) []byte {
	w := newWriter()
	w.guid(id)
	w.u64(size)
	w.bytes(body)
	return w.result()
}

// UTF16 encodes s as NUL-terminated UTF-16LE.
func UTF16(s string) []byte {
	b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	must(err)
	return append(b, 0, 0)
}

// FileProperties holds the fields of a File Properties object.
type FileProperties struct {
	FileID        types.GUID
	FileSize      uint64
	CreationDate  uint64
	DataPackets   uint64
	PlayDuration  uint64
	SendDuration  uint64
	Preroll       uint64
	Flags         uint32
	MinPacketSize uint32
	MaxPacketSize uint32
	MaxBitrate    uint32
}

// Object encodes p as a File Properties object.
func (p FileProperties) Object() []byte {
	w := newWriter()
	w.guid(p.FileID)
	w.u64(p.FileSize)
	w.u64(p.CreationDate)
	w.u64(p.DataPackets)
	w.u64(p.PlayDuration)
	w.u64(p.SendDuration)
	w.u64(p.Preroll)
	w.u32(p.Flags)
	w.u32(p.MinPacketSize)
	w.u32(p.MaxPacketSize)
	w.u32(p.MaxBitrate)
	return Object(registry.FileProperties, w.result())
}

// ContentDescription encodes the five fixed strings. Empty strings are
// stored with zero length.
func ContentDescription(title, author, copyright, description, rating string) []byte {
	fields := []string{title, author, copyright, description, rating}
	encoded := make([][]byte, len(fields))

	w := newWriter()
	for i, f := range fields {
		if f != "" {
			encoded[i] = UTF16(f)
		}
		w.u16(uint16(len(encoded[i])))
	}
	for _, e := range encoded {
		w.bytes(e)
	}
	return Object(registry.ContentDescription, w.result())
}

// Descriptor is one extended content description attribute.
type Descriptor struct {
	Name  string
	Type  uint16
	Value []byte
}

// Text returns a Unicode descriptor.
func Text(name, value string) Descriptor {
	return Descriptor{Name: name, Type: TypeUnicode, Value: UTF16(value)}
}

// DWORD returns a 32-bit integer descriptor.
func DWORD(name string, v uint32) Descriptor {
	w := newWriter()
	w.u32(v)
	return Descriptor{Name: name, Type: TypeDWORD, Value: w.result()}
}

// QWORD returns a 64-bit integer descriptor.
func QWORD(name string, v uint64) Descriptor {
	w := newWriter()
	w.u64(v)
	return Descriptor{Name: name, Type: TypeQWORD, Value: w.result()}
}

// WORD returns a 16-bit integer descriptor.
func WORD(name string, v uint16) Descriptor {
	w := newWriter()
	w.u16(v)
	return Descriptor{Name: name, Type: TypeWORD, Value: w.result()}
}

// Bool returns a boolean descriptor.
func Bool(name string, v bool) Descriptor {
	var n uint32
	if v {
		n = 1
	}
	d := DWORD(name, n)
	d.Type = TypeBool
	return d
}

// ExtendedContentDescription encodes ds in order.
func ExtendedContentDescription(ds ...Descriptor) []byte {
	w := newWriter()
	w.u16(uint16(len(ds)))
	for _, d := range ds {
		name := UTF16(d.Name)
		w.u16(uint16(len(name)))
		w.bytes(name)
		w.u16(d.Type)
		w.u16(uint16(len(d.Value)))
		w.bytes(d.Value)
	}
	return Object(registry.ExtendedContentDescription, w.result())
}

// StreamProperties holds the fields of a Stream Properties object.
type StreamProperties struct {
	Type            string
	ErrorCorrection string
	TimeOffset      uint64
	Flags           uint16
	TypeData        []byte
	ErrorData       []byte
}

// Object encodes p as a Stream Properties object.
func (p StreamProperties) Object() []byte {
	typeName := p.Type
	if typeName == "" {
		typeName = registry.AudioMedia
	}
	ecName := p.ErrorCorrection
	if ecName == "" {
		ecName = registry.NoErrorCorrection
	}

	w := newWriter()
	w.guid(registry.MustLookup(typeName))
	w.guid(registry.MustLookup(ecName))
	w.u64(p.TimeOffset)
	w.u32(uint32(len(p.TypeData)))
	w.u32(uint32(len(p.ErrorData)))
	w.u16(p.Flags)
	w.u32(0)
	w.bytes(p.TypeData)
	w.bytes(p.ErrorData)
	return Object(registry.StreamProperties, w.result())
}

// AudioFormat encodes the fixed part of an audio stream format header.
// bytesPerSec is the stored average byte rate.
func AudioFormat(codec, channels uint16, sampleRate, bytesPerSec uint32, blockAlign, bitsPerSample uint16) []byte {
	w := newWriter()
	w.u16(codec)
	w.u16(channels)
	w.u32(sampleRate)
	w.u32(bytesPerSec)
	w.u16(blockAlign)
	w.u16(bitsPerSample)
	return w.result()
}

// Encryption returns an empty Content Encryption object.
func Encryption() []byte {
	return Object(registry.ContentEncryption, nil)
}

// ExtendedEncryption returns an Extended Content Encryption object.
func ExtendedEncryption(data []byte) []byte {
	w := newWriter()
	w.u32(uint32(len(data)))
	w.bytes(data)
	return Object(registry.ExtendedContentEncryption, w.result())
}

// Sample returns a small but complete WMA header with every decoded
// object type present.
func Sample() []byte {
	return Header(
		FileProperties{
			FileSize:     4096,
			CreationDate: 125911584000000000,
			DataPackets:  10,
			PlayDuration: 2150000000,
			Preroll:      3000,
			Flags:        0x02,
			MaxBitrate:   128000,
		}.Object(),
		ContentDescription("Song", "Artist", "", "", ""),
		ExtendedContentDescription(
			Text("WM/AlbumTitle", "Album"),
			DWORD("WM/TrackNumber", 3),
			Text("WM/EncodingSettings", "Lavf"),
			Bool("IsVBR", false),
		),
		StreamProperties{
			TypeData: AudioFormat(0x0161, 2, 44100, 16000, 2973, 16),
			Flags:    1,
		}.Object(),
	)
}

// WriteFile stores data in a temporary file and returns its path.
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}

// UnknownGUID returns a GUID made of seed repeated, which no registered
// object uses.
func UnknownGUID(seed byte) types.GUID {
	var g types.GUID
	for i := range g {
		g[i] = seed
	}
	return g
}
