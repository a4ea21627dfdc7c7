package binary

import (
	"encoding/binary"
	"io"

	"github.com/simonhull/asfmeta/internal/types"
)

// SafeWriter wraps io.Writer with position tracking.
//
// The library never writes ASF files; SafeWriter backs the fixture
// builders used to synthesize headers in tests and tools.
type SafeWriter struct {
	w      io.Writer
	offset int64
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	return err
}

// WriteGUID writes g in its stored byte order.
func (sw *SafeWriter) WriteGUID(g types.GUID) error {
	return sw.WriteBytes(g[:])
}

// WriteLE writes a value of type T in little-endian byte order.
func WriteLE[T Unsigned](sw *SafeWriter, val T) error {
	buf := make([]byte, SizeOf[T]())
	switch b := any(val).(type) {
	case uint8:
		buf[0] = b
	case uint16:
		binary.LittleEndian.PutUint16(buf, b)
	case uint32:
		binary.LittleEndian.PutUint32(buf, b)
	case uint64:
		binary.LittleEndian.PutUint64(buf, b)
	}
	return sw.WriteBytes(buf)
}
