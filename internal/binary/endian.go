package binary

import "encoding/binary"

// Unsigned is the set of fixed-width integers the readers decode.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// SizeOf returns the encoded width of T in bytes.
func SizeOf[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// DecodeLE decodes a little-endian T from the start of b.
// b must hold at least SizeOf[T]() bytes.
//
// Example:
//
//	channels := binary.DecodeLE[uint16](data[2:4])
func DecodeLE[T Unsigned](b []byte) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(b[0])
	case uint16:
		return T(binary.LittleEndian.Uint16(b))
	case uint32:
		return T(binary.LittleEndian.Uint32(b))
	default:
		return T(binary.LittleEndian.Uint64(b))
	}
}

// ReadLE reads a little-endian value of type T at the given offset.
//
// Example:
//
//	size, err := binary.ReadLE[uint64](sr, offset+16, "object size")
func ReadLE[T Unsigned](sr *SafeReader, off int64, what string) (T, error) {
	buf := make([]byte, SizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		var zero T
		return zero, err
	}
	return DecodeLE[T](buf), nil
}
