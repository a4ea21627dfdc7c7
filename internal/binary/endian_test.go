package binary

import (
	"bytes"
	"testing"
)

func TestSizeOf(t *testing.T) {
	if SizeOf[uint8]() != 1 || SizeOf[uint16]() != 2 || SizeOf[uint32]() != 4 || SizeOf[uint64]() != 8 {
		t.Error("SizeOf returned wrong widths")
	}
}

func TestDecodeLE(t *testing.T) {
	data := []byte{0xF0, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12}

	if got := DecodeLE[uint8](data); got != 0xF0 {
		t.Errorf("uint8 = 0x%X", got)
	}
	if got := DecodeLE[uint16](data); got != 0xDEF0 {
		t.Errorf("uint16 = 0x%X", got)
	}
	if got := DecodeLE[uint32](data); got != 0x9ABCDEF0 {
		t.Errorf("uint32 = 0x%X", got)
	}
	if got := DecodeLE[uint64](data); got != 0x123456789ABCDEF0 {
		t.Errorf("uint64 = 0x%X", got)
	}
}

func TestReadLE(t *testing.T) {
	data := []byte{0x00, 0x34, 0x12, 0x00}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.wma")

	val, err := ReadLE[uint16](sr, 1, "test uint16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%04x", val)
	}

	if _, err := ReadLE[uint32](sr, 2, "too long"); err == nil {
		t.Error("expected error for read past end")
	}
}

func BenchmarkDecodeLE_Uint32(b *testing.B) {
	data := []byte{0x78, 0x56, 0x34, 0x12}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DecodeLE[uint32](data)
	}
}
