package types

import (
	"encoding/hex"
	"fmt"
)

// GUIDSize is the encoded size of a GUID.
const GUIDSize = 16

// GUID is a 16-byte object identifier as stored in the file.
//
// The textual form swaps the first three groups to big-endian order and
// keeps the last two groups as stored, so the bytes
// 30 26 B2 75 8E 66 CF 11 A6 D9 00 AA 00 62 CE 6C print as
// 75B22630-668E-11CF-A6D9-00AA0062CE6C.
type GUID [GUIDSize]byte

// GUIDFromBytes copies b into a GUID. b must be exactly 16 bytes long.
func GUIDFromBytes(b []byte) (GUID, error) {
	var g GUID
	if len(b) != GUIDSize {
		return g, &InvalidGUIDError{Length: len(b)}
	}
	copy(g[:], b)
	return g, nil
}

// ParseGUID parses the canonical hyphenated form produced by String.
func ParseGUID(s string) (GUID, error) {
	var g GUID
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return g, fmt.Errorf("malformed GUID %q", s)
	}

	raw, err := hex.DecodeString(s[0:8] + s[9:13] + s[14:18] + s[19:23] + s[24:36])
	if err != nil {
		return g, fmt.Errorf("malformed GUID %q: %w", s, err)
	}

	g[0], g[1], g[2], g[3] = raw[3], raw[2], raw[1], raw[0]
	g[4], g[5] = raw[5], raw[4]
	g[6], g[7] = raw[7], raw[6]
	copy(g[8:], raw[8:])
	return g, nil
}

// MustParseGUID is like ParseGUID but panics on error.
// It is intended for package-level tables of well-known identifiers.
func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String returns the canonical upper-case hyphenated form.
func (g GUID) String() string {
	return fmt.Sprintf("%02X%02X%02X%02X-%02X%02X-%02X%02X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		g[3], g[2], g[1], g[0],
		g[5], g[4],
		g[7], g[6],
		g[8], g[9],
		g[10], g[11], g[12], g[13], g[14], g[15])
}

// MarshalText implements encoding.TextMarshaler.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := ParseGUID(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
