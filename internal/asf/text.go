package asf

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// fileTimeEpochDelta is the number of 100ns ticks between 1601-01-01 and
// 1970-01-01.
const fileTimeEpochDelta = 116444736000000000

// ticksPerSecond is the number of 100ns ticks in a second.
const ticksPerSecond = 10000000

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16LE decodes a UTF-16LE string. NUL characters and invalid
// sequences are dropped; input the decoder rejects yields "".
func DecodeUTF16LE(b []byte) string {
	s, _ := decodeText(b)
	return s
}

// decodeText is DecodeUTF16LE that also reports whether the input was
// well formed.
func decodeText(b []byte) (string, bool) {
	if len(b) == 0 {
		return "", true
	}

	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}

	valid := true
	s := strings.Map(func(r rune) rune {
		switch r {
		case 0:
			return -1
		case utf8.RuneError:
			valid = false
			return -1
		}
		return r
	}, string(out))

	return s, valid
}

// FileTimeToUnix converts a FILETIME tick count to a Unix timestamp in
// seconds, truncating toward zero.
func FileTimeToUnix(ticks uint64) int64 {
	if ticks >= fileTimeEpochDelta {
		return int64((ticks - fileTimeEpochDelta) / ticksPerSecond)
	}
	return -int64((fileTimeEpochDelta - ticks) / ticksPerSecond)
}

// FormatCreation renders a Unix timestamp in UTC using the C locale "%c"
// layout, e.g. "Sat Jan  1 00:00:00 2000".
func FormatCreation(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(time.ANSIC)
}
