package asf

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/simonhull/asfmeta/internal/binary"
	"github.com/simonhull/asfmeta/internal/types"
)

// contentFields lists the Content Description strings in stored order.
var contentFields = [...]string{"Title", "Author", "Copyright", "Description", "Rating"}

// decodeContentDescription decodes the five fixed descriptive strings into
// Tags. Empty fields are left out.
func decodeContentDescription(s *state, c *binary.Cursor) error {
	var lengths [len(contentFields)]uint16

	ch := binary.NewChain(c)
	for i, field := range contentFields {
		lengths[i] = binary.ReadChained[uint16](ch, field+" length")
	}
	if err := ch.Error(); err != nil {
		return err
	}

	for i, field := range contentFields {
		if lengths[i] == 0 {
			continue
		}
		offset := c.AbsOffset()
		raw, err := c.ReadBytes(int(lengths[i]), field)
		if err != nil {
			return err
		}
		s.header.Tags[field] = types.Text(s.text(raw, field, offset))
		s.log.Debug("content description", "field", field, "value", s.header.Tags[field])
	}

	return nil
}

// Extended content descriptor value types.
const (
	valueUnicode = 0
	valueBytes   = 1
	valueBool    = 2
	valueDWORD   = 3
	valueQWORD   = 4
	valueWORD    = 5
)

// namePrefixWM is the Windows Media attribute namespace.
const namePrefixWM = "WM/"

// Destination is the map an extended attribute is stored in.
type Destination int

const (
	// DestInfo stores the attribute in Info.
	DestInfo Destination = iota
	// DestTags stores the attribute in Tags.
	DestTags
)

// tagPattern matches attribute names that carry descriptive tags. It is a
// substring match on the raw name, so "WM/AlbumArtistSortOrder" is a tag
// as well.
var tagPattern = regexp.MustCompile(`(TrackNumber|AlbumTitle|AlbumArtist|Genre|Year|Composer|Mood|Lyrics|BeatsPerMinute)`)

// Classify decides where an extended attribute named name is stored.
func Classify(name string) Destination {
	if tagPattern.MatchString(name) {
		return DestTags
	}
	return DestInfo
}

// StripPrefix removes the WM/ namespace prefix from an attribute name.
func StripPrefix(name string) string {
	return strings.ReplaceAll(name, namePrefixWM, "")
}

type descriptor struct {
	name  string
	value types.Value
}

// decodeExtendedContentDescription decodes the name/value attribute list
// and files each attribute under Tags or Info.
func decodeExtendedContentDescription(s *state, c *binary.Cursor) error {
	count, err := binary.Read[uint16](c, "descriptor count")
	if err != nil {
		return err
	}

	// Later duplicates replace earlier ones but keep their position.
	var order []string
	byName := make(map[string]types.Value, count)

	for i := uint16(0); i < count; i++ {
		d, err := s.readDescriptor(c, i)
		if err != nil {
			return err
		}
		if _, seen := byName[d.name]; !seen {
			order = append(order, d.name)
		}
		byName[d.name] = d.value
	}

	for _, name := range order {
		key := StripPrefix(name)
		if Classify(name) == DestTags {
			s.header.Tags[key] = byName[name]
		} else {
			s.header.Info[key] = byName[name]
		}
	}

	return nil
}

func (s *state) readDescriptor(c *binary.Cursor, index uint16) (descriptor, error) {
	base := c.AbsOffset()

	nameLen, err := binary.Read[uint16](c, "descriptor name length")
	if err != nil {
		return descriptor{}, err
	}
	rawName, err := c.ReadBytes(int(nameLen), "descriptor name")
	if err != nil {
		return descriptor{}, err
	}
	name := s.text(rawName, fmt.Sprintf("descriptor %d name", index), base+2)

	ch := binary.NewChain(c)
	valueType := binary.ReadChained[uint16](ch, "descriptor value type")
	valueLen := binary.ReadChained[uint16](ch, "descriptor value length")
	raw := ch.Bytes(int(valueLen), "descriptor value")
	if err := ch.Error(); err != nil {
		return descriptor{}, err
	}

	value, err := s.decodeValue(valueType, raw, name, c.AbsOffset()-int64(valueLen))
	if err != nil {
		return descriptor{}, err
	}

	s.log.Debug("extended content descriptor",
		"base_offset", base,
		"name", name,
		"value_type", valueType,
		"value_length", valueLen,
		"value", value)

	return descriptor{name: name, value: value}, nil
}

// decodeValue converts a descriptor value according to its type tag.
// Unknown tags keep the raw bytes.
func (s *state) decodeValue(valueType uint16, raw []byte, name string, offset int64) (types.Value, error) {
	need := func(width int) error {
		if len(raw) < width {
			return &types.FormatError{
				Path:   s.path,
				Offset: offset,
				Reason: fmt.Sprintf("value of %s is %d bytes, type %d needs %d", name, len(raw), valueType, width),
			}
		}
		return nil
	}

	switch valueType {
	// Byte arrays are decoded as text too; in practice they hold strings.
	case valueUnicode, valueBytes:
		return types.Text(s.text(raw, name, offset)), nil
	case valueBool:
		if err := need(4); err != nil {
			return types.Value{}, err
		}
		return types.Bool(binary.DecodeLE[uint32](raw) != 0), nil
	case valueDWORD:
		if err := need(4); err != nil {
			return types.Value{}, err
		}
		return types.Uint(uint64(binary.DecodeLE[uint32](raw))), nil
	case valueQWORD:
		if err := need(8); err != nil {
			return types.Value{}, err
		}
		return types.Uint(binary.DecodeLE[uint64](raw)), nil
	case valueWORD:
		if err := need(2); err != nil {
			return types.Value{}, err
		}
		return types.Uint(uint64(binary.DecodeLE[uint16](raw))), nil
	default:
		return types.Bytes(raw), nil
	}
}
