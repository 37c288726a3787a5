package item

import (
	"encoding/binary"
	"fmt"
)

// Item is one decoded report descriptor item.
//
// Short items carry their value in Data, assembled little-endian from
// Size bytes (0, 1, 2, or 4). Long items set Long, carry their tag byte
// in LongTag, and keep their uninterpreted payload in Payload, which
// aliases the descriptor buffer rather than copying it; Data is zero for
// them. Offset is the position of the item's prefix byte within the
// descriptor. Items are immutable once produced.
type Item struct {
	Offset  int
	Tag     Tag
	Size    int
	Data    uint32
	Long    bool
	LongTag uint8
	Payload []byte
}

// Signed returns the data value sign-extended from its encoded width.
// Zero-size items decode to 0. The descriptor format encodes negative
// logical and physical bounds this way: the byte 0x81 in a 1-byte item
// means -127, not 129.
func (it Item) Signed() int32 {
	switch it.Size {
	case 1:
		return int32(int8(it.Data))
	case 2:
		return int32(int16(it.Data))
	}
	return int32(it.Data)
}

// UsagePage returns the explicit usage page of a 4-byte extended usage
// value, or zero when the item encodes only a 16-bit usage ID and defers
// to the global usage page.
func (it Item) UsagePage() uint16 {
	if it.Size == 4 {
		return uint16(it.Data >> 16)
	}
	return 0
}

// UsageID returns the usage ID half of the data value.
func (it Item) UsageID() uint16 {
	return uint16(it.Data)
}

// MarshalTo re-encodes the item into buf exactly as parsed: the same
// size class for short items, the 0xFE escape framing for long items.
// It returns the number of bytes written, or 0 if buf is too small.
func (it Item) MarshalTo(buf []byte) int {
	if it.Long {
		n := 3 + len(it.Payload)
		if len(buf) < n {
			return 0
		}
		buf[0] = longItemPrefix
		buf[1] = uint8(len(it.Payload))
		buf[2] = it.LongTag
		copy(buf[3:], it.Payload)
		return n
	}
	n := 1 + it.Size
	if len(buf) < n {
		return 0
	}
	buf[0] = uint8(it.Tag) | sizeBits(it.Size)
	switch it.Size {
	case 1:
		buf[1] = uint8(it.Data)
	case 2:
		binary.LittleEndian.PutUint16(buf[1:], uint16(it.Data))
	case 4:
		binary.LittleEndian.PutUint32(buf[1:], it.Data)
	}
	return n
}

// sizeBits maps a data length back to the size class of the prefix byte.
func sizeBits(size int) uint8 {
	switch size {
	case 1:
		return 1
	case 2:
		return 2
	case 4:
		return 3
	}
	return 0
}

// String renders the item for diagnostics, decoding the data value the
// way its tag interprets it.
func (it Item) String() string {
	if it.Long {
		return fmt.Sprintf("Long(0x%02X, %d bytes)", it.LongTag, len(it.Payload))
	}
	switch it.Tag {
	case TagInput, TagOutput, TagFeature:
		return fmt.Sprintf("%s(%s)", it.Tag, MainFlags(it.Data))
	case TagCollection:
		return fmt.Sprintf("%s(%s)", it.Tag, CollectionType(it.Data))
	case TagLogicalMinimum, TagLogicalMaximum, TagPhysicalMinimum, TagPhysicalMaximum:
		return fmt.Sprintf("%s(%d)", it.Tag, it.Signed())
	}
	if it.Size == 0 {
		return it.Tag.String()
	}
	return fmt.Sprintf("%s(0x%X)", it.Tag, it.Data)
}
