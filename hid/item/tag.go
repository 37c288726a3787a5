package item

import (
	"fmt"
	"strings"
)

// Kind classifies an item tag (HID 1.11 section 6.2.2.2). Main items emit
// structural elements, Global items mutate the persistent register set,
// and Local items accumulate state that resets after the next Main item.
type Kind uint8

// Item kinds, from bits 2..3 of the short item prefix.
const (
	KindMain Kind = iota
	KindGlobal
	KindLocal
	KindReserved
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMain:
		return "Main"
	case KindGlobal:
		return "Global"
	case KindLocal:
		return "Local"
	case KindReserved:
		return "Reserved"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Tag identifies a short item: the prefix byte with its size bits
// cleared. The kind bits stay part of the value, so tags are unique
// across all three kinds and [Tag.Kind] is derived rather than stored.
type Tag uint8

// Main item tags (HID 1.11 section 6.2.2.4).
const (
	TagInput         Tag = 0x80
	TagOutput        Tag = 0x90
	TagCollection    Tag = 0xA0
	TagFeature       Tag = 0xB0
	TagEndCollection Tag = 0xC0
)

// Global item tags (HID 1.11 section 6.2.2.7).
const (
	TagUsagePage       Tag = 0x04
	TagLogicalMinimum  Tag = 0x14
	TagLogicalMaximum  Tag = 0x24
	TagPhysicalMinimum Tag = 0x34
	TagPhysicalMaximum Tag = 0x44
	TagUnitExponent    Tag = 0x54
	TagUnit            Tag = 0x64
	TagReportSize      Tag = 0x74
	TagReportID        Tag = 0x84
	TagReportCount     Tag = 0x94
	TagPush            Tag = 0xA4
	TagPop             Tag = 0xB4
)

// Local item tags (HID 1.11 section 6.2.2.8).
const (
	TagUsage             Tag = 0x08
	TagUsageMinimum      Tag = 0x18
	TagUsageMaximum      Tag = 0x28
	TagDesignatorIndex   Tag = 0x38
	TagDesignatorMinimum Tag = 0x48
	TagDesignatorMaximum Tag = 0x58
	TagStringIndex       Tag = 0x78
	TagStringMinimum     Tag = 0x88
	TagStringMaximum     Tag = 0x98
	TagDelimiter         Tag = 0xA8
)

// TagLong is the long item escape prefix (6.2.2.3) with its size bits
// cleared. Items carrying it set [Item.Long]; the real tag of a long
// item travels in [Item.LongTag].
const TagLong Tag = 0xFC

// Kind extracts the item kind from bits 2..3 of the tag.
func (t Tag) Kind() Kind {
	return Kind(t >> 2 & 3)
}

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case TagInput:
		return "Input"
	case TagOutput:
		return "Output"
	case TagCollection:
		return "Collection"
	case TagFeature:
		return "Feature"
	case TagEndCollection:
		return "EndCollection"
	case TagUsagePage:
		return "UsagePage"
	case TagLogicalMinimum:
		return "LogicalMinimum"
	case TagLogicalMaximum:
		return "LogicalMaximum"
	case TagPhysicalMinimum:
		return "PhysicalMinimum"
	case TagPhysicalMaximum:
		return "PhysicalMaximum"
	case TagUnitExponent:
		return "UnitExponent"
	case TagUnit:
		return "Unit"
	case TagReportSize:
		return "ReportSize"
	case TagReportID:
		return "ReportID"
	case TagReportCount:
		return "ReportCount"
	case TagPush:
		return "Push"
	case TagPop:
		return "Pop"
	case TagUsage:
		return "Usage"
	case TagUsageMinimum:
		return "UsageMinimum"
	case TagUsageMaximum:
		return "UsageMaximum"
	case TagDesignatorIndex:
		return "DesignatorIndex"
	case TagDesignatorMinimum:
		return "DesignatorMinimum"
	case TagDesignatorMaximum:
		return "DesignatorMaximum"
	case TagStringIndex:
		return "StringIndex"
	case TagStringMinimum:
		return "StringMinimum"
	case TagStringMaximum:
		return "StringMaximum"
	case TagDelimiter:
		return "Delimiter"
	default:
		return fmt.Sprintf("%s(0x%02X)", t.Kind(), uint8(t))
	}
}

// CollectionType is the data byte of a Collection item (HID 1.11 section
// 6.2.2.6).
type CollectionType uint8

// Collection types.
const (
	CollectionPhysical      CollectionType = 0x00
	CollectionApplication   CollectionType = 0x01
	CollectionLogical       CollectionType = 0x02
	CollectionReport        CollectionType = 0x03
	CollectionNamedArray    CollectionType = 0x04
	CollectionUsageSwitch   CollectionType = 0x05
	CollectionUsageModifier CollectionType = 0x06
)

// String returns the collection type name. Values 0x80 and above are
// vendor-defined.
func (c CollectionType) String() string {
	switch c {
	case CollectionPhysical:
		return "Physical"
	case CollectionApplication:
		return "Application"
	case CollectionLogical:
		return "Logical"
	case CollectionReport:
		return "Report"
	case CollectionNamedArray:
		return "NamedArray"
	case CollectionUsageSwitch:
		return "UsageSwitch"
	case CollectionUsageModifier:
		return "UsageModifier"
	}
	if c >= 0x80 {
		return fmt.Sprintf("Vendor(0x%02X)", uint8(c))
	}
	return fmt.Sprintf("Reserved(0x%02X)", uint8(c))
}

// MainFlags is the data value of an Input, Output, or Feature item,
// interpreted as the bitfield of HID 1.11 section 6.2.2.5.
type MainFlags uint32

// Main item data bits. Each names the flag set when the bit is 1; the
// zero state is the first of each pair in the HID tables (Data, Array,
// Absolute, ...).
const (
	FlagConstant      MainFlags = 1 << 0
	FlagVariable      MainFlags = 1 << 1
	FlagRelative      MainFlags = 1 << 2
	FlagWrap          MainFlags = 1 << 3
	FlagNonLinear     MainFlags = 1 << 4
	FlagNoPreferred   MainFlags = 1 << 5
	FlagNullState     MainFlags = 1 << 6
	FlagVolatile      MainFlags = 1 << 7
	FlagBufferedBytes MainFlags = 1 << 8
)

// IsConstant reports whether the field is constant, for example pad bits;
// a constant field never carries device data.
func (f MainFlags) IsConstant() bool { return f&FlagConstant != 0 }

// IsData reports whether the field carries device data.
func (f MainFlags) IsData() bool { return f&FlagConstant == 0 }

// IsVariable reports whether each report position is a dedicated field.
// The alternative is an array, where each position holds the index of a
// currently asserted usage; keyboards use arrays so that only pressed
// keys occupy report space.
func (f MainFlags) IsVariable() bool { return f&FlagVariable != 0 }

// IsArray reports whether positions hold indices of asserted usages.
func (f MainFlags) IsArray() bool { return f&FlagVariable == 0 }

// IsRelative reports whether values express the change since the last
// report, as mouse motion does, rather than an absolute position, as a
// tablet reports.
func (f MainFlags) IsRelative() bool { return f&FlagRelative != 0 }

// IsAbsolute reports whether values are absolute positions.
func (f MainFlags) IsAbsolute() bool { return f&FlagRelative == 0 }

// IsWrap reports whether values roll over at the extent of their range.
func (f MainFlags) IsWrap() bool { return f&FlagWrap != 0 }

// IsNonLinear reports whether the mapping from raw values to the
// measured quantity has been processed, as with joystick dead zones or
// acceleration curves.
func (f MainFlags) IsNonLinear() bool { return f&FlagNonLinear != 0 }

// IsNoPreferred reports whether the control lacks a preferred state that
// it returns to when the user stops interacting with it; a toggle switch
// rather than a push button.
func (f MainFlags) IsNoPreferred() bool { return f&FlagNoPreferred != 0 }

// IsNullState reports whether the control has a state in which it sends
// no meaningful data, as a hat switch does when not pressed.
func (f MainFlags) IsNullState() bool { return f&FlagNullState != 0 }

// IsVolatile reports whether an output control can change value without
// host interaction.
func (f MainFlags) IsVolatile() bool { return f&FlagVolatile != 0 }

// IsBufferedBytes reports whether the field is a stream of bytes rather
// than a bitfield, as a bar code reader emits.
func (f MainFlags) IsBufferedBytes() bool { return f&FlagBufferedBytes != 0 }

// String renders the flags in the conventional short form, for example
// "Data,Var,Abs" or "Cnst,Ary,Abs,Wrap".
func (f MainFlags) String() string {
	parts := make([]string, 0, 4)
	if f.IsConstant() {
		parts = append(parts, "Cnst")
	} else {
		parts = append(parts, "Data")
	}
	if f.IsVariable() {
		parts = append(parts, "Var")
	} else {
		parts = append(parts, "Ary")
	}
	if f.IsRelative() {
		parts = append(parts, "Rel")
	} else {
		parts = append(parts, "Abs")
	}
	if f.IsWrap() {
		parts = append(parts, "Wrap")
	}
	if f.IsNonLinear() {
		parts = append(parts, "NonLin")
	}
	if f.IsNoPreferred() {
		parts = append(parts, "NoPref")
	}
	if f.IsNullState() {
		parts = append(parts, "Null")
	}
	if f.IsVolatile() {
		parts = append(parts, "Vol")
	}
	if f.IsBufferedBytes() {
		parts = append(parts, "Buf")
	}
	return strings.Join(parts, ",")
}
