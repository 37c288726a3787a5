package report

import (
	"fmt"

	"github.com/ardnew/usbdesc/hid/item"
	"github.com/ardnew/usbdesc/hid/usage"
	"github.com/ardnew/usbdesc/pkg"
)

// FieldType distinguishes the three report directions, matching the Main
// item kind that declared the field.
type FieldType uint8

// Report field types.
const (
	Input FieldType = iota
	Output
	Feature
)

// String returns the field type name.
func (t FieldType) String() string {
	switch t {
	case Input:
		return "Input"
	case Output:
		return "Output"
	case Feature:
		return "Feature"
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

// Field is one fixed-position value in a report payload. An Input, Output,
// or Feature item with report count N produces N consecutive fields, each
// ReportSize bits wide.
//
// Variable fields carry the concrete Usage assigned to their position.
// Array fields instead carry the UsageMinimum/UsageMaximum range that
// their runtime values index into.
type Field struct {
	// ReportID is the report the field belongs to, zero when Numbered is
	// false.
	ReportID uint8

	// Numbered reports whether a Report ID item was in effect, meaning
	// report payloads for this field are prefixed with an ID byte.
	Numbered bool

	Type  FieldType
	Flags item.MainFlags

	// BitOffset and BitWidth locate the field in the payload, counting
	// from bit 0 of the byte after any report ID prefix.
	BitOffset int
	BitWidth  int

	// UsagePage is the page in effect for the field: the page of its
	// assigned usage when one exists, else the global usage page at the
	// declaring Main item.
	UsagePage uint16

	// Usage is the usage assigned to a variable field. Zero when the
	// declaring item carried no usages, or for array fields.
	Usage usage.Usage

	// UsageMinimum and UsageMaximum bound the usages an array field can
	// report. Zero for variable fields.
	UsageMinimum usage.Usage
	UsageMaximum usage.Usage

	LogicalMinimum  int32
	LogicalMaximum  int32
	PhysicalMinimum int32
	PhysicalMaximum int32

	// UnitExponent is the signed base-10 exponent decoded from the unit
	// exponent nibble. Unit keeps the packed unit code as declared.
	UnitExponent int32
	Unit         uint32
}

// Extract reads the field's raw value from a report payload. The payload
// must not include a report ID prefix; use [Report.Extract] to strip and
// check it first.
//
// Bits are taken little-endian from BitOffset. Fields wider than 32 bits
// cannot be represented in the return value and fail with
// pkg.ErrInvalidParameter; a payload too short to cover the field fails
// with pkg.ErrOutOfBounds.
func (f *Field) Extract(payload []byte) (uint32, error) {
	if f.BitOffset < 0 || f.BitWidth < 0 || f.BitWidth > 32 {
		return 0, pkg.ErrInvalidParameter
	}
	start := f.BitOffset
	end := start + f.BitWidth
	first := start / 8
	last := (end + 7) / 8
	if last > len(payload) {
		return 0, pkg.ErrOutOfBounds
	}

	// The window spans at most 5 bytes (32 bits plus up to 7 bits of
	// leading misalignment), so a 64-bit accumulator cannot overflow.
	var v uint64
	for i, b := range payload[first:last] {
		v |= uint64(b) << (8 * i)
	}
	v >>= uint(start % 8)
	v &= 1<<uint(f.BitWidth) - 1
	return uint32(v), nil
}

// ExtractSigned reads the field's value sign-extended from BitWidth bits,
// for fields whose logical range is negative.
func (f *Field) ExtractSigned(payload []byte) (int32, error) {
	v, err := f.Extract(payload)
	if err != nil || f.BitWidth == 0 {
		return 0, err
	}
	shift := uint(32 - f.BitWidth)
	return int32(v) << shift >> shift, nil
}
