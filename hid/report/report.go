package report

import (
	"fmt"

	"github.com/ardnew/usbdesc/hid/item"
	"github.com/ardnew/usbdesc/hid/usage"
	"github.com/ardnew/usbdesc/pkg"
)

// Report is the ordered field layout of one report, keyed by direction
// and report ID. Fields appear in declaration order with contiguous bit
// positions starting at 0.
type Report struct {
	// ID is the report ID, zero when Numbered is false.
	ID uint8

	// Numbered reports whether payloads carry a leading ID byte. The ID
	// byte is not part of the field bit offsets.
	Numbered bool

	Type   FieldType
	Fields []*Field
}

// Bits returns the payload length of the report in bits, excluding any
// report ID byte.
func (r *Report) Bits() int {
	bits := 0
	for _, f := range r.Fields {
		if end := f.BitOffset + f.BitWidth; end > bits {
			bits = end
		}
	}
	return bits
}

// ByteLength returns the payload length rounded up to whole bytes,
// excluding any report ID byte.
func (r *Report) ByteLength() int {
	return (r.Bits() + 7) / 8
}

// Extract reads one field's raw value from report data as transferred on
// the wire. For numbered reports the leading ID byte is checked against
// the report's ID and stripped before the field bits are located; passing
// data for a different report fails with pkg.ErrReportIDMismatch.
func (r *Report) Extract(data []byte, f *Field) (uint32, error) {
	payload, err := r.payload(data)
	if err != nil {
		return 0, err
	}
	return f.Extract(payload)
}

// ExtractSigned is Extract with sign extension from the field width.
func (r *Report) ExtractSigned(data []byte, f *Field) (int32, error) {
	payload, err := r.payload(data)
	if err != nil {
		return 0, err
	}
	return f.ExtractSigned(payload)
}

func (r *Report) payload(data []byte) ([]byte, error) {
	if !r.Numbered {
		return data, nil
	}
	if len(data) == 0 {
		return nil, pkg.ErrOutOfBounds
	}
	if data[0] != r.ID {
		return nil, pkg.ErrReportIDMismatch
	}
	return data[1:], nil
}

// Collection is one node of the collection tree declared by Collection/
// End Collection items. Fields declared directly inside the collection
// are shared by reference with the owning Report.
type Collection struct {
	Type item.CollectionType

	// Usage names the collection, taken from the first local usage on the
	// Collection item. Zero when the item carried none.
	Usage usage.Usage

	Collections []*Collection
	Fields      []*Field
}

// Warning records a tolerated defect found while building, with the byte
// offset it was observed at.
type Warning struct {
	Offset int
	Msg    string
}

// String returns the warning with its offset context.
func (w Warning) String() string {
	return fmt.Sprintf("offset %d: %s", w.Offset, w.Msg)
}

// Descriptor is the structured form of a whole report descriptor: the
// report layouts grouped by direction and ID, the collection tree, and
// any tolerated defects observed along the way.
type Descriptor struct {
	// Reports holds one entry per (direction, report ID) pair, in first
	// declaration order.
	Reports []*Report

	// Collections holds the top-level collections in declaration order.
	Collections []*Collection

	Warnings []Warning
}

// Report returns the report with the given direction and ID, or nil.
func (d *Descriptor) Report(t FieldType, id uint8) *Report {
	for _, r := range d.Reports {
		if r.Type == t && r.ID == id {
			return r
		}
	}
	return nil
}

// InputReport returns the input report with the given ID, or nil.
func (d *Descriptor) InputReport(id uint8) *Report { return d.Report(Input, id) }

// OutputReport returns the output report with the given ID, or nil.
func (d *Descriptor) OutputReport(id uint8) *Report { return d.Report(Output, id) }

// FeatureReport returns the feature report with the given ID, or nil.
func (d *Descriptor) FeatureReport(id uint8) *Report { return d.Report(Feature, id) }
