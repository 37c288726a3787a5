// Package report folds a HID report descriptor into structured report
// field layouts.
//
// Where [github.com/ardnew/usbdesc/hid/item] exposes a descriptor as its
// raw item sequence, this package interprets that sequence: each Input,
// Output, or Feature item becomes report count [Field] values of report
// size bits, placed at consecutive bit offsets within their [Report].
// Reports are keyed by direction and report ID, and the Collection items
// that grouped the fields are preserved as a [Collection] tree alongside.
//
// # Building
//
//	d, err := report.Parse(desc)
//	if err != nil {
//		// the descriptor is unusable; err carries the byte offset.
//	}
//	for _, r := range d.Reports {
//		fmt.Println(r.Type, r.ID, len(r.Fields), r.ByteLength())
//	}
//
// Defects that real devices get away with, such as descriptors ending
// with open collections, do not fail the build; they are recorded as
// [Warning] values on the [Descriptor] for the caller to judge.
//
// # Extracting Values
//
// A Field locates its value in report payloads by bit position.
// [Report.Extract] reads a field from report data as transferred on the
// wire, checking and stripping the report ID byte of numbered reports;
// [Field.Extract] and [Field.ExtractSigned] operate on the bare payload.
//
// # Hostile Input
//
// The field count is capped ([Builder.MaxFields]) because report counts
// are device-controlled values that would otherwise let a short
// descriptor demand gigabytes of fields. Nesting and state stack depth
// caps are inherited from the item parser.
package report
