package item

import "github.com/ardnew/usbdesc/hid/usage"

// GlobalState is the register set mutated by Global items. A value is a
// self-contained snapshot: Push copies the current registers onto the
// parser's stack and Pop restores them wholesale, so saved and current
// state never share storage.
type GlobalState struct {
	UsagePage       uint16
	LogicalMinimum  int32
	LogicalMaximum  int32
	PhysicalMinimum int32
	PhysicalMaximum int32
	UnitExponent    uint32
	Unit            uint32
	ReportSize      uint32
	ReportID        uint8
	ReportCount     uint32

	// HasReportID records whether any ReportID item has been seen.
	// Report ID zero is reserved by HID, so the flag distinguishes
	// "reports are not numbered" from an (invalid) explicit zero.
	HasReportID bool
}

// LocalState accumulates Local items between Main items.
//
// Usages are stored resolved: a usage item with a 16-bit value combines
// with the usage page in effect when the item appeared, while the 32-bit
// extended form carries its own page and overrides the global one. The
// same resolution applies to usage ranges. The whole value resets after
// every Main item; the values observed alongside one Main item never
// leak into the next.
type LocalState struct {
	Usages []usage.Usage

	UsageMinimum    usage.Usage
	UsageMaximum    usage.Usage
	HasUsageMinimum bool
	HasUsageMaximum bool

	// Designator and string references are carried through for
	// completeness; zero means the item never appeared, matching the
	// USB convention that string index zero names no string.
	DesignatorIndex   uint32
	DesignatorMinimum uint32
	DesignatorMaximum uint32
	StringIndex       uint32
	StringMinimum     uint32
	StringMaximum     uint32
}
