// Package usage maps HID usage pages and usage IDs to human-readable names.
//
// A usage identifies the semantic meaning of a control or collection: the
// usage page selects a namespace (Generic Desktop, Button, ...) and the
// usage ID selects an entry within it. This package packs the two halves
// into a single [Usage] value, mirroring the 32-bit extended usage form
// that report descriptors encode as page<<16 | id.
//
// The name tables cover the pages that appear on commodity HID devices
// (keyboards, mice, gamepads, digitizers, consumer controls) from HID
// Usage Tables 1.3. Pages whose usages are purely ordinal (Button,
// Ordinal) are named procedurally from the ID. Lookups for unknown pages
// or IDs report failure rather than fabricating a name.
//
// # Usage
//
// Pack and inspect usages:
//
//	u := usage.New(usage.PageGenericDesktop, 0x30)
//	u.Page()   // 0x0001
//	u.ID()     // 0x0030
//	u.String() // "Generic Desktop:X"
//
// Look up names directly:
//
//	name, ok := usage.Name(usage.PageButton, 3) // "Button 3", true
//
// # Thread Safety
//
// All tables are immutable after package initialization; every function is
// safe for concurrent use.
package usage
