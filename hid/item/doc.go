// Package item decodes HID report descriptors into their item sequence.
//
// A report descriptor is a stream of variable-length items (HID 1.11
// section 6.2.2). A short item packs a tag, an item kind, and the length
// of its little-endian data value (0, 1, 2, or 4 bytes) into a single
// prefix byte; the rarely used long item escape (0xFE) frames an opaque
// tagged payload. Items divide into three kinds: Main items emit the
// structural elements of the descriptor (fields and collections), Global
// items mutate a persistent register set that Push and Pop save and
// restore, and Local items accumulate per-field state that resets after
// every Main item.
//
// [Parser] walks the stream one item at a time while maintaining that
// state, so a consumer sees each [Item] together with the [GlobalState]
// and [LocalState] in effect when it appeared. The
// [github.com/ardnew/usbdesc/hid/report] package folds this sequence
// into report field definitions.
//
// # Scanning Items
//
// Scan in the manner of bufio.Scanner:
//
//	p := item.NewParser(desc)
//	for p.Scan() {
//		it := p.Item()
//		if it.Tag == item.TagInput {
//			g, l := p.Global(), p.Local()
//			// g and l describe the fields introduced by it.
//		}
//	}
//	if err := p.Err(); err != nil {
//		// err carries the byte offset and tag of the offending item.
//	}
//
// # Hostile Input
//
// Report descriptors are supplied by external hardware and are treated
// as untrusted: every read is bounds-checked, Push and Collection
// nesting depths are capped, and a fatal error reports the byte offset
// and tag of the item that caused it. Unknown tags and long items pass
// through as opaque items without aborting the parse, since real
// descriptors contain vendor extensions.
package item
