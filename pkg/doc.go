// Package pkg provides shared utilities for the usbdesc descriptor codecs.
//
// This package contains common functionality used across the USB descriptor
// codec and the HID report descriptor parser, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for the parse failure taxonomy
//   - A bounds-checked byte cursor ([Reader]) shared by all parsers
//   - Component identifiers for log filtering
//
// The runtime code is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with codec-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogDebug(pkg.ComponentItem, "reserved tag", "tag", 0x3c)
//
// # Errors
//
// Parse failures are defined as sentinel values so callers can classify
// them with [errors.Is] regardless of how much offset context the returning
// package wrapped around them:
//
//	if errors.Is(err, pkg.ErrOutOfBounds) {
//	    // Input was truncated
//	}
//
// # Reading
//
// [Reader] is the only primitive that touches raw input bytes. Every read
// validates the remaining length first, returns [ErrOutOfBounds] on
// exhaustion, and never panics:
//
//	r := pkg.NewReader(data)
//	length, err := r.ReadUint8()
package pkg
