// Package usb encodes and decodes standard USB descriptors and SETUP
// packets.
//
// It implements the fixed-layout records from chapter 9 of the USB 2.0
// specification plus the HID class descriptor from the HID 1.11
// specification. Every record has a symmetric codec pair, so bytes
// produced by one side always decode to the same record on the other:
//
//   - [DeviceDescriptor], [ConfigurationDescriptor], [InterfaceDescriptor],
//     [EndpointDescriptor], [InterfaceAssociationDescriptor], and
//     [HIDDescriptor] each pair a MarshalTo method with a ParseXxx function
//   - [StringDescriptorTo] and [ParseStringDescriptor] convert between
//     Go strings and UTF-16LE string descriptors
//   - [SetupPacket] covers the 8-byte SETUP stage of control transfers,
//     with builders for the standard requests
//
// # Serialization Style
//
// Serialization is allocation-free: MarshalTo(buf) writes into a
// caller-provided buffer and returns the byte count, or 0 when buf is too
// short. Parse functions take an output parameter and report failures with
// the sentinel errors from [github.com/ardnew/usbdesc/pkg]:
//
//	var dd usb.DeviceDescriptor
//	if err := usb.ParseDeviceDescriptor(data, &dd); err != nil {
//	    // pkg.ErrDescriptorTooShort, pkg.ErrDescriptorTypeMismatch,
//	    // or pkg.ErrLengthMismatch
//	}
//
// A declared bLength that disagrees with the type's fixed layout is
// rejected with [pkg.ErrLengthMismatch]; descriptor types this package has
// no layout for are preserved uninterpreted as [UnknownDescriptor].
//
// # Walking Descriptor Blobs
//
// Devices return their configuration as one concatenated blob. [Walker]
// splits such a blob into bLength-delimited runs without copying, and
// [ParseConfiguration] assembles the full interface and endpoint tree:
//
//	cfg, err := usb.ParseConfiguration(blob)
//	for _, iface := range cfg.HIDInterfaces() {
//	    for _, hd := range iface.HID {
//	        length := hd.ReportDescLen // size of the report descriptor
//	        ...
//	    }
//	}
//
// The report descriptor itself is not a chapter 9 structure; parse it with
// [github.com/ardnew/usbdesc/hid/item] and
// [github.com/ardnew/usbdesc/hid/report].
package usb
