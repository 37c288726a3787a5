package usb

import (
	"fmt"

	"github.com/ardnew/usbdesc/pkg"
)

// DecodeError reports where in a descriptor blob a decode failed.
// It wraps one of the pkg sentinel errors.
type DecodeError struct {
	Offset int   // Byte offset of the failing descriptor run
	Type   uint8 // Declared bDescriptorType, when the header was readable
	Err    error // Underlying sentinel error
}

// Error returns a human-readable description of the decode failure.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("descriptor at offset %d (type %s): %v",
		e.Offset, DescriptorTypeName(e.Type), e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Walker steps through a blob of concatenated descriptors, one bLength
// delimited run per Scan. Decode failures of a single known-type run do not
// stop the walk; only framing damage (a run that cannot be delimited) is
// terminal. This keeps vendor extensions and corrupt siblings from hiding
// the rest of a configuration.
//
//	w := usb.NewWalker(blob)
//	for w.Scan() {
//	    d, err := w.Descriptor()
//	    ...
//	}
//	if err := w.Err(); err != nil { ... }
type Walker struct {
	r      *pkg.Reader
	offset int
	run    []byte
	err    error
}

// NewWalker creates a walker over a descriptor blob.
// The walker does not copy the blob; runs returned by Bytes alias it.
func NewWalker(blob []byte) *Walker {
	return &Walker{r: pkg.NewReader(blob)}
}

// Scan advances to the next descriptor run.
// It returns false at the end of the blob or on a framing error.
func (w *Walker) Scan() bool {
	if w.err != nil || w.r.Remaining() == 0 {
		return false
	}
	w.offset = w.r.Position()

	length, err := w.r.ReadUint8()
	if err != nil {
		w.err = &DecodeError{Offset: w.offset, Err: pkg.ErrOutOfBounds}
		return false
	}
	typ, err := w.r.ReadUint8()
	if err != nil {
		w.err = &DecodeError{Offset: w.offset, Err: pkg.ErrOutOfBounds}
		return false
	}
	if length < 2 {
		// A run shorter than its own header cannot delimit a successor.
		w.err = &DecodeError{Offset: w.offset, Type: typ, Err: pkg.ErrLengthMismatch}
		return false
	}
	// Re-read the whole run, header included, as one aliasing slice.
	if err := w.r.Seek(w.offset); err != nil {
		w.err = &DecodeError{Offset: w.offset, Type: typ, Err: err}
		return false
	}
	run, err := w.r.ReadBytes(int(length))
	if err != nil {
		w.err = &DecodeError{Offset: w.offset, Type: typ, Err: pkg.ErrOutOfBounds}
		return false
	}
	w.run = run
	return true
}

// Offset returns the byte offset of the current run within the blob.
func (w *Walker) Offset() int {
	return w.offset
}

// Len returns the declared bLength of the current run.
func (w *Walker) Len() uint8 {
	if len(w.run) == 0 {
		return 0
	}
	return w.run[0]
}

// Type returns the bDescriptorType of the current run.
func (w *Walker) Type() uint8 {
	if len(w.run) < 2 {
		return 0
	}
	return w.run[1]
}

// Bytes returns the current descriptor run including its two header bytes.
// The slice aliases the blob passed to NewWalker.
func (w *Walker) Bytes() []byte {
	return w.run
}

// Descriptor decodes the current run into its typed record.
// Unrecognized types decode to *UnknownDescriptor. A known type whose
// bLength disagrees with its fixed layout returns a *DecodeError wrapping
// pkg.ErrLengthMismatch; the walk itself may continue to the next sibling.
func (w *Walker) Descriptor() (Descriptor, error) {
	d, err := Parse(w.run)
	if err != nil {
		return nil, &DecodeError{Offset: w.offset, Type: w.Type(), Err: err}
	}
	return d, nil
}

// Err returns the framing error that stopped the walk, if any.
func (w *Walker) Err() error {
	return w.err
}

// Parse decodes a single descriptor run into the typed record indicated by
// its bDescriptorType. Types without a fixed-layout record in this package
// decode to *UnknownDescriptor; data must hold the complete run.
func Parse(data []byte) (Descriptor, error) {
	if len(data) < 2 {
		return nil, pkg.ErrDescriptorTooShort
	}
	switch data[1] {
	case DescriptorTypeDevice:
		out := new(DeviceDescriptor)
		if err := ParseDeviceDescriptor(data, out); err != nil {
			return nil, err
		}
		return out, nil
	case DescriptorTypeConfiguration:
		out := new(ConfigurationDescriptor)
		if err := ParseConfigurationDescriptor(data, out); err != nil {
			return nil, err
		}
		return out, nil
	case DescriptorTypeInterface:
		out := new(InterfaceDescriptor)
		if err := ParseInterfaceDescriptor(data, out); err != nil {
			return nil, err
		}
		return out, nil
	case DescriptorTypeEndpoint:
		out := new(EndpointDescriptor)
		if err := ParseEndpointDescriptor(data, out); err != nil {
			return nil, err
		}
		return out, nil
	case DescriptorTypeInterfaceAssociation:
		out := new(InterfaceAssociationDescriptor)
		if err := ParseInterfaceAssociationDescriptor(data, out); err != nil {
			return nil, err
		}
		return out, nil
	case DescriptorTypeHID:
		out := new(HIDDescriptor)
		if err := ParseHIDDescriptor(data, out); err != nil {
			return nil, err
		}
		return out, nil
	default:
		return &UnknownDescriptor{Type: data[1], Raw: data}, nil
	}
}

// Interface groups an interface descriptor with the HID class and endpoint
// descriptors that followed it in the configuration blob. Links are by
// position only; each alternate setting is its own entry. Assoc points at
// the owning interface association when the interface was claimed by one.
type Interface struct {
	Desc      InterfaceDescriptor
	Assoc     *InterfaceAssociationDescriptor
	HID       []HIDDescriptor
	Endpoints []EndpointDescriptor
	Extra     []UnknownDescriptor
}

// Configuration is the assembled form of a full configuration blob:
// the leading configuration descriptor plus every interface parsed from
// the runs that follow it. Extra holds unrecognized runs that preceded
// the first interface descriptor.
type Configuration struct {
	Desc         ConfigurationDescriptor
	Interfaces   []Interface
	Associations []InterfaceAssociationDescriptor
	Extra        []UnknownDescriptor
}

// Interface returns the interface with the given number and alternate
// setting, or nil if the configuration does not contain it.
func (c *Configuration) Interface(number, alternate uint8) *Interface {
	for i := range c.Interfaces {
		d := &c.Interfaces[i].Desc
		if d.InterfaceNumber == number && d.AlternateSetting == alternate {
			return &c.Interfaces[i]
		}
	}
	return nil
}

// HIDInterfaces returns every interface in the configuration whose class
// is HID, in blob order.
func (c *Configuration) HIDInterfaces() []*Interface {
	var out []*Interface
	for i := range c.Interfaces {
		if c.Interfaces[i].Desc.IsHID() {
			out = append(out, &c.Interfaces[i])
		}
	}
	return out
}

// ParseConfiguration assembles a complete configuration blob into its tree
// of interfaces and endpoints. The blob must begin with a configuration
// descriptor. Decode failures of individual known-type runs are logged and
// skipped so the remaining siblings still assemble; only framing damage
// aborts with an error.
func ParseConfiguration(blob []byte) (*Configuration, error) {
	w := NewWalker(blob)
	if !w.Scan() {
		if err := w.Err(); err != nil {
			return nil, err
		}
		return nil, pkg.ErrDescriptorTooShort
	}

	cfg := new(Configuration)
	if err := ParseConfigurationDescriptor(w.Bytes(), &cfg.Desc); err != nil {
		return nil, &DecodeError{Offset: w.Offset(), Type: w.Type(), Err: err}
	}
	if int(cfg.Desc.TotalLength) != len(blob) {
		pkg.LogWarn(pkg.ComponentUSB, "configuration total length disagrees with blob",
			"wTotalLength", cfg.Desc.TotalLength, "blob", len(blob))
	}

	// Interfaces are tracked by index because appends may move the slice.
	cur := -1
	var assoc *InterfaceAssociationDescriptor
	for w.Scan() {
		d, err := w.Descriptor()
		if err != nil {
			pkg.LogWarn(pkg.ComponentUSB, "skipping undecodable descriptor",
				"offset", w.Offset(), "type", DescriptorTypeName(w.Type()), "err", err)
			continue
		}
		switch d := d.(type) {
		case *InterfaceDescriptor:
			iface := Interface{Desc: *d}
			if assoc != nil && assoc.Contains(d.InterfaceNumber) {
				iface.Assoc = assoc
			}
			cfg.Interfaces = append(cfg.Interfaces, iface)
			cur = len(cfg.Interfaces) - 1
		case *InterfaceAssociationDescriptor:
			cfg.Associations = append(cfg.Associations, *d)
			a := *d
			assoc = &a
		case *EndpointDescriptor:
			if cur < 0 {
				pkg.LogWarn(pkg.ComponentUSB, "endpoint descriptor before any interface",
					"offset", w.Offset())
				continue
			}
			cfg.Interfaces[cur].Endpoints = append(cfg.Interfaces[cur].Endpoints, *d)
		case *HIDDescriptor:
			if cur < 0 {
				pkg.LogWarn(pkg.ComponentUSB, "HID descriptor before any interface",
					"offset", w.Offset())
				continue
			}
			cfg.Interfaces[cur].HID = append(cfg.Interfaces[cur].HID, *d)
		case *ConfigurationDescriptor:
			pkg.LogWarn(pkg.ComponentUSB, "nested configuration descriptor",
				"offset", w.Offset())
		case *UnknownDescriptor:
			if cur >= 0 {
				cfg.Interfaces[cur].Extra = append(cfg.Interfaces[cur].Extra, *d)
			} else {
				cfg.Extra = append(cfg.Extra, *d)
			}
		}
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}
