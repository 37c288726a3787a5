package usb

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/ardnew/usbdesc/pkg"
)

// Descriptor is implemented by every typed descriptor record this package
// can decode. Use a type switch to recover the concrete record:
//
//	switch d := d.(type) {
//	case *EndpointDescriptor:
//	case *UnknownDescriptor:
//	}
type Descriptor interface {
	descriptor()
}

func (*DeviceDescriptor) descriptor()               {}
func (*ConfigurationDescriptor) descriptor()        {}
func (*InterfaceDescriptor) descriptor()            {}
func (*EndpointDescriptor) descriptor()             {}
func (*InterfaceAssociationDescriptor) descriptor() {}
func (*HIDDescriptor) descriptor()                  {}
func (*UnknownDescriptor) descriptor()              {}

// UnknownDescriptor carries a descriptor run of a type this package does
// not decode. Raw holds the entire run including the two header bytes;
// unknown types are passed through rather than rejected so vendor and
// class-specific descriptors never break a parse.
type UnknownDescriptor struct {
	Type uint8  // bDescriptorType
	Raw  []byte // Full descriptor run including bLength and bDescriptorType
}

// Length returns the declared bLength of the run.
func (u *UnknownDescriptor) Length() uint8 {
	if len(u.Raw) == 0 {
		return 0
	}
	return u.Raw[0]
}

// DeviceDescriptor represents a USB device descriptor (18 bytes).
type DeviceDescriptor struct {
	Length            uint8  // Size of this descriptor (18)
	DescriptorType    uint8  // Device descriptor type (0x01)
	USBVersion        uint16 // USB specification version (BCD)
	DeviceClass       uint8  // Class code
	DeviceSubClass    uint8  // Subclass code
	DeviceProtocol    uint8  // Protocol code
	MaxPacketSize0    uint8  // Max packet size for EP0
	VendorID          uint16 // Vendor ID
	ProductID         uint16 // Product ID
	DeviceVersion     uint16 // Device release number (BCD)
	ManufacturerIndex uint8  // Index of manufacturer string
	ProductIndex      uint8  // Index of product string
	SerialNumberIndex uint8  // Index of serial number string
	NumConfigurations uint8  // Number of configurations
}

// DeviceDescriptorSize is the size of a device descriptor in bytes.
const DeviceDescriptorSize = 18

// MarshalTo serializes the device descriptor to buf.
// Returns the number of bytes written (always 18 if buf is large enough).
func (d *DeviceDescriptor) MarshalTo(buf []byte) int {
	if len(buf) < DeviceDescriptorSize {
		return 0
	}
	buf[0] = DeviceDescriptorSize
	buf[1] = DescriptorTypeDevice
	binary.LittleEndian.PutUint16(buf[2:4], d.USBVersion)
	buf[4] = d.DeviceClass
	buf[5] = d.DeviceSubClass
	buf[6] = d.DeviceProtocol
	buf[7] = d.MaxPacketSize0
	binary.LittleEndian.PutUint16(buf[8:10], d.VendorID)
	binary.LittleEndian.PutUint16(buf[10:12], d.ProductID)
	binary.LittleEndian.PutUint16(buf[12:14], d.DeviceVersion)
	buf[14] = d.ManufacturerIndex
	buf[15] = d.ProductIndex
	buf[16] = d.SerialNumberIndex
	buf[17] = d.NumConfigurations
	return DeviceDescriptorSize
}

// ParseDeviceDescriptor parses a device descriptor from bytes into out.
// Returns an error if the data is too short, the descriptor type is wrong,
// or the declared bLength does not match the fixed layout.
func ParseDeviceDescriptor(data []byte, out *DeviceDescriptor) error {
	if len(data) < DeviceDescriptorSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeDevice {
		return pkg.ErrDescriptorTypeMismatch
	}
	if data[0] != DeviceDescriptorSize {
		return pkg.ErrLengthMismatch
	}
	out.Length = data[0]
	out.DescriptorType = data[1]
	out.USBVersion = binary.LittleEndian.Uint16(data[2:4])
	out.DeviceClass = data[4]
	out.DeviceSubClass = data[5]
	out.DeviceProtocol = data[6]
	out.MaxPacketSize0 = data[7]
	out.VendorID = binary.LittleEndian.Uint16(data[8:10])
	out.ProductID = binary.LittleEndian.Uint16(data[10:12])
	out.DeviceVersion = binary.LittleEndian.Uint16(data[12:14])
	out.ManufacturerIndex = data[14]
	out.ProductIndex = data[15]
	out.SerialNumberIndex = data[16]
	out.NumConfigurations = data[17]
	return nil
}

// ConfigurationDescriptor represents a USB configuration descriptor (9 bytes).
type ConfigurationDescriptor struct {
	Length             uint8  // Size of this descriptor (9)
	DescriptorType     uint8  // Configuration descriptor type (0x02)
	TotalLength        uint16 // Total length of configuration data
	NumInterfaces      uint8  // Number of interfaces
	ConfigurationValue uint8  // Configuration value for SET_CONFIGURATION
	ConfigurationIndex uint8  // Index of string descriptor
	Attributes         uint8  // Configuration attributes
	MaxPower           uint8  // Maximum power consumption (2mA units)
}

// Configuration attribute bits.
const (
	ConfigAttrBusPowered   = 0x80 // Bus-powered (required)
	ConfigAttrSelfPowered  = 0x40 // Self-powered
	ConfigAttrRemoteWakeup = 0x20 // Remote wakeup capable
)

// ConfigurationDescriptorSize is the size of a configuration descriptor in bytes.
const ConfigurationDescriptorSize = 9

// MarshalTo serializes the configuration descriptor to buf.
// Returns the number of bytes written (always 9 if buf is large enough).
func (c *ConfigurationDescriptor) MarshalTo(buf []byte) int {
	if len(buf) < ConfigurationDescriptorSize {
		return 0
	}
	buf[0] = ConfigurationDescriptorSize
	buf[1] = DescriptorTypeConfiguration
	binary.LittleEndian.PutUint16(buf[2:4], c.TotalLength)
	buf[4] = c.NumInterfaces
	buf[5] = c.ConfigurationValue
	buf[6] = c.ConfigurationIndex
	buf[7] = c.Attributes
	buf[8] = c.MaxPower
	return ConfigurationDescriptorSize
}

// ParseConfigurationDescriptor parses a configuration descriptor from bytes into out.
// Returns an error if the data is too short, the descriptor type is wrong,
// or the declared bLength does not match the fixed layout.
func ParseConfigurationDescriptor(data []byte, out *ConfigurationDescriptor) error {
	if len(data) < ConfigurationDescriptorSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeConfiguration {
		return pkg.ErrDescriptorTypeMismatch
	}
	if data[0] != ConfigurationDescriptorSize {
		return pkg.ErrLengthMismatch
	}
	out.Length = data[0]
	out.DescriptorType = data[1]
	out.TotalLength = binary.LittleEndian.Uint16(data[2:4])
	out.NumInterfaces = data[4]
	out.ConfigurationValue = data[5]
	out.ConfigurationIndex = data[6]
	out.Attributes = data[7]
	out.MaxPower = data[8]
	return nil
}

// SelfPowered returns true if the configuration is self-powered.
func (c *ConfigurationDescriptor) SelfPowered() bool {
	return c.Attributes&ConfigAttrSelfPowered != 0
}

// RemoteWakeup returns true if the configuration supports remote wakeup.
func (c *ConfigurationDescriptor) RemoteWakeup() bool {
	return c.Attributes&ConfigAttrRemoteWakeup != 0
}

// MaxPowerMilliamps returns the maximum power draw in milliamps.
func (c *ConfigurationDescriptor) MaxPowerMilliamps() int {
	return int(c.MaxPower) * 2
}

// InterfaceDescriptor represents a USB interface descriptor (9 bytes).
type InterfaceDescriptor struct {
	Length            uint8 // Size of this descriptor (9)
	DescriptorType    uint8 // Interface descriptor type (0x04)
	InterfaceNumber   uint8 // Interface number
	AlternateSetting  uint8 // Alternate setting number
	NumEndpoints      uint8 // Number of endpoints (excluding EP0)
	InterfaceClass    uint8 // Class code
	InterfaceSubClass uint8 // Subclass code
	InterfaceProtocol uint8 // Protocol code
	InterfaceIndex    uint8 // Index of string descriptor
}

// InterfaceDescriptorSize is the size of an interface descriptor in bytes.
const InterfaceDescriptorSize = 9

// MarshalTo serializes the interface descriptor to buf.
// Returns the number of bytes written (always 9 if buf is large enough).
func (i *InterfaceDescriptor) MarshalTo(buf []byte) int {
	if len(buf) < InterfaceDescriptorSize {
		return 0
	}
	buf[0] = InterfaceDescriptorSize
	buf[1] = DescriptorTypeInterface
	buf[2] = i.InterfaceNumber
	buf[3] = i.AlternateSetting
	buf[4] = i.NumEndpoints
	buf[5] = i.InterfaceClass
	buf[6] = i.InterfaceSubClass
	buf[7] = i.InterfaceProtocol
	buf[8] = i.InterfaceIndex
	return InterfaceDescriptorSize
}

// ParseInterfaceDescriptor parses an interface descriptor from bytes into out.
// Returns an error if the data is too short, the descriptor type is wrong,
// or the declared bLength does not match the fixed layout.
func ParseInterfaceDescriptor(data []byte, out *InterfaceDescriptor) error {
	if len(data) < InterfaceDescriptorSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeInterface {
		return pkg.ErrDescriptorTypeMismatch
	}
	if data[0] != InterfaceDescriptorSize {
		return pkg.ErrLengthMismatch
	}
	out.Length = data[0]
	out.DescriptorType = data[1]
	out.InterfaceNumber = data[2]
	out.AlternateSetting = data[3]
	out.NumEndpoints = data[4]
	out.InterfaceClass = data[5]
	out.InterfaceSubClass = data[6]
	out.InterfaceProtocol = data[7]
	out.InterfaceIndex = data[8]
	return nil
}

// IsHID returns true if the interface belongs to the HID class.
func (i *InterfaceDescriptor) IsHID() bool {
	return i.InterfaceClass == ClassHID
}

// EndpointDescriptor represents a USB endpoint descriptor (7 bytes).
type EndpointDescriptor struct {
	Length          uint8  // Size of this descriptor (7)
	DescriptorType  uint8  // Endpoint descriptor type (0x05)
	EndpointAddress uint8  // Endpoint address (including direction)
	Attributes      uint8  // Endpoint attributes (transfer type, etc.)
	MaxPacketSize   uint16 // Maximum packet size
	Interval        uint8  // Polling interval (for interrupt/isochronous)
}

// EndpointDescriptorSize is the size of an endpoint descriptor in bytes.
const EndpointDescriptorSize = 7

// MarshalTo serializes the endpoint descriptor to buf.
// Returns the number of bytes written (always 7 if buf is large enough).
func (e *EndpointDescriptor) MarshalTo(buf []byte) int {
	if len(buf) < EndpointDescriptorSize {
		return 0
	}
	buf[0] = EndpointDescriptorSize
	buf[1] = DescriptorTypeEndpoint
	buf[2] = e.EndpointAddress
	buf[3] = e.Attributes
	binary.LittleEndian.PutUint16(buf[4:6], e.MaxPacketSize)
	buf[6] = e.Interval
	return EndpointDescriptorSize
}

// ParseEndpointDescriptor parses an endpoint descriptor from bytes into out.
// Returns an error if the data is too short, the descriptor type is wrong,
// or the declared bLength does not match the fixed layout.
func ParseEndpointDescriptor(data []byte, out *EndpointDescriptor) error {
	if len(data) < EndpointDescriptorSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeEndpoint {
		return pkg.ErrDescriptorTypeMismatch
	}
	if data[0] != EndpointDescriptorSize {
		return pkg.ErrLengthMismatch
	}
	out.Length = data[0]
	out.DescriptorType = data[1]
	out.EndpointAddress = data[2]
	out.Attributes = data[3]
	out.MaxPacketSize = binary.LittleEndian.Uint16(data[4:6])
	out.Interval = data[6]
	return nil
}

// Number returns the endpoint number (without the direction bit).
func (e *EndpointDescriptor) Number() uint8 {
	return e.EndpointAddress & 0x0F
}

// Direction returns the endpoint direction (EndpointDirectionIn or EndpointDirectionOut).
func (e *EndpointDescriptor) Direction() uint8 {
	return e.EndpointAddress & EndpointDirectionIn
}

// IsIn returns true for device-to-host endpoints.
func (e *EndpointDescriptor) IsIn() bool {
	return e.Direction() == EndpointDirectionIn
}

// IsOut returns true for host-to-device endpoints.
func (e *EndpointDescriptor) IsOut() bool {
	return e.Direction() == EndpointDirectionOut
}

// TransferType returns the transfer type (Control, Isochronous, Bulk, or Interrupt).
func (e *EndpointDescriptor) TransferType() uint8 {
	return e.Attributes & 0x03
}

// IsControl returns true for control endpoints.
func (e *EndpointDescriptor) IsControl() bool {
	return e.TransferType() == EndpointTypeControl
}

// IsBulk returns true for bulk endpoints.
func (e *EndpointDescriptor) IsBulk() bool {
	return e.TransferType() == EndpointTypeBulk
}

// IsInterrupt returns true for interrupt endpoints.
func (e *EndpointDescriptor) IsInterrupt() bool {
	return e.TransferType() == EndpointTypeInterrupt
}

// IsIsochronous returns true for isochronous endpoints.
func (e *EndpointDescriptor) IsIsochronous() bool {
	return e.TransferType() == EndpointTypeIsochronous
}

// SyncType returns the isochronous synchronization type bits.
func (e *EndpointDescriptor) SyncType() uint8 {
	return e.Attributes & 0x0C
}

// UsageType returns the isochronous usage type bits.
func (e *EndpointDescriptor) UsageType() uint8 {
	return e.Attributes & 0x30
}

// InterfaceAssociationDescriptor represents an IAD (8 bytes).
// Used for composite devices like CDC-ACM.
type InterfaceAssociationDescriptor struct {
	Length           uint8 // Size of this descriptor (8)
	DescriptorType   uint8 // IAD type (0x0B)
	FirstInterface   uint8 // First interface number
	InterfaceCount   uint8 // Number of contiguous interfaces
	FunctionClass    uint8 // Class code
	FunctionSubClass uint8 // Subclass code
	FunctionProtocol uint8 // Protocol code
	FunctionIndex    uint8 // Index of string descriptor
}

// IADSize is the size of an interface association descriptor in bytes.
const IADSize = 8

// Contains reports whether the association claims the given interface
// number, per the contiguous range declared by bFirstInterface and
// bInterfaceCount.
func (i *InterfaceAssociationDescriptor) Contains(number uint8) bool {
	return int(number) >= int(i.FirstInterface) &&
		int(number) < int(i.FirstInterface)+int(i.InterfaceCount)
}

// MarshalTo serializes the IAD to buf.
// Returns the number of bytes written (always 8 if buf is large enough).
func (i *InterfaceAssociationDescriptor) MarshalTo(buf []byte) int {
	if len(buf) < IADSize {
		return 0
	}
	buf[0] = IADSize
	buf[1] = DescriptorTypeInterfaceAssociation
	buf[2] = i.FirstInterface
	buf[3] = i.InterfaceCount
	buf[4] = i.FunctionClass
	buf[5] = i.FunctionSubClass
	buf[6] = i.FunctionProtocol
	buf[7] = i.FunctionIndex
	return IADSize
}

// ParseInterfaceAssociationDescriptor parses an IAD from bytes into out.
// Returns an error if the data is too short, the descriptor type is wrong,
// or the declared bLength does not match the fixed layout.
func ParseInterfaceAssociationDescriptor(data []byte, out *InterfaceAssociationDescriptor) error {
	if len(data) < IADSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeInterfaceAssociation {
		return pkg.ErrDescriptorTypeMismatch
	}
	if data[0] != IADSize {
		return pkg.ErrLengthMismatch
	}
	out.Length = data[0]
	out.DescriptorType = data[1]
	out.FirstInterface = data[2]
	out.InterfaceCount = data[3]
	out.FunctionClass = data[4]
	out.FunctionSubClass = data[5]
	out.FunctionProtocol = data[6]
	out.FunctionIndex = data[7]
	return nil
}

// HIDDescriptor is the HID class descriptor (HID 1.11 Spec section 6.2.1).
// The fixed layout carries one class descriptor entry; devices declaring
// more than one entry extend the descriptor by 3 bytes each, which
// ParseHIDDescriptor validates against bLength.
type HIDDescriptor struct {
	Length         uint8  // Size of this descriptor (9 with one entry)
	DescriptorType uint8  // HID (0x21)
	HIDVersion     uint16 // HID specification release number (BCD)
	CountryCode    uint8  // Country code
	NumDescriptors uint8  // Number of class descriptors (at least 1)
	ReportDescType uint8  // First class descriptor type (usually 0x22)
	ReportDescLen  uint16 // Total size of the first class descriptor
}

// HIDDescriptorSize is the size of the HID descriptor with one entry.
const HIDDescriptorSize = 9

// MarshalTo serializes the HID descriptor to buf.
// Returns the number of bytes written (always 9 if buf is large enough).
func (d *HIDDescriptor) MarshalTo(buf []byte) int {
	if len(buf) < HIDDescriptorSize {
		return 0
	}
	buf[0] = HIDDescriptorSize
	buf[1] = DescriptorTypeHID
	binary.LittleEndian.PutUint16(buf[2:4], d.HIDVersion)
	buf[4] = d.CountryCode
	buf[5] = 1
	buf[6] = d.ReportDescType
	binary.LittleEndian.PutUint16(buf[7:9], d.ReportDescLen)
	return HIDDescriptorSize
}

// ParseHIDDescriptor parses a HID class descriptor from bytes into out.
// Only the first class descriptor entry is decoded; bLength must account
// for every declared entry (6 + 3*bNumDescriptors bytes).
func ParseHIDDescriptor(data []byte, out *HIDDescriptor) error {
	if len(data) < HIDDescriptorSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeHID {
		return pkg.ErrDescriptorTypeMismatch
	}
	if n := data[5]; n < 1 || int(data[0]) != 6+3*int(n) {
		return pkg.ErrLengthMismatch
	}
	out.Length = data[0]
	out.DescriptorType = data[1]
	out.HIDVersion = binary.LittleEndian.Uint16(data[2:4])
	out.CountryCode = data[4]
	out.NumDescriptors = data[5]
	out.ReportDescType = data[6]
	out.ReportDescLen = binary.LittleEndian.Uint16(data[7:9])
	return nil
}

// StringDescriptorTo writes a USB string descriptor to buf.
// Returns the number of bytes written. The descriptor encodes the string
// as UTF-16LE. If buf is too small, returns 0.
func StringDescriptorTo(buf []byte, s string) int {
	units := utf16.Encode([]rune(s))
	length := 2 + len(units)*2
	if length > 255 {
		length = 255 - (255-2)%2
		units = units[:(length-2)/2]
	}
	if len(buf) < length {
		return 0
	}
	buf[0] = uint8(length)
	buf[1] = DescriptorTypeString
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2+i*2:], u)
	}
	return length
}

// ParseStringDescriptor decodes a USB string descriptor into a Go string.
// The payload is UTF-16LE code units; surrogate pairs are decoded.
func ParseStringDescriptor(data []byte) (string, error) {
	if len(data) < 2 {
		return "", pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeString {
		return "", pkg.ErrDescriptorTypeMismatch
	}
	length := int(data[0])
	if length < 2 || length > len(data) || (length-2)%2 != 0 {
		return "", pkg.ErrLengthMismatch
	}
	units := make([]uint16, (length-2)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[2+i*2:])
	}
	return string(utf16.Decode(units)), nil
}

// LanguageDescriptorTo writes the language ID string descriptor to buf.
// Standard language ID for US English is 0x0409.
// Returns the number of bytes written. If buf is too small, returns 0.
func LanguageDescriptorTo(buf []byte, langIDs ...uint16) int {
	length := 2 + len(langIDs)*2
	if len(buf) < length {
		return 0
	}
	buf[0] = uint8(length)
	buf[1] = DescriptorTypeString
	for i, id := range langIDs {
		binary.LittleEndian.PutUint16(buf[2+i*2:], id)
	}
	return length
}

// ParseLanguageDescriptor decodes string descriptor zero into language IDs.
func ParseLanguageDescriptor(data []byte) ([]uint16, error) {
	if len(data) < 2 {
		return nil, pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeString {
		return nil, pkg.ErrDescriptorTypeMismatch
	}
	length := int(data[0])
	if length < 2 || length > len(data) || (length-2)%2 != 0 {
		return nil, pkg.ErrLengthMismatch
	}
	langs := make([]uint16, (length-2)/2)
	for i := range langs {
		langs[i] = binary.LittleEndian.Uint16(data[2+i*2:])
	}
	return langs, nil
}

// LangIDUSEnglish is the language ID for US English.
const LangIDUSEnglish = 0x0409
