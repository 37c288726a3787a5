package usb

import "fmt"

// USB Descriptor Types (USB 2.0 Spec Table 9-5).
const (
	DescriptorTypeDevice               = 0x01
	DescriptorTypeConfiguration        = 0x02
	DescriptorTypeString               = 0x03
	DescriptorTypeInterface            = 0x04
	DescriptorTypeEndpoint             = 0x05
	DescriptorTypeDeviceQualifier      = 0x06
	DescriptorTypeOtherSpeedConfig     = 0x07
	DescriptorTypeInterfacePower       = 0x08
	DescriptorTypeOTG                  = 0x09
	DescriptorTypeDebug                = 0x0A
	DescriptorTypeInterfaceAssociation = 0x0B
	DescriptorTypeBOS                  = 0x0F
	DescriptorTypeDeviceCapability     = 0x10
	DescriptorTypeHID                  = 0x21
	DescriptorTypeHIDReport            = 0x22
	DescriptorTypeHIDPhysical          = 0x23
	DescriptorTypeCSInterface          = 0x24 // Class-specific interface
	DescriptorTypeCSEndpoint           = 0x25 // Class-specific endpoint
)

// DescriptorTypeName returns a human-readable descriptor type name.
func DescriptorTypeName(t uint8) string {
	switch t {
	case DescriptorTypeDevice:
		return "Device"
	case DescriptorTypeConfiguration:
		return "Configuration"
	case DescriptorTypeString:
		return "String"
	case DescriptorTypeInterface:
		return "Interface"
	case DescriptorTypeEndpoint:
		return "Endpoint"
	case DescriptorTypeDeviceQualifier:
		return "DeviceQualifier"
	case DescriptorTypeOtherSpeedConfig:
		return "OtherSpeedConfiguration"
	case DescriptorTypeInterfacePower:
		return "InterfacePower"
	case DescriptorTypeOTG:
		return "OTG"
	case DescriptorTypeDebug:
		return "Debug"
	case DescriptorTypeInterfaceAssociation:
		return "InterfaceAssociation"
	case DescriptorTypeBOS:
		return "BOS"
	case DescriptorTypeDeviceCapability:
		return "DeviceCapability"
	case DescriptorTypeHID:
		return "HID"
	case DescriptorTypeHIDReport:
		return "HIDReport"
	case DescriptorTypeHIDPhysical:
		return "HIDPhysical"
	case DescriptorTypeCSInterface:
		return "ClassSpecificInterface"
	case DescriptorTypeCSEndpoint:
		return "ClassSpecificEndpoint"
	default:
		return fmt.Sprintf("Unknown(0x%02X)", t)
	}
}

// USB Class Codes.
const (
	ClassPerInterface = 0x00 // Class defined at interface level
	ClassAudio        = 0x01 // Audio class
	ClassCDC          = 0x02 // Communications Device Class
	ClassHID          = 0x03 // Human Interface Device
	ClassPhysical     = 0x05 // Physical
	ClassImage        = 0x06 // Still Imaging
	ClassPrinter      = 0x07 // Printer
	ClassMassStorage  = 0x08 // Mass Storage
	ClassHub          = 0x09 // Hub
	ClassCDCData      = 0x0A // CDC-Data
	ClassSmartCard    = 0x0B // Smart Card
	ClassContentSec   = 0x0D // Content Security
	ClassVideo        = 0x0E // Video
	ClassHealthcare   = 0x0F // Personal Healthcare
	ClassAudioVideo   = 0x10 // Audio/Video Devices
	ClassBillboard    = 0x11 // Billboard Device Class
	ClassDiagnostic   = 0xDC // Diagnostic Device
	ClassWireless     = 0xE0 // Wireless Controller
	ClassMisc         = 0xEF // Miscellaneous
	ClassAppSpecific  = 0xFE // Application Specific
	ClassVendor       = 0xFF // Vendor Specific
)

// HID subclass codes.
const (
	HIDSubclassNone = 0x00 // No subclass
	HIDSubclassBoot = 0x01 // Boot Interface Subclass
)

// HID protocol codes (for boot interface).
const (
	HIDProtocolNone     = 0x00 // No protocol
	HIDProtocolKeyboard = 0x01 // Keyboard boot protocol
	HIDProtocolMouse    = 0x02 // Mouse boot protocol
)

// HID class request codes (HID 1.11 Spec section 7.2).
const (
	HIDRequestGetReport   = 0x01
	HIDRequestGetIdle     = 0x02
	HIDRequestGetProtocol = 0x03
	HIDRequestSetReport   = 0x09
	HIDRequestSetIdle     = 0x0A
	HIDRequestSetProtocol = 0x0B
)

// HID report types (high byte of wValue in GET_REPORT/SET_REPORT).
const (
	HIDReportTypeInput   = 0x01
	HIDReportTypeOutput  = 0x02
	HIDReportTypeFeature = 0x03
)

// Endpoint transfer types (USB 2.0 Spec Table 9-13).
const (
	EndpointTypeControl     = 0x00 // Control transfer
	EndpointTypeIsochronous = 0x01 // Isochronous transfer
	EndpointTypeBulk        = 0x02 // Bulk transfer
	EndpointTypeInterrupt   = 0x03 // Interrupt transfer
)

// Endpoint directions.
const (
	EndpointDirectionOut = 0x00 // Host to device
	EndpointDirectionIn  = 0x80 // Device to host
)

// Isochronous synchronization types (bits 2-3 of Attributes).
const (
	IsoSyncNone     = 0x00 // No synchronization
	IsoSyncAsync    = 0x04 // Asynchronous
	IsoSyncAdaptive = 0x08 // Adaptive
	IsoSyncSync     = 0x0C // Synchronous
)

// Isochronous usage types (bits 4-5 of Attributes).
const (
	IsoUsageData     = 0x00 // Data endpoint
	IsoUsageFeedback = 0x10 // Feedback endpoint
	IsoUsageImplicit = 0x20 // Implicit feedback data endpoint
)

// TransferTypeName returns a human-readable transfer type name.
func TransferTypeName(t uint8) string {
	switch t & 0x03 {
	case EndpointTypeControl:
		return "Control"
	case EndpointTypeIsochronous:
		return "Isochronous"
	case EndpointTypeBulk:
		return "Bulk"
	case EndpointTypeInterrupt:
		return "Interrupt"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// DirectionName returns a human-readable direction name.
func DirectionName(dir uint8) string {
	if dir == EndpointDirectionIn {
		return "IN"
	}
	return "OUT"
}
