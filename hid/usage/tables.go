package usage

import "fmt"

// Usage page codes (HID Usage Tables 1.3 section 3).
const (
	PageUndefined      uint16 = 0x00
	PageGenericDesktop uint16 = 0x01
	PageSimulation     uint16 = 0x02
	PageVR             uint16 = 0x03
	PageSport          uint16 = 0x04
	PageGame           uint16 = 0x05
	PageGenericDevice  uint16 = 0x06
	PageKeyboard       uint16 = 0x07
	PageLED            uint16 = 0x08
	PageButton         uint16 = 0x09
	PageOrdinal        uint16 = 0x0A
	PageTelephony      uint16 = 0x0B
	PageConsumer       uint16 = 0x0C
	PageDigitizer      uint16 = 0x0D
	PageHaptics        uint16 = 0x0E
	PagePhysicalInput  uint16 = 0x0F
	PageUnicode        uint16 = 0x10
	PageSoC            uint16 = 0x11
	PageEyeHeadTracker uint16 = 0x12
	PageAuxDisplay     uint16 = 0x14
	PageSensor         uint16 = 0x20
	PageMedical        uint16 = 0x40
	PageBrailleDisplay uint16 = 0x41
	PageLighting       uint16 = 0x59
	PageMonitor        uint16 = 0x80
	PageMonitorEnum    uint16 = 0x81
	PageVESAVirtual    uint16 = 0x82
	PagePower          uint16 = 0x84
	PageBatterySystem  uint16 = 0x85
	PageBarcodeScanner uint16 = 0x8C
	PageScale          uint16 = 0x8D
	PageMSR            uint16 = 0x8E
	PageCameraControl  uint16 = 0x90
	PageArcade         uint16 = 0x91
	PageFIDO           uint16 = 0xF1D0

	// PageVendorDefinedMin is the first vendor-defined page; everything
	// from here through 0xFFFF belongs to the device vendor.
	PageVendorDefinedMin uint16 = 0xFF00
)

var pageNames = map[uint16]string{
	PageUndefined:      "Undefined",
	PageGenericDesktop: "Generic Desktop",
	PageSimulation:     "Simulation Controls",
	PageVR:             "VR Controls",
	PageSport:          "Sport Controls",
	PageGame:           "Game Controls",
	PageGenericDevice:  "Generic Device Controls",
	PageKeyboard:       "Keyboard/Keypad",
	PageLED:            "LED",
	PageButton:         "Button",
	PageOrdinal:        "Ordinal",
	PageTelephony:      "Telephony Device",
	PageConsumer:       "Consumer",
	PageDigitizer:      "Digitizers",
	PageHaptics:        "Haptics",
	PagePhysicalInput:  "Physical Input Device",
	PageUnicode:        "Unicode",
	PageSoC:            "SoC",
	PageEyeHeadTracker: "Eye and Head Trackers",
	PageAuxDisplay:     "Auxiliary Display",
	PageSensor:         "Sensors",
	PageMedical:        "Medical Instrument",
	PageBrailleDisplay: "Braille Display",
	PageLighting:       "Lighting and Illumination",
	PageMonitor:        "Monitor",
	PageMonitorEnum:    "Monitor Enumerated",
	PageVESAVirtual:    "VESA Virtual Controls",
	PagePower:          "Power",
	PageBatterySystem:  "Battery System",
	PageBarcodeScanner: "Barcode Scanner",
	PageScale:          "Scales",
	PageMSR:            "Magnetic Stripe Reader",
	PageCameraControl:  "Camera Control",
	PageArcade:         "Arcade",
	PageFIDO:           "FIDO Alliance",
}

// usageNames dispatches table-driven pages. Keyboard/Keypad, Button, and
// Ordinal are handled procedurally in Name.
var usageNames = map[uint16]map[uint16]string{
	PageGenericDesktop: genericDesktopNames,
	PageSimulation:     simulationNames,
	PageLED:            ledNames,
	PageConsumer:       consumerNames,
	PageDigitizer:      digitizerNames,
}

// Generic Desktop page (HID Usage Tables 1.3 section 4).
var genericDesktopNames = map[uint16]string{
	0x01: "Pointer",
	0x02: "Mouse",
	0x04: "Joystick",
	0x05: "Game Pad",
	0x06: "Keyboard",
	0x07: "Keypad",
	0x08: "Multi-axis Controller",
	0x09: "Tablet PC System Controls",
	0x0A: "Water Cooling Device",
	0x0B: "Computer Chassis Device",
	0x0C: "Wireless Radio Controls",
	0x0D: "Portable Device Control",
	0x0E: "System Multi-Axis Controller",
	0x0F: "Spatial Controller",
	0x10: "Assistive Control",
	0x11: "Device Dock",
	0x12: "Dockable Device",
	0x13: "Call State Management Control",
	0x30: "X",
	0x31: "Y",
	0x32: "Z",
	0x33: "Rx",
	0x34: "Ry",
	0x35: "Rz",
	0x36: "Slider",
	0x37: "Dial",
	0x38: "Wheel",
	0x39: "Hat Switch",
	0x3A: "Counted Buffer",
	0x3B: "Byte Count",
	0x3C: "Motion Wakeup",
	0x3D: "Start",
	0x3E: "Select",
	0x40: "Vx",
	0x41: "Vy",
	0x42: "Vz",
	0x43: "Vbrx",
	0x44: "Vbry",
	0x45: "Vbrz",
	0x46: "Vno",
	0x47: "Feature Notification",
	0x48: "Resolution Multiplier",
	0x49: "Qx",
	0x4A: "Qy",
	0x4B: "Qz",
	0x4C: "Qw",
	0x80: "System Control",
	0x81: "System Power Down",
	0x82: "System Sleep",
	0x83: "System Wake Up",
	0x84: "System Context Menu",
	0x85: "System Main Menu",
	0x86: "System App Menu",
	0x87: "System Menu Help",
	0x88: "System Menu Exit",
	0x89: "System Menu Select",
	0x8A: "System Menu Right",
	0x8B: "System Menu Left",
	0x8C: "System Menu Up",
	0x8D: "System Menu Down",
	0x8E: "System Cold Restart",
	0x8F: "System Warm Restart",
	0x90: "D-pad Up",
	0x91: "D-pad Down",
	0x92: "D-pad Right",
	0x93: "D-pad Left",
}

// Simulation Controls page (HID Usage Tables 1.3 section 5).
var simulationNames = map[uint16]string{
	0x01: "Flight Simulation Device",
	0x02: "Automobile Simulation Device",
	0x03: "Tank Simulation Device",
	0x04: "Spaceship Simulation Device",
	0x05: "Submarine Simulation Device",
	0x06: "Sailing Simulation Device",
	0x07: "Motorcycle Simulation Device",
	0x08: "Sports Simulation Device",
	0x09: "Airplane Simulation Device",
	0x0A: "Helicopter Simulation Device",
	0x0B: "Magic Carpet Simulation Device",
	0x0C: "Bicycle Simulation Device",
	0x20: "Flight Control Stick",
	0x21: "Flight Stick",
	0x22: "Cyclic Control",
	0x23: "Cyclic Trim",
	0x24: "Flight Yoke",
	0x25: "Track Control",
	0xB0: "Aileron",
	0xB1: "Aileron Trim",
	0xB2: "Anti-Torque Control",
	0xB3: "Autopilot Enable",
	0xB4: "Chaff Release",
	0xB5: "Collective Control",
	0xB6: "Dive Brake",
	0xB7: "Electronic Countermeasures",
	0xB8: "Elevator",
	0xB9: "Elevator Trim",
	0xBA: "Rudder",
	0xBB: "Throttle",
	0xBC: "Flight Communications",
	0xBD: "Flare Release",
	0xBE: "Landing Gear",
	0xBF: "Toe Brake",
	0xC0: "Trigger",
	0xC1: "Weapons Arm",
	0xC2: "Weapons Select",
	0xC3: "Wing Flaps",
	0xC4: "Accelerator",
	0xC5: "Brake",
	0xC6: "Clutch",
	0xC7: "Shifter",
	0xC8: "Steering",
	0xC9: "Turret Direction",
	0xCA: "Barrel Elevation",
	0xCB: "Dive Plane",
	0xCC: "Ballast",
	0xCD: "Bicycle Crank",
	0xCE: "Handle Bars",
	0xCF: "Front Brake",
	0xD0: "Rear Brake",
}

// LED page (HID Usage Tables 1.3 section 8).
var ledNames = map[uint16]string{
	0x01: "Num Lock",
	0x02: "Caps Lock",
	0x03: "Scroll Lock",
	0x04: "Compose",
	0x05: "Kana",
	0x06: "Power",
	0x07: "Shift",
	0x08: "Do Not Disturb",
	0x09: "Mute",
	0x17: "Off-Hook",
	0x18: "Ring",
	0x19: "Message Waiting",
	0x1A: "Data Mode",
	0x1B: "Battery Operation",
	0x1C: "Battery OK",
	0x1D: "Battery Low",
	0x1E: "Speaker",
	0x1F: "Headset",
	0x20: "Hold",
	0x21: "Microphone",
	0x27: "Stand-by",
	0x2A: "On-Line",
	0x2B: "Off-Line",
	0x2C: "Busy",
	0x2D: "Ready",
	0x33: "Stop",
	0x36: "Play",
	0x37: "Pause",
	0x38: "Record",
	0x39: "Error",
	0x4B: "Generic Indicator",
}

// Consumer page (HID Usage Tables 1.3 section 15).
var consumerNames = map[uint16]string{
	0x001: "Consumer Control",
	0x030: "Power",
	0x031: "Reset",
	0x032: "Sleep",
	0x040: "Menu",
	0x06F: "Display Brightness Increment",
	0x070: "Display Brightness Decrement",
	0x095: "Help",
	0x0B0: "Play",
	0x0B1: "Pause",
	0x0B2: "Record",
	0x0B3: "Fast Forward",
	0x0B4: "Rewind",
	0x0B5: "Scan Next Track",
	0x0B6: "Scan Previous Track",
	0x0B7: "Stop",
	0x0B8: "Eject",
	0x0CD: "Play/Pause",
	0x0E2: "Mute",
	0x0E5: "Bass Boost",
	0x0E7: "Loudness",
	0x0E9: "Volume Increment",
	0x0EA: "Volume Decrement",
	0x183: "AL Consumer Control Configuration",
	0x18A: "AL Email Reader",
	0x192: "AL Calculator",
	0x194: "AL Local Machine Browser",
	0x221: "AC Search",
	0x223: "AC Home",
	0x224: "AC Back",
	0x225: "AC Forward",
	0x226: "AC Stop",
	0x227: "AC Refresh",
	0x22A: "AC Bookmarks",
}

// Digitizers page (HID Usage Tables 1.3 section 16).
var digitizerNames = map[uint16]string{
	0x01: "Digitizer",
	0x02: "Pen",
	0x03: "Light Pen",
	0x04: "Touch Screen",
	0x05: "Touch Pad",
	0x06: "Whiteboard",
	0x07: "Coordinate Measuring Machine",
	0x08: "3D Digitizer",
	0x09: "Stereo Plotter",
	0x0A: "Articulated Arm",
	0x0B: "Armature",
	0x0C: "Multiple Point Digitizer",
	0x0D: "Free Space Wand",
	0x0E: "Device Configuration",
	0x20: "Stylus",
	0x21: "Puck",
	0x22: "Finger",
	0x23: "Device Settings",
	0x30: "Tip Pressure",
	0x31: "Barrel Pressure",
	0x32: "In Range",
	0x33: "Touch",
	0x34: "Untouch",
	0x35: "Tap",
	0x36: "Quality",
	0x37: "Data Valid",
	0x38: "Transducer Index",
	0x39: "Tablet Function Keys",
	0x3A: "Program Change Keys",
	0x3B: "Battery Strength",
	0x3C: "Invert",
	0x3D: "X Tilt",
	0x3E: "Y Tilt",
	0x3F: "Azimuth",
	0x40: "Altitude",
	0x41: "Twist",
	0x42: "Tip Switch",
	0x43: "Secondary Tip Switch",
	0x44: "Barrel Switch",
	0x45: "Eraser",
	0x46: "Tablet Pick",
	0x47: "Confidence",
	0x48: "Width",
	0x49: "Height",
	0x51: "Contact Identifier",
	0x52: "Device Mode",
	0x53: "Device Identifier",
	0x54: "Contact Count",
	0x55: "Contact Count Maximum",
	0x56: "Scan Time",
}

// Keyboard/Keypad names outside the computed letter, digit, function key,
// and keypad digit blocks (HID Usage Tables 1.3 section 10).
var keyboardNames = map[uint16]string{
	0x01: "ErrorRollOver",
	0x02: "POSTFail",
	0x03: "ErrorUndefined",
	0x28: "Enter",
	0x29: "Escape",
	0x2A: "Backspace",
	0x2B: "Tab",
	0x2C: "Spacebar",
	0x2D: "Minus",
	0x2E: "Equal",
	0x2F: "Left Bracket",
	0x30: "Right Bracket",
	0x31: "Backslash",
	0x32: "Non-US Hash",
	0x33: "Semicolon",
	0x34: "Apostrophe",
	0x35: "Grave",
	0x36: "Comma",
	0x37: "Period",
	0x38: "Slash",
	0x39: "Caps Lock",
	0x46: "Print Screen",
	0x47: "Scroll Lock",
	0x48: "Pause",
	0x49: "Insert",
	0x4A: "Home",
	0x4B: "Page Up",
	0x4C: "Delete",
	0x4D: "End",
	0x4E: "Page Down",
	0x4F: "Right Arrow",
	0x50: "Left Arrow",
	0x51: "Down Arrow",
	0x52: "Up Arrow",
	0x53: "Num Lock",
	0x54: "Keypad Slash",
	0x55: "Keypad Asterisk",
	0x56: "Keypad Minus",
	0x57: "Keypad Plus",
	0x58: "Keypad Enter",
	0x63: "Keypad Period",
	0x64: "Non-US Backslash",
	0x65: "Application",
	0x66: "Power",
	0x67: "Keypad Equal",
	0xE0: "Left Control",
	0xE1: "Left Shift",
	0xE2: "Left Alt",
	0xE3: "Left GUI",
	0xE4: "Right Control",
	0xE5: "Right Shift",
	0xE6: "Right Alt",
	0xE7: "Right GUI",
}

// keyboardName names Keyboard/Keypad page usages. Letter, digit, function
// key, and keypad digit codes occupy contiguous blocks and are computed
// rather than tabulated.
func keyboardName(id uint16) (string, bool) {
	switch {
	case id >= 0x04 && id <= 0x1D:
		return string(rune('A' + id - 0x04)), true
	case id >= 0x1E && id <= 0x26:
		return string(rune('1' + id - 0x1E)), true
	case id == 0x27:
		return "0", true
	case id >= 0x3A && id <= 0x45:
		return fmt.Sprintf("F%d", id-0x3A+1), true
	case id >= 0x68 && id <= 0x73:
		return fmt.Sprintf("F%d", id-0x68+13), true
	case id >= 0x59 && id <= 0x61:
		return fmt.Sprintf("Keypad %d", id-0x59+1), true
	case id == 0x62:
		return "Keypad 0", true
	}
	name, ok := keyboardNames[id]
	return name, ok
}
