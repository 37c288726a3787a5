package pkg

import "errors"

// Descriptor parsing errors.
var (
	// ErrOutOfBounds indicates a read past the end of the input buffer.
	ErrOutOfBounds = errors.New("read past end of buffer")

	// ErrMalformedNesting indicates mismatched Collection/EndCollection items.
	ErrMalformedNesting = errors.New("malformed collection nesting")

	// ErrStackOverflow indicates the global state stack depth cap was exceeded.
	ErrStackOverflow = errors.New("global state stack overflow")

	// ErrStackUnderflow indicates a Pop item with no matching Push.
	ErrStackUnderflow = errors.New("global state stack underflow")

	// ErrLengthMismatch indicates a descriptor bLength that disagrees with
	// the fixed size defined for its type.
	ErrLengthMismatch = errors.New("descriptor length mismatch")

	// ErrDescriptorTooShort indicates the descriptor data is too short.
	ErrDescriptorTooShort = errors.New("descriptor too short")

	// ErrDescriptorTypeMismatch indicates the descriptor type does not match expected.
	ErrDescriptorTypeMismatch = errors.New("descriptor type mismatch")

	// ErrSetupPacketTooShort indicates the setup packet data is too short.
	ErrSetupPacketTooShort = errors.New("setup packet too short")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrTooManyFields indicates the report field cap was exceeded.
	ErrTooManyFields = errors.New("too many report fields")

	// ErrReportIDMismatch indicates report data whose leading ID byte does
	// not belong to the report being extracted from.
	ErrReportIDMismatch = errors.New("report ID mismatch")

	// ErrNoProgress indicates the parser failed to advance its cursor.
	ErrNoProgress = errors.New("parser made no progress")
)

// ParseClass categorizes a parse failure for diagnostics and filtering.
type ParseClass int

// Parse failure classes.
const (
	ParseClassBounds   ParseClass = iota // Read past end of input
	ParseClassNesting                    // Collection nesting violation
	ParseClassStack                      // Global state stack violation
	ParseClassLength                     // Declared length disagreement
	ParseClassResource                   // Resource cap exceeded
	ParseClassInternal                   // Internal invariant violation
)

// String returns a string representation of the parse class.
func (c ParseClass) String() string {
	switch c {
	case ParseClassBounds:
		return "bounds"
	case ParseClassNesting:
		return "nesting"
	case ParseClassStack:
		return "stack"
	case ParseClassLength:
		return "length"
	case ParseClassResource:
		return "resource"
	case ParseClassInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Classify maps a sentinel error to its parse class.
// Unrecognized errors classify as ParseClassInternal.
func Classify(err error) ParseClass {
	switch {
	case errors.Is(err, ErrOutOfBounds),
		errors.Is(err, ErrDescriptorTooShort),
		errors.Is(err, ErrSetupPacketTooShort):
		return ParseClassBounds
	case errors.Is(err, ErrMalformedNesting):
		return ParseClassNesting
	case errors.Is(err, ErrStackOverflow), errors.Is(err, ErrStackUnderflow):
		return ParseClassStack
	case errors.Is(err, ErrLengthMismatch), errors.Is(err, ErrDescriptorTypeMismatch),
		errors.Is(err, ErrReportIDMismatch):
		return ParseClassLength
	case errors.Is(err, ErrTooManyFields), errors.Is(err, ErrBufferTooSmall):
		return ParseClassResource
	default:
		return ParseClassInternal
	}
}
