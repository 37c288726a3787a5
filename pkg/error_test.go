package pkg

import (
	"errors"
	"testing"
)

func TestParseClass_String(t *testing.T) {
	tests := []struct {
		class ParseClass
		want  string
	}{
		{ParseClassBounds, "bounds"},
		{ParseClassNesting, "nesting"},
		{ParseClassStack, "stack"},
		{ParseClassLength, "length"},
		{ParseClassResource, "resource"},
		{ParseClassInternal, "internal"},
		{ParseClass(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.class.String(); got != tt.want {
				t.Errorf("ParseClass.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want ParseClass
	}{
		{ErrOutOfBounds, ParseClassBounds},
		{ErrDescriptorTooShort, ParseClassBounds},
		{ErrSetupPacketTooShort, ParseClassBounds},
		{ErrMalformedNesting, ParseClassNesting},
		{ErrStackOverflow, ParseClassStack},
		{ErrStackUnderflow, ParseClassStack},
		{ErrLengthMismatch, ParseClassLength},
		{ErrDescriptorTypeMismatch, ParseClassLength},
		{ErrReportIDMismatch, ParseClassLength},
		{ErrTooManyFields, ParseClassResource},
		{ErrBufferTooSmall, ParseClassResource},
		{ErrNoProgress, ParseClassInternal},
		{errors.New("unrelated"), ParseClassInternal},
	}

	for _, tt := range tests {
		t.Run(tt.want.String()+"/"+tt.err.Error(), func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassify_Wrapped(t *testing.T) {
	// Classification must see through fmt-style wrapping.
	wrapped := errors.Join(errors.New("at offset 12"), ErrOutOfBounds)
	if got := Classify(wrapped); got != ParseClassBounds {
		t.Errorf("Classify(wrapped) = %v, want %v", got, ParseClassBounds)
	}
}

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	errs := []error{
		ErrOutOfBounds,
		ErrMalformedNesting,
		ErrStackOverflow,
		ErrStackUnderflow,
		ErrLengthMismatch,
		ErrDescriptorTooShort,
		ErrDescriptorTypeMismatch,
		ErrSetupPacketTooShort,
		ErrBufferTooSmall,
		ErrInvalidParameter,
		ErrTooManyFields,
		ErrReportIDMismatch,
		ErrNoProgress,
	}

	for i, err1 := range errs {
		if err1 == nil {
			t.Errorf("error %d is nil", i)
			continue
		}
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("error %d and %d are equal", i, j)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err     error
		wantMsg string
	}{
		{ErrOutOfBounds, "read past end of buffer"},
		{ErrMalformedNesting, "malformed collection nesting"},
		{ErrStackOverflow, "global state stack overflow"},
		{ErrLengthMismatch, "descriptor length mismatch"},
		{ErrSetupPacketTooShort, "setup packet too short"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("error.Error() = %v, want %v", got, tt.wantMsg)
			}
		})
	}
}
