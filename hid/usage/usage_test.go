package usage_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardnew/usbdesc/hid/usage"
)

func TestUsagePackUnpack(t *testing.T) {
	tests := []struct {
		page uint16
		id   uint16
	}{
		{0x0000, 0x0000},
		{usage.PageGenericDesktop, 0x0030},
		{usage.PageButton, 0x0001},
		{usage.PageFIDO, 0x0020},
		{0xFFFF, 0xFFFF},
	}
	for _, tt := range tests {
		u := usage.New(tt.page, tt.id)
		require.Equal(t, tt.page, u.Page(), "New(0x%04X, 0x%04X).Page()", tt.page, tt.id)
		require.Equal(t, tt.id, u.ID(), "New(0x%04X, 0x%04X).ID()", tt.page, tt.id)
		require.Equal(t, usage.Usage(uint32(tt.page)<<16|uint32(tt.id)), u)
	}
}

func TestPageName(t *testing.T) {
	tests := []struct {
		page   uint16
		want   string
		wantOK bool
	}{
		{usage.PageGenericDesktop, "Generic Desktop", true},
		{usage.PageKeyboard, "Keyboard/Keypad", true},
		{usage.PageButton, "Button", true},
		{usage.PageDigitizer, "Digitizers", true},
		{usage.PageFIDO, "FIDO Alliance", true},
		{0xFF00, "Vendor Defined 0xFF00", true},
		{0xFFA7, "Vendor Defined 0xFFA7", true},
		{0x001F, "", false},
		{0x1234, "", false},
	}
	for _, tt := range tests {
		got, ok := usage.PageName(tt.page)
		require.Equal(t, tt.wantOK, ok, "PageName(0x%04X) ok", tt.page)
		require.Equal(t, tt.want, got, "PageName(0x%04X)", tt.page)
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name   string
		page   uint16
		id     uint16
		want   string
		wantOK bool
	}{
		{"generic desktop X", usage.PageGenericDesktop, 0x30, "X", true},
		{"generic desktop wheel", usage.PageGenericDesktop, 0x38, "Wheel", true},
		{"generic desktop mouse", usage.PageGenericDesktop, 0x02, "Mouse", true},
		{"generic desktop unknown", usage.PageGenericDesktop, 0xF0, "", false},
		{"simulation throttle", usage.PageSimulation, 0xBB, "Throttle", true},
		{"led caps lock", usage.PageLED, 0x02, "Caps Lock", true},
		{"consumer volume up", usage.PageConsumer, 0xE9, "Volume Increment", true},
		{"consumer browser home", usage.PageConsumer, 0x223, "AC Home", true},
		{"digitizer tip switch", usage.PageDigitizer, 0x42, "Tip Switch", true},
		{"unknown page", 0x1234, 0x01, "", false},
		{"vendor page has no usage names", 0xFF00, 0x01, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := usage.Name(tt.page, tt.id)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNameButton(t *testing.T) {
	got, ok := usage.Name(usage.PageButton, 0)
	require.True(t, ok)
	require.Equal(t, "No Button", got)

	for _, id := range []uint16{1, 3, 57, 0xFFFF} {
		got, ok := usage.Name(usage.PageButton, id)
		require.True(t, ok, "Name(Button, %d) ok", id)
		require.Equal(t, fmt.Sprintf("Button %d", id), got)
	}
}

func TestNameOrdinal(t *testing.T) {
	_, ok := usage.Name(usage.PageOrdinal, 0)
	require.False(t, ok, "ordinal instance 0 is reserved")

	got, ok := usage.Name(usage.PageOrdinal, 4)
	require.True(t, ok)
	require.Equal(t, "Instance 4", got)
}

func TestNameKeyboard(t *testing.T) {
	tests := []struct {
		id     uint16
		want   string
		wantOK bool
	}{
		{0x04, "A", true},
		{0x1D, "Z", true},
		{0x1E, "1", true},
		{0x26, "9", true},
		{0x27, "0", true},
		{0x3A, "F1", true},
		{0x45, "F12", true},
		{0x68, "F13", true},
		{0x73, "F24", true},
		{0x28, "Enter", true},
		{0x59, "Keypad 1", true},
		{0x62, "Keypad 0", true},
		{0xE0, "Left Control", true},
		{0xE7, "Right GUI", true},
		{0x00, "", false},
		{0xFFFF, "", false},
	}
	for _, tt := range tests {
		got, ok := usage.Name(usage.PageKeyboard, tt.id)
		require.Equal(t, tt.wantOK, ok, "Name(Keyboard, 0x%02X) ok", tt.id)
		require.Equal(t, tt.want, got, "Name(Keyboard, 0x%02X)", tt.id)
	}
}

func TestUsageString(t *testing.T) {
	tests := []struct {
		u    usage.Usage
		want string
	}{
		{usage.New(usage.PageGenericDesktop, 0x30), "Generic Desktop:X"},
		{usage.New(usage.PageButton, 3), "Button:Button 3"},
		{usage.New(usage.PageKeyboard, 0x04), "Keyboard/Keypad:A"},
		{usage.New(usage.PageGenericDesktop, 0xFF), "Generic Desktop:0x00FF"},
		{usage.New(0xFF42, 0x01), "Vendor Defined 0xFF42:0x0001"},
		{usage.New(0x1F00, 0x01), "0x1F00:0x0001"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.u.String())
	}
}

func ExampleName() {
	name, ok := usage.Name(usage.PageGenericDesktop, 0x38)
	fmt.Println(name, ok)
	// Output: Wheel true
}

func ExampleUsage_String() {
	fmt.Println(usage.New(usage.PageGenericDesktop, 0x02))
	fmt.Println(usage.New(usage.PageButton, 5))
	// Output:
	// Generic Desktop:Mouse
	// Button:Button 5
}
