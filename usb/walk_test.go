package usb

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/usbdesc/pkg"
)

func silenceLogs(tb testing.TB) {
	tb.Helper()
	old := pkg.DefaultLogger
	pkg.SetLogger(pkg.NewLogger(io.Discard, nil))
	tb.Cleanup(func() { pkg.SetLogger(old) })
}

type marshaler interface {
	MarshalTo(buf []byte) int
}

func marshalAppend(tb testing.TB, blob []byte, d marshaler) []byte {
	tb.Helper()
	var buf [64]byte
	n := d.MarshalTo(buf[:])
	require.NotZero(tb, n, "marshal produced no bytes")
	return append(blob, buf[:n]...)
}

// compositeBlob builds the configuration blob of a two-interface HID
// device (boot keyboard plus boot mouse behind one association), with a
// vendor-specific run inside the second interface.
func compositeBlob(tb testing.TB) []byte {
	tb.Helper()
	var blob []byte
	blob = marshalAppend(tb, blob, &ConfigurationDescriptor{
		NumInterfaces:      2,
		ConfigurationValue: 1,
		Attributes:         ConfigAttrBusPowered,
		MaxPower:           50,
	})
	blob = marshalAppend(tb, blob, &InterfaceAssociationDescriptor{
		FirstInterface: 0,
		InterfaceCount: 2,
		FunctionClass:  ClassHID,
	})
	blob = marshalAppend(tb, blob, &InterfaceDescriptor{
		InterfaceNumber:   0,
		NumEndpoints:      1,
		InterfaceClass:    ClassHID,
		InterfaceSubClass: HIDSubclassBoot,
		InterfaceProtocol: HIDProtocolKeyboard,
	})
	blob = marshalAppend(tb, blob, &HIDDescriptor{
		HIDVersion:     0x0111,
		ReportDescType: DescriptorTypeHIDReport,
		ReportDescLen:  65,
	})
	blob = marshalAppend(tb, blob, &EndpointDescriptor{
		EndpointAddress: 0x81,
		Attributes:      EndpointTypeInterrupt,
		MaxPacketSize:   8,
		Interval:        10,
	})
	blob = marshalAppend(tb, blob, &InterfaceDescriptor{
		InterfaceNumber:   1,
		NumEndpoints:      1,
		InterfaceClass:    ClassHID,
		InterfaceSubClass: HIDSubclassBoot,
		InterfaceProtocol: HIDProtocolMouse,
	})
	blob = marshalAppend(tb, blob, &HIDDescriptor{
		HIDVersion:     0x0111,
		ReportDescType: DescriptorTypeHIDReport,
		ReportDescLen:  74,
	})
	blob = append(blob, 4, 0xFF, 0xDE, 0xAD) // vendor-specific run
	blob = marshalAppend(tb, blob, &EndpointDescriptor{
		EndpointAddress: 0x82,
		Attributes:      EndpointTypeInterrupt,
		MaxPacketSize:   8,
		Interval:        10,
	})
	binary.LittleEndian.PutUint16(blob[2:4], uint16(len(blob)))
	return blob
}

func TestWalker_Scan(t *testing.T) {
	blob := compositeBlob(t)

	type run struct {
		Offset int
		Type   uint8
		Len    uint8
	}
	var got []run
	w := NewWalker(blob)
	for w.Scan() {
		got = append(got, run{w.Offset(), w.Type(), w.Len()})
	}
	require.NoError(t, w.Err())

	want := []run{
		{0, DescriptorTypeConfiguration, 9},
		{9, DescriptorTypeInterfaceAssociation, 8},
		{17, DescriptorTypeInterface, 9},
		{26, DescriptorTypeHID, 9},
		{35, DescriptorTypeEndpoint, 7},
		{42, DescriptorTypeInterface, 9},
		{51, DescriptorTypeHID, 9},
		{60, 0xFF, 4},
		{64, DescriptorTypeEndpoint, 7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestWalker_BytesAliasesBlob(t *testing.T) {
	blob := compositeBlob(t)
	w := NewWalker(blob)
	require.True(t, w.Scan())
	b := w.Bytes()
	require.Equal(t, int(blob[0]), len(b))
	require.Same(t, &blob[0], &b[0], "Bytes must not copy the blob")
}

func TestWalker_Empty(t *testing.T) {
	w := NewWalker(nil)
	require.False(t, w.Scan())
	require.NoError(t, w.Err())
}

func TestWalker_TruncatedRun(t *testing.T) {
	// Endpoint run claims 7 bytes but only 4 remain.
	blob := []byte{4, 0xFF, 0xDE, 0xAD, 7, DescriptorTypeEndpoint, 0x81}
	w := NewWalker(blob)
	require.True(t, w.Scan())
	require.False(t, w.Scan())

	err := w.Err()
	require.ErrorIs(t, err, pkg.ErrOutOfBounds)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, 4, derr.Offset)
	require.Equal(t, uint8(DescriptorTypeEndpoint), derr.Type)
}

func TestWalker_RunTooShortToFrame(t *testing.T) {
	for _, length := range []uint8{0, 1} {
		blob := []byte{length, DescriptorTypeEndpoint, 0, 0}
		w := NewWalker(blob)
		require.False(t, w.Scan(), "bLength %d", length)
		require.ErrorIs(t, w.Err(), pkg.ErrLengthMismatch, "bLength %d", length)
	}
}

func TestWalker_BadSiblingDoesNotStopWalk(t *testing.T) {
	// A framable endpoint run with the wrong fixed size fails to decode,
	// but the following run still scans and decodes.
	var blob []byte
	blob = append(blob, 8, DescriptorTypeEndpoint, 0x81, 0x03, 8, 0, 10, 0)
	blob = marshalAppend(t, blob, &EndpointDescriptor{
		EndpointAddress: 0x02,
		Attributes:      EndpointTypeBulk,
		MaxPacketSize:   64,
	})

	w := NewWalker(blob)
	require.True(t, w.Scan())
	_, err := w.Descriptor()
	require.ErrorIs(t, err, pkg.ErrLengthMismatch)

	require.True(t, w.Scan())
	d, err := w.Descriptor()
	require.NoError(t, err)
	ep, ok := d.(*EndpointDescriptor)
	require.True(t, ok)
	require.Equal(t, uint8(0x02), ep.EndpointAddress)
	require.NoError(t, w.Err())
}

func TestParse_Dispatch(t *testing.T) {
	blob := compositeBlob(t)
	w := NewWalker(blob)

	var types []string
	for w.Scan() {
		d, err := w.Descriptor()
		require.NoError(t, err)
		switch d.(type) {
		case *ConfigurationDescriptor:
			types = append(types, "configuration")
		case *InterfaceAssociationDescriptor:
			types = append(types, "association")
		case *InterfaceDescriptor:
			types = append(types, "interface")
		case *HIDDescriptor:
			types = append(types, "hid")
		case *EndpointDescriptor:
			types = append(types, "endpoint")
		case *UnknownDescriptor:
			types = append(types, "unknown")
		default:
			t.Fatalf("unexpected descriptor %T", d)
		}
	}
	require.NoError(t, w.Err())

	want := []string{
		"configuration", "association", "interface", "hid", "endpoint",
		"interface", "hid", "unknown", "endpoint",
	}
	require.Equal(t, want, types)
}

func TestParse_UnknownPreservesRaw(t *testing.T) {
	raw := []byte{5, DescriptorTypeCSInterface, 0x00, 0x10, 0x01}
	d, err := Parse(raw)
	require.NoError(t, err)
	u, ok := d.(*UnknownDescriptor)
	require.True(t, ok)
	require.Equal(t, uint8(DescriptorTypeCSInterface), u.Type)
	require.Equal(t, raw, u.Raw)
	require.Equal(t, uint8(5), u.Length())
}

func TestParseConfiguration(t *testing.T) {
	blob := compositeBlob(t)

	cfg, err := ParseConfiguration(blob)
	require.NoError(t, err)

	require.Equal(t, uint16(len(blob)), cfg.Desc.TotalLength)
	require.Equal(t, uint8(2), cfg.Desc.NumInterfaces)
	require.Len(t, cfg.Interfaces, 2)
	require.Len(t, cfg.Associations, 1)
	require.Empty(t, cfg.Extra)

	kbd := cfg.Interfaces[0]
	require.Equal(t, uint8(HIDProtocolKeyboard), kbd.Desc.InterfaceProtocol)
	require.Len(t, kbd.HID, 1)
	require.Equal(t, uint16(65), kbd.HID[0].ReportDescLen)
	require.Len(t, kbd.Endpoints, 1)
	require.Equal(t, uint8(0x81), kbd.Endpoints[0].EndpointAddress)
	require.NotNil(t, kbd.Assoc)
	require.Equal(t, uint8(ClassHID), kbd.Assoc.FunctionClass)

	mouse := cfg.Interfaces[1]
	require.Equal(t, uint8(HIDProtocolMouse), mouse.Desc.InterfaceProtocol)
	require.Len(t, mouse.HID, 1)
	require.Equal(t, uint16(74), mouse.HID[0].ReportDescLen)
	require.Len(t, mouse.Endpoints, 1)
	require.Equal(t, uint8(2), mouse.Endpoints[0].Number())
	require.NotNil(t, mouse.Assoc)
	require.Len(t, mouse.Extra, 1)
	require.Equal(t, uint8(0xFF), mouse.Extra[0].Type)
	require.Equal(t, []byte{4, 0xFF, 0xDE, 0xAD}, mouse.Extra[0].Raw)

	require.Len(t, cfg.HIDInterfaces(), 2)

	found := cfg.Interface(1, 0)
	require.NotNil(t, found)
	require.Equal(t, uint8(1), found.Desc.InterfaceNumber)
	require.Nil(t, cfg.Interface(5, 0))
}

func TestParseConfiguration_Empty(t *testing.T) {
	_, err := ParseConfiguration(nil)
	require.ErrorIs(t, err, pkg.ErrDescriptorTooShort)
}

func TestParseConfiguration_NotConfiguration(t *testing.T) {
	var blob []byte
	blob = marshalAppend(t, blob, &DeviceDescriptor{MaxPacketSize0: 64})
	_, err := ParseConfiguration(blob)
	require.ErrorIs(t, err, pkg.ErrDescriptorTypeMismatch)
}

func TestParseConfiguration_SkipsUndecodableSibling(t *testing.T) {
	silenceLogs(t)

	var blob []byte
	blob = marshalAppend(t, blob, &ConfigurationDescriptor{
		NumInterfaces:      1,
		ConfigurationValue: 1,
		Attributes:         ConfigAttrBusPowered,
	})
	blob = marshalAppend(t, blob, &InterfaceDescriptor{
		InterfaceClass: ClassHID,
		NumEndpoints:   1,
	})
	// Framable endpoint run with the wrong fixed size: skipped, not fatal.
	blob = append(blob, 8, DescriptorTypeEndpoint, 0x81, 0x03, 8, 0, 10, 0)
	blob = marshalAppend(t, blob, &EndpointDescriptor{
		EndpointAddress: 0x81,
		Attributes:      EndpointTypeInterrupt,
		MaxPacketSize:   8,
		Interval:        10,
	})
	binary.LittleEndian.PutUint16(blob[2:4], uint16(len(blob)))

	cfg, err := ParseConfiguration(blob)
	require.NoError(t, err)
	require.Len(t, cfg.Interfaces, 1)
	require.Len(t, cfg.Interfaces[0].Endpoints, 1)
}

func TestParseConfiguration_OrphanDescriptors(t *testing.T) {
	silenceLogs(t)

	// Endpoint and HID runs before any interface are dropped with a warning.
	var blob []byte
	blob = marshalAppend(t, blob, &ConfigurationDescriptor{
		NumInterfaces:      1,
		ConfigurationValue: 1,
	})
	blob = marshalAppend(t, blob, &EndpointDescriptor{
		EndpointAddress: 0x81,
		Attributes:      EndpointTypeInterrupt,
		MaxPacketSize:   8,
	})
	blob = marshalAppend(t, blob, &InterfaceDescriptor{
		InterfaceClass: ClassHID,
	})
	binary.LittleEndian.PutUint16(blob[2:4], uint16(len(blob)))

	cfg, err := ParseConfiguration(blob)
	require.NoError(t, err)
	require.Len(t, cfg.Interfaces, 1)
	require.Empty(t, cfg.Interfaces[0].Endpoints)
}

func TestParseConfiguration_TruncatedBlob(t *testing.T) {
	silenceLogs(t)

	blob := compositeBlob(t)
	_, err := ParseConfiguration(blob[:len(blob)-3])

	require.ErrorIs(t, err, pkg.ErrOutOfBounds)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, 64, derr.Offset)
}

func TestDecodeError_Message(t *testing.T) {
	err := &DecodeError{Offset: 42, Type: DescriptorTypeEndpoint, Err: pkg.ErrOutOfBounds}
	require.Equal(t, "descriptor at offset 42 (type Endpoint): read past end of buffer", err.Error())
	require.True(t, errors.Is(err, pkg.ErrOutOfBounds))
}

func FuzzWalker(f *testing.F) {
	f.Add(compositeBlob(f))
	f.Add([]byte{})
	f.Add([]byte{0})
	f.Add([]byte{1, 2, 3})
	f.Add([]byte{2, 0xFF, 2, 0xFE})
	f.Add([]byte{18, DescriptorTypeDevice})

	f.Fuzz(func(t *testing.T, blob []byte) {
		w := NewWalker(blob)
		var runs int
		for w.Scan() {
			runs++
			if got, want := len(w.Bytes()), int(w.Len()); got != want {
				t.Fatalf("run %d: len(Bytes()) = %d, declared %d", runs, got, want)
			}
			if off := w.Offset(); off < 0 || off >= len(blob) {
				t.Fatalf("run %d: offset %d outside blob of %d bytes", runs, off, len(blob))
			}
			// Decode must never panic; errors are acceptable.
			_, _ = w.Descriptor()
		}
		// Each run consumes at least two bytes, bounding the walk.
		if limit := len(blob) / 2; runs > limit {
			t.Fatalf("%d runs from %d bytes", runs, len(blob))
		}
		if err := w.Err(); err != nil {
			if !errors.Is(err, pkg.ErrOutOfBounds) && !errors.Is(err, pkg.ErrLengthMismatch) {
				t.Fatalf("unexpected walk error: %v", err)
			}
		}
	})
}
