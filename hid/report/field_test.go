package report

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ardnew/usbdesc/pkg"
)

func TestFieldExtract(t *testing.T) {
	for _, tt := range []struct {
		name    string
		offset  int
		width   int
		payload []byte
		want    uint32
	}{
		{"single bit", 0, 1, []byte{0x01}, 1},
		{"high bit of byte", 7, 1, []byte{0x80}, 1},
		{"byte spanning two bytes", 4, 8, []byte{0xF0, 0x0F}, 0xFF},
		{"aligned word", 8, 16, []byte{0xAA, 0x34, 0x12}, 0x1234},
		{"misaligned dword", 4, 32, []byte{0x21, 0x43, 0x65, 0x87, 0x09}, 0x98765432},
		{"full dword", 0, 32, []byte{0xFF, 0xFF, 0xFF, 0xFF}, 0xFFFFFFFF},
		{"zero width", 3, 0, []byte{0xFF}, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := Field{BitOffset: tt.offset, BitWidth: tt.width}
			got, err := f.Extract(tt.payload)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFieldExtractSigned(t *testing.T) {
	for _, tt := range []struct {
		name    string
		offset  int
		width   int
		payload []byte
		want    int32
	}{
		{"negative byte", 0, 8, []byte{0x81}, -127},
		{"positive byte", 0, 8, []byte{0x7F}, 127},
		{"negative nibble", 0, 4, []byte{0x0F}, -1},
		{"negative 12 bits", 0, 12, []byte{0x00, 0x08}, -2048},
		{"single bit set", 0, 1, []byte{0x01}, -1},
		{"negative dword", 0, 32, []byte{0xFF, 0xFF, 0xFF, 0xFF}, -1},
		{"zero width", 0, 0, []byte{0xFF}, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := Field{BitOffset: tt.offset, BitWidth: tt.width}
			got, err := f.ExtractSigned(tt.payload)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFieldExtractErrors(t *testing.T) {
	for _, tt := range []struct {
		name    string
		field   Field
		payload []byte
		err     error
	}{
		{"payload too short", Field{BitWidth: 16}, []byte{0xAA}, pkg.ErrOutOfBounds},
		{"empty payload", Field{BitWidth: 8}, nil, pkg.ErrOutOfBounds},
		{"offset past end", Field{BitOffset: 8, BitWidth: 1}, []byte{0xFF}, pkg.ErrOutOfBounds},
		{"width over 32", Field{BitWidth: 33}, make([]byte, 8), pkg.ErrInvalidParameter},
		{"negative offset", Field{BitOffset: -1, BitWidth: 8}, []byte{0xFF}, pkg.ErrInvalidParameter},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.field.Extract(tt.payload)
			require.ErrorIs(t, err, tt.err)

			_, err = tt.field.ExtractSigned(tt.payload)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestReportExtract(t *testing.T) {
	f := &Field{ReportID: 1, Numbered: true, BitWidth: 8}
	r := &Report{ID: 1, Numbered: true, Type: Input, Fields: []*Field{f}}

	v, err := r.Extract([]byte{0x01, 0x42}, f)
	require.NoError(t, err)
	require.Equal(t, uint32(0x42), v)

	s, err := r.ExtractSigned([]byte{0x01, 0x81}, f)
	require.NoError(t, err)
	require.Equal(t, int32(-127), s)

	_, err = r.Extract([]byte{0x02, 0x42}, f)
	require.ErrorIs(t, err, pkg.ErrReportIDMismatch)

	_, err = r.Extract(nil, f)
	require.ErrorIs(t, err, pkg.ErrOutOfBounds)

	// Unnumbered reports take the data as-is.
	plain := &Report{Fields: []*Field{{BitWidth: 8}}}
	v, err = plain.Extract([]byte{0x42}, plain.Fields[0])
	require.NoError(t, err)
	require.Equal(t, uint32(0x42), v)
}

// TestFieldExtractRapid plants a value at an arbitrary bit position inside
// noise and checks that extraction recovers exactly the planted bits.
func TestFieldExtractRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 32).Draw(t, "width")
		offset := rapid.IntRange(0, 64).Draw(t, "offset")
		value := rapid.Uint64Range(0, 1<<uint(width)-1).Draw(t, "value")

		n := (offset + width + 7) / 8
		buf := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "noise")
		for i := 0; i < width; i++ {
			pos := offset + i
			buf[pos/8] &^= 1 << uint(pos%8)
			if value&(1<<uint(i)) != 0 {
				buf[pos/8] |= 1 << uint(pos%8)
			}
		}

		f := Field{BitOffset: offset, BitWidth: width}
		got, err := f.Extract(buf)
		require.NoError(t, err)
		require.Equal(t, uint32(value), got)

		s, err := f.ExtractSigned(buf)
		require.NoError(t, err)
		require.Equal(t, int32(int64(value)<<uint(64-width)>>uint(64-width)), s)
	})
}
