package prefix

import (
	"fmt"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetmaskRoundTrip(t *testing.T) {
	for n := 0; n <= 32; n++ {
		t.Run(fmt.Sprintf("/%d", n), func(t *testing.T) {
			mask, err := LengthToNetmask(n)
			require.NoError(t, err)

			got, err := NetmaskToLength(mask)
			require.NoError(t, err)
			assert.Equal(t, n, got)

			back, err := LengthToNetmask(got)
			require.NoError(t, err)
			assert.Equal(t, mask, back)
		})
	}
}

func TestNetmaskToLength(t *testing.T) {
	tests := []struct {
		mask     string
		expected int
	}{
		{"255.255.255.252", 30},
		{"255.255.255.0", 24},
		{"255.255.0.0", 16},
		{"255.255.255.255", 32},
		{"0.0.0.0", 0},
		{"255.255.255.128", 25},
	}

	for _, tt := range tests {
		t.Run(tt.mask, func(t *testing.T) {
			got, err := NetmaskToLength(tt.mask)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNetmaskToLengthRejectsMalformed(t *testing.T) {
	for _, mask := range []string{
		"255.0.255.0",
		"0.255.255.255",
		"255.255.255.253",
		"255.255.256.0",
		"24",
		"",
		"ffff::",
	} {
		t.Run(mask, func(t *testing.T) {
			_, err := NetmaskToLength(mask)
			assert.ErrorIs(t, err, ErrBadMask)
		})
	}
}

func TestLengthToNetmaskOutOfRange(t *testing.T) {
	_, err := LengthToNetmask(33)
	assert.ErrorIs(t, err, ErrBadLength)
	_, err = LengthToNetmask(-1)
	assert.ErrorIs(t, err, ErrBadLength)
}

func TestFromMask(t *testing.T) {
	p, err := FromMask("10.0.0.1", "255.255.255.252")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParsePrefix("10.0.0.1/30"), p)

	p, err = FromMask("10.0.0.1", "30")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParsePrefix("10.0.0.1/30"), p)

	_, err = FromMask("10.0.0.1", "x")
	assert.ErrorIs(t, err, ErrBadLength)

	_, err = FromMask("10.0.0.1", "40")
	assert.ErrorIs(t, err, ErrBadLength)

	_, err = FromMask("10.0.0", "24")
	assert.ErrorIs(t, err, ErrBadAddress)

	_, err = FromMask("2001:db8::1", "64")
	assert.ErrorIs(t, err, ErrBadAddress)
}

func TestParseHost(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"10.0.0.1/30", "10.0.0.1/30"},
		{"10.0.0.1/255.255.255.0", "10.0.0.1/24"},
		{"192.0.2.1", "192.0.2.1/32"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHost(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestUint32Ordering(t *testing.T) {
	a := netip.MustParseAddr("10.0.0.9")
	b := netip.MustParseAddr("10.0.0.10")
	assert.Less(t, Uint32(a), Uint32(b))
	assert.Equal(t, uint32(0x0a000001), Uint32(netip.MustParseAddr("10.0.0.1")))
}
