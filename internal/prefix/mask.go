package prefix

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

var (
	ErrBadAddress = errors.New("not an IPv4 address")
	ErrBadMask    = errors.New("malformed netmask")
	ErrBadLength  = errors.New("mask length out of range")
)

// NetmaskToLength converts a dotted-quad netmask such as 255.255.255.252 into
// its prefix length. Non-contiguous masks are rejected.
func NetmaskToLength(mask string) (int, error) {
	m, err := netip.ParseAddr(mask)
	if err != nil || !m.Is4() {
		return 0, fmt.Errorf("%w: %q", ErrBadMask, mask)
	}
	b := m.As4()
	v := binary.BigEndian.Uint32(b[:])
	n := bits.LeadingZeros32(^v)
	if v != lengthMask(n) {
		return 0, fmt.Errorf("%w: %q is not contiguous", ErrBadMask, mask)
	}
	return n, nil
}

// LengthToNetmask is the inverse of NetmaskToLength.
func LengthToNetmask(length int) (string, error) {
	if length < 0 || length > 32 {
		return "", fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], lengthMask(length))
	return netip.AddrFrom4(b).String(), nil
}

func lengthMask(n int) uint32 {
	if n == 0 {
		return 0
	}
	return ^uint32(0) << (32 - n)
}

// FromNetmask builds the host prefix host/len from a host address and a dotted netmask.
// The host bits are kept; use Masked to obtain the network.
func FromNetmask(host, mask string) (netip.Prefix, error) {
	n, err := NetmaskToLength(mask)
	if err != nil {
		return netip.Prefix{}, err
	}
	return FromLength(host, n)
}

// FromLength builds the host prefix host/len from a host address and a mask length.
func FromLength(host string, length int) (netip.Prefix, error) {
	a, err := netip.ParseAddr(host)
	if err != nil || !a.Is4() {
		return netip.Prefix{}, fmt.Errorf("%w: %q", ErrBadAddress, host)
	}
	if length < 0 || length > 32 {
		return netip.Prefix{}, fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	return netip.PrefixFrom(a, length), nil
}

// FromMask accepts either form of mask: a dotted netmask when it contains a
// dot, otherwise a decimal length.
func FromMask(host, mask string) (netip.Prefix, error) {
	if strings.Contains(mask, ".") {
		return FromNetmask(host, mask)
	}
	n, err := strconv.Atoi(mask)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %q", ErrBadLength, mask)
	}
	return FromLength(host, n)
}

// ParseHost parses "addr/len", "addr/netmask" or a bare "addr" (meaning /32).
func ParseHost(s string) (netip.Prefix, error) {
	host, mask, ok := strings.Cut(s, "/")
	if !ok {
		return FromLength(host, 32)
	}
	return FromMask(host, mask)
}

// Uint32 returns the address as a big-endian integer, for numeric ordering.
func Uint32(a netip.Addr) uint32 {
	b := a.As4()
	return binary.BigEndian.Uint32(b[:])
}
