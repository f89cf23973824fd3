package model

import "net/netip"

// Link is a point-to-point circuit inferred from a prefix with exactly two endpoints.
// A always holds the numerically lower address.
type Link struct {
	Prefix netip.Prefix
	A      Endpoint
	B      Endpoint
}
