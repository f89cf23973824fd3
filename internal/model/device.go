package model

import "strings"

// Device is one router.db entry.
type Device struct {
	Name   string
	Vendor string
	Status string
}

// Active reports whether the device is marked up. RANCID writes "up" but
// some tooling appends qualifiers, so only the prefix is checked.
func (d Device) Active() bool {
	return strings.HasPrefix(d.Status, "up")
}
