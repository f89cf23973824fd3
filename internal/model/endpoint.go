package model

import (
	"fmt"
	"net/netip"
)

// Endpoint is an interface address observed in a device configuration.
type Endpoint struct {
	Device    string
	Interface string
	Address   netip.Prefix // host address with its mask length, e.g. 10.0.0.1/30
}

// String renders the endpoint the way the diagnostic listing prints it.
func (e Endpoint) String() string {
	return fmt.Sprintf("%s %s %s", e.Address, e.Device, e.Interface)
}

// Less orders endpoints by owner, used to settle duplicate-address conflicts.
func (e Endpoint) Less(o Endpoint) bool {
	if e.Device != o.Device {
		return e.Device < o.Device
	}
	return e.Interface < o.Interface
}
