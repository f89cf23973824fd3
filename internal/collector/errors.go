package collector

import "fmt"

// DeviceError wraps a failure to read a device's saved configuration.
type DeviceError struct {
	Device string
	Path   string
	Err    error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Device, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}
