package check

// DeviceSet remembers the devices already checked within one run. It is owned
// by a single [Reporter.Run] and handed to every [Checker.Check].
type DeviceSet struct {
	seen  map[string]struct{}
	order []string
}

// NewDeviceSet returns a pointer to a new, empty [DeviceSet].
func NewDeviceSet() *DeviceSet {
	return &DeviceSet{
		seen: make(map[string]struct{}),
	}
}

// Contains reports whether the device was already recorded.
func (d *DeviceSet) Contains(device string) bool {
	_, exists := d.seen[device]

	return exists
}

// Add records a device. Recording an already known device is a no-op.
func (d *DeviceSet) Add(device string) {
	if d.Contains(device) {
		return
	}

	d.seen[device] = struct{}{}
	d.order = append(d.order, device)
}

// Devices returns the recorded devices in the order they were first seen.
func (d *DeviceSet) Devices() []string {
	devices := make([]string, len(d.order))
	copy(devices, d.order)

	return devices
}
