package displayarea

import "strings"

// StateFlags is the DISPLAY_DEVICE state bitset.
type StateFlags uint32

// State bits reported for adapters and monitors.
const (
	Active          StateFlags = 0x1
	PrimaryDevice   StateFlags = 0x4
	MirroringDriver StateFlags = 0x8
	VGACompatible   StateFlags = 0x10
	Removable       StateFlags = 0x20
	ModesPruned     StateFlags = 0x8000000
)

var stateFlagNames = []struct {
	flag StateFlags
	name string
}{
	{Active, "Active"},
	{PrimaryDevice, "PrimaryDevice"},
	{MirroringDriver, "MirroringDriver"},
	{VGACompatible, "VGACompatible"},
	{Removable, "Removable"},
	{ModesPruned, "ModesPruned"},
}

// Has reports whether every bit of flag is set.
func (f StateFlags) Has(flag StateFlags) bool {
	return f&flag == flag
}

func (f StateFlags) String() string {
	if f == 0 {
		return "0"
	}
	var names []string
	for _, n := range stateFlagNames {
		if f.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// AdapterDevice is one entry returned by a display device query, either an
// adapter or a monitor attached to one.
type AdapterDevice struct {
	Name string
	// Description is the human readable device string, such as the
	// monitor model.
	Description string
	StateFlags  StateFlags
	// DeviceID holds the interface name when the device was obtained with
	// InterfaceDevice.
	DeviceID string
}

// DeviceSource enumerates display devices by index. Parent "" lists
// adapters; otherwise the monitors of the named adapter are listed.
// Device returns ErrNoMoreDevices once index passes the last device.
type DeviceSource interface {
	Device(parent string, index uint32) (AdapterDevice, error)
	InterfaceDevice(parent string, index uint32) (AdapterDevice, error)
}
