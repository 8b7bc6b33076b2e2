package displayarea

import "errors"

var (
	// ErrUnsupported is returned by the system sources on platforms without
	// the Win32 display enumeration API.
	ErrUnsupported = errors.New("display enumeration does not support your platform")

	// ErrNoMoreDevices signals that a device index is past the last device.
	ErrNoMoreDevices = errors.New("no more display devices")

	// ErrInterfaceName means the interface name query failed for a monitor
	// that the plain query had returned.
	ErrInterfaceName = errors.New("device interface name query failed")

	// ErrMalformedDeviceID means the interface name lacks the DISPLAY marker
	// or the opening brace of the interface class GUID.
	ErrMalformedDeviceID = errors.New("malformed monitor device id")

	// ErrMonitorInfo means the extended info of a monitor handle could not
	// be read.
	ErrMonitorInfo = errors.New("monitor info query failed")

	// ErrDisplayMode means the current mode of a device could not be read.
	ErrDisplayMode = errors.New("display mode query failed")
)
