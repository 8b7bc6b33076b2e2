//go:build windows

package win_dev

import (
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	funcEnumDisplayDevices  = user32.NewProc("EnumDisplayDevicesW")
	funcEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	funcGetMonitorInfo      = user32.NewProc("GetMonitorInfoW")
	funcEnumDisplaySettings = user32.NewProc("EnumDisplaySettingsW")
)

const (
	EDD_GET_DEVICE_INTERFACE_NAME = 0x00000001
	ENUM_CURRENT_SETTINGS         = 0xFFFFFFFF
)

// DISPLAY_DEVICE mirrors DISPLAY_DEVICEW.
type DISPLAY_DEVICE struct {
	Cb           uint32
	DeviceName   [32]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

// MONITORINFOEX mirrors MONITORINFOEXW.
type MONITORINFOEX struct {
	win.MONITORINFO
	DeviceName [win.CCHDEVICENAME]uint16
}

// DEVMODE covers the display fields of DEVMODEW; printer fields are padding.
type DEVMODE struct {
	_                  [68]byte
	DmSize             uint16
	_                  [6]byte
	DmPosition         win.POINT
	_                  [84]byte
	DmBitsPerPel       uint32
	DmPelsWidth        uint32
	DmPelsHeight       uint32
	DmDisplayFlags     uint32
	DmDisplayFrequency uint32
	_                  [32]byte
}

// EnumDisplayDevices queries the display device at index under device.
// An empty device enumerates adapters. It returns false once index runs
// past the last device, and on any other failure.
func EnumDisplayDevices(device string, index uint32, flags uint32) (DISPLAY_DEVICE, bool) {
	dd := DISPLAY_DEVICE{}
	dd.Cb = uint32(unsafe.Sizeof(dd))

	var name *uint16
	if device != "" {
		p, err := windows.UTF16PtrFromString(device)
		if err != nil {
			return dd, false
		}
		name = p
	}

	ret, _, _ := funcEnumDisplayDevices.Call(
		uintptr(unsafe.Pointer(name)),
		uintptr(index),
		uintptr(unsafe.Pointer(&dd)),
		uintptr(flags),
	)
	return dd, ret != 0
}

func EnumDisplayMonitors(hdc win.HDC, lprcClip *win.RECT, lpfnEnum uintptr, dwData uintptr) bool {
	ret, _, _ := funcEnumDisplayMonitors.Call(
		uintptr(hdc),
		uintptr(unsafe.Pointer(lprcClip)),
		lpfnEnum,
		dwData,
	)
	return ret != 0
}

func GetMonitorInfo(hMonitor win.HMONITOR) (MONITORINFOEX, bool) {
	info := MONITORINFOEX{}
	info.CbSize = uint32(unsafe.Sizeof(info))

	ret, _, _ := funcGetMonitorInfo.Call(uintptr(hMonitor), uintptr(unsafe.Pointer(&info)))
	return info, ret != 0
}

// EnumDisplaySettings reads the current mode of the named device. The
// returned size is the real resolution, not the DPI scaled one.
func EnumDisplaySettings(device string) (DEVMODE, bool) {
	devMode := DEVMODE{}
	devMode.DmSize = uint16(unsafe.Sizeof(devMode))

	name, err := windows.UTF16PtrFromString(device)
	if err != nil {
		return devMode, false
	}

	ret, _, _ := funcEnumDisplaySettings.Call(
		uintptr(unsafe.Pointer(name)),
		ENUM_CURRENT_SETTINGS,
		uintptr(unsafe.Pointer(&devMode)),
	)
	return devMode, ret != 0
}

// String converts a fixed size UTF-16 buffer to a Go string.
func String(buf []uint16) string {
	return windows.UTF16ToString(buf)
}
