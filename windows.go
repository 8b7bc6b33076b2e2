//go:build windows

package displayarea

import (
	"runtime"
	"unsafe"

	"github.com/lxn/win"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/Fast-IQ/displayarea/win_dev"
)

// One callback for the process lifetime; windows.NewCallback slots are
// never released.
var enumMonitorsCallback = windows.NewCallback(enumMonitorsProc)

type systemDevices struct{}

func (systemDevices) Device(parent string, index uint32) (AdapterDevice, error) {
	dd, ok := win_dev.EnumDisplayDevices(parent, index, 0)
	if !ok {
		return AdapterDevice{}, ErrNoMoreDevices
	}
	return toAdapterDevice(dd), nil
}

func (systemDevices) InterfaceDevice(parent string, index uint32) (AdapterDevice, error) {
	dd, ok := win_dev.EnumDisplayDevices(parent, index, win_dev.EDD_GET_DEVICE_INTERFACE_NAME)
	if !ok {
		return AdapterDevice{}, errors.Errorf("EnumDisplayDevices(%q, %d, EDD_GET_DEVICE_INTERFACE_NAME) failed: %v",
			parent, index, windows.GetLastError())
	}
	return toAdapterDevice(dd), nil
}

func toAdapterDevice(dd win_dev.DISPLAY_DEVICE) AdapterDevice {
	return AdapterDevice{
		Name:        win_dev.String(dd.DeviceName[:]),
		Description: win_dev.String(dd.DeviceString[:]),
		StateFlags:  StateFlags(dd.StateFlags),
		DeviceID:    win_dev.String(dd.DeviceID[:]),
	}
}

type systemMonitors struct{}

type visitContext struct {
	visit   func(MonitorHandle, Rect) bool
	stopped bool
}

func enumMonitorsProc(hMonitor win.HMONITOR, hdcMonitor win.HDC, lprcMonitor *win.RECT, dwData uintptr) uintptr {
	ctx := (*visitContext)(unsafe.Pointer(dwData))
	if !ctx.visit(MonitorHandle(hMonitor), fromRECT(*lprcMonitor)) {
		ctx.stopped = true
		return 0
	}
	return 1
}

func (systemMonitors) VisitMonitors(visit func(MonitorHandle, Rect) bool) error {
	ctx := &visitContext{visit: visit}
	pinner := new(runtime.Pinner)
	pinner.Pin(ctx)
	defer pinner.Unpin()

	if !win_dev.EnumDisplayMonitors(0, nil, enumMonitorsCallback, uintptr(unsafe.Pointer(ctx))) && !ctx.stopped {
		return errors.New("EnumDisplayMonitors failed")
	}
	return nil
}

func (systemMonitors) MonitorInfo(h MonitorHandle) (MonitorInfo, error) {
	info, ok := win_dev.GetMonitorInfo(win.HMONITOR(h))
	if !ok {
		return MonitorInfo{}, errors.Wrapf(ErrMonitorInfo, "handle %#x", uintptr(h))
	}
	return MonitorInfo{
		DeviceName: win_dev.String(info.DeviceName[:]),
		Monitor:    fromRECT(info.RcMonitor),
		Primary:    info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	}, nil
}

func fromRECT(r win.RECT) Rect {
	return Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

type systemModes struct{}

func (systemModes) CurrentMode(deviceName string) (DisplayMode, error) {
	devMode, ok := win_dev.EnumDisplaySettings(deviceName)
	if !ok {
		return DisplayMode{}, errors.Wrapf(ErrDisplayMode, "%s", deviceName)
	}
	return DisplayMode{
		DeviceName:  deviceName,
		X:           devMode.DmPosition.X,
		Y:           devMode.DmPosition.Y,
		Width:       devMode.DmPelsWidth,
		Height:      devMode.DmPelsHeight,
		BitsPerPel:  devMode.DmBitsPerPel,
		RefreshRate: devMode.DmDisplayFrequency,
	}, nil
}
