package displayarea

import (
	"errors"
	"fmt"
)

const testInterfaceGUID = "{e6f07b5f-ee97-4a90-b076-33f57bf4eaa7}"

func interfaceName(hardwareID, instance string) string {
	return `\\?\DISPLAY#` + hardwareID + "#" + instance + "#" + testInterfaceGUID
}

type fakeMonitor struct {
	flags StateFlags
	// deviceID is returned by the interface name query.
	deviceID string
	// ifaceErr makes the interface name query fail.
	ifaceErr bool
}

type fakeAdapter struct {
	name     string
	monitors []fakeMonitor
}

// fakeDevices serves adapters and monitors by index and records every
// interface name query.
type fakeDevices struct {
	adapters []fakeAdapter
	// failAt makes the plain query for parent at this index fail with a
	// non exhaustion error.
	failParent string
	failAt     int

	ifaceQueries []string
}

func (f *fakeDevices) adapter(name string) (fakeAdapter, bool) {
	for _, a := range f.adapters {
		if a.name == name {
			return a, true
		}
	}
	return fakeAdapter{}, false
}

func (f *fakeDevices) Device(parent string, index uint32) (AdapterDevice, error) {
	if f.failAt > 0 && parent == f.failParent && int(index) == f.failAt-1 {
		return AdapterDevice{}, errors.New("device query failed")
	}
	if parent == "" {
		if int(index) >= len(f.adapters) {
			return AdapterDevice{}, ErrNoMoreDevices
		}
		return AdapterDevice{Name: f.adapters[index].name, StateFlags: Active}, nil
	}

	a, ok := f.adapter(parent)
	if !ok || int(index) >= len(a.monitors) {
		return AdapterDevice{}, ErrNoMoreDevices
	}
	m := a.monitors[index]
	return AdapterDevice{
		Name:        fmt.Sprintf(`%s\Monitor%d`, parent, index),
		Description: "Generic PnP Monitor",
		StateFlags:  m.flags,
		DeviceID:    `MONITOR\GENERIC\{4d36e96e-e325-11ce-bfc1-08002be10318}\0000`,
	}, nil
}

func (f *fakeDevices) InterfaceDevice(parent string, index uint32) (AdapterDevice, error) {
	f.ifaceQueries = append(f.ifaceQueries, fmt.Sprintf("%s/%d", parent, index))

	a, ok := f.adapter(parent)
	if !ok || int(index) >= len(a.monitors) {
		return AdapterDevice{}, ErrNoMoreDevices
	}
	m := a.monitors[index]
	if m.ifaceErr {
		return AdapterDevice{}, errors.New("interface query failed")
	}
	return AdapterDevice{
		Name:       fmt.Sprintf(`%s\Monitor%d`, parent, index),
		StateFlags: m.flags,
		DeviceID:   m.deviceID,
	}, nil
}

type fakeHandle struct {
	info    MonitorInfo
	infoErr bool
}

type fakeMonitors struct {
	handles []fakeHandle
	// visitErr is returned after visiting all handles.
	visitErr error
	visits   int
}

func (f *fakeMonitors) VisitMonitors(visit func(MonitorHandle, Rect) bool) error {
	f.visits++
	for i, h := range f.handles {
		if !visit(MonitorHandle(i+1), h.info.Monitor) {
			break
		}
	}
	return f.visitErr
}

func (f *fakeMonitors) MonitorInfo(h MonitorHandle) (MonitorInfo, error) {
	i := int(h) - 1
	if i < 0 || i >= len(f.handles) || f.handles[i].infoErr {
		return MonitorInfo{}, ErrMonitorInfo
	}
	return f.handles[i].info, nil
}

type fakeModes map[string]DisplayMode

func (f fakeModes) CurrentMode(deviceName string) (DisplayMode, error) {
	m, ok := f[deviceName]
	if !ok {
		return DisplayMode{}, ErrDisplayMode
	}
	return m, nil
}

func handle(name string, left, top, right, bottom int32) fakeHandle {
	return fakeHandle{info: MonitorInfo{
		DeviceName: name,
		Monitor:    Rect{Left: left, Top: top, Right: right, Bottom: bottom},
		Primary:    left == 0 && top == 0,
	}}
}
