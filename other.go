//go:build !windows

package displayarea

type systemDevices struct{}

func (systemDevices) Device(string, uint32) (AdapterDevice, error) {
	return AdapterDevice{}, ErrUnsupported
}

func (systemDevices) InterfaceDevice(string, uint32) (AdapterDevice, error) {
	return AdapterDevice{}, ErrUnsupported
}

type systemMonitors struct{}

func (systemMonitors) VisitMonitors(func(MonitorHandle, Rect) bool) error {
	return ErrUnsupported
}

func (systemMonitors) MonitorInfo(MonitorHandle) (MonitorInfo, error) {
	return MonitorInfo{}, ErrUnsupported
}

type systemModes struct{}

func (systemModes) CurrentMode(string) (DisplayMode, error) {
	return DisplayMode{}, ErrUnsupported
}
