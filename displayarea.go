// Package displayarea enumerates the physical monitors of a Windows machine
// with their virtual desktop bounds and the monitor ids eye trackers use to
// report which display they are mounted on.
package displayarea

import (
	"image"
	"log/slog"
)

// DisplayArea is a physical monitor placed on the virtual desktop.
type DisplayArea struct {
	DeviceName string  `json:"deviceName" yaml:"deviceName"`
	MonitorID  string  `json:"monitorId" yaml:"monitorId"`
	XVirtual   float32 `json:"xVirtual" yaml:"xVirtual"`
	YVirtual   float32 `json:"yVirtual" yaml:"yVirtual"`
	WVirtual   float32 `json:"wVirtual" yaml:"wVirtual"`
	HVirtual   float32 `json:"hVirtual" yaml:"hVirtual"`
	// Primary is set for the monitor at the virtual desktop origin.
	Primary bool `json:"primary" yaml:"primary"`
}

// Rect returns the area in virtual desktop pixels.
func (a DisplayArea) Rect() image.Rectangle {
	return image.Rect(
		int(a.XVirtual), int(a.YVirtual),
		int(a.XVirtual+a.WVirtual), int(a.YVirtual+a.HVirtual))
}

// Enumerator joins the device catalog with the monitor bounds. The zero
// value is not usable; build one with New.
type Enumerator struct {
	Devices  DeviceSource
	Monitors MonitorSource
	Modes    ModeSource
	Logger   *slog.Logger
}

// Option configures an Enumerator.
type Option func(*Enumerator)

// WithDeviceSource replaces the display device query.
func WithDeviceSource(src DeviceSource) Option {
	return func(e *Enumerator) { e.Devices = src }
}

// WithMonitorSource replaces the monitor handle enumeration.
func WithMonitorSource(src MonitorSource) Option {
	return func(e *Enumerator) { e.Monitors = src }
}

// WithModeSource replaces the display mode query.
func WithModeSource(src ModeSource) Option {
	return func(e *Enumerator) { e.Modes = src }
}

// WithLogger sets the logger for Debug diagnostics. It defaults to
// slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Enumerator) { e.Logger = l }
}

// New returns an Enumerator reading the live system unless overridden.
func New(opts ...Option) *Enumerator {
	e := &Enumerator{
		Devices:  systemDevices{},
		Monitors: systemMonitors{},
		Modes:    systemModes{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.Logger == nil {
		e.Logger = slog.Default()
	}
	return e
}

// EnumerateDisplayAreas lists every turned on physical monitor. An empty
// result means either no monitor or a failure; see Enumerator.Catalog for
// the cause.
func EnumerateDisplayAreas() []DisplayArea {
	return New().EnumerateDisplayAreas()
}

// Catalog returns the first active, non mirroring monitor of every adapter.
// It fails as a whole when any monitor id cannot be resolved.
func (e *Enumerator) Catalog() ([]MonitorRecord, error) {
	return buildCatalog(e.Devices, func(adapterName string, index uint32, monitor AdapterDevice) {
		e.Logger.Debug("skipping monitor",
			"adapter", adapterName,
			"index", index,
			"monitor", monitor.Description,
			"flags", monitor.StateFlags)
	})
}

// Bounds returns the bounds of every monitor handle whose info could be read.
func (e *Enumerator) Bounds() []MonitorBounds {
	bounds, err := resolveBounds(e.Monitors, func(h MonitorHandle, err error) {
		e.Logger.Debug("skipping monitor handle", "handle", uintptr(h), "error", err)
	})
	if err != nil {
		e.Logger.Debug("monitor enumeration stopped early", "collected", len(bounds), "error", err)
	}
	return bounds
}

// EnumerateDisplayAreas joins the catalog with the monitor bounds. The result
// is empty, never nil, when the catalog fails or holds no monitor.
func (e *Enumerator) EnumerateDisplayAreas() []DisplayArea {
	areas := []DisplayArea{}

	records, err := e.Catalog()
	if err != nil {
		e.Logger.Debug("display device catalog failed", "error", err)
		return areas
	}
	if len(records) == 0 {
		return areas
	}

	bounds := e.Bounds()
	areas = join(records, bounds)

	e.Logger.Debug("enumerated display areas",
		"records", len(records),
		"bounds", len(bounds),
		"areas", len(areas))
	return areas
}

// join matches bounds to records by exact adapter name. Each record is used
// at most once, first match wins; unmatched entries on either side are
// dropped.
func join(records []MonitorRecord, bounds []MonitorBounds) []DisplayArea {
	areas := make([]DisplayArea, 0, len(records))
	used := make([]bool, len(records))

	for _, b := range bounds {
		for i, r := range records {
			if used[i] || r.AdapterName != b.AdapterName {
				continue
			}
			used[i] = true
			areas = append(areas, DisplayArea{
				DeviceName: r.AdapterName,
				MonitorID:  r.CanonicalID,
				XVirtual:   float32(b.Left),
				YVirtual:   float32(b.Top),
				WVirtual:   float32(b.Width()),
				HVirtual:   float32(b.Height()),
				Primary:    b.Primary,
			})
			break
		}
	}
	return areas
}

// FindByMonitorID returns the area whose monitor id matches id after
// normalization.
func FindByMonitorID(areas []DisplayArea, id string) (DisplayArea, bool) {
	want := NormalizeMonitorID(id)
	for _, a := range areas {
		if a.MonitorID == want {
			return a, true
		}
	}
	return DisplayArea{}, false
}

// CurrentModes reads the current mode of every area's device. Devices whose
// mode cannot be read are left out.
func (e *Enumerator) CurrentModes(areas []DisplayArea) []DisplayMode {
	modes := make([]DisplayMode, 0, len(areas))
	for _, a := range areas {
		m, err := e.Modes.CurrentMode(a.DeviceName)
		if err != nil {
			e.Logger.Debug("skipping display mode", "device", a.DeviceName, "error", err)
			continue
		}
		modes = append(modes, m)
	}
	return modes
}
