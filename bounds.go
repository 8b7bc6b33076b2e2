package displayarea

import "github.com/pkg/errors"

// Rect is a rectangle in virtual desktop coordinates. Right and Bottom are
// exclusive; monitors left of or above the primary have negative values.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r Rect) Width() int32 {
	return r.Right - r.Left
}

func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// MonitorHandle identifies a monitor during one visit of the desktop.
type MonitorHandle uintptr

// MonitorInfo is the extended info of a monitor handle.
type MonitorInfo struct {
	DeviceName string
	Monitor    Rect
	Primary    bool
}

// MonitorSource visits every monitor handle of the virtual desktop.
type MonitorSource interface {
	// VisitMonitors calls visit once per handle until visit returns false.
	VisitMonitors(visit func(h MonitorHandle, r Rect) bool) error
	MonitorInfo(h MonitorHandle) (MonitorInfo, error)
}

// MonitorBounds is the virtual desktop rectangle of the monitor driven by
// the named adapter.
type MonitorBounds struct {
	AdapterName string
	Rect
	Primary bool
}

type boundsVisitor struct {
	src    MonitorSource
	bounds []MonitorBounds
	// skipped receives handles whose info query failed.
	skipped func(h MonitorHandle, err error)
}

func (v *boundsVisitor) visit(h MonitorHandle, _ Rect) bool {
	info, err := v.src.MonitorInfo(h)
	if err != nil {
		if v.skipped != nil {
			v.skipped(h, err)
		}
		return true
	}

	v.bounds = append(v.bounds, MonitorBounds{
		AdapterName: info.DeviceName,
		Rect:        info.Monitor,
		Primary:     info.Primary,
	})
	return true
}

// resolveBounds collects the bounds of every monitor handle. A handle whose
// info cannot be read is skipped; a failing visit returns what was
// collected so far along with the error.
func resolveBounds(src MonitorSource, skipped func(MonitorHandle, error)) ([]MonitorBounds, error) {
	v := &boundsVisitor{src: src, skipped: skipped}
	if err := src.VisitMonitors(v.visit); err != nil {
		return v.bounds, errors.Wrap(err, "visit monitors")
	}
	return v.bounds, nil
}
