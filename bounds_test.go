package displayarea

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestResolveBounds(t *testing.T) {
	monitors := &fakeMonitors{handles: []fakeHandle{
		handle(`\\.\DISPLAY1`, 0, 0, 1920, 1080),
		handle(`\\.\DISPLAY2`, -1920, 0, 0, 1080),
		handle(`\\.\DISPLAY3`, 1920, -200, 4480, 1240),
	}}

	got, err := resolveBounds(monitors, nil)
	if err != nil {
		t.Fatalf("resolveBounds failed: %v", err)
	}

	want := []MonitorBounds{
		{AdapterName: `\\.\DISPLAY1`, Rect: Rect{0, 0, 1920, 1080}, Primary: true},
		{AdapterName: `\\.\DISPLAY2`, Rect: Rect{-1920, 0, 0, 1080}},
		{AdapterName: `\\.\DISPLAY3`, Rect: Rect{1920, -200, 4480, 1240}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("resolveBounds = %v; want %v", got, want)
	}
}

func TestResolveBounds_SkipsFailedInfo(t *testing.T) {
	failing := handle(`\\.\DISPLAY2`, -1920, 0, 0, 1080)
	failing.infoErr = true
	monitors := &fakeMonitors{handles: []fakeHandle{
		handle(`\\.\DISPLAY1`, 0, 0, 1920, 1080),
		failing,
		handle(`\\.\DISPLAY3`, 1920, 0, 3840, 1080),
	}}

	var skipped []MonitorHandle
	got, err := resolveBounds(monitors, func(h MonitorHandle, err error) {
		if !errors.Is(err, ErrMonitorInfo) {
			t.Errorf("skip error = %v; want ErrMonitorInfo", err)
		}
		skipped = append(skipped, h)
	})
	if err != nil {
		t.Fatalf("resolveBounds failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("resolveBounds returned %d bounds; want 2", len(got))
	}
	if got[0].AdapterName != `\\.\DISPLAY1` || got[1].AdapterName != `\\.\DISPLAY3` {
		t.Errorf("resolveBounds = %v; want DISPLAY1 and DISPLAY3", got)
	}
	if !reflect.DeepEqual(skipped, []MonitorHandle{2}) {
		t.Errorf("skipped handles = %v; want [2]", skipped)
	}
}

func TestResolveBounds_VisitFailureKeepsCollected(t *testing.T) {
	visitErr := errors.New("EnumDisplayMonitors failed")
	monitors := &fakeMonitors{
		handles:  []fakeHandle{handle(`\\.\DISPLAY1`, 0, 0, 1920, 1080)},
		visitErr: visitErr,
	}

	got, err := resolveBounds(monitors, nil)
	if !errors.Is(err, visitErr) {
		t.Fatalf("resolveBounds error = %v; want %v", err, visitErr)
	}
	if !strings.HasPrefix(err.Error(), "visit monitors: ") {
		t.Errorf("resolveBounds error = %q; want visit monitors context", err)
	}
	if len(got) != 1 {
		t.Errorf("resolveBounds returned %d bounds; want 1", len(got))
	}
}

func TestRectSize(t *testing.T) {
	r := Rect{Left: -1920, Top: -120, Right: 0, Bottom: 960}
	if r.Width() != 1920 || r.Height() != 1080 {
		t.Errorf("size of %v = %dx%d; want 1920x1080", r, r.Width(), r.Height())
	}
}
