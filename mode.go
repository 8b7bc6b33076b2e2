package displayarea

import "image"

// DisplayMode is the current mode of a display device. Width and Height are
// the native resolution, unaffected by DPI scaling.
type DisplayMode struct {
	DeviceName  string `json:"deviceName" yaml:"deviceName"`
	X           int32  `json:"x" yaml:"x"`
	Y           int32  `json:"y" yaml:"y"`
	Width       uint32 `json:"width" yaml:"width"`
	Height      uint32 `json:"height" yaml:"height"`
	BitsPerPel  uint32 `json:"bitsPerPel" yaml:"bitsPerPel"`
	RefreshRate uint32 `json:"refreshRate" yaml:"refreshRate"`
}

func (m DisplayMode) Rect() image.Rectangle {
	return image.Rect(
		int(m.X), int(m.Y),
		int(m.X)+int(m.Width), int(m.Y)+int(m.Height))
}

// ModeSource reads the current display mode of a device.
type ModeSource interface {
	CurrentMode(deviceName string) (DisplayMode, error)
}
