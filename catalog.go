package displayarea

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	displayMarker = "DISPLAY"
	guidOpen      = '{'

	// Monitor ids use the Windows path separator regardless of the host, so
	// they compare equal to the ids an eye tracker reports.
	monitorIDSeparator = `\`
)

// MonitorRecord ties the canonical id of a physical monitor to the adapter
// device it is attached to.
type MonitorRecord struct {
	AdapterName string
	CanonicalID string
}

// ParseMonitorID extracts the canonical monitor id from a device interface
// name such as
//
//	\\?\DISPLAY#DEL40F7#5&2b5f7a3&0&UID4353#{e6f07b5f-ee97-4a90-b076-33f57bf4eaa7}
//
// which yields DISPLAY\DEL40F7\5&2B5F7A3&0&UID4353. The separator right
// before the class GUID is dropped.
func ParseMonitorID(raw string) (string, error) {
	start := strings.Index(raw, displayMarker)
	stop := strings.IndexByte(raw, guidOpen)
	if start < 0 || stop < 0 {
		return "", errors.Wrapf(ErrMalformedDeviceID, "%q", raw)
	}

	end := stop - 1
	if end <= start {
		return "", errors.Wrapf(ErrMalformedDeviceID, "%q: class guid precedes %s", raw, displayMarker)
	}

	return NormalizeMonitorID(raw[start:end]), nil
}

// NormalizeMonitorID upper-cases id and rewrites '#' separators, so an id
// reported by another component can be compared with DisplayArea.MonitorID.
func NormalizeMonitorID(id string) string {
	return strings.ToUpper(strings.ReplaceAll(id, "#", monitorIDSeparator))
}

// buildCatalog walks every adapter and keeps the first active, non mirroring
// monitor of each. Any failure other than index exhaustion discards the
// whole catalog. skipped, if set, receives monitors rejected by the filter.
func buildCatalog(src DeviceSource, skipped func(adapterName string, index uint32, monitor AdapterDevice)) ([]MonitorRecord, error) {
	var records []MonitorRecord

	for adapterIndex := uint32(0); ; adapterIndex++ {
		adapter, err := src.Device("", adapterIndex)
		if errors.Is(err, ErrNoMoreDevices) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "adapter %d", adapterIndex)
		}

		record, found, err := firstMonitor(src, adapter.Name, skipped)
		if err != nil {
			return nil, err
		}
		if found {
			records = append(records, record)
		}
	}

	return records, nil
}

// firstMonitor assumes at most one physical, turned on monitor per adapter.
func firstMonitor(src DeviceSource, adapterName string, skipped func(string, uint32, AdapterDevice)) (MonitorRecord, bool, error) {
	for monitorIndex := uint32(0); ; monitorIndex++ {
		monitor, err := src.Device(adapterName, monitorIndex)
		if errors.Is(err, ErrNoMoreDevices) {
			return MonitorRecord{}, false, nil
		}
		if err != nil {
			return MonitorRecord{}, false, errors.Wrapf(err, "%s monitor %d", adapterName, monitorIndex)
		}

		if !monitor.StateFlags.Has(Active) || monitor.StateFlags.Has(MirroringDriver) {
			if skipped != nil {
				skipped(adapterName, monitorIndex, monitor)
			}
			continue
		}

		// Same index, other payload: only the interface name query carries
		// the PnP instance path.
		iface, err := src.InterfaceDevice(adapterName, monitorIndex)
		if err != nil {
			return MonitorRecord{}, false, errors.Wrapf(ErrInterfaceName, "%s monitor %d: %v", adapterName, monitorIndex, err)
		}

		id, err := ParseMonitorID(iface.DeviceID)
		if err != nil {
			return MonitorRecord{}, false, errors.Wrapf(err, "%s monitor %d", adapterName, monitorIndex)
		}

		return MonitorRecord{AdapterName: adapterName, CanonicalID: id}, true, nil
	}
}
