package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"runtime"

	"github.com/Fast-IQ/displayarea"
)

func main() {
	// Win32 enumeration runs on the calling thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	slog.SetLogLoggerLevel(slog.LevelDebug)

	areas := displayarea.EnumerateDisplayAreas()
	if len(areas) == 0 {
		fmt.Fprintln(os.Stderr, "no physical display found")
		os.Exit(1)
	}

	var all image.Rectangle
	for i, a := range areas {
		all = a.Rect().Union(all)

		// An eye tracking runtime would register each area here with its
		// native scaling: size as seen, origin in virtual desktop
		// coordinates, and the monitor id it reports for itself.
		fmt.Printf("#%d : %s %q size=%gx%g origin=%g,%g\n",
			i, a.DeviceName, a.MonitorID, a.WVirtual, a.HVirtual, a.XVirtual, a.YVirtual)
	}

	fmt.Printf("Virtual desktop: %v\n", all)

	if len(os.Args) > 1 {
		if a, ok := displayarea.FindByMonitorID(areas, os.Args[1]); ok {
			fmt.Printf("Tracker is mounted on %s at %v\n", a.DeviceName, a.Rect())
		} else {
			fmt.Printf("No display matches %q\n", os.Args[1])
		}
	}
}
