//go:build linux

package evdevio

import (
	"fmt"

	evdev "github.com/holoplot/go-evdev"
)

// Device describes one enumerated input device, for the list-devices
// subcommand.
type Device struct {
	Path       string
	Name       string
	IsKeyboard bool
}

// ListDevices enumerates every /dev/input/event* device, reporting every
// device rather than stopping at the first keyboard match.
func ListDevices() ([]Device, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("list device paths: %w", err)
	}

	devices := make([]Device, 0, len(paths))
	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}
		name, _ := dev.Name()
		devices = append(devices, Device{
			Path:       p.Path,
			Name:       name,
			IsKeyboard: isKeyboard(dev),
		})
		dev.Close()
	}
	return devices, nil
}

// minKeyboardKeyCount is the kernel-supported-keys threshold a candidate
// keyboard must exceed. Power buttons, lid switches, and single-button
// devices report a handful of codes; full keyboards report well over a
// hundred (every letter, digit, function key, and modifier).
const minKeyboardKeyCount = 100

// isKeyboard reports whether dev's EV_KEY capability set is large enough
// to be a full keyboard rather than a single-purpose button device.
func isKeyboard(dev *evdev.InputDevice) bool {
	return len(dev.CapableEvents(evdev.EV_KEY)) > minKeyboardKeyCount
}
