//go:build !linux

package evdevio

import (
	"fmt"

	"github.com/layerkey/remapd/internal/event"
)

// Source and Sink are declared on non-Linux targets so the rest of the
// tree (and cmd/remapd) type-checks everywhere, even though evdev/uinput
// only exist on Linux.
type Source struct{}
type Sink struct{}

type Device struct {
	Path       string
	Name       string
	IsKeyboard bool
}

func OpenSource(path string) (*Source, error) {
	return nil, fmt.Errorf("evdevio: device grab is only supported on linux")
}

func OpenSourceUngrabbed(path string) (*Source, error) {
	return nil, fmt.Errorf("evdevio: device open is only supported on linux")
}

func OpenSink() (*Sink, error) {
	return nil, fmt.Errorf("evdevio: uinput synthesis is only supported on linux")
}

func ListDevices() ([]Device, error) {
	return nil, fmt.Errorf("evdevio: device enumeration is only supported on linux")
}

func (s *Source) Recv() (event.InputEvent, error) {
	return event.InputEvent{}, fmt.Errorf("evdevio: unreachable on this platform")
}

func (s *Source) Close() error { return nil }

func (s *Sink) Send(e event.InputEvent) error {
	return fmt.Errorf("evdevio: unreachable on this platform")
}

func (s *Sink) Close() error { return nil }
