//go:build linux

package evdevio

import (
	"fmt"
	"sync"

	evdev "github.com/holoplot/go-evdev"

	"github.com/layerkey/remapd/internal/event"
)

// DeviceName is the product name the synthesized uinput device reports
// to the kernel and, in turn, to anything that enumerates input devices.
const DeviceName = "remapd virtual keyboard"

// Sink creates a uinput virtual keyboard and replays every InputEvent it
// is given onto it, following each key event with the SYN_REPORT the
// kernel requires to treat a batch of writes as one input frame.
type Sink struct {
	dev *evdev.InputDevice

	mu     sync.Mutex
	closed bool
}

// OpenSink creates the virtual device, advertising every key code this
// repository knows about so any remap target is deliverable.
func OpenSink() (*Sink, error) {
	dev, err := evdev.CreateDevice(DeviceName, evdev.InputID{
		BusType: evdev.BUS_USB,
		Vendor:  0x1,
		Product: 0x1,
		Version: 1,
	}, map[evdev.EvType][]evdev.EvCode{
		evdev.EV_KEY: allKeyCodes(),
	})
	if err != nil {
		return nil, fmt.Errorf("create virtual device: %w", err)
	}
	return &Sink{dev: dev}, nil
}

// Send implements pipeline.Sink: it writes e — key or sync alike, per
// spec §3's "SynCodes are carried through the pipeline without
// transformation" — followed by a SYN_REPORT, so the event is visible to
// readers of the virtual device as soon as Send returns.
func (s *Sink) Send(e event.InputEvent) error {
	evType, code, err := encodeEventCode(e.Code)
	if err != nil {
		return err
	}
	value, ok := encodeState(e.State)
	if !ok {
		return fmt.Errorf("cannot synthesize key state %v", e.State)
	}

	// The kernel stamps uinput writes itself; this struct's own Time
	// field is left at its zero value.
	if err := s.dev.WriteOne(&evdev.InputEvent{
		Type:  evType,
		Code:  code,
		Value: value,
	}); err != nil {
		return fmt.Errorf("write event: %w", err)
	}

	if err := s.dev.WriteOne(&evdev.InputEvent{
		Type:  evdev.EV_SYN,
		Code:  evdev.SYN_REPORT,
		Value: 0,
	}); err != nil {
		return fmt.Errorf("write syn report: %w", err)
	}
	return nil
}

// Close destroys the virtual device. Safe to call more than once.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dev.Close()
}

// encodeEventCode maps an EventCode to the evdev event type and code
// pair WriteOne expects, covering both key and sync codes so a
// pass-through Sync control code reaches the virtual device instead of
// being rejected.
func encodeEventCode(c event.EventCode) (evdev.EvType, evdev.EvCode, error) {
	switch c.Kind {
	case event.KindKey:
		return evdev.EV_KEY, evdev.EvCode(uint16(c.Key)), nil
	case event.KindSync:
		return evdev.EV_SYN, encodeSyn(c.Sync), nil
	default:
		return 0, 0, fmt.Errorf("cannot synthesize event code %v", c)
	}
}

func encodeSyn(s event.SynCode) evdev.EvCode {
	switch s {
	case event.SynConfig:
		return evdev.SYN_CONFIG
	case event.SynMTReport:
		return evdev.SYN_MT_REPORT
	case event.SynDropped:
		return evdev.SYN_DROPPED
	default:
		return evdev.SYN_REPORT
	}
}

func encodeState(state event.KeyState) (int32, bool) {
	switch state {
	case event.Up:
		return 0, true
	case event.Down:
		return 1, true
	case event.Held:
		return 2, true
	default:
		return 0, false
	}
}

// allKeyCodes enumerates every numeric code this repository's key table
// knows, so the synthesized device never rejects a write with EINVAL for
// a code it wasn't advertised as capable of.
func allKeyCodes() []evdev.EvCode {
	codes := make([]evdev.EvCode, 0, 256)
	for i := 0; i < 256; i++ {
		codes = append(codes, evdev.EvCode(i))
	}
	return codes
}
