//go:build linux

// Package evdevio adapts a physical evdev input device and a synthetic
// uinput device to pipeline.Source and pipeline.Sink: device open,
// capability scanning, a blocking ReadOne loop, and treating "file
// already closed" as a clean shutdown rather than a read error.
package evdevio

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	evdev "github.com/holoplot/go-evdev"

	"github.com/layerkey/remapd/internal/event"
)

// Source reads from one physical input device under an exclusive grab,
// so the keys it forwards never also reach whatever the kernel would
// otherwise have delivered them to.
type Source struct {
	dev     *evdev.InputDevice
	grabbed bool

	mu     sync.Mutex
	closed bool
}

// OpenSource opens path and grabs it exclusively. Exclusive grab is what
// makes this a remapper instead of a second keyboard: without it, every
// key would reach both this process and whatever the kernel would
// otherwise deliver it to.
func OpenSource(path string) (*Source, error) {
	return openSource(path, true)
}

// OpenSourceUngrabbed opens path without grabbing it, so keys keep
// reaching every other reader of the device. Passive inspection (the
// listen subcommand) wants this: it has no sink to write a remap to, so
// stealing the user's keystrokes system-wide while it runs would only
// make the terminal it's running in unusable.
func OpenSourceUngrabbed(path string) (*Source, error) {
	return openSource(path, false)
}

func openSource(path string, grab bool) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open device %s: %w", path, err)
	}
	if grab {
		if err := dev.Grab(); err != nil {
			dev.Close()
			return nil, fmt.Errorf("grab device %s: %w", path, err)
		}
	}
	return &Source{dev: dev, grabbed: grab}, nil
}

// Recv implements pipeline.Source. It blocks on the device's read queue
// and translates the raw evdev event into event.InputEvent, dropping
// (not erroring on) event kinds outside EV_KEY/EV_SYN, per spec §4.6's
// "unknown event codes are filtered upstream in the adapter."
func (s *Source) Recv() (event.InputEvent, error) {
	for {
		raw, err := s.dev.ReadOne()
		if err != nil {
			if s.closedByUs() {
				return event.InputEvent{}, fmt.Errorf("source closed: %w", os.ErrClosed)
			}
			return event.InputEvent{}, fmt.Errorf("read device: %w", err)
		}

		code, ok := translateCode(raw.Type, raw.Code)
		if !ok {
			continue
		}
		// The kernel timestamps raw events too, but the adapter stamps
		// its own arrival time instead of converting the kernel's
		// syscall.Timeval: tap-toggle timing runs off the Composer's
		// injected Clock, not this field; the tap recorder only copies
		// it into each record's time.
		return event.InputEvent{
			Time:  time.Now(),
			Code:  code,
			State: translateState(raw.Value),
		}, nil
	}
}

// Close releases the grab and closes the device handle. Safe to call
// more than once; a blocked ReadOne unblocks with an error that Recv
// turns back into a clean closed-source error rather than propagating
// the OS's own wording for it.
func (s *Source) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if s.grabbed {
		if err := s.dev.Ungrab(); err != nil {
			// Already gone (device unplugged) is not worth surfacing.
			if !isAlreadyGoneError(err) {
				s.dev.Close()
				return fmt.Errorf("ungrab device: %w", err)
			}
		}
	}
	return s.dev.Close()
}

func (s *Source) closedByUs() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func isAlreadyGoneError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "file already closed") ||
		strings.Contains(msg, "bad file descriptor") ||
		os.IsNotExist(err)
}

func translateState(value int32) event.KeyState {
	switch value {
	case 0:
		return event.Up
	case 1:
		return event.Down
	case 2:
		return event.Held
	default:
		return event.UnknownState
	}
}

func translateCode(t evdev.EvType, code evdev.EvCode) (event.EventCode, bool) {
	switch t {
	case evdev.EV_KEY:
		return event.Key(event.KeyCodeFromNumeric(uint16(code))), true
	case evdev.EV_SYN:
		return event.Sync(translateSyn(code)), true
	default:
		return event.EventCode{}, false
	}
}

func translateSyn(code evdev.EvCode) event.SynCode {
	switch code {
	case evdev.SYN_REPORT:
		return event.SynReport
	case evdev.SYN_CONFIG:
		return event.SynConfig
	case evdev.SYN_MT_REPORT:
		return event.SynMTReport
	case evdev.SYN_DROPPED:
		return event.SynDropped
	default:
		return event.SynReport
	}
}
