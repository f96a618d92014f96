package event

import "time"

// KeyState is the state a key transitions through. Held corresponds to
// the kernel's auto-repeat signal for a key that is still physically
// down; the remapper treats it as "still pressed, time has passed."
type KeyState int

const (
	Up KeyState = iota
	Down
	Held
	UnknownState
)

func (s KeyState) String() string {
	switch s {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Held:
		return "Held"
	default:
		return "Unknown"
	}
}

// SynCode is the synchronization-event enumeration. It is carried
// through the pipeline without transformation.
type SynCode int

const (
	SynReport SynCode = iota
	SynConfig
	SynMTReport
	SynDropped
)

func (s SynCode) String() string {
	switch s {
	case SynReport:
		return "SYN_REPORT"
	case SynConfig:
		return "SYN_CONFIG"
	case SynMTReport:
		return "SYN_MT_REPORT"
	case SynDropped:
		return "SYN_DROPPED"
	default:
		return "SYN_UNKNOWN"
	}
}

// EventCodeKind tags which variant an EventCode holds.
type EventCodeKind int

const (
	KindKey EventCodeKind = iota
	KindSync
)

// EventCode is a tagged union of a key code or a synchronization code.
// It is a plain comparable value so it can key a map, which the Layer
// lookup table (internal/layer) relies on.
type EventCode struct {
	Kind EventCodeKind
	Key  KeyCode
	Sync SynCode
}

// Key builds an EventCode carrying a key code.
func Key(k KeyCode) EventCode { return EventCode{Kind: KindKey, Key: k} }

// Sync builds an EventCode carrying a synchronization code.
func Sync(s SynCode) EventCode { return EventCode{Kind: KindSync, Sync: s} }

func (c EventCode) String() string {
	switch c.Kind {
	case KindKey:
		return c.Key.String()
	case KindSync:
		return c.Sync.String()
	default:
		return "EventCode(?)"
	}
}

// InputEvent is a single event read from (or synthesized for) an input
// device. It is a plain value: copyable, comparable, and usable as a map
// key or set element.
type InputEvent struct {
	Time  time.Time
	Code  EventCode
	State KeyState
}

// WithCode returns a copy of e with Code replaced, preserving Time and
// State. This is the substitution a Layer performs for a KeyMap entry.
func (e InputEvent) WithCode(code EventCode) InputEvent {
	e.Code = code
	return e
}
