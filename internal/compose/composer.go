package compose

import (
	"time"

	"github.com/layerkey/remapd/internal/event"
	"github.com/layerkey/remapd/internal/layer"
)

// HoldThreshold is the minimum time a tap-toggle key must be held before
// its layer activates.
const HoldThreshold = 180 * time.Millisecond

// TapGap is the minimum time between a synthesized tap's Down and Up
// events, which must differ to preserve ordering downstream.
const TapGap = 1 * time.Microsecond

// Composer is the stateful transformer at the heart of the remapper. It
// resolves one InputEvent at a time against a LayerTable, consulting
// layers top of stack first, and enforces tap-vs-hold timing for
// TapToggle control codes. It is single-threaded: the pipeline never
// invokes it concurrently, so its timer table and the LayerTable's
// active flags need no locking.
type Composer struct {
	table         *layer.Table
	timers        map[event.KeyCode]time.Time
	base          Transformer
	clock         Clock
	holdThreshold time.Duration
}

// New returns a Composer over table using the wall clock and a default
// Passthrough base.
func New(table *layer.Table) *Composer {
	return NewWithClock(table, RealClock)
}

// NewWithClock returns a Composer over table using clock for all timing
// decisions. Tests use this to inject a FakeClock.
func NewWithClock(table *layer.Table, clock Clock) *Composer {
	return &Composer{
		table:         table,
		timers:        make(map[event.KeyCode]time.Time),
		base:          NewPassthrough(),
		clock:         clock,
		holdThreshold: HoldThreshold,
	}
}

// SetBase overrides the fallback transformer consulted when no layer
// claims an event. The default is a Passthrough with KC_PAUSE as exit.
func (c *Composer) SetBase(t Transformer) { c.base = t }

// SetHoldThreshold overrides the tap-vs-hold threshold, letting
// config.TimingConfig.HoldThresholdMs take effect. d <= 0 is ignored,
// leaving the previous threshold in place.
func (c *Composer) SetHoldThreshold(d time.Duration) {
	if d <= 0 {
		return
	}
	c.holdThreshold = d
}

// TimerCount reports how many tap-toggle keys currently have an open
// timer — bounded by the number of tap-toggle keys physically in
// Down/Held state.
func (c *Composer) TimerCount() int { return len(c.timers) }

// Transform implements Transformer: it is the Composer's only public
// entry point. The layer table is consulted in reverse of its declared
// order (top of the stack first); the first layer whose Transform call
// reports ok wins and its output is post-processed for tap-toggle
// resolution. If no layer claims the event, the base transformer runs.
func (c *Composer) Transform(e event.InputEvent) ([]layer.ControlCode, bool) {
	layers := c.table.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		if ccs, ok := layers[i].Transform(e); ok {
			return c.handleControlCodes(e, ccs)
		}
	}
	return c.base.Transform(e)
}

// handleControlCodes resolves every TapToggle control code in ccs
// against the timer table and layer activation state, leaving every
// other control code untouched. Per spec, an empty result after
// resolution reports ok == false rather than an empty, non-nil slice.
func (c *Composer) handleControlCodes(e event.InputEvent, ccs []layer.ControlCode) ([]layer.ControlCode, bool) {
	out := make([]layer.ControlCode, 0, len(ccs))
	for _, cc := range ccs {
		if cc.Kind != layer.CCTapToggle {
			out = append(out, cc)
			continue
		}
		out = append(out, c.resolveTapToggle(e, cc)...)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// resolveTapToggle implements the tap-toggle transition table from
// spec §4.3, keyed on (incoming state, timer presence). The Down case
// never emits: it only opens a timer, so a fast tap and a deliberate
// hold can be told apart later. The layer activates on a Held that
// arrives after HoldThreshold, never on Down, guaranteeing at most one
// of {synthesized tap, layer activation} per physical press.
func (c *Composer) resolveTapToggle(e event.InputEvent, cc layer.ControlCode) []layer.ControlCode {
	key := cc.Key
	startedAt, present := c.timers[key]

	switch {
	case e.State == event.Down && !present:
		c.timers[key] = c.clock.Now()
		return nil

	case e.State == event.Held && present:
		if c.durationSince(startedAt) > c.holdThreshold {
			c.activate(cc.Ref)
			delete(c.timers, key)
		}
		return nil

	case e.State == event.Up && !present:
		if c.isActive(cc.Ref) {
			c.deactivate(cc.Ref)
			return nil
		}
		return c.synthesizedTap(key)

	case e.State == event.Up && present:
		var out []layer.ControlCode
		if c.durationSince(startedAt) < c.holdThreshold {
			out = c.synthesizedTap(key)
		}
		c.deactivate(cc.Ref)
		delete(c.timers, key)
		return out

	default:
		return []layer.ControlCode{cc}
	}
}

// synthesizedTap builds the Down/Up pair emitted when a tap-toggle key
// is tapped rather than held. The two events differ in time by TapGap so
// timestamp-sensitive consumers downstream still see them in order.
func (c *Composer) synthesizedTap(key event.KeyCode) []layer.ControlCode {
	now := c.clock.Now()
	return []layer.ControlCode{
		layer.InputEventCC(event.InputEvent{Time: now, Code: event.Key(key), State: event.Down}),
		layer.InputEventCC(event.InputEvent{Time: now.Add(TapGap), Code: event.Key(key), State: event.Up}),
	}
}

// durationSince returns the elapsed time since t, clamped to zero — a
// negative duration would only arise from clock skew, and spec §7 treats
// that as a zero-length hold rather than an error.
func (c *Composer) durationSince(t time.Time) time.Duration {
	d := c.clock.Now().Sub(t)
	if d < 0 {
		return 0
	}
	return d
}

func (c *Composer) activate(ref layer.LayerRef) {
	if l, err := c.table.Resolve(ref); err == nil {
		l.Activate()
	}
}

func (c *Composer) deactivate(ref layer.LayerRef) {
	if l, err := c.table.Resolve(ref); err == nil {
		l.Deactivate()
	}
}

func (c *Composer) isActive(ref layer.LayerRef) bool {
	l, err := c.table.Resolve(ref)
	if err != nil {
		return false
	}
	return l.Active()
}
