package layer

import "github.com/layerkey/remapd/internal/event"

// Layer is a named, togglable mapping from event codes to ControlCode
// sequences. The map is immutable after construction; only Active
// flips.
type Layer struct {
	name   string
	lookup map[event.EventCode][]ControlCode
	active bool
}

// New builds a Layer. The map is copied defensively so later mutation of
// the caller's map cannot change the layer's behavior.
func New(name string, lookup map[event.EventCode][]ControlCode, active bool) *Layer {
	owned := make(map[event.EventCode][]ControlCode, len(lookup))
	for code, ccs := range lookup {
		cp := make([]ControlCode, len(ccs))
		copy(cp, ccs)
		owned[code] = cp
	}
	return &Layer{name: name, lookup: owned, active: active}
}

// Name returns the layer's name, unique within its LayerTable.
func (l *Layer) Name() string { return l.name }

// Active reports whether the layer currently participates in
// resolution.
func (l *Layer) Active() bool { return l.active }

// Activate marks the layer active.
func (l *Layer) Activate() { l.active = true }

// Deactivate marks the layer inactive.
func (l *Layer) Deactivate() { l.active = false }

// SetActive sets the active flag directly.
func (l *Layer) SetActive(active bool) { l.active = active }

// Transform resolves e against the layer's map. It returns ok == false
// if the layer is inactive or e.Code has no entry — in either case the
// caller should consult the next layer. KeyMap entries are rewritten to
// InputEvent entries carrying e's rewritten code, time, and state; every
// other ControlCode passes through unchanged. This substitution is what
// makes a layer transparent across a key's full Down/Held/Up sequence,
// since the same layer is consulted for all three.
func (l *Layer) Transform(e event.InputEvent) (ccs []ControlCode, ok bool) {
	if !l.active {
		return nil, false
	}
	entries, found := l.lookup[e.Code]
	if !found {
		return nil, false
	}
	out := make([]ControlCode, 0, len(entries))
	for _, cc := range entries {
		if cc.Kind == CCKeyMap {
			out = append(out, InputEventCC(e.WithCode(event.Key(cc.Key))))
			continue
		}
		out = append(out, cc)
	}
	return out, true
}
