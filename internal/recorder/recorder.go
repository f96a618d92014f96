// Package recorder implements the tap recorder: a pass-through decorator
// around any Transformer that additionally logs every input it sees and
// every control code it produces, for offline inspection of a remap
// session. It is grounded on the original implementation's recorder.rs,
// which wraps an InputTransformer the same way; where that file only
// stubs out writing YAML, this one actually serializes both directions
// as JSON, per this repo's choice of JSON over YAML for anything written
// to disk.
package recorder

import (
	"time"

	"github.com/layerkey/remapd/internal/event"
	"github.com/layerkey/remapd/internal/layer"
)

// Kind distinguishes a Record observing the Transformer's input from one
// observing its output.
type Kind string

const (
	KindIn  Kind = "in"
	KindOut Kind = "out"
)

// Record is one logged observation. Exactly one of Event or ControlCode
// is populated, depending on Kind. An input event that resolves to
// several control codes is logged as one Out record per code, not one
// record holding all of them.
type Record struct {
	Kind        Kind                `json:"kind"`
	Time        time.Time           `json:"time"`
	Event       *event.InputEvent   `json:"event,omitempty"`
	ControlCode *layer.ControlCode `json:"control_code,omitempty"`
}

// Transformer is the interface being decorated; it matches
// compose.Transformer and pipeline.Transformer structurally.
type Transformer interface {
	Transform(e event.InputEvent) (ccs []layer.ControlCode, ok bool)
}

// Recorder wraps a Transformer and emits a Record to records for every
// input it sees and every non-empty output it produces. records is
// expected to be a buffered channel drained by a Writer running in its
// own goroutine; Recorder blocks sending to it, so a slow or stalled
// writer applies backpressure to the whole pipeline exactly like a full
// outbound queue would.
type Recorder struct {
	inner   Transformer
	records chan<- Record
}

// New wraps inner, sending every observation to records.
func New(inner Transformer, records chan<- Record) *Recorder {
	return &Recorder{inner: inner, records: records}
}

// Transform implements Transformer.
func (r *Recorder) Transform(e event.InputEvent) ([]layer.ControlCode, bool) {
	ie := e
	r.records <- Record{Kind: KindIn, Time: e.Time, Event: &ie}

	ccs, ok := r.inner.Transform(e)
	if ok {
		for _, cc := range ccs {
			r.records <- Record{Kind: KindOut, Time: e.Time, ControlCode: &cc}
		}
	}
	return ccs, ok
}
