package recorder

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/layerkey/remapd/internal/event"
	"github.com/layerkey/remapd/internal/layer"
)

type stubTransformer struct {
	ccs []layer.ControlCode
	ok  bool
}

func (s stubTransformer) Transform(e event.InputEvent) ([]layer.ControlCode, bool) {
	return s.ccs, s.ok
}

func TestRecorderEmitsInAndOutForClaimedEvents(t *testing.T) {
	records := make(chan Record, 8)
	out := []layer.ControlCode{layer.InputEventCC(event.InputEvent{})}
	r := New(stubTransformer{ccs: out, ok: true}, records)

	e := event.InputEvent{Time: time.Unix(1, 0), Code: event.Key(event.KeyCodeFromNumeric(30)), State: event.Down}
	ccs, ok := r.Transform(e)
	if !ok || len(ccs) != 1 {
		t.Fatalf("Transform() = %v, %v; want passthrough of the inner result", ccs, ok)
	}

	close(records)
	var got []Record
	for rec := range records {
		got = append(got, rec)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2 (in + one out per control code)", len(got))
	}
	if got[0].Kind != KindIn || got[0].Event == nil || got[0].Event.Code != e.Code {
		t.Errorf("first record = %+v, want an In record for %v", got[0], e)
	}
	if got[1].Kind != KindOut || got[1].ControlCode == nil {
		t.Errorf("second record = %+v, want an Out record with one control code", got[1])
	}
}

func TestRecorderEmitsOneOutRecordPerControlCode(t *testing.T) {
	records := make(chan Record, 8)
	out := []layer.ControlCode{
		layer.InputEventCC(event.InputEvent{Code: event.Key(event.KeyCodeFromNumeric(30))}),
		layer.InputEventCC(event.InputEvent{Code: event.Key(event.KeyCodeFromNumeric(31))}),
	}
	r := New(stubTransformer{ccs: out, ok: true}, records)

	r.Transform(event.InputEvent{Code: event.Key(event.KeyCodeFromNumeric(58))})

	close(records)
	var got []Record
	for rec := range records {
		got = append(got, rec)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3 (1 in + 2 out)", len(got))
	}
	if got[1].ControlCode == nil || got[2].ControlCode == nil {
		t.Fatalf("want both out records to carry a non-nil ControlCode, got %+v", got[1:])
	}
	if *got[1].ControlCode == *got[2].ControlCode {
		t.Errorf("the two out records should carry distinct control codes, got %+v twice", *got[1].ControlCode)
	}
}

func TestRecorderEmitsOnlyInWhenUnclaimed(t *testing.T) {
	records := make(chan Record, 8)
	r := New(stubTransformer{ok: false}, records)

	r.Transform(event.InputEvent{Code: event.Key(event.KeyCodeFromNumeric(30))})

	close(records)
	var got []Record
	for rec := range records {
		got = append(got, rec)
	}
	if len(got) != 1 || got[0].Kind != KindIn {
		t.Fatalf("got %v, want exactly one In record", got)
	}
}

func TestWriterProducesValidJSONArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	records := make(chan Record, 2)
	records <- Record{Kind: KindIn, Time: time.Unix(1, 0)}
	records <- Record{Kind: KindOut, Time: time.Unix(2, 0)}
	close(records)

	if err := w.Run(records, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	var decoded []Record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not a valid JSON array: %v\n%s", err, data)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d records, want 2", len(decoded))
	}
	if decoded[0].Kind != KindIn || decoded[1].Kind != KindOut {
		t.Errorf("decoded kinds = [%v, %v], want [in, out]", decoded[0].Kind, decoded[1].Kind)
	}
}

func TestWriterProducesValidEmptyArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	records := make(chan Record)
	close(records)

	if err := w.Run(records, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	var decoded []Record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("empty session is not a valid JSON array: %v\n%s", err, data)
	}
	if len(decoded) != 0 {
		t.Errorf("decoded %d records, want 0", len(decoded))
	}
}
