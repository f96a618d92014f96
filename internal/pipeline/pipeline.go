// Package pipeline couples a blocking Source, a stateful Transformer, and
// a blocking Sink into three cooperating goroutines joined by bounded
// queues, as described in spec §4.5: read, transform, write, racing to
// completion on whichever finishes first.
package pipeline

import (
	"github.com/layerkey/remapd/internal/event"
	"github.com/layerkey/remapd/internal/layer"
	"github.com/layerkey/remapd/internal/logging"
)

// Source is the boundary capability the pipeline reads from. Recv may
// block; implementations must be safe to use from a single dedicated
// goroutine. Close must unblock any in-flight Recv call and release the
// underlying device, and must be safe to call more than once.
type Source interface {
	Recv() (event.InputEvent, error)
	Close() error
}

// Sink is the boundary capability the pipeline writes to. Send may
// block. Close must release the underlying device and be safe to call
// more than once.
type Sink interface {
	Send(event.InputEvent) error
	Close() error
}

// Transformer is the stateful core the transform task drives. It is
// satisfied by *compose.Composer and by *compose.Passthrough.
type Transformer interface {
	Transform(e event.InputEvent) (ccs []layer.ControlCode, ok bool)
}

// DefaultQueueSize is the bounded queue capacity used when none is
// specified. It is deliberately small: a full outbound queue is meant to
// signal a downstream stall and apply backpressure, not to absorb one.
const DefaultQueueSize = 16

// Pipeline wires a Source, Transformer, and Sink together.
type Pipeline struct {
	source    Source
	sink      Sink
	transform Transformer
	logger    *logging.Logger
	queueSize int
}

// Option configures a Pipeline at construction.
type Option func(*Pipeline)

// WithQueueSize overrides DefaultQueueSize. size must be >= 1.
func WithQueueSize(size int) Option {
	return func(p *Pipeline) {
		if size >= 1 {
			p.queueSize = size
		}
	}
}

// New builds a Pipeline. logger may be nil, in which case a discarding
// logger is used.
func New(source Source, sink Sink, transform Transformer, logger *logging.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = logging.Discard()
	}
	p := &Pipeline{
		source:    source,
		sink:      sink,
		transform: transform,
		logger:    logger,
		queueSize: DefaultQueueSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run drives the pipeline to completion. It returns the error (nil on a
// clean Exit or Source EOF) that caused the first of the three tasks to
// finish. Run then stops the input task, closes the source and sink, and
// waits for the other tasks: the transform task finishes the events
// already queued on inbound and the output task hands each remaining
// event to Sink.Send, so no goroutine is ever left running past Run's
// return.
func (p *Pipeline) Run() error {
	inbound := make(chan event.InputEvent, p.queueSize)
	outbound := make(chan event.InputEvent, p.queueSize)
	stop := make(chan struct{})

	results := make(chan error, 3)

	go func() {
		defer close(inbound)
		results <- p.runInput(inbound, stop)
	}()
	go func() {
		defer close(outbound)
		results <- p.runTransform(inbound, outbound)
	}()
	go func() {
		results <- p.runOutput(outbound)
	}()

	first := <-results

	close(stop)
	if err := p.source.Close(); err != nil {
		p.logger.Debug("closing source during shutdown", "err", err)
	}
	if err := p.sink.Close(); err != nil {
		p.logger.Debug("closing sink during shutdown", "err", err)
	}

	<-results
	<-results

	return first
}

// runInput is the input task: it blocks on Source.Recv, forwarding every
// event it gets to inbound. Recoverable read errors are logged and the
// loop continues; any other error ends the task.
func (p *Pipeline) runInput(inbound chan<- event.InputEvent, stop <-chan struct{}) error {
	for {
		e, err := p.source.Recv()
		if err != nil {
			if IsTemporary(err) {
				p.logger.Warn("recoverable source read error", "err", err)
				continue
			}
			return err
		}

		if e.Code.Kind == event.KindSync {
			p.logger.Debug("recv", "code", e.Code, "state", e.State)
		} else {
			p.logger.Info("recv", "code", e.Code, "state", e.State)
		}

		select {
		case inbound <- e:
		case <-stop:
			return nil
		}
	}
}

// runTransform is the transform task: it consumes inbound, invokes the
// Transformer, and forwards every resulting InputEvent control code to
// outbound. A CCExit control code ends the task, as does inbound being
// closed once every queued event has been handled; KeyMap and TapToggle
// control codes should never reach here since the Transformer resolves
// them before returning, so one surfacing is logged, not forwarded.
func (p *Pipeline) runTransform(inbound <-chan event.InputEvent, outbound chan<- event.InputEvent) error {
	for e := range inbound {
		ccs, ok := p.transform.Transform(e)
		if !ok {
			continue
		}
		for _, cc := range ccs {
			switch cc.Kind {
			case layer.CCInputEvent:
				outbound <- cc.Event
				p.logger.Debug("send", "code", cc.Event.Code, "state", cc.Event.State)
			case layer.CCExit:
				return nil
			default:
				p.logger.Warn("unresolved control code reached the pipeline", "control_code", cc)
			}
		}
	}
	return nil
}

// runOutput is the output task: it consumes outbound and invokes
// Sink.Send. Send errors are logged and the loop continues; the task
// itself only ends when outbound is closed, i.e. once the transform task
// has finished.
func (p *Pipeline) runOutput(outbound <-chan event.InputEvent) error {
	for e := range outbound {
		if err := p.sink.Send(e); err != nil {
			p.logger.Warn("sink send error", "err", err)
			continue
		}
	}
	return nil
}
