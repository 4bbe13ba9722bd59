package progress

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"

	"github.com/ytget/ytfetch/internal/model"
)

// ErrRelayClosed is returned by a second Close
var ErrRelayClosed = errors.New("progress relay already closed")

// Sink receives relayed events, e.g. a session channel or a widget updater
type Sink interface {
	Deliver(model.ProgressEvent) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(model.ProgressEvent) error

// Deliver calls f(ev)
func (f SinkFunc) Deliver(ev model.ProgressEvent) error {
	return f(ev)
}

// Relay moves events for one transfer from the engine goroutine to a Sink
type Relay struct {
	sink   Sink
	logger hclog.Logger

	mu       sync.Mutex
	cond     *sync.Cond
	queue    eventQueue
	seq      uint64
	closed   bool
	terminal *model.ProgressEvent
	engine   string // last raw status seen

	// touched only by the drain goroutine
	highFraction float64
	highBytes    int64

	delivered atomic.Int64
	dropped   atomic.Int64
	termErr   error
	done      chan struct{}
}

// NewRelay starts a relay delivering to sink
func NewRelay(sink Sink, logger hclog.Logger) *Relay {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	r := &Relay{
		sink:   sink,
		logger: logger,
		done:   make(chan struct{}),
	}
	r.cond = sync.NewCond(&r.mu)
	go r.drain()
	return r
}

// Hook is the engine progress callback. It never blocks on delivery.
func (r *Relay) Hook(raw model.RawProgress) {
	ev, ok := Translate(raw)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.engine = raw.Status
	if !ok {
		return
	}
	if r.closed {
		r.logger.Trace("progress after close ignored", "fraction", ev.Fraction)
		return
	}
	r.seq++
	heap.Push(&r.queue, queued{event: ev, seq: r.seq})
	r.cond.Signal()
}

// Close queues the terminal event behind everything already hooked, waits
// until it has been handed to the sink and returns the sink's error for it.
func (r *Relay) Close(terminal model.ProgressEvent) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		<-r.done
		return ErrRelayClosed
	}
	r.closed = true
	r.terminal = &terminal
	r.cond.Signal()
	r.mu.Unlock()

	<-r.done
	return r.termErr
}

// EngineStatus returns the last raw status reported by the engine
func (r *Relay) EngineStatus() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.engine
}

// Delivered returns how many events the sink accepted
func (r *Relay) Delivered() int64 {
	return r.delivered.Load()
}

// Dropped returns how many events the sink rejected
func (r *Relay) Dropped() int64 {
	return r.dropped.Load()
}

func (r *Relay) drain() {
	defer close(r.done)

	for {
		r.mu.Lock()
		for r.queue.Len() == 0 && r.terminal == nil {
			r.cond.Wait()
		}
		if r.queue.Len() > 0 {
			item := heap.Pop(&r.queue).(queued)
			r.mu.Unlock()
			r.deliver(r.monotonic(item.event))
			continue
		}
		terminal := *r.terminal
		r.mu.Unlock()

		r.termErr = r.deliver(terminal)
		return
	}
}

// monotonic lifts an event that arrived behind a larger one
func (r *Relay) monotonic(ev model.ProgressEvent) model.ProgressEvent {
	if ev.Fraction < r.highFraction {
		ev.Fraction = r.highFraction
	} else {
		r.highFraction = ev.Fraction
	}
	if ev.BytesDone < r.highBytes {
		ev.BytesDone = r.highBytes
	} else {
		r.highBytes = ev.BytesDone
	}
	return ev
}

func (r *Relay) deliver(ev model.ProgressEvent) error {
	if err := r.sink.Deliver(ev); err != nil {
		r.dropped.Add(1)
		r.logger.Warn("progress delivery failed", "kind", ev.Kind, "error", err)
		return err
	}
	r.delivered.Add(1)
	return nil
}
