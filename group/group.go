// Package group turns the asynchronous stream of note-on events into
// discrete groups of notes intended as simultaneous.
package group

import (
	"sync"
	"time"

	"github.com/Dev4057/NoteFlow/model"
	"github.com/bep/debounce"
)

// DefaultWindowMs is the widest timestamp spread, in milliseconds, within
// which note-on events still count as one press.
const DefaultWindowMs = 50

// Aggregator buffers note-on events into a single pending group anchored at
// the group's first timestamp. The group is finalized when a later event
// falls outside the window, when input goes quiet for a full window, or when
// Flush is called on stop. Observe is safe to call from the MIDI driver
// callback: it takes one mutex, appends, and re-arms a timer.
//
// The sink receives each finalized group exactly once, in order, as a
// detached slice it may keep. It must not call back into the Aggregator.
type Aggregator struct {
	windowMs float64
	sink     func([]model.NoteEvent)

	// debounced re-arms the quiet-input flush; each arrival supersedes the
	// previous timer, so at most one wake-up is pending per open group.
	debounced func(func())

	mu      sync.Mutex
	pending []model.NoteEvent
	anchor  float64
}

// New creates an Aggregator. A window of zero or less falls back to
// DefaultWindowMs.
func New(windowMs float64, sink func([]model.NoteEvent)) *Aggregator {
	if windowMs <= 0 {
		windowMs = DefaultWindowMs
	}
	return &Aggregator{
		windowMs:  windowMs,
		sink:      sink,
		debounced: debounce.New(time.Duration(windowMs * float64(time.Millisecond))),
	}
}

// WindowMs reports the configured grouping window.
func (a *Aggregator) WindowMs() float64 {
	return a.windowMs
}

// Observe feeds one raw MIDI event. Note-off events never affect grouping.
func (a *Aggregator) Observe(ev model.NoteEvent) {
	if ev.NoteOff {
		return
	}

	a.mu.Lock()
	if len(a.pending) > 0 && (ev.Timestamp-a.anchor)*1000 > a.windowMs {
		a.flushLocked()
	}
	if len(a.pending) == 0 {
		a.anchor = ev.Timestamp
	}
	a.pending = append(a.pending, ev)
	a.mu.Unlock()

	a.debounced(a.Flush)
}

// Flush finalizes the open group, if any. The recorder calls it on stop so
// the tail of a session is never lost; the quiet-input timer calls it once
// a window has elapsed with no new arrivals.
func (a *Aggregator) Flush() {
	a.mu.Lock()
	a.flushLocked()
	a.mu.Unlock()
}

func (a *Aggregator) flushLocked() {
	if len(a.pending) == 0 {
		return
	}
	finalized := a.pending
	a.pending = nil
	a.sink(finalized)
}
