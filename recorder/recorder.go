// Package recorder owns the classified timeline of one practice session.
package recorder

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Dev4057/NoteFlow/chord"
	"github.com/Dev4057/NoteFlow/group"
	"github.com/Dev4057/NoteFlow/model"
)

// Recorder feeds raw MIDI events through the aggregator and appends each
// classified group to the timeline in arrival order. Events are only
// recorded between Start and Stop; Stop always flushes the open group so a
// partial window is never silently discarded.
type Recorder struct {
	agg *group.Aggregator

	mu           sync.Mutex
	recording    bool
	detectChords bool
	startTime    float64
	events       []model.ClassifiedEvent
	pressed      map[uint8]bool
	noteCount    int
	notify       func(model.ClassifiedEvent)
}

func New(windowMs float64) *Recorder {
	r := &Recorder{
		detectChords: true,
		startTime:    -1,
		pressed:      make(map[uint8]bool),
	}
	r.agg = group.New(windowMs, r.capture)
	return r
}

// SetNotify registers a callback invoked for each event appended to the
// timeline, e.g. for live display. Set it before Start.
func (r *Recorder) SetNotify(fn func(model.ClassifiedEvent)) {
	r.mu.Lock()
	r.notify = fn
	r.mu.Unlock()
}

// SetChordDetection toggles grouping. When off, every note-on becomes its
// own single-note event immediately.
func (r *Recorder) SetChordDetection(on bool) {
	r.mu.Lock()
	r.detectChords = on
	r.mu.Unlock()
}

func (r *Recorder) Start() {
	r.mu.Lock()
	r.recording = true
	r.mu.Unlock()
}

// Stop ends the session. The final flush runs before recording is marked
// stopped, so the last group always reaches the timeline.
func (r *Recorder) Stop() {
	r.agg.Flush()
	r.mu.Lock()
	r.recording = false
	r.mu.Unlock()
}

// Clear discards the timeline, dropping any half-open group with it.
func (r *Recorder) Clear() {
	r.agg.Flush()
	r.mu.Lock()
	r.events = nil
	r.noteCount = 0
	r.startTime = -1
	r.mu.Unlock()
}

// Observe feeds one raw MIDI event. Safe to call from the driver callback.
func (r *Recorder) Observe(ev model.NoteEvent) {
	r.mu.Lock()
	if ev.NoteOff {
		delete(r.pressed, ev.Number)
		r.mu.Unlock()
		return
	}
	r.pressed[ev.Number] = true
	if !r.recording {
		r.mu.Unlock()
		return
	}
	if r.startTime < 0 {
		r.startTime = ev.Timestamp
	}
	r.noteCount++
	detect := r.detectChords
	r.mu.Unlock()

	if detect {
		r.agg.Observe(ev)
	} else {
		r.capture([]model.NoteEvent{ev})
	}
}

func (r *Recorder) capture(finalized []model.NoteEvent) {
	ev := chord.Classify(finalized)
	r.mu.Lock()
	r.events = append(r.events, ev)
	notify := r.notify
	r.mu.Unlock()
	if notify != nil {
		notify(ev)
	}
}

// Events returns a copy of the timeline.
func (r *Recorder) Events() []model.ClassifiedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]model.ClassifiedEvent, len(r.events))
	copy(res, r.events)
	return res
}

// Pressed reports the keys currently held, for keyboard-highlight callers.
func (r *Recorder) Pressed() []uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var keys []uint8
	for k := range r.pressed {
		keys = append(keys, k)
	}
	return keys
}

func (r *Recorder) NoteCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.noteCount
}

// Duration reports seconds from the first note to the last event.
func (r *Recorder) Duration() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 || r.startTime < 0 {
		return 0
	}
	return r.events[len(r.events)-1].Timestamp - r.startTime
}

// Snapshot packages the timeline for persistence. Id and date are assigned
// by the store on save.
func (r *Recorder) Snapshot() model.Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]model.ClassifiedEvent, len(r.events))
	copy(events, r.events)
	var duration float64
	if len(events) > 0 && r.startTime >= 0 {
		duration = events[len(events)-1].Timestamp - r.startTime
	}
	return model.Recording{
		WindowMs:  r.agg.WindowMs(),
		NoteCount: r.noteCount,
		Duration:  duration,
		Events:    events,
	}
}

// Text renders the timeline as a numbered list, one event per line.
func (r *Recorder) Text() string {
	r.mu.Lock()
	events, start := r.events, r.startTime
	r.mu.Unlock()

	if len(events) == 0 {
		return "No notes recorded"
	}

	var lines []string
	for i, ev := range events {
		rel := ev.Timestamp - start
		var line string
		switch ev.Type {
		case model.TypeChord:
			line = fmt.Sprintf("%d. [Chord] %s (%.2fs)", i+1, ev.Label, rel)
		case model.TypeInterval:
			line = fmt.Sprintf("%d. [Interval: %s] (%.2fs)", i+1, ev.Label, rel)
		case model.TypeUnclassified:
			line = fmt.Sprintf("%d. [Notes: %s] (%.2fs)", i+1, ev.Label, rel)
		default:
			line = fmt.Sprintf("%d. %s (%.2fs, vel:%d)", i+1, ev.Label, rel, ev.SourceNotes[0].Velocity)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Sequence renders the timeline as an arrow chain, e.g. "C4 → [C maj] → G4".
func (r *Recorder) Sequence() string {
	r.mu.Lock()
	events := r.events
	r.mu.Unlock()

	var parts []string
	for _, ev := range events {
		if ev.Type == model.TypeNote {
			parts = append(parts, ev.Label)
		} else {
			parts = append(parts, "["+ev.Label+"]")
		}
	}
	return strings.Join(parts, " → ")
}
