package model

// NoRoot marks a classified event whose label has no meaningful root,
// e.g. an interval or an unmatched note group.
const NoRoot = -1

// NoteEvent is one raw key event as delivered by the MIDI input driver.
// Timestamp is monotonic seconds relative to the driver's clock.
type NoteEvent struct {
	Number    uint8   `json:"midi_number"`
	Velocity  uint8   `json:"velocity"`
	Timestamp float64 `json:"timestamp"`
	NoteOff   bool    `json:"note_off,omitempty"`
}

type EventType string

const (
	TypeNote         EventType = "note"
	TypeInterval     EventType = "interval"
	TypeChord        EventType = "chord"
	TypeUnclassified EventType = "notes"
)

// ClassifiedEvent is one finished entry on the recording timeline: a single
// note, a two-note interval, a recognized chord, or an unmatched note group.
// It is never mutated after being produced.
type ClassifiedEvent struct {
	Type      EventType `json:"type"`
	Label     string    `json:"display_name"`
	FullName  string    `json:"full_name,omitempty"`
	Root      int       `json:"root_pitch_class"` // 0-11, or NoRoot
	Inversion int       `json:"inversion"`

	// SourceNotes is the exact note-on set that produced the event, in
	// arrival order. Octave and same-key duplicates are retained here even
	// though matching reduces them to distinct pitch classes.
	SourceNotes []NoteEvent `json:"notes"`
	Timestamp   float64     `json:"timestamp"`
}
