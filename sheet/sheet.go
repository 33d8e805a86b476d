// Package sheet renders a finished recording for practice review: a
// plain-text sheet laid out by sections, or a Standard MIDI File.
package sheet

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Dev4057/NoteFlow/model"
	"github.com/Dev4057/NoteFlow/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// DefaultPauseThreshold is the silence, in seconds, that starts a new
// section in the sheet layout.
const DefaultPauseThreshold = 2.0

const labelsPerLine = 4

// SplitSections breaks the timeline wherever consecutive events are
// separated by more than pauseThreshold seconds. Export layout only; the
// timeline itself is never altered.
func SplitSections(events []model.ClassifiedEvent, pauseThreshold float64) [][]model.ClassifiedEvent {
	if pauseThreshold <= 0 {
		pauseThreshold = DefaultPauseThreshold
	}
	var sections [][]model.ClassifiedEvent
	var current []model.ClassifiedEvent
	for i, ev := range events {
		if i > 0 && ev.Timestamp-events[i-1].Timestamp > pauseThreshold {
			sections = append(sections, current)
			current = nil
		}
		current = append(current, ev)
	}
	if len(current) > 0 {
		sections = append(sections, current)
	}
	return sections
}

// WriteText renders the recording as a plain-text practice sheet, one
// section per silence-delimited passage, four labels per line.
func WriteText(w io.Writer, rec model.Recording, pauseThreshold float64) error {
	var b strings.Builder
	b.WriteString("NoteFlow practice sheet\n")
	if rec.RecordingDate != "" {
		fmt.Fprintf(&b, "Recorded: %v\n", rec.RecordingDate)
	}
	fmt.Fprintf(&b, "Notes: %v   Duration: %.1fs\n", rec.NoteCount, rec.Duration)

	for i, section := range SplitSections(rec.Events, pauseThreshold) {
		fmt.Fprintf(&b, "\nSection %d:\n", i+1)
		var labels []string
		for _, ev := range section {
			labels = append(labels, ev.Label)
		}
		for start := 0; start < len(labels); start += labelsPerLine {
			end := util.Min(start+labelsPerLine, len(labels))
			b.WriteString("  " + strings.Join(labels[start:end], " | ") + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSMF renders the recording as a single-track Standard MIDI File.
// Each timeline event becomes one block of simultaneous notes held for a
// quarter of a second; 4/4 at 120bpm is assumed for display segmentation.
func WriteSMF(w io.Writer, rec model.Recording) error {
	if len(rec.Events) == 0 {
		return fmt.Errorf("recording has no events to export")
	}

	const tempo = 120.0
	const hold = 250 * time.Millisecond
	ticks := smf.MetricTicks(960)

	var track smf.Track
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(tempo))
	track.Add(0, smf.MetaInstrument("Piano"))

	base := rec.Events[0].Timestamp
	var cursor time.Duration
	for _, ev := range rec.Events {
		at := time.Duration((ev.Timestamp - base) * float64(time.Second))
		if at < cursor {
			at = cursor
		}
		delta := ticks.Ticks(tempo, at-cursor)
		for i, n := range ev.SourceNotes {
			var d uint32
			if i == 0 {
				d = delta
			}
			track.Add(d, midi.NoteOn(0, n.Number, n.Velocity))
		}
		for i, n := range ev.SourceNotes {
			var d uint32
			if i == 0 {
				d = ticks.Ticks(tempo, hold)
			}
			track.Add(d, midi.NoteOff(0, n.Number))
		}
		cursor = at + hold
	}
	track.Close(0)

	var res smf.SMF
	res.TimeFormat = ticks
	res.Tracks = append(res.Tracks, track)
	_, err := res.WriteTo(w)
	return err
}
