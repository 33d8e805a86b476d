package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/Dev4057/NoteFlow/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// NoteEvents flattens all tracks of a parsed file into one time-ordered
// stream of note events with timestamps in seconds, ready for replay
// through the aggregator. Note-offs sort before note-ons at equal offsets
// so released keys never bleed into the next group.
func NoteEvents(s *smf.SMF) []model.NoteEvent {
	var events []model.NoteEvent

	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, model.NoteEvent{
					Number:    key,
					Velocity:  velocity,
					Timestamp: float64(absTime) / 1e6,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, model.NoteEvent{
					Number:    key,
					Timestamp: float64(absTime) / 1e6,
					NoteOff:   true,
				})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Timestamp != events[j].Timestamp {
			return events[i].Timestamp < events[j].Timestamp
		}
		return events[i].NoteOff && !events[j].NoteOff
	})
	return events
}
