// Package midiin connects a physical MIDI input port to a Recorder.
package midiin

import (
	"github.com/Dev4057/NoteFlow/model"
	"github.com/Dev4057/NoteFlow/recorder"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

// Ports lists the available MIDI input ports in driver order.
func Ports() ([]string, error) {
	ins, err := drivers.Get().Ins()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names, nil
}

func Open(portNum int) (drivers.In, error) {
	return midi.InPort(portNum)
}

// Close releases the MIDI driver. Call once on shutdown.
func Close() {
	midi.CloseDriver()
}

// Listen converts driver callbacks into NoteEvents and feeds the recorder.
// The callback does no more than a recorder Observe, so the input path is
// never blocked. The returned stop function cancels the subscription.
func Listen(in drivers.In, rec *recorder.Recorder) (stop func(), err error) {
	return midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			rec.Observe(model.NoteEvent{
				Number:    key,
				Velocity:  vel,
				Timestamp: float64(timestampms) / 1000,
			})
		case msg.GetNoteEnd(&ch, &key):
			rec.Observe(model.NoteEvent{
				Number:    key,
				Timestamp: float64(timestampms) / 1000,
				NoteOff:   true,
			})
		}
	})
}
