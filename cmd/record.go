package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Dev4057/NoteFlow/db"
	"github.com/Dev4057/NoteFlow/group"
	"github.com/Dev4057/NoteFlow/midiin"
	"github.com/Dev4057/NoteFlow/model"
	"github.com/Dev4057/NoteFlow/recorder"
	"github.com/Dev4057/NoteFlow/store"
	"github.com/spf13/cobra"
)

var (
	recordPort     int
	recordWindowMs float64
	recordOut      string
	recordNoChords bool
	recordLog      bool
)

func init() {
	recordCmd.Flags().IntVar(&recordPort, "port", 0, "MIDI input port number")
	recordCmd.Flags().Float64Var(&recordWindowMs, "window", group.DefaultWindowMs, "grouping window in milliseconds")
	recordCmd.Flags().StringVar(&recordOut, "out", "", "path to save the recording as JSON")
	recordCmd.Flags().BoolVar(&recordNoChords, "no-chords", false, "record every note individually")
	recordCmd.Flags().BoolVar(&recordLog, "log", false, "append the session to the practice log")
	rootCmd.AddCommand(recordCmd)
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Records from a MIDI input until interrupted",
	Long:  `Records from a MIDI input until interrupted`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return record()
	},
}

func record() error {
	defer midiin.Close()

	in, err := midiin.Open(recordPort)
	if err != nil {
		return fmt.Errorf("could not open MIDI port %v: %w", recordPort, err)
	}

	rec := recorder.New(recordWindowMs)
	rec.SetChordDetection(!recordNoChords)
	rec.SetNotify(func(ev model.ClassifiedEvent) {
		switch ev.Type {
		case model.TypeChord:
			fmt.Printf("[Chord] %v\n", ev.Label)
		case model.TypeInterval:
			fmt.Printf("[Interval: %v]\n", ev.Label)
		case model.TypeUnclassified:
			fmt.Printf("[Notes: %v]\n", ev.Label)
		default:
			fmt.Println(ev.Label)
		}
	})

	rec.Start()
	stop, err := midiin.Listen(in, rec)
	if err != nil {
		return fmt.Errorf("could not listen on %v: %w", in.String(), err)
	}
	fmt.Printf("Recording from %v... press Ctrl-C to stop\n", in.String())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt

	stop()
	rec.Stop()

	fmt.Printf("\n%v\n", rec.Text())

	if recordOut != "" {
		snapshot := rec.Snapshot()
		if err := store.Save(recordOut, &snapshot); err != nil {
			return err
		}
		fmt.Printf("Saved recording to %v\n", recordOut)

		if recordLog {
			err := db.PutSession(model.PracticeSession{
				Id:        snapshot.Id,
				Device:    in.String(),
				NoteCount: snapshot.NoteCount,
				Duration:  snapshot.Duration,
				Date:      time.Now().Format(time.RFC3339),
			})
			if err != nil {
				fmt.Printf("Could not update the practice log: %v\n", err)
			}
		}
	}
	return nil
}
