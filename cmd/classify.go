package cmd

import (
	"fmt"
	"strconv"

	"github.com/Dev4057/NoteFlow/chord"
	"github.com/Dev4057/NoteFlow/model"
	"github.com/Dev4057/NoteFlow/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify [notes]",
	Short: "Classifies a group of notes",
	Long: `Classifies a group of notes given as note names or MIDI numbers,
e.g. "noteflow classify C4 E4 G4" or "noteflow classify 60 64 67".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := parseNotes(args)
		if err != nil {
			return err
		}
		printClassification(chord.Classify(notes))
		return nil
	},
}

func parseNotes(args []string) ([]model.NoteEvent, error) {
	var notes []model.NoteEvent
	for _, arg := range args {
		var num uint8
		if n, err := strconv.Atoi(arg); err == nil {
			if n < 0 || n > 127 {
				return nil, fmt.Errorf("MIDI number %v is out of range", n)
			}
			num = uint8(n)
		} else {
			parsed, err := note.Parse(arg)
			if err != nil {
				return nil, err
			}
			num = parsed
		}
		notes = append(notes, model.NoteEvent{Number: num, Velocity: 80})
	}
	return notes, nil
}

func printClassification(ev model.ClassifiedEvent) {
	switch ev.Type {
	case model.TypeChord:
		fmt.Printf("Chord: %v (%v)\n", ev.Label, ev.FullName)
		fmt.Printf("Root: %v  Inversion: %v\n", note.ClassName(ev.Root), ev.Inversion)
	case model.TypeInterval:
		fmt.Printf("Interval: %v\n", ev.Label)
	case model.TypeNote:
		fmt.Printf("Note: %v\n", ev.Label)
	default:
		fmt.Printf("Unclassified group: %v\n", ev.Label)
	}
}
