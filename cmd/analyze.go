package cmd

import (
	"fmt"

	"github.com/Dev4057/NoteFlow/group"
	"github.com/Dev4057/NoteFlow/midi"
	"github.com/Dev4057/NoteFlow/recorder"
	"github.com/spf13/cobra"
)

var analyzeWindowMs float64

func init() {
	analyzeCmd.Flags().Float64Var(&analyzeWindowMs, "window", group.DefaultWindowMs, "grouping window in milliseconds")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file.mid]",
	Short: "Classifies the chords of a MIDI file",
	Long: `Replays the note events of a standard MIDI file through the grouping
window and prints the classified timeline.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := midi.ReadFile(args[0])
		if err != nil {
			return err
		}

		rec := recorder.New(analyzeWindowMs)
		rec.Start()
		for _, ev := range midi.NoteEvents(parsed) {
			rec.Observe(ev)
		}
		rec.Stop()

		fmt.Println(rec.Text())
		return nil
	},
}
