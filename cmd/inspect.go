package cmd

import (
	"fmt"

	"github.com/Dev4057/NoteFlow/model"
	"github.com/Dev4057/NoteFlow/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [recording.json]",
	Short: "Prints a saved recording",
	Long:  `Prints a saved recording`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := store.Load(args[0])
		if err != nil {
			return err
		}
		inspect(rec)
		return nil
	},
}

func inspect(rec model.Recording) {
	fmt.Printf("Recording %v\n", rec.Id)
	fmt.Printf("Recorded: %v  Notes: %v  Duration: %.1fs  Window: %vms\n",
		rec.RecordingDate, rec.NoteCount, rec.Duration, rec.WindowMs)
	if len(rec.Events) == 0 {
		fmt.Println("No events")
		return
	}
	base := rec.Events[0].Timestamp
	for i, ev := range rec.Events {
		fmt.Printf("%d. [%v] %v (%.2fs)\n", i+1, ev.Type, ev.Label, ev.Timestamp-base)
	}
}
