package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "noteflow",
	Short: "Practice recorder for MIDI keyboards",
	Long: `NoteFlow records what you play on a MIDI keyboard, grouping
near-simultaneous notes and labelling each group as a note, an interval,
or a chord.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
