package cmd

import (
	"fmt"
	"os"

	"github.com/Dev4057/NoteFlow/sheet"
	"github.com/Dev4057/NoteFlow/store"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
	exportPause  float64
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "sheet", "output format: sheet or smf")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (required)")
	exportCmd.Flags().Float64Var(&exportPause, "pause", sheet.DefaultPauseThreshold, "silence in seconds that starts a new section")
	exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [recording.json]",
	Short: "Exports a saved recording",
	Long:  `Exports a saved recording as a plain-text practice sheet or a standard MIDI file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := store.Load(args[0])
		if err != nil {
			return err
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("could not create %v: %w", exportOut, err)
		}
		defer f.Close()

		switch exportFormat {
		case "sheet":
			err = sheet.WriteText(f, rec, exportPause)
		case "smf":
			err = sheet.WriteSMF(f, rec)
		default:
			err = fmt.Errorf("unknown format %q (want sheet or smf)", exportFormat)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Exported to %v\n", exportOut)
		return nil
	},
}
