package cmd

import (
	"fmt"

	"github.com/Dev4057/NoteFlow/midiin"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(devicesCmd)
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Lists MIDI input ports",
	Long:  `Lists MIDI input ports`,
	Run: func(cmd *cobra.Command, args []string) {
		defer midiin.Close()
		ports, err := midiin.Ports()
		if err != nil {
			fmt.Printf("Could not list MIDI devices: %v\n", err)
			return
		}
		if len(ports) == 0 {
			fmt.Println("No MIDI devices found")
			return
		}
		for i, name := range ports {
			fmt.Printf("%v: %v\n", i, name)
		}
	},
}
