package cmd

import (
	"fmt"

	"github.com/Dev4057/NoteFlow/db"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(logCmd)
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Lists the practice log",
	Long:  `Lists the sessions recorded with --log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := db.ListSessions()
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("Practice log is empty")
			return nil
		}
		for _, s := range sessions {
			fmt.Printf("%v  %v  %v notes  %.1fs  (%v)\n",
				s.Date, s.Device, s.NoteCount, s.Duration, s.Id)
		}
		return nil
	},
}
