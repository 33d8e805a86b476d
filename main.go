package main

import "github.com/Dev4057/NoteFlow/cmd"

func main() {
	cmd.Execute()
}
