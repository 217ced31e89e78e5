package main

import "github.com/Ta1al/timetable-parser/cmd/timetable-parser/commands"

func main() {
	commands.Execute()
}
