package main

import "studenthome_backend/internals/commands"

func main() {
	commands.Execute()
}
