package main

import "hostelku_backend/internals/commands"

func main() {
	commands.Execute()
}
