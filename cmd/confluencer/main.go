package main

import "confluencer/cmd/confluencer/commands"

func main() {
	commands.Execute()
}
