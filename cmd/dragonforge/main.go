package main

import "github.com/galactic-plane/dragonforge/cmd/dragonforge/commands"

func main() {
	commands.Execute()
}
