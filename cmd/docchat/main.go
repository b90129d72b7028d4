package main

import "github.com/diogo/docchat/internal/commands"

func main() {
	commands.Execute()
}
