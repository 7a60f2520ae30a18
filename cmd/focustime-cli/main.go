package main

import "github.com/astradev123/obsidian-focus-time/cmd/focustime-cli/cmd"

func main() {
	cmd.Execute()
}
