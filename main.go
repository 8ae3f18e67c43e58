package main

import "github.com/pomo-cli/pomo/cmd"

func main() {
	cmd.Execute()
}
