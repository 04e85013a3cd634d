package main

import "github.com/vitalcoach/vital-cli/cmd"

func main() {
	cmd.Execute()
}
