package main

import "bakerspal/cmd/bakerspal-cli/cmd"

func main() {
	cmd.Execute()
}
