package main

import "github.com/amaljosh/wellness/cmd/wellness/cmd"

func main() {
	cmd.Execute()
}
