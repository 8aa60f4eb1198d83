package main

import "github.com/openmc-go/xscore/cmd"

func main() {
	cmd.Execute()
}
