package main

import "github.com/chazu/lignin/cmd/cellcsg/cmd"

func main() {
	cmd.Execute()
}
