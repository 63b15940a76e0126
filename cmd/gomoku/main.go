package main

import "github.com/fiverow/gomoku/internal/cli"

func main() {
	cli.Execute()
}
