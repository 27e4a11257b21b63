package main

import (
	"os"

	"github.com/geminitools/tomlcheck/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:]))
}
