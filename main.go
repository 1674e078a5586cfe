package main

import (
	"fmt"
	"os"

	"github.com/darkfeline/chronoplot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "chronoplot: %v\n", err)
		os.Exit(1)
	}
}
