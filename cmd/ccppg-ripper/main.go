package main

import (
	"fmt"
	"os"

	"github.com/dogtopus/ccppg-ripper/internal/commands"
)

// version is set at build time with -ldflags.
var version = "dev"

func main() {
	if err := commands.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
