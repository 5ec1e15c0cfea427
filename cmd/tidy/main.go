package main

import (
	"fmt"
	"os"

	"tidy/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(services.ExitCode(err))
	}
}
