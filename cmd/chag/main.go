package main

import (
	"os"

	"github.com/ariel-frischer/chag/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
