package main

import (
	"os"

	"github.com/mendkit/mendkit/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
