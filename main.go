package main

import (
	"os"

	"github.com/thenoetrevino/listo/cmd"
	"github.com/thenoetrevino/listo/internal/cli"
)

func main() {
	os.Exit(cli.ExitCodeFor(cmd.Execute()))
}
