package main

import (
	"os"

	"github.com/dmitrymomot/gram/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
