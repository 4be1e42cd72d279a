// GoCube - a 3x3 Rubik's cube engine for the terminal.
package main

import (
	"github.com/SeamusWaldron/gocube_engine/internal/cli"
)

func main() {
	cli.Execute()
}
