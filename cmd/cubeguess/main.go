// cubeguess - a terminal and HTTP trivia game about the hidden faces of a cube.
package main

import (
	"github.com/SeamusWaldron/cubeguess/internal/cli"
)

func main() {
	cli.Execute()
}
