package main

import (
	"fmt"
	"os"

	"github.com/midbel/permgen"
)

func main() {
	c := permgen.Default()
	if err := c.Run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s! abort...\n", err)
		os.Exit(1)
	}
}
