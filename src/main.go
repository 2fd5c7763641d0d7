// Command mediastore manages the local media library of the display app.
package main

import (
	"fmt"
	"os"

	"github.com/contre95/mediastore/src/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
