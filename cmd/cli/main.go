// Command cli is the belajarhosting terminal client.
package main

import (
	"fmt"
	"os"

	"github.com/belajarhosting/platform/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
