// regkv is the CLI for reading and editing key/value registry files.
package main

import (
	"fmt"
	"os"

	"regkv/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
