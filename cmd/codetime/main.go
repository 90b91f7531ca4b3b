package main

import (
	"fmt"
	"os"

	"code-time/internal/cli"
)

func main() {
	if err := cli.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "codetime: %v\n", err)
		os.Exit(1)
	}
}
