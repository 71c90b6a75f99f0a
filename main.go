package main

import (
	"fmt"
	"os"

	"roi-calculator/cli"
)

func main() {
	if err := cli.New(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
