package main

import (
	"fmt"
	"os"

	"github.com/yourname/healthtracker/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "healthctl:", err)
		os.Exit(1)
	}
}
